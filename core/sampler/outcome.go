// core/sampler/outcome.go
package sampler

// Reason tags the result of a single attempt.
type Reason uint8

const (
	Accepted Reason = iota
	// RejectTooShort: the chosen sequence is shorter than the minimum length.
	RejectTooShort
	// RejectAmbiguous: the candidate window contains an N.
	RejectAmbiguous

	numReasons
)

func (r Reason) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case RejectTooShort:
		return "too_short"
	case RejectAmbiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// Outcome is what one attempt produced. Contig is only set when
// Reason == Accepted.
type Outcome struct {
	Reason     Reason
	SeqID      string
	Contig     Contig
	Degenerate bool
}

// Ok reports whether the attempt yielded a contig.
func (o Outcome) Ok() bool { return o.Reason == Accepted }
