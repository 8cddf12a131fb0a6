// core/sampler/contig.go
package sampler

// Strand values of a Contig.
const (
	StrandForward = "+"
	StrandReverse = "-"
)

// Contig is one sampled training example. Start and End are 0-based,
// end-exclusive coordinates on the forward strand of Header, whatever the
// Strand; Sequence is already reverse complemented when Strand is "-".
type Contig struct {
	Sequence string
	Label    string
	Path     string
	Header   string
	Start    int
	End      int
	Strand   string
}

// Len is the contig length in bp.
func (c Contig) Len() int { return c.End - c.Start }
