// core/sampler/session.go
package sampler

import (
	"math/rand/v2"

	"contigsampler/core/fasta"
	"contigsampler/core/nucleotide"
)

// Session is the sampling state of one genome. It mutates the probability
// maps of its genome and must not be used from more than one goroutine.
type Session struct {
	cfg    Config
	genome *fasta.Genome
	label  string
	rng    *rand.Rand
}

// NewSession starts a session over g. Contigs are labelled with label.
func NewSession(cfg Config, g *fasta.Genome, label string, rng *rand.Rand) *Session {
	return &Session{cfg: cfg, genome: g, label: label, rng: rng}
}

// Attempt runs a single draw: pick a sequence, a length and a center, then
// validate the window. Only accepted windows decay the probability map.
// The genome must hold at least one sequence.
func (s *Session) Attempt() Outcome {
	ids := s.genome.IDs
	id := ids[s.rng.IntN(len(ids))]
	e := s.genome.Entries[id]

	glen := len(e.Seq)
	if glen < s.cfg.MinLen {
		return Outcome{Reason: RejectTooShort, SeqID: id}
	}
	hi := min(glen, s.cfg.MaxLen)
	sampleLen := s.cfg.MinLen + s.rng.IntN(hi-s.cfg.MinLen+1)

	lo := sampleLen / 2  // floor(sampleLen/2)
	up := sampleLen - lo // ceil(sampleLen/2)
	minIdx, maxIdx := lo, glen-up

	var (
		start, stop int
		degenerate  bool
	)
	if minIdx >= maxIdx {
		start, stop = 0, glen
	} else {
		var base int
		base, degenerate = ProbMap(e.Prob).Draw(s.rng, minIdx, maxIdx)
		start, stop = base-lo, base+up
	}

	window := e.Seq[start:stop]
	if nucleotide.HasAmbiguous(window) {
		return Outcome{Reason: RejectAmbiguous, SeqID: id, Degenerate: degenerate}
	}

	strand := StrandForward
	out := string(window)
	if s.rng.Float64() < 0.5 {
		out = string(nucleotide.RevComp(window))
		strand = StrandReverse
	}

	ProbMap(e.Prob).Decay(start, stop, s.cfg.Decay)

	return Outcome{
		Reason:     Accepted,
		SeqID:      id,
		Degenerate: degenerate,
		Contig: Contig{
			Sequence: out,
			Label:    s.label,
			Path:     s.genome.Path,
			Header:   id,
			Start:    start,
			End:      stop,
			Strand:   strand,
		},
	}
}
