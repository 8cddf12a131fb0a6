// core/sampler/sampler.go
package sampler

import (
	"context"
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"contigsampler/core/fasta"
)

// DefaultAttemptMultiplier bounds the attempts per genome to
// target*DefaultAttemptMultiplier.
const DefaultAttemptMultiplier = 5

// maxPrealloc caps the contig slice preallocated per genome; targets derived
// from the largest genome can be far above what a small genome yields.
const maxPrealloc = 1024

// Config holds the per-contig sampling parameters.
type Config struct {
	MinLen            int
	MaxLen            int
	Decay             float64
	AttemptMultiplier int
}

// Validate rejects parameter sets the sampler cannot honor.
func (c Config) Validate() error {
	switch {
	case c.MinLen < 1:
		return errors.Errorf("min_len must be >= 1, got %d", c.MinLen)
	case c.MaxLen < c.MinLen:
		return errors.Errorf("max_len (%d) must be >= min_len (%d)", c.MaxLen, c.MinLen)
	case math.IsNaN(c.Decay) || c.Decay <= 0 || c.Decay > 1:
		return errors.Errorf("decay must be in (0, 1], got %v", c.Decay)
	case c.AttemptMultiplier < 1:
		return errors.Errorf("attempt_multiplier must be >= 1, got %d", c.AttemptMultiplier)
	}
	return nil
}

// Result summarizes the sampling of one genome.
type Result struct {
	Contigs    []Contig
	Requested  int
	Attempts   int
	Rejected   [numReasons]int
	Degenerate int
	Exhausted  bool
}

// RejectedBy returns how many attempts ended with reason r.
func (r Result) RejectedBy(reason Reason) int { return r.Rejected[reason] }

// Sampler runs sessions with a fixed Config. It holds no per-genome state
// and is safe for concurrent use.
type Sampler struct {
	cfg Config
	log logrus.FieldLogger
}

// New validates cfg and returns a Sampler. A nil log uses the logrus
// standard logger.
func New(cfg Config, log logrus.FieldLogger) (*Sampler, error) {
	if cfg.AttemptMultiplier == 0 {
		cfg.AttemptMultiplier = DefaultAttemptMultiplier
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Sampler{cfg: cfg, log: log}, nil
}

// Config returns the effective configuration.
func (s *Sampler) Config() Config { return s.cfg }

// Sample draws up to target contigs from g. It stops once target contigs
// were accepted or target*AttemptMultiplier attempts were spent; the latter
// is logged and the partial result returned. ctx is checked between
// attempts.
func (s *Sampler) Sample(ctx context.Context, g *fasta.Genome, label string, target int, rng *rand.Rand) Result {
	res := Result{Requested: target}
	if target <= 0 {
		return res
	}
	log := s.log.WithField("path", g.Path)
	if g.Len() == 0 {
		log.Debug("no sequences, nothing to sample")
		return res
	}

	sess := NewSession(s.cfg, g, label, rng)
	budget := target * s.cfg.AttemptMultiplier
	res.Contigs = make([]Contig, 0, min(target, maxPrealloc))

	for len(res.Contigs) < target {
		if res.Attempts >= budget {
			res.Exhausted = true
			log.WithFields(logrus.Fields{
				"generated": len(res.Contigs),
				"requested": target,
				"attempts":  res.Attempts,
			}).Warn("attempt budget exhausted")
			break
		}
		if ctx.Err() != nil {
			break
		}
		res.Attempts++

		o := sess.Attempt()
		if o.Degenerate {
			res.Degenerate++
			log.WithField("header", o.SeqID).Debug("probability map fully decayed, drew uniformly")
		}
		if !o.Ok() {
			res.Rejected[o.Reason]++
			continue
		}
		res.Contigs = append(res.Contigs, o.Contig)
	}
	return res
}
