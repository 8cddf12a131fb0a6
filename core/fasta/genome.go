// core/fasta/genome.go
package fasta

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Entry is one sequence of a genome together with its sampling weights.
// len(Prob) == len(Seq) always holds.
type Entry struct {
	ID      string
	Seq     []byte
	Prob    []float64
	Plasmid bool
}

// Genome is the parsed content of one genome file. IDs keeps file order so
// that random selection over entries is reproducible.
type Genome struct {
	Path    string
	IDs     []string
	Entries map[string]*Entry
}

// Len returns the number of sequences.
func (g *Genome) Len() int { return len(g.IDs) }

// TotalLen returns the summed length of all sequences.
func (g *Genome) TotalLen() int {
	n := 0
	for _, e := range g.Entries {
		n += len(e.Seq)
	}
	return n
}

// Empty returns a genome with no sequences for path.
func Empty(path string) *Genome {
	return &Genome{Path: path, Entries: map[string]*Entry{}}
}

// NewEntry wraps a sequence with an all-ones probability map.
func NewEntry(id string, s []byte) *Entry {
	prob := make([]float64, len(s))
	for i := range prob {
		prob[i] = 1
	}
	return &Entry{ID: id, Seq: s, Prob: prob}
}

// Add inserts an entry. A repeated ID replaces the earlier entry but keeps
// its position in IDs.
func (g *Genome) Add(e *Entry) {
	if _, ok := g.Entries[e.ID]; !ok {
		g.IDs = append(g.IDs, e.ID)
	}
	g.Entries[e.ID] = e
}

// Load parses the genome file at path.
func Load(ctx context.Context, path string) (*Genome, error) {
	g := Empty(path)
	err := Stream(ctx, path, func(r Record) error {
		g.Add(NewEntry(r.ID, r.Seq))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// LoadOrEmpty is Load for batch use: a file that cannot be read or parsed
// is logged and yields an empty genome, i.e. zero obtainable contigs.
func LoadOrEmpty(ctx context.Context, path string, log logrus.FieldLogger) *Genome {
	g, err := Load(ctx, path)
	if err != nil {
		if ctx.Err() == nil {
			log.WithField("path", path).WithError(err).Warn("parse failure, genome skipped")
		}
		return Empty(path)
	}
	log.WithFields(logrus.Fields{"path": path, "sequences": g.Len(), "bases": g.TotalLen()}).Debug("genome loaded")
	return g
}
