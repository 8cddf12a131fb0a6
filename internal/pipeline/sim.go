// internal/pipeline/sim.go
package pipeline

import (
	"context"
	"math/rand/v2"

	"contigsampler/core/fasta"
	"contigsampler/core/sampler"
)

// Sampler is the minimal capability the pipeline needs.
// Any sampler (including fakes in tests) can satisfy this.
type Sampler interface {
	Sample(ctx context.Context, g *fasta.Genome, label string, target int, rng *rand.Rand) sampler.Result
}

// Loader reads one genome file. Implementations report unreadable files
// themselves and return an empty genome.
type Loader func(ctx context.Context, path string) *fasta.Genome
