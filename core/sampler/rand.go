// core/sampler/rand.go
package sampler

import "math/rand/v2"

// stream selector of the process-level generator; any fixed value works,
// it only has to stay the same between runs
const seedStreamInc = 0x9e3779b97f4a7c15

// SeedStream derives one independent generator per genome from a single
// process seed. Next must be called in a fixed order (manifest order) for
// runs to be reproducible; it is not safe for concurrent use.
type SeedStream struct {
	r *rand.Rand
}

func NewSeedStream(seed uint64) *SeedStream {
	return &SeedStream{r: rand.New(rand.NewPCG(seed, seedStreamInc))}
}

// Next returns the generator for the next genome.
func (s *SeedStream) Next() *rand.Rand {
	return rand.New(rand.NewPCG(s.r.Uint64(), s.r.Uint64()))
}
