// internal/appcore/plan.go
package appcore

import (
	"contigsampler/core/sampler"
	"contigsampler/internal/config"
	"contigsampler/internal/manifest"
	"contigsampler/internal/pipeline"
)

// Split is one output dataset (train, val).
type Split struct {
	Name     string
	Coverage float64
	Out      string
	Seed     uint64
}

// Splits returns the dataset splits in generation order. Each split gets
// its own seed so either can be regenerated alone.
func Splits(c config.Config) []Split {
	return []Split{
		{Name: "train", Coverage: c.Dataset.CoverageTrain, Out: c.Paths.OutTrain, Seed: c.Process.Seed},
		{Name: "val", Coverage: c.Dataset.CoverageVal, Out: c.Paths.OutVal, Seed: c.Process.Seed + 1},
	}
}

// Target is the contig count requested from a genome of size genomeSize.
// With the global basis every genome gets the target of the largest
// genome in the manifest.
func Target(c config.Config, m *manifest.Manifest, genomeSize int64, coverage float64) int {
	size := m.MaxGenomeSize()
	if c.Dataset.TargetBasis == config.TargetGenome {
		size = genomeSize
	}
	return sampler.NumContigs(size, coverage, c.Dataset.MinLen, c.Dataset.MaxLen)
}

// Tasks builds the pipeline tasks of one split in manifest order.
func Tasks(c config.Config, m *manifest.Manifest, coverage float64) []pipeline.Task {
	tasks := make([]pipeline.Task, 0, m.Len())
	for _, g := range m.Genomes {
		tasks = append(tasks, pipeline.Task{Genome: g, Target: Target(c, m, g.GenomeSize, coverage)})
	}
	return tasks
}

// SplitPlan is the requested volume of one split.
type SplitPlan struct {
	Split
	// PerGenome is the shared target under the global basis, 0 otherwise.
	PerGenome int
	Requested int
}

// Plan summarizes what a generate run would request.
type Plan struct {
	Genomes           int
	MaxGenomeSize     int64
	ExpectedContigLen float64
	Basis             string
	Splits            []SplitPlan
}

// NewPlan computes contig targets without reading any genome.
func NewPlan(c config.Config, m *manifest.Manifest) Plan {
	p := Plan{
		Genomes:           m.Len(),
		MaxGenomeSize:     m.MaxGenomeSize(),
		ExpectedContigLen: sampler.ExpectedContigLen(c.Dataset.MinLen, c.Dataset.MaxLen),
		Basis:             c.Dataset.TargetBasis,
	}
	for _, s := range Splits(c) {
		sp := SplitPlan{Split: s}
		for _, t := range Tasks(c, m, s.Coverage) {
			sp.Requested += t.Target
		}
		if c.Dataset.TargetBasis == config.TargetGlobal {
			sp.PerGenome = sampler.NumContigs(p.MaxGenomeSize, s.Coverage, c.Dataset.MinLen, c.Dataset.MaxLen)
		}
		p.Splits = append(p.Splits, sp)
	}
	return p
}
