// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"contigsampler/core/sampler"
	"contigsampler/internal/manifest"
)

// Config controls the genome fan-out.
type Config struct {
	Threads int    // number of worker goroutines (>=1)
	Seed    uint64 // process seed; each genome gets its own generator from it
}

// Task is one unit of work: sample Target contigs from Genome.
type Task struct {
	Genome manifest.Genome
	Target int
}

// GenomeResult is what one task produced. Err is set only when sampling
// the genome panicked; the genome then contributes no contigs.
type GenomeResult struct {
	Index  int
	Task   Task
	Result sampler.Result
	Err    error
}

type job struct {
	idx  int
	task Task
	rng  *rand.Rand
}

// ForEachGenome samples every task and calls visit once per task, in task
// order, from a single goroutine. Generators are derived from cfg.Seed in
// task order before dispatch, so the output does not depend on
// cfg.Threads. A failure inside one genome never stops the batch; the
// first visit error or context cancellation does and is returned.
func ForEachGenome(
	parent context.Context,
	cfg Config,
	tasks []Task,
	smp Sampler,
	load Loader,
	log logrus.FieldLogger,
	visit func(GenomeResult) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan GenomeResult, cfg.Threads*2)

	// Feed work; generator order is task order.
	g.Go(func() error {
		defer close(jobs)
		seeds := sampler.NewSeedStream(cfg.Seed)
		for i, t := range tasks {
			select {
			case jobs <- job{idx: i, task: t, rng: seeds.Next()}:
			case <-gctx.Done():
				return nil
			}
		}
		return nil
	})

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		g.Go(func() error {
			defer wg.Done()
			for j := range jobs {
				r := runOne(gctx, j, smp, load, log)
				select {
				case results <- r:
				case <-gctx.Done():
					return nil
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector: restore task order.
	g.Go(func() error {
		var (
			verr    error
			next    int
			pending = make(map[int]GenomeResult)
		)
		for r := range results {
			if verr != nil {
				continue
			}
			pending[r.Index] = r
			for {
				pr, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if err := visit(pr); err != nil {
					verr = err
					cancel()
					break
				}
			}
		}
		return verr
	})

	err := g.Wait()
	if parent.Err() != nil {
		return parent.Err()
	}
	return err
}

// runOne loads and samples one genome, containing any panic to that genome.
func runOne(ctx context.Context, j job, smp Sampler, load Loader, log logrus.FieldLogger) (out GenomeResult) {
	out = GenomeResult{Index: j.idx, Task: j.task, Result: sampler.Result{Requested: j.task.Target}}
	glog := log.WithFields(logrus.Fields{"accession": j.task.Genome.Accession, "path": j.task.Genome.Path})
	defer func() {
		if p := recover(); p != nil {
			out.Result = sampler.Result{Requested: j.task.Target}
			out.Err = fmt.Errorf("sampling %s panicked: %v", j.task.Genome.Accession, p)
			glog.WithError(out.Err).Error("genome skipped")
		}
	}()
	if ctx.Err() != nil {
		return out
	}
	genome := load(ctx, j.task.Genome.Path)
	out.Result = smp.Sample(ctx, genome, j.task.Genome.Label, j.task.Target, j.rng)
	glog.WithFields(logrus.Fields{
		"contigs":  len(out.Result.Contigs),
		"attempts": out.Result.Attempts,
	}).Debug("genome sampled")
	return out
}
