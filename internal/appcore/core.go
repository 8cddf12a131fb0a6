// internal/appcore/core.go
package appcore

import (
	"context"
	"io"
	"runtime"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"contigsampler/core/fasta"
	"contigsampler/core/sampler"
	"contigsampler/internal/config"
	"contigsampler/internal/manifest"
	"contigsampler/internal/pipeline"
	"contigsampler/internal/progress"
	"contigsampler/internal/writers"
)

// Summary reports one generated split.
type Summary struct {
	Split     string
	Out       string
	Genomes   int
	Requested int
	Contigs   int
	Attempts  int
	Exhausted int // genomes that ran out of attempts
	Failed    int // genomes whose sampling panicked
	MeanLen   float64
	Digest    string
}

// Runner generates dataset splits for one configuration.
type Runner struct {
	Config   config.Config
	Log      *logrus.Logger
	Progress io.Writer // nil disables progress bars
}

func (r *Runner) threads() int {
	if r.Config.Process.Threads > 0 {
		return r.Config.Process.Threads
	}
	return runtime.NumCPU()
}

// Generate writes every split for the genomes of m.
func (r *Runner) Generate(ctx context.Context, m *manifest.Manifest) ([]Summary, error) {
	r.Log.WithFields(logrus.Fields{
		"genomes":         m.Len(),
		"max_genome_size": m.MaxGenomeSize(),
	}).Info("manifest loaded")

	smp, err := sampler.New(r.Config.Sampler(), r.Log)
	if err != nil {
		return nil, err
	}

	var out []Summary
	for _, s := range Splits(r.Config) {
		sum, err := r.RunSplit(ctx, m, smp, s)
		if err != nil {
			return out, errors.Wrapf(err, "%s split", s.Name)
		}
		out = append(out, sum)
	}
	return out, nil
}

// RunSplit samples every manifest genome for split s and writes the table.
func (r *Runner) RunSplit(ctx context.Context, m *manifest.Manifest, smp pipeline.Sampler, s Split) (Summary, error) {
	log := r.Log.WithField("split", s.Name)
	tasks := Tasks(r.Config, m, s.Coverage)
	sum := Summary{Split: s.Name, Out: s.Out, Genomes: len(tasks)}
	for _, t := range tasks {
		sum.Requested += t.Target
	}
	log.WithFields(logrus.Fields{"requested": sum.Requested, "out": s.Out}).Info("generating dataset")

	f, err := writers.Create(s.Out, r.Config.Output.Checksum)
	if err != nil {
		return sum, err
	}
	inCh, writeErr := writers.StartDatasetWriter(f, r.Config.Output.Format, r.threads()*64)

	var bar *progress.Bar
	if r.Progress != nil {
		bar = progress.New(r.Progress, s.Name, len(tasks))
	}

	var lengths []float64
	load := func(ctx context.Context, path string) *fasta.Genome {
		return fasta.LoadOrEmpty(ctx, path, log)
	}
	perr := pipeline.ForEachGenome(ctx,
		pipeline.Config{Threads: r.threads(), Seed: s.Seed},
		tasks, smp, load, log,
		func(gr pipeline.GenomeResult) error {
			bar.Increment()
			sum.Attempts += gr.Result.Attempts
			if gr.Result.Exhausted {
				sum.Exhausted++
			}
			if gr.Err != nil {
				sum.Failed++
			}
			for _, c := range gr.Result.Contigs {
				select {
				case inCh <- c:
				case <-ctx.Done():
					return ctx.Err()
				}
				lengths = append(lengths, float64(c.Len()))
			}
			return nil
		},
	)
	close(inCh)
	bar.Wait()

	werr := <-writeErr
	if perr != nil || werr != nil {
		// an incomplete table must not look like a finished one
		if aerr := f.Abort(); aerr != nil {
			log.WithError(aerr).Warn("partial output left behind")
		}
		if perr != nil {
			return sum, perr
		}
		return sum, errors.Wrap(werr, "write dataset")
	}
	if err := f.Close(); err != nil {
		return sum, err
	}

	sum.Contigs = len(lengths)
	if len(lengths) > 0 {
		sum.MeanLen = stat.Mean(lengths, nil)
	}
	sum.Digest = f.Digest()
	log.WithFields(logrus.Fields{
		"contigs":   sum.Contigs,
		"requested": sum.Requested,
		"exhausted": sum.Exhausted,
		"failed":    sum.Failed,
		"mean_len":  sum.MeanLen,
		"out":       s.Out,
		"blake2b":   sum.Digest,
	}).Info("dataset saved")
	return sum, nil
}
