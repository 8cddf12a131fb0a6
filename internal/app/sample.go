package app

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"contigsampler/core/fasta"
	"contigsampler/core/sampler"
	"contigsampler/internal/writers"
)

func newSampleCmd(e *env) *cobra.Command {
	var (
		contigs int
		label   string
	)
	cmd := &cobra.Command{
		Use:   "sample <genome.fna.gz>",
		Short: "Sample contigs from one genome and write them to stdout",
		Long: `Sample a single genome with the configured lengths, decay and seed.
Output is TSV unless --format is given explicitly.`,
		Example:           `  contigsampler sample GCF_000005845.2.fna.gz --contigs 20 --label "Escherichia coli"`,
		Args:              cobra.ExactArgs(1),
		PersistentPreRunE: e.needsSetup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if contigs < 0 {
				return usageErr(errors.Errorf("--contigs must be >= 0, got %d", contigs))
			}
			format := writers.FormatTSV
			if cmd.Flags().Changed("format") {
				format = e.cfg.Output.Format
			}
			path := args[0]
			log := e.log.WithField("path", path)

			g, err := fasta.Load(cmd.Context(), path)
			if err != nil {
				return runtimeErr(err)
			}
			smp, err := sampler.New(e.cfg.Sampler(), log)
			if err != nil {
				return usageErr(err)
			}
			rng := sampler.NewSeedStream(e.cfg.Process.Seed).Next()
			res := smp.Sample(cmd.Context(), g, label, contigs, rng)
			if err := cmd.Context().Err(); err != nil {
				return err
			}

			enc, err := writers.NewEncoder(format, e.stdout)
			if err != nil {
				return usageErr(err)
			}
			for _, c := range res.Contigs {
				if err := enc.Write(c); err != nil {
					return writeErr(err)
				}
			}
			if err := enc.Close(); err != nil {
				return writeErr(err)
			}
			log.WithFields(logrus.Fields{
				"contigs":   len(res.Contigs),
				"requested": contigs,
				"attempts":  res.Attempts,
			}).Debug("genome sampled")
			return nil
		},
	}
	cmd.Flags().IntVarP(&contigs, "contigs", "n", 10, "number of contigs to draw")
	cmd.Flags().StringVarP(&label, "label", "l", "", "label written on every contig")
	return cmd
}

// writeErr treats a closed stdout (e.g. piped into head) as success.
func writeErr(err error) error {
	if writers.IsBrokenPipe(err) {
		return nil
	}
	return runtimeErr(err)
}
