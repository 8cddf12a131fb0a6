package app

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"contigsampler/internal/appcore"
	"contigsampler/internal/manifest"
)

func newPlanCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:               "plan",
		Short:             "Print the contig targets of each split without sampling",
		Args:              cobra.NoArgs,
		PersistentPreRunE: e.needsSetup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := manifest.Load(e.cfg.Paths.Manifest, e.cfg.Dataset.LabelColumn)
			if err != nil {
				return usageErr(err)
			}
			p := appcore.NewPlan(e.cfg, m)

			tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "genomes\t%d\n", p.Genomes)
			fmt.Fprintf(tw, "max_genome_size\t%d\n", p.MaxGenomeSize)
			fmt.Fprintf(tw, "expected_contig_len\t%.1f\n", p.ExpectedContigLen)
			fmt.Fprintf(tw, "target_basis\t%s\n", p.Basis)
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "split\tcoverage\tseed\tper_genome\trequested\tout")
			for _, s := range p.Splits {
				fmt.Fprintf(tw, "%s\t%g\t%d\t%d\t%d\t%s\n", s.Name, s.Coverage, s.Seed, s.PerGenome, s.Requested, s.Out)
			}
			if err := tw.Flush(); err != nil {
				return runtimeErr(err)
			}
			return nil
		},
	}
}
