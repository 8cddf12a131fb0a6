package app

import (
	"github.com/spf13/cobra"

	"contigsampler/internal/appcore"
	"contigsampler/internal/manifest"
)

func newGenerateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Sample the train and validation datasets",
		Example: `  contigsampler generate --config dataset.yaml
  contigsampler generate -m manifest.csv --format tsv.sz --out-train train.tsv.sz --out-val val.tsv.sz`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: e.needsSetup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := manifest.Load(e.cfg.Paths.Manifest, e.cfg.Dataset.LabelColumn)
			if err != nil {
				return usageErr(err)
			}
			r := &appcore.Runner{Config: e.cfg, Log: e.log}
			if e.cfg.Output.Progress && !e.quiet {
				r.Progress = e.stderr
			}
			if _, err := r.Generate(cmd.Context(), m); err != nil {
				return runtimeErr(err)
			}
			return nil
		},
	}
}
