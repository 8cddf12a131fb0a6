package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"contigsampler/internal/version"
)

// flagKeys binds persistent flags to configuration keys.
var flagKeys = map[string]string{
	"min-len":            "dataset.min_len",
	"max-len":            "dataset.max_len",
	"decay":              "dataset.decay",
	"coverage-train":     "dataset.coverage_train",
	"coverage-val":       "dataset.coverage_val",
	"attempt-multiplier": "dataset.attempt_multiplier",
	"target-basis":       "dataset.target_basis",
	"label-column":       "dataset.label_column",
	"seed":               "process.seed",
	"threads":            "process.threads",
	"manifest":           "paths.manifest",
	"out-train":          "paths.out_train",
	"out-val":            "paths.out_val",
	"format":             "output.format",
	"checksum":           "output.checksum",
	"progress":           "output.progress",
	"log-level":          "log.level",
	"log-format":         "log.format",
	"log-file":           "log.file",
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:   "contigsampler",
		Short: "Sample labeled contigs from genome assemblies under a coverage budget",
		Long: `Build a machine-learning corpus of fixed-length contigs drawn from a manifest
of genome assemblies. Positions already covered by a sampled contig are down-weighted
so repeated draws spread over the genome; windows containing N are never emitted.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	v := e.v
	pf := root.PersistentFlags()
	pf.StringVarP(&e.cfgFile, "config", "c", "", "YAML/TOML/JSON settings file")
	pf.BoolVarP(&e.quiet, "quiet", "q", false, "only log errors")

	pf.Int("min-len", v.GetInt("dataset.min_len"), "minimum contig length (bp)")
	pf.Int("max-len", v.GetInt("dataset.max_len"), "maximum contig length (bp)")
	pf.Float64("decay", v.GetFloat64("dataset.decay"), "weight multiplier for sampled positions, in (0,1]")
	pf.Float64("coverage-train", v.GetFloat64("dataset.coverage_train"), "training coverage multiple of the largest genome")
	pf.Float64("coverage-val", v.GetFloat64("dataset.coverage_val"), "validation coverage multiple of the largest genome")
	pf.Int("attempt-multiplier", v.GetInt("dataset.attempt_multiplier"), "attempts per genome = target × this")
	pf.String("target-basis", v.GetString("dataset.target_basis"), "genome size behind contig targets: global | genome")
	pf.String("label-column", v.GetString("dataset.label_column"), "manifest column used as label")
	pf.Uint64("seed", v.GetUint64("process.seed"), "random seed")
	pf.IntP("threads", "t", v.GetInt("process.threads"), "worker goroutines (0 = all CPUs)")
	pf.StringP("manifest", "m", v.GetString("paths.manifest"), "manifest CSV")
	pf.String("out-train", v.GetString("paths.out_train"), "training split output")
	pf.String("out-val", v.GetString("paths.out_val"), "validation split output")
	pf.StringP("format", "f", v.GetString("output.format"), "dataset format: parquet | tsv | tsv.sz | fasta | jsonl")
	pf.Bool("checksum", v.GetBool("output.checksum"), "write a BLAKE2b-256 digest next to each output")
	pf.Bool("progress", v.GetBool("output.progress"), "show a progress bar per split")
	pf.String("log-level", v.GetString("log.level"), "log level: debug | info | warn | error")
	pf.String("log-format", v.GetString("log.format"), "log format: text | json")
	pf.String("log-file", v.GetString("log.file"), "also append logs to this file")

	bindFlags(e, pf)

	root.AddCommand(newGenerateCmd(e), newPlanCmd(e), newSampleCmd(e), newVersionCmd())
	return root
}

func bindFlags(e *env, fs *pflag.FlagSet) {
	for name, key := range flagKeys {
		// Lookup cannot fail: every name above is registered in newRootCmd
		_ = e.v.BindPFlag(key, fs.Lookup(name))
	}
}
