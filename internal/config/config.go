// Package config is for run wide settings that are unmarshalled
// from Viper (see: internal/app)
package config

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"contigsampler/core/sampler"
	"contigsampler/internal/manifest"
	"contigsampler/internal/writers"
)

// EnvPrefix is prepended to environment overrides, e.g.
// CONTIGSAMPLER_DATASET_MIN_LEN=300.
const EnvPrefix = "CONTIGSAMPLER"

// Target bases for the per-genome contig count.
const (
	// TargetGlobal applies the largest manifest genome size to every genome.
	TargetGlobal = "global"
	// TargetGenome uses each genome's own size.
	TargetGenome = "genome"
)

// DatasetConfig controls contig lengths, decay and coverage.
type DatasetConfig struct {
	MinLen            int     `mapstructure:"min_len"`
	MaxLen            int     `mapstructure:"max_len"`
	Decay             float64 `mapstructure:"decay"`
	CoverageTrain     float64 `mapstructure:"coverage_train"`
	CoverageVal       float64 `mapstructure:"coverage_val"`
	AttemptMultiplier int     `mapstructure:"attempt_multiplier"`
	TargetBasis       string  `mapstructure:"target_basis"`
	LabelColumn       string  `mapstructure:"label_column"`
}

// ProcessConfig holds the seed and worker count.
type ProcessConfig struct {
	Seed    uint64 `mapstructure:"seed"`
	Threads int    `mapstructure:"threads"`
}

// PathsConfig is where the manifest is read and the splits are written.
type PathsConfig struct {
	Manifest string `mapstructure:"manifest"`
	OutTrain string `mapstructure:"out_train"`
	OutVal   string `mapstructure:"out_val"`
}

// OutputConfig selects the dataset format.
type OutputConfig struct {
	Format   string `mapstructure:"format"`
	Checksum bool   `mapstructure:"checksum"`
	Progress bool   `mapstructure:"progress"`
}

// LogConfig configures logrus.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Config is the root-level settings struct and is a mix of settings
// available in a YAML file, the environment and the command line.
type Config struct {
	Dataset DatasetConfig `mapstructure:"dataset"`
	Process ProcessConfig `mapstructure:"process"`
	Paths   PathsConfig   `mapstructure:"paths"`
	Output  OutputConfig  `mapstructure:"output"`
	Log     LogConfig     `mapstructure:"log"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("dataset.min_len", 500)
	v.SetDefault("dataset.max_len", 2000)
	v.SetDefault("dataset.decay", 0.1)
	v.SetDefault("dataset.coverage_train", 10.0)
	v.SetDefault("dataset.coverage_val", 1.0)
	v.SetDefault("dataset.attempt_multiplier", sampler.DefaultAttemptMultiplier)
	v.SetDefault("dataset.target_basis", TargetGlobal)
	v.SetDefault("dataset.label_column", manifest.DefaultLabelColumn)

	v.SetDefault("process.seed", 42)
	v.SetDefault("process.threads", 0)

	v.SetDefault("paths.manifest", "manifest.csv")
	v.SetDefault("paths.out_train", "train.parquet")
	v.SetDefault("paths.out_val", "val.parquet")

	v.SetDefault("output.format", writers.FormatParquet)
	v.SetDefault("output.checksum", false)
	v.SetDefault("output.progress", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
}

// New returns a viper instance with defaults and environment overrides.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads file (if set) into v, then unmarshals and validates.
func Load(v *viper.Viper, file string) (Config, error) {
	var c Config
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return c, errors.Wrapf(err, "read config %s", file)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, errors.Wrap(err, "decode config")
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Sampler returns the sampling parameters.
func (c Config) Sampler() sampler.Config {
	return sampler.Config{
		MinLen:            c.Dataset.MinLen,
		MaxLen:            c.Dataset.MaxLen,
		Decay:             c.Dataset.Decay,
		AttemptMultiplier: c.Dataset.AttemptMultiplier,
	}
}

// Validate reports the first invalid setting. These are the only errors
// that stop a run before any genome is read.
func (c Config) Validate() error {
	if err := c.Sampler().Validate(); err != nil {
		return errors.Wrap(err, "dataset")
	}
	d := c.Dataset
	if err := checkCoverage("coverage_train", d.CoverageTrain); err != nil {
		return err
	}
	if err := checkCoverage("coverage_val", d.CoverageVal); err != nil {
		return err
	}
	switch d.TargetBasis {
	case TargetGlobal, TargetGenome:
	default:
		return errors.Errorf("dataset: target_basis must be %q or %q, got %q", TargetGlobal, TargetGenome, d.TargetBasis)
	}
	if d.LabelColumn == "" {
		return errors.New("dataset: label_column is empty")
	}
	if c.Process.Threads < 0 {
		return errors.Errorf("process: threads must be >= 0, got %d", c.Process.Threads)
	}
	if !writers.Known(c.Output.Format) {
		return errors.Errorf("output: unknown format %q (known: %s)", c.Output.Format, strings.Join(writers.Formats(), ", "))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Errorf("log: format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

func checkCoverage(name string, cov float64) error {
	if math.IsNaN(cov) || math.IsInf(cov, 0) || cov < 0 {
		return errors.Errorf("dataset: %s must be a finite value >= 0, got %v", name, cov)
	}
	return nil
}
