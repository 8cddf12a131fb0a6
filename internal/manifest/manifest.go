// Package manifest reads the table of genomes eligible for dataset
// generation.
package manifest

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shenwei356/util/pathutil"
)

// Required column names.
const (
	ColAccession  = "accession"
	ColPath       = "local_file_path"
	ColGenomeSize = "genome_size"

	DefaultLabelColumn = "species"
)

// Genome is one manifest row.
type Genome struct {
	Accession  string
	Path       string
	Label      string
	GenomeSize int64
}

// Manifest is the ordered list of genomes.
type Manifest struct {
	Genomes []Genome
}

// Len returns the number of genomes.
func (m *Manifest) Len() int { return len(m.Genomes) }

// MaxGenomeSize is the largest genome size in the manifest; it is the basis
// of the per-genome contig target.
func (m *Manifest) MaxGenomeSize() int64 {
	var max int64
	for _, g := range m.Genomes {
		if g.GenomeSize > max {
			max = g.GenomeSize
		}
	}
	return max
}

// Load reads the CSV manifest at path. labelColumn selects the label; an
// empty value means DefaultLabelColumn.
func Load(path, labelColumn string) (*Manifest, error) {
	ok, err := pathutil.Exists(path)
	if err != nil {
		return nil, errors.Wrapf(err, "check manifest %s", path)
	}
	if !ok {
		return nil, errors.Errorf("manifest not found: %s", path)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open manifest")
	}
	defer fh.Close()

	m, err := Read(fh, labelColumn)
	if err != nil {
		return nil, errors.Wrapf(err, "manifest %s", path)
	}
	return m, nil
}

// Read parses a CSV manifest with a header row. Extra columns are ignored.
func Read(r io.Reader, labelColumn string) (*Manifest, error) {
	if labelColumn == "" {
		labelColumn = DefaultLabelColumn
	}
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.New("empty manifest")
		}
		return nil, errors.Wrap(err, "read header")
	}
	idx := map[string]int{}
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	col := func(name string) (int, error) {
		i, ok := idx[name]
		if !ok {
			return 0, errors.Errorf("missing column %q", name)
		}
		return i, nil
	}
	iAcc, err := col(ColAccession)
	if err != nil {
		return nil, err
	}
	iPath, err := col(ColPath)
	if err != nil {
		return nil, err
	}
	iSize, err := col(ColGenomeSize)
	if err != nil {
		return nil, err
	}
	iLabel, err := col(labelColumn)
	if err != nil {
		return nil, err
	}

	m := &Manifest{}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		size, err := parseSize(rec[iSize])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: %s", line, ColGenomeSize)
		}
		m.Genomes = append(m.Genomes, Genome{
			Accession:  rec[iAcc],
			Path:       rec[iPath],
			Label:      rec[iLabel],
			GenomeSize: size,
		})
	}
	return m, nil
}

// parseSize accepts integers and integral floats ("4641652.0"), which is how
// dataframe tools often write integer columns that once held missing values.
func parseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 0 {
			return 0, errors.Errorf("negative size %d", n)
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, errors.Errorf("invalid size %q", s)
	}
	return int64(f), nil
}
