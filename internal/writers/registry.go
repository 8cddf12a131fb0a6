// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"contigsampler/core/sampler"
)

// Format names.
const (
	FormatParquet   = "parquet"
	FormatTSV       = "tsv"
	FormatTSVSnappy = "tsv.sz"
	FormatFASTA     = "fasta"
	FormatJSONL     = "jsonl"
)

// Encoder writes contigs in one format. Close flushes buffered data and
// finalizes the format (footers, frames) but never closes the underlying
// writer.
type Encoder interface {
	Write(sampler.Contig) error
	Close() error
}

// encoders maps format → constructor. Register in init() blocks.
var encoders = map[string]func(io.Writer) Encoder{}

// Register adds a format (idempotent, last wins).
func Register(format string, fn func(io.Writer) Encoder) { encoders[format] = fn }

// Known reports whether format has a registered encoder.
func Known(format string) bool {
	_, ok := encoders[format]
	return ok
}

// Formats lists registered formats in name order.
func Formats() []string {
	out := make([]string, 0, len(encoders))
	for f := range encoders {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// NewEncoder returns the encoder for format writing to w.
func NewEncoder(format string, w io.Writer) (Encoder, error) {
	fn, ok := encoders[format]
	if !ok {
		return nil, fmt.Errorf("unknown dataset format %q (no writer registered)", format)
	}
	return fn(w), nil
}
