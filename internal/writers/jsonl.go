// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"

	"contigsampler/core/sampler"
	"contigsampler/internal/output"
)

func init() {
	Register(FormatJSONL, func(w io.Writer) Encoder {
		bw := bufio.NewWriterSize(w, 64<<10)
		return &jsonlEncoder{bw: bw, enc: json.NewEncoder(bw)}
	})
}

// jsonlEncoder streams each contig as one JSON line (v1).
type jsonlEncoder struct {
	bw  *bufio.Writer
	enc *json.Encoder
}

func (e *jsonlEncoder) Write(c sampler.Contig) error { return e.enc.Encode(output.ToAPIContig(c)) }
func (e *jsonlEncoder) Close() error                 { return e.bw.Flush() }
