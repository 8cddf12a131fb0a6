// internal/writers/parquet.go
package writers

import (
	"io"

	"github.com/parquet-go/parquet-go"

	"contigsampler/core/sampler"
	"contigsampler/internal/output"
	"contigsampler/pkg/api"
)

// parquetBatch is the number of rows handed to the parquet writer at once.
const parquetBatch = 1024

func init() {
	Register(FormatParquet, func(w io.Writer) Encoder {
		return &parquetEncoder{
			pw:  parquet.NewGenericWriter[api.ContigV1](w, parquet.Compression(&parquet.Snappy)),
			buf: make([]api.ContigV1, 0, parquetBatch),
		}
	})
}

type parquetEncoder struct {
	pw  *parquet.GenericWriter[api.ContigV1]
	buf []api.ContigV1
}

func (e *parquetEncoder) flush() error {
	if len(e.buf) == 0 {
		return nil
	}
	_, err := e.pw.Write(e.buf)
	e.buf = e.buf[:0]
	return err
}

func (e *parquetEncoder) Write(c sampler.Contig) error {
	e.buf = append(e.buf, output.ToAPIContig(c))
	if len(e.buf) == cap(e.buf) {
		return e.flush()
	}
	return nil
}

func (e *parquetEncoder) Close() error {
	if err := e.flush(); err != nil {
		return err
	}
	return e.pw.Close()
}
