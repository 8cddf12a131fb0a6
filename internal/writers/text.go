// internal/writers/text.go
package writers

import (
	"bufio"
	"io"

	"github.com/golang/snappy"

	"contigsampler/core/sampler"
	"contigsampler/internal/output"
)

func init() {
	Register(FormatTSV, func(w io.Writer) Encoder { return newTSVEncoder(w, nil) })
	Register(FormatTSVSnappy, func(w io.Writer) Encoder {
		sw := snappy.NewBufferedWriter(w)
		return newTSVEncoder(sw, sw)
	})
	Register(FormatFASTA, func(w io.Writer) Encoder {
		return &fastaEncoder{bw: bufio.NewWriterSize(w, 64<<10)}
	})
}

// tsvEncoder writes the header lazily so an encoder that receives no rows
// still produces a valid (header-only) table on Close.
type tsvEncoder struct {
	bw          *bufio.Writer
	inner       io.Closer // snappy framing, finalized after the bufio flush
	wroteHeader bool
}

func newTSVEncoder(w io.Writer, inner io.Closer) *tsvEncoder {
	return &tsvEncoder{bw: bufio.NewWriterSize(w, 64<<10), inner: inner}
}

func (e *tsvEncoder) header() error {
	if e.wroteHeader {
		return nil
	}
	e.wroteHeader = true
	return output.WriteTSVHeader(e.bw)
}

func (e *tsvEncoder) Write(c sampler.Contig) error {
	if err := e.header(); err != nil {
		return err
	}
	return output.WriteTSVRow(e.bw, c)
}

func (e *tsvEncoder) Close() error {
	if err := e.header(); err != nil {
		return err
	}
	if err := e.bw.Flush(); err != nil {
		return err
	}
	if e.inner != nil {
		return e.inner.Close()
	}
	return nil
}

type fastaEncoder struct {
	bw *bufio.Writer
}

func (e *fastaEncoder) Write(c sampler.Contig) error { return output.WriteFASTARecord(e.bw, c) }
func (e *fastaEncoder) Close() error                 { return e.bw.Flush() }
