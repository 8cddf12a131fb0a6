// internal/writers/dataset.go
package writers

import (
	"io"

	"contigsampler/core/sampler"
)

// StartDatasetWriter spins up a writer goroutine that encodes every contig
// received on the returned channel in format. The error channel yields
// exactly one value after the input channel is closed: the first encode or
// finalize error, or nil. After an error the goroutine keeps draining the
// input so senders never block.
func StartDatasetWriter(out io.Writer, format string, bufSize int) (chan<- sampler.Contig, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan sampler.Contig, bufSize)
	errCh := make(chan error, 1)

	enc, err := NewEncoder(format, out)
	go func() {
		if err != nil {
			for range in {
			}
			errCh <- err
			return
		}
		var werr error
		for c := range in {
			if werr != nil {
				continue
			}
			werr = enc.Write(c)
		}
		if cerr := enc.Close(); werr == nil {
			werr = cerr
		}
		errCh <- werr
	}()

	return in, errCh
}
