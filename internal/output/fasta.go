// internal/output/fasta.go
package output

import (
	"fmt"
	"io"

	"contigsampler/core/sampler"
)

// WriteFASTARecord writes one contig as a FASTA record. The ID encodes the
// source coordinates; label and file travel in the description.
func WriteFASTARecord(w io.Writer, c sampler.Contig) error {
	_, err := fmt.Fprintf(
		w,
		">%s:%d-%d(%s) len=%d label=%q source_file=%s\n%s\n",
		c.Header, c.Start, c.End, c.Strand, c.Len(), c.Label, c.Path, c.Sequence,
	)
	return err
}

