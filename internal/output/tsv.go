// internal/output/tsv.go
package output

import (
	"fmt"
	"io"
	"strings"

	"contigsampler/core/sampler"
)

// tsvField keeps free-text fields (labels, paths) from breaking the row.
var tsvField = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

// WriteTSVHeader writes TSVHeader and a newline.
func WriteTSVHeader(w io.Writer) error {
	_, err := fmt.Fprintln(w, TSVHeader)
	return err
}

// WriteTSVRow writes one contig as a tab-delimited row in TSVHeader order.
func WriteTSVRow(w io.Writer, c sampler.Contig) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
		c.Sequence, tsvField.Replace(c.Label), tsvField.Replace(c.Path), c.Header,
		c.Start, c.End, c.Strand,
	)
	return err
}

