// core/fasta/stream.go
package fasta

import (
	"bytes"
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

// Record is one parsed FASTA sequence. Seq is owned by the caller.
type Record struct {
	ID  string
	Seq []byte
}

// Alphabet is the residue set accepted when parsing genome files. Residues
// are not validated: odd letters (X, U, *) stay in the sequence and only
// windows containing N are rejected later, at sampling time.
var Alphabet = seq.Unlimit

// Stream opens path (plain or gzip-compressed, "-" for stdin), scans FASTA
// records and calls emit for each one in file order. The sequence ID is the
// first whitespace-delimited token of the header with '>' stripped; wrapped
// sequence lines are concatenated.
//
// ctx is checked between records. Return a non-nil error from emit to stop early.
func Stream(ctx context.Context, path string, emit func(Record) error) error {
	r, err := fastx.NewReader(Alphabet, path, "")
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer r.Close()

	for n := 0; ; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrapf(err, "read record %d of %s", n+1, path)
		}
		// the reader may reuse its buffers between reads
		out := Record{
			ID:  string(rec.ID),
			Seq: bytes.Clone(rec.Seq.Seq),
		}
		if err := emit(out); err != nil {
			return err
		}
	}
}
