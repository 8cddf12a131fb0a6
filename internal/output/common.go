// internal/output/common.go
package output

import (
	"contigsampler/core/sampler"
	"contigsampler/pkg/api"
)

// TSVHeader is the canonical header row for TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "sequence\tlabel\tlocal_file_path\theader\tstart\tend\tstrand"

// ToAPIContig converts a sampled contig to the stable row schema (v1).
func ToAPIContig(c sampler.Contig) api.ContigV1 {
	return api.ContigV1{
		Sequence:      c.Sequence,
		Label:         c.Label,
		LocalFilePath: c.Path,
		Header:        c.Header,
		Start:         int64(c.Start),
		End:           int64(c.End),
		Strand:        c.Strand,
	}
}
