// pkg/api/contigs_v1.go
package api

// ContigV1 is the stable row schema of a dataset split, shared by the
// columnar (parquet) and JSONL outputs.
// Keep fields, names, and types stable. Add new fields only at the end.
type ContigV1 struct {
	Sequence      string `json:"sequence" parquet:"sequence"`
	Label         string `json:"label" parquet:"label,dict"`
	LocalFilePath string `json:"local_file_path" parquet:"local_file_path,dict"`
	Header        string `json:"header" parquet:"header,dict"`
	Start         int64  `json:"start" parquet:"start"`
	End           int64  `json:"end" parquet:"end"`
	Strand        string `json:"strand" parquet:"strand,dict"` // "+" | "-"
}
