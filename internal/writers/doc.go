// Package writers serializes sampled contigs into dataset files.
//
// Every format is an Encoder registered under a name; StartDatasetWriter
// runs one encoder on its own goroutine fed through a channel, so the
// pipeline never blocks on output formatting. Row-oriented text formats go
// through internal/output, structured formats through pkg/api (v1).
package writers
