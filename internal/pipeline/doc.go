// Package pipeline fans the contig sampler out over the genomes of a
// manifest and hands per-genome results back in manifest order.
//
// The only contract to implement is Sampler (Sample).
// This keeps the pipeline swappable and testable.
package pipeline
