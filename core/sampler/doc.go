// Package sampler draws fixed-length contigs from one genome under a
// coverage budget.
//
// A Session owns the probability maps of a single genome and runs attempts
// strictly one after another: every accepted contig decays the weights of
// the window it covered before the next position is drawn, so repeated
// draws drift away from regions that were already sampled. Sessions share
// nothing, which is what lets the pipeline run many genomes in parallel
// while each genome sees the same sequence of random draws.
package sampler
