// core/sampler/coverage.go
package sampler

// ExpectedContigLen is the mean of the uniform length distribution.
func ExpectedContigLen(minLen, maxLen int) float64 {
	return float64(minLen+maxLen) / 2
}

// NumContigs converts a coverage multiple of genomeSize into a contig
// count: floor(genomeSize*coverage / expected contig length).
//
// Dataset generation passes the largest genome size of the whole manifest
// here, so every genome gets the same absolute target and the attempt
// budget caps what small genomes can deliver.
func NumContigs(genomeSize int64, coverage float64, minLen, maxLen int) int {
	exp := ExpectedContigLen(minLen, maxLen)
	if exp <= 0 || genomeSize <= 0 || coverage <= 0 {
		return 0
	}
	return int(float64(genomeSize) * coverage / exp)
}
