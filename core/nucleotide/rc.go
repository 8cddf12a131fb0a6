// core/nucleotide/rc.go
package nucleotide

var complement [256]byte

func init() {
	pair := func(a, b byte) {
		complement[a], complement[b] = b, a
		la, lb := a|0x20, b|0x20
		complement[la], complement[lb] = lb, la
	}
	pair('A', 'T')
	pair('C', 'G')
	pair('R', 'Y')
	pair('K', 'M')
	pair('B', 'V')
	pair('D', 'H')
	pair('S', 'S')
	pair('W', 'W')
	pair('N', 'N')
	complement['-'] = '-'
	complement['.'] = '.'
}

// RevComp returns the reverse complement of seq. Case is preserved and
// IUPAC codes map to their complements; bytes outside the alphabet are
// copied through unchanged so that RevComp(RevComp(s)) == s for any s.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := seq[n-1-i]
		c := complement[b]
		if c == 0 {
			c = b
		}
		out[i] = c
	}
	return out
}

// HasAmbiguous reports whether seq contains an N in either case.
func HasAmbiguous(seq []byte) bool {
	for _, b := range seq {
		if b == 'N' || b == 'n' {
			return true
		}
	}
	return false
}
