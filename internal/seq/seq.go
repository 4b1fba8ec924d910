// Package seq has primitives shared by every analysis in the app:
// DNA to RNA normalization and the Watson-Crick pairing predicate
package seq

// Normalize converts a DNA sequence to its RNA alphabet by replacing
// every thymine with uracil. Case is preserved and every other
// character passes through untouched: validation is deliberately not
// this layer's job (see CanPair)
func Normalize(dna string) string {
	out := []byte(dna)
	for i := 0; i < len(out); i++ {
		switch out[i] {
		case 'T':
			out[i] = 'U'
		case 't':
			out[i] = 'u'
		}
	}
	return string(out)
}

// CanPair returns whether two bases are Watson-Crick complements
// under the RNA alphabet (A-U, G-C). It's case-insensitive and total:
// ambiguous or malformed symbols simply return false, they're never
// an error
func CanPair(a, b byte) bool {
	a = upper(a)
	b = upper(b)

	switch a {
	case 'A':
		return b == 'U'
	case 'U':
		return b == 'A'
	case 'G':
		return b == 'C'
	case 'C':
		return b == 'G'
	}
	return false
}

// IsNucleotide returns whether a character is one of the four
// unambiguous RNA/DNA bases. Used for CLI warnings only, the
// analyses themselves tolerate anything
func IsNucleotide(c byte) bool {
	switch upper(c) {
	case 'A', 'C', 'G', 'T', 'U':
		return true
	}
	return false
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
