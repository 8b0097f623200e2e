package securerand

const (
	// DefaultAlphabet is the 64-symbol alphabet used by String. Its size
	// divides 256 evenly, so every symbol receives identical probability.
	DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"

	// AlphanumericAlphabet holds the 62 letters and digits.
	AlphanumericAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// HexAlphabet holds the 16 lowercase hexadecimal digits.
	HexAlphabet = "0123456789abcdef"
)

// maxAlphabetSize is the ceiling on sampling-alphabet length: each output
// symbol is chosen by a single byte draw, so indexes past 255 would be
// unreachable.
const maxAlphabetSize = 256

// dedupRunes returns the distinct runes of s in first-occurrence order.
func dedupRunes(s string) []rune {
	seen := make(map[rune]struct{}, len(s))
	distinct := make([]rune, 0, len(s))
	for _, r := range s {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		distinct = append(distinct, r)
	}
	return distinct
}

// normalizeAlphabet validates charset and returns the alphabet to sample
// from. The two-distinct-symbol floor is evaluated against the distinct set
// whether or not duplicates are removed: removeDuplicates only controls
// whether multiplicities survive into the sampling alphabet, where a
// repeated symbol receives proportionally more probability mass.
func normalizeAlphabet(charset string, removeDuplicates bool) ([]rune, error) {
	distinct := dedupRunes(charset)
	if len(distinct) < 2 {
		return nil, ErrInvalidAlphabet
	}
	alphabet := distinct
	if !removeDuplicates {
		alphabet = []rune(charset)
	}
	if len(alphabet) > maxAlphabetSize {
		return nil, ErrAlphabetTooLarge
	}
	return alphabet, nil
}

// assembleLocked builds a string of length symbols by drawing one fresh byte
// per position and reducing it modulo the alphabet size. The reduction is a
// direct modulo, not rejection-sampled: when the size does not divide 256
// some symbols are chosen with probability ceil(256/size)/256 instead of
// floor(256/size)/256, which is the skew the advisory in StringFrom reports.
// Caller must hold g.mu.
func (g *Generator) assembleLocked(length int, alphabet []rune) (string, error) {
	size := len(alphabet)
	out := make([]rune, 0, length)
	for i := 0; i < length; i++ {
		if err := g.buf.ensure(1, g.source); err != nil {
			return "", err
		}
		b := g.buf.consume(1)[0]
		out = append(out, alphabet[int(b)%size])
	}
	return string(out), nil
}
