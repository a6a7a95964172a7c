package rank

import "math"

// Similarity scores the lexical overlap of two units:
//
//	|a ∩ b| / (log10|a| + log10|b|)
//
// It is 0 when either word set is empty or when the denominator is 0,
// which happens whenever both units have exactly one word.
func Similarity(a, b Unit) float64 {
	if len(a.words) == 0 || len(b.words) == 0 {
		return 0
	}

	// 小さい方の集合を走査する
	small, large := a.words, b.words
	if len(small) > len(large) {
		small, large = large, small
	}
	common := 0
	for w := range small {
		if _, ok := large[w]; ok {
			common++
		}
	}

	denom := math.Log10(float64(len(a.words))) + math.Log10(float64(len(b.words)))
	if denom == 0 {
		return 0
	}
	return float64(common) / denom
}
