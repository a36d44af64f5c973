package cardfolio

import (
	"math"
	"unicode/utf16"
)

// EstimatePrice returns the simulated value of a card from its name alone.
//
// The name is folded into a 32 bits polynomial rolling hash (hash*31 + code,
// over UTF-16 code units, wrapping on overflow). The absolute hash selects a
// base value in [1, 80] and an adjustment step in [-3, 3] tenths:
//
//	round(base * (1 + step/10))
//
// The function is total and deterministic; the empty name is worth 1.
func EstimatePrice(name string) int {
	var hash int32
	for _, code := range utf16.Encode([]rune(name)) {
		hash = hash*31 + int32(code)
	}

	// In 64 bits, |MinInt32| is still positive.
	h := int64(hash)
	if h < 0 {
		h = -h
	}

	base := 1 + h%80
	step := h%7 - 3
	return int(math.Round(float64(base) * (1 + float64(step)/10)))
}
