package sizing

import "math"

// Ceiling rounds value up to the nearest multiple of significance.
// Values already an exact multiple pass through unchanged.
func Ceiling(value, significance float64) float64 {
	return math.Ceil(value/significance) * significance
}

// kvaRound3Ph snaps a raw three-phase kVA figure onto the catalog grid:
// quarter-unit steps below 10 kVA, half-unit steps below 20, whole units
// above. Finer granularity where small transformers are actually stocked.
func kvaRound3Ph(raw float64) float64 {
	if Ceiling(raw, 0.25) < 10 {
		return Ceiling(raw, 0.25)
	}
	if Ceiling(raw, 0.25) < 20 {
		return Ceiling(raw, 0.5)
	}
	return Ceiling(raw, 1)
}
