package frying

import "math/rand"

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// mapRange remaps v from [inLo,inHi] to [outLo,outHi], clamping to the
// output range.
func mapRange(v, inLo, inHi, outLo, outHi float64) float64 {
	t := (v - inLo) / (inHi - inLo)
	t = clamp(t, 0, 1)
	return outLo + (outHi-outLo)*t
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
