// Package scoring computes semantic match scores between a resume and a
// list of job requirements using embedding cosine similarity.
package scoring

import "math"

// CosineSimilarity returns the cosine of the angle between a and b:
// dot(a,b) / (||a|| * ||b||). The providers in use return unit-length
// vectors, but the full quotient is computed rather than assuming
// normalization holds exactly.
//
// Returns 0 when either vector has zero magnitude or the lengths differ, so
// callers never see NaN.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// clamp01 clamps v into [0, 1]. Cosine similarity can be negative for
// dissimilar text; any similarity at or below zero is presented as "no
// evidence of match" rather than "opposite of match".
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
