package scoring

import "math"

// Cosine computes the cosine similarity of two vectors in float64 precision.
// Returns 0 when either vector is empty, has zero magnitude, or the
// dimensions differ.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// ClippedCosine clips cosine similarity to [0, 1]. Negative cosine is
// treated as 0 so it cannot contribute negatively to a fused score.
func ClippedCosine(a, b []float32) float64 {
	similarity := Cosine(a, b)
	if similarity < 0 {
		return 0
	}
	if similarity > 1 {
		return 1
	}
	return similarity
}
