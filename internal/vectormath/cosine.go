// Package vectormath provides the similarity arithmetic shared by the
// vector store implementations. The metric is fixed across the system:
// cosine distance, so a result's score (1 − distance) is the cosine
// similarity itself and stays within [-1, 1].
package vectormath

import "math"

// Cosine returns the cosine similarity of two vectors.
// Mismatched lengths or zero vectors yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		av, bv := float64(a[i]), float64(b[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
