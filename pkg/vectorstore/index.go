// Package vectorstore holds the corpus of embedded chunks and answers
// similarity queries. The interface is deliberately small so a sub-linear
// index can replace the brute-force store without touching callers.
package vectorstore

import (
	"context"
	"errors"
	"math"

	"ai-agent-be/pkg/store"
)

var (
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)

// VectorIndex owns the indexed corpus.
//
// ReplaceSource is the only write path: it atomically swaps all chunks of one
// source document, so concurrent Search calls observe either the old or the
// new chunk set, never a mix.
type VectorIndex interface {
	ReplaceSource(ctx context.Context, sourceID string, chunks []store.Chunk) error
	Search(ctx context.Context, queryVector []float32, k int) ([]store.ScoredChunk, error)
	Count() int
	Reset(ctx context.Context) error
}

// CosineSimilarity computes the cosine of the angle between two vectors.
// Returns 0 for mismatched or zero-magnitude vectors.
func CosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) {
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
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
