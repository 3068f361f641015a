// Package memory is a brute-force in-memory VectorIndex. O(corpus size ×
// dimension) per query, which is fine at single-process document-set scale.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"ai-agent-be/pkg/store"
	"ai-agent-be/pkg/vectorstore"
)

type Index struct {
	mu        sync.RWMutex
	dimension int
	chunks    []store.Chunk // insertion order, the tie-break order for Search
}

var _ vectorstore.VectorIndex = &Index{}

func NewIndex() *Index {
	return &Index{}
}

func (idx *Index) ReplaceSource(_ context.Context, sourceID string, chunks []store.Chunk) error {
	for _, c := range chunks {
		if len(c.Embedding) == 0 {
			return fmt.Errorf("chunk %s has no embedding", c.ID)
		}
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.dimension == 0 && len(chunks) > 0 {
		idx.dimension = len(chunks[0].Embedding)
	}
	for _, c := range chunks {
		if len(c.Embedding) != idx.dimension {
			return fmt.Errorf("%w: chunk %s has %d dims, corpus has %d",
				vectorstore.ErrDimensionMismatch, c.ID, len(c.Embedding), idx.dimension)
		}
	}

	// Drop the old chunk set of this source, keep everything else in order,
	// then append the new set. Readers hold RLock so they never see the
	// intermediate state.
	kept := idx.chunks[:0:0]
	for _, c := range idx.chunks {
		if c.SourceID != sourceID {
			kept = append(kept, c)
		}
	}
	idx.chunks = append(kept, chunks...)
	return nil
}

func (idx *Index) Search(_ context.Context, queryVector []float32, k int) ([]store.ScoredChunk, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if k <= 0 || len(idx.chunks) == 0 {
		return []store.ScoredChunk{}, nil
	}

	scored := make([]store.ScoredChunk, len(idx.chunks))
	for i, c := range idx.chunks {
		scored[i] = store.ScoredChunk{
			Chunk: c,
			Score: vectorstore.CosineSimilarity(queryVector, c.Embedding),
		}
	}

	// Stable sort keeps corpus insertion order for equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k], nil
}

func (idx *Index) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.chunks)
}

func (idx *Index) Reset(_ context.Context) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.chunks = nil
	idx.dimension = 0
	return nil
}
