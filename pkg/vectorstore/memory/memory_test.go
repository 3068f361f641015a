package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-agent-be/pkg/store"
	"ai-agent-be/pkg/vectorstore"
)

func chunk(sourceID string, index int, embedding []float32) store.Chunk {
	return store.Chunk{
		ID:        store.ChunkID(sourceID, index),
		Content:   "content",
		Embedding: embedding,
		SourceID:  sourceID,
		Index:     index,
	}
}

func TestSearchEmptyCorpus(t *testing.T) {
	idx := NewIndex()

	results, err := idx.Search(context.Background(), []float32{1, 0}, 3)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchZeroK(t *testing.T) {
	idx := NewIndex()
	require.NoError(t, idx.ReplaceSource(context.Background(), "doc", []store.Chunk{
		chunk("doc", 0, []float32{1, 0}),
	}))

	results, err := idx.Search(context.Background(), []float32{1, 0}, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchRanksBySimilarity(t *testing.T) {
	idx := NewIndex()
	ctx := context.Background()

	require.NoError(t, idx.ReplaceSource(ctx, "doc", []store.Chunk{
		chunk("doc", 0, []float32{0, 1}),
		chunk("doc", 1, []float32{1, 0}),
		chunk("doc", 2, []float32{0.7, 0.7}),
	}))

	results, err := idx.Search(ctx, []float32{1, 0}, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "doc_chunk_1", results[0].Chunk.ID)
	assert.Equal(t, "doc_chunk_2", results[1].Chunk.ID)
}

func TestSearchTiesKeepInsertionOrder(t *testing.T) {
	idx := NewIndex()
	ctx := context.Background()

	require.NoError(t, idx.ReplaceSource(ctx, "doc", []store.Chunk{
		chunk("doc", 0, []float32{1, 0}),
		chunk("doc", 1, []float32{1, 0}),
		chunk("doc", 2, []float32{1, 0}),
	}))

	results, err := idx.Search(ctx, []float32{1, 0}, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "doc_chunk_0", results[0].Chunk.ID)
	assert.Equal(t, "doc_chunk_1", results[1].Chunk.ID)
	assert.Equal(t, "doc_chunk_2", results[2].Chunk.ID)
}

func TestSearchIdempotent(t *testing.T) {
	idx := NewIndex()
	ctx := context.Background()

	require.NoError(t, idx.ReplaceSource(ctx, "doc", []store.Chunk{
		chunk("doc", 0, []float32{0.9, 0.1}),
		chunk("doc", 1, []float32{0.1, 0.9}),
	}))

	first, err := idx.Search(ctx, []float32{1, 0}, 2)
	require.NoError(t, err)
	second, err := idx.Search(ctx, []float32{1, 0}, 2)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReplaceSourceSwapsWholeDocument(t *testing.T) {
	idx := NewIndex()
	ctx := context.Background()

	require.NoError(t, idx.ReplaceSource(ctx, "a", []store.Chunk{
		chunk("a", 0, []float32{1, 0}),
		chunk("a", 1, []float32{1, 0}),
	}))
	require.NoError(t, idx.ReplaceSource(ctx, "b", []store.Chunk{
		chunk("b", 0, []float32{0, 1}),
	}))
	assert.Equal(t, 3, idx.Count())

	// Reindexing source "a" replaces its chunks without touching "b".
	require.NoError(t, idx.ReplaceSource(ctx, "a", []store.Chunk{
		chunk("a", 0, []float32{0.5, 0.5}),
	}))
	assert.Equal(t, 2, idx.Count())
}

func TestReplaceSourceRejectsDimensionMismatch(t *testing.T) {
	idx := NewIndex()
	ctx := context.Background()

	require.NoError(t, idx.ReplaceSource(ctx, "a", []store.Chunk{
		chunk("a", 0, []float32{1, 0}),
	}))

	err := idx.ReplaceSource(ctx, "b", []store.Chunk{
		chunk("b", 0, []float32{1, 0, 0}),
	})
	assert.ErrorIs(t, err, vectorstore.ErrDimensionMismatch)
}

func TestCosineSimilarityProperties(t *testing.T) {
	a := []float32{0.3, 0.4, 0.5}
	b := []float32{0.1, 0.9, 0.2}

	assert.InDelta(t, 1.0, float64(vectorstore.CosineSimilarity(a, a)), 1e-6)
	assert.InDelta(t,
		float64(vectorstore.CosineSimilarity(a, b)),
		float64(vectorstore.CosineSimilarity(b, a)),
		1e-9)
	assert.Zero(t, vectorstore.CosineSimilarity(a, []float32{0, 0, 0}))
	assert.Zero(t, vectorstore.CosineSimilarity(a, []float32{1, 2}))
}

func TestReset(t *testing.T) {
	idx := NewIndex()
	ctx := context.Background()

	require.NoError(t, idx.ReplaceSource(ctx, "a", []store.Chunk{
		chunk("a", 0, []float32{1, 0}),
	}))
	require.NoError(t, idx.Reset(ctx))
	assert.Zero(t, idx.Count())

	// Dimension is re-established after a reset.
	require.NoError(t, idx.ReplaceSource(ctx, "a", []store.Chunk{
		chunk("a", 0, []float32{1, 0, 0}),
	}))
	assert.Equal(t, 1, idx.Count())
}
