package chromem

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-agent-be/pkg/store"
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

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := NewIndex()
	require.NoError(t, err)
	return idx
}

func TestSearchEmptyCorpus(t *testing.T) {
	idx := newTestIndex(t)

	results, err := idx.Search(context.Background(), []float32{1, 0}, 3)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchZeroK(t *testing.T) {
	idx := newTestIndex(t)
	require.NoError(t, idx.ReplaceSource(context.Background(), "doc", []store.Chunk{
		chunk("doc", 0, []float32{1, 0}),
	}))

	results, err := idx.Search(context.Background(), []float32{1, 0}, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchRanksBySimilarity(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.ReplaceSource(ctx, "doc", []store.Chunk{
		chunk("doc", 0, []float32{0, 1}),
		chunk("doc", 1, []float32{1, 0}),
		chunk("doc", 2, []float32{0.6, 0.8}),
	}))

	results, err := idx.Search(ctx, []float32{1, 0}, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "doc_chunk_1", results[0].Chunk.ID)
	assert.Equal(t, "doc_chunk_2", results[1].Chunk.ID)
	assert.GreaterOrEqual(t, results[0].Score, results[1].Score)
}

func TestSearchCapsKToCorpusSize(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.ReplaceSource(ctx, "doc", []store.Chunk{
		chunk("doc", 0, []float32{1, 0}),
		chunk("doc", 1, []float32{0, 1}),
	}))

	results, err := idx.Search(ctx, []float32{1, 0}, 10)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestReplaceSourceSwapsWholeDocument(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.ReplaceSource(ctx, "a", []store.Chunk{
		chunk("a", 0, []float32{1, 0}),
		chunk("a", 1, []float32{0, 1}),
	}))
	require.NoError(t, idx.ReplaceSource(ctx, "b", []store.Chunk{
		chunk("b", 0, []float32{0.6, 0.8}),
	}))
	assert.Equal(t, 3, idx.Count())

	// Reindexing source "a" replaces its chunks without touching "b".
	require.NoError(t, idx.ReplaceSource(ctx, "a", []store.Chunk{
		chunk("a", 0, []float32{0.8, 0.6}),
	}))
	assert.Equal(t, 2, idx.Count())
}

func TestReset(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.ReplaceSource(ctx, "a", []store.Chunk{
		chunk("a", 0, []float32{1, 0}),
	}))
	require.NoError(t, idx.Reset(ctx))
	assert.Zero(t, idx.Count())

	require.NoError(t, idx.ReplaceSource(ctx, "a", []store.Chunk{
		chunk("a", 0, []float32{0, 1}),
	}))
	assert.Equal(t, 1, idx.Count())
}

// A search racing a rebuild of the same source must see the old or the new
// corpus in full, never the gap between delete and re-add.
func TestSearchNeverSeesPartialRebuild(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	chunks := []store.Chunk{
		chunk("doc", 0, []float32{1, 0, 0, 0, 0}),
		chunk("doc", 1, []float32{0, 1, 0, 0, 0}),
		chunk("doc", 2, []float32{0, 0, 1, 0, 0}),
		chunk("doc", 3, []float32{0, 0, 0, 1, 0}),
		chunk("doc", 4, []float32{0, 0, 0, 0, 1}),
	}
	require.NoError(t, idx.ReplaceSource(ctx, "doc", chunks))

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(done)
		for i := 0; i < 200; i++ {
			if err := idx.ReplaceSource(ctx, "doc", chunks); err != nil {
				t.Error(err)
				return
			}
		}
	}()

	for reading := true; reading; {
		select {
		case <-done:
			reading = false
		default:
		}
		results, err := idx.Search(ctx, []float32{1, 0, 0, 0, 0}, 5)
		require.NoError(t, err)
		assert.Len(t, results, 5, "search observed a half-rebuilt source")
	}
	wg.Wait()
}
