// Package chromem backs the VectorIndex with an embedded chromem-go
// collection. Selected with VECTOR_STORE=chromem; the default brute-force
// store lives in the sibling memory package.
//
// Note: chromem does not guarantee insertion-order ties the way the memory
// index does, which is acceptable for this variant.
package chromem

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"sync"

	"github.com/philippgille/chromem-go"

	"ai-agent-be/pkg/store"
	"ai-agent-be/pkg/vectorstore"
)

const collectionName = "knowledge-base"

// Index rebuilds happen under mu; readers take the read lock so a Search
// sees either the old or the new corpus, never the window between a
// source's delete and re-add.
type Index struct {
	mu         sync.RWMutex
	db         *chromem.DB
	collection *chromem.Collection
}

var _ vectorstore.VectorIndex = &Index{}

func NewIndex() (*Index, error) {
	db := chromem.NewDB()
	collection, err := db.CreateCollection(collectionName, nil, rejectEmbeddingFunc)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}
	return &Index{db: db, collection: collection}, nil
}

// rejectEmbeddingFunc guards against accidental text-side embedding: every
// document and query carries a precomputed vector from our own provider.
func rejectEmbeddingFunc(_ context.Context, _ string) ([]float32, error) {
	return nil, errors.New("embeddings must be precomputed by the configured provider")
}

func (idx *Index) ReplaceSource(ctx context.Context, sourceID string, chunks []store.Chunk) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if err := idx.collection.Delete(ctx, map[string]string{"source": sourceID}, nil); err != nil {
		return fmt.Errorf("delete source %s: %w", sourceID, err)
	}
	if len(chunks) == 0 {
		return nil
	}

	docs := make([]chromem.Document, len(chunks))
	for i, c := range chunks {
		docs[i] = chromem.Document{
			ID:        c.ID,
			Content:   c.Content,
			Embedding: c.Embedding,
			Metadata: map[string]string{
				"source": c.SourceID,
				"index":  strconv.Itoa(c.Index),
			},
		}
	}
	if err := idx.collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("add documents: %w", err)
	}
	return nil
}

func (idx *Index) Search(ctx context.Context, queryVector []float32, k int) ([]store.ScoredChunk, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if k <= 0 {
		return []store.ScoredChunk{}, nil
	}
	count := idx.collection.Count()
	if count == 0 {
		return []store.ScoredChunk{}, nil
	}
	if k > count {
		k = count
	}

	results, err := idx.collection.QueryEmbedding(ctx, queryVector, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query embedding: %w", err)
	}

	scored := make([]store.ScoredChunk, len(results))
	for i, r := range results {
		index, _ := strconv.Atoi(r.Metadata["index"])
		scored[i] = store.ScoredChunk{
			Chunk: store.Chunk{
				ID:        r.ID,
				Content:   r.Content,
				Embedding: r.Embedding,
				SourceID:  r.Metadata["source"],
				Index:     index,
			},
			Score: r.Similarity,
		}
	}
	return scored, nil
}

func (idx *Index) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.collection.Count()
}

func (idx *Index) Reset(_ context.Context) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if err := idx.db.DeleteCollection(collectionName); err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}
	collection, err := idx.db.CreateCollection(collectionName, nil, rejectEmbeddingFunc)
	if err != nil {
		return fmt.Errorf("recreate collection: %w", err)
	}
	idx.collection = collection
	return nil
}
