// Package indexer builds the retrieval corpus: it chunks raw documents,
// embeds every chunk, and commits the result to the vector index.
package indexer

import (
	"context"
	"errors"
	"fmt"

	"ai-agent-be/internal/pkg/logger"
	"ai-agent-be/pkg/embedding"
	"ai-agent-be/pkg/rag/chunker"
	"ai-agent-be/pkg/store"
	"ai-agent-be/pkg/vectorstore"
)

// ErrEmbeddingFailure marks a document that could not be embedded. The
// failure is fatal to that document only; other documents index normally.
var ErrEmbeddingFailure = errors.New("embedding failure")

type Indexer struct {
	chunker  *chunker.Chunker
	provider embedding.EmbeddingProvider
	index    vectorstore.VectorIndex
	logger   logger.ILogger
}

func New(
	ck *chunker.Chunker,
	provider embedding.EmbeddingProvider,
	index vectorstore.VectorIndex,
	log logger.ILogger,
) *Indexer {
	return &Indexer{
		chunker:  ck,
		provider: provider,
		index:    index,
		logger:   log,
	}
}

// IndexDocument chunks and embeds one document, then commits all of its
// chunks in a single atomic swap. If any chunk fails to embed, nothing from
// this document reaches the index.
func (ix *Indexer) IndexDocument(ctx context.Context, doc store.Document) (int, error) {
	contents := ix.chunker.Split(doc.RawText)

	chunks := make([]store.Chunk, 0, len(contents))
	for i, content := range contents {
		res, err := ix.provider.Generate(content, "RETRIEVAL_DOCUMENT")
		if err != nil {
			return 0, fmt.Errorf("%w: chunk %d of %s: %v", ErrEmbeddingFailure, i, doc.SourceID, err)
		}
		chunks = append(chunks, store.Chunk{
			ID:        store.ChunkID(doc.SourceID, i),
			Content:   content,
			Embedding: res.Embedding.Values,
			SourceID:  doc.SourceID,
			Index:     i,
		})
	}

	if err := ix.index.ReplaceSource(ctx, doc.SourceID, chunks); err != nil {
		return 0, fmt.Errorf("commit %s: %w", doc.SourceID, err)
	}

	ix.logger.Info("indexer", "Document indexed", map[string]interface{}{
		"source_id": doc.SourceID,
		"chunks":    len(chunks),
	})
	return len(chunks), nil
}

// IndexAll indexes every document synchronously. Per-document failures are
// logged and skipped so one bad document does not block the corpus.
func (ix *Indexer) IndexAll(ctx context.Context, docs []store.Document) (int, error) {
	total := 0
	for _, doc := range docs {
		n, err := ix.IndexDocument(ctx, doc)
		if err != nil {
			ix.logger.Error("indexer", "Failed to index document", map[string]interface{}{
				"source_id": doc.SourceID,
				"error":     err.Error(),
			})
			continue
		}
		total += n
	}
	return total, nil
}
