// Package retriever answers similarity queries against the indexed corpus.
package retriever

import (
	"context"
	"fmt"

	"ai-agent-be/internal/pkg/logger"
	"ai-agent-be/pkg/embedding"
	"ai-agent-be/pkg/store"
	"ai-agent-be/pkg/vectorstore"
)

const DefaultTopK = 3

type Retriever struct {
	provider embedding.EmbeddingProvider
	index    vectorstore.VectorIndex
	topK     int
	logger   logger.ILogger
}

func New(provider embedding.EmbeddingProvider, index vectorstore.VectorIndex, topK int, log logger.ILogger) *Retriever {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Retriever{
		provider: provider,
		index:    index,
		topK:     topK,
		logger:   log,
	}
}

// Retrieve embeds the query and returns the top-K most similar chunks,
// best first. An empty corpus yields an empty slice, not an error.
func (r *Retriever) Retrieve(ctx context.Context, query string) ([]store.ScoredChunk, error) {
	res, err := r.provider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	scored, err := r.index.Search(ctx, res.Embedding.Values, r.topK)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}

	r.logger.Debug("retriever", "Context retrieved", map[string]interface{}{
		"results": len(scored),
		"top_k":   r.topK,
	})
	return scored, nil
}
