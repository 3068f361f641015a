package store

import "fmt"

// Chunk is the retrieval unit: a bounded span of one source document together
// with its embedding. The embedding is co-created with the chunk and is never
// empty at query time. Identity is (SourceID, Index).
type Chunk struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Embedding []float32 `json:"embedding"`
	SourceID  string    `json:"source_id"`
	Index     int       `json:"index"`
}

// ChunkID derives the canonical chunk id from its identity pair.
func ChunkID(sourceID string, index int) string {
	return fmt.Sprintf("%s_chunk_%d", sourceID, index)
}

// ScoredChunk pairs a chunk with its similarity to a query.
type ScoredChunk struct {
	Chunk
	Score float32 `json:"score"`
}
