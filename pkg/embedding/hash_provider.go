package embedding

import "strings"

// DefaultDimension matches common sentence-embedding models so a real
// provider can be swapped in without reindexing surprises.
const DefaultDimension = 384

// HashProvider is a lexical, hash-based embedder: a character histogram
// folded into a fixed dimensionality and L2-normalized. It needs no network,
// is fully deterministic, and produces the zero vector only for input with no
// letters or digits. Retrieval quality is obviously far below a learned
// model; it exists so the pipeline runs self-contained.
type HashProvider struct {
	dimension int
}

var _ EmbeddingProvider = &HashProvider{}

func NewHashProvider(dimension int) *HashProvider {
	if dimension <= 0 {
		dimension = DefaultDimension
	}
	return &HashProvider{dimension: dimension}
}

func (p *HashProvider) Dimension() int { return p.dimension }

func (p *HashProvider) Generate(text string, _ string) (*EmbeddingResponse, error) {
	vec := make([]float32, p.dimension)

	normalized := strings.ToLower(text)
	for _, r := range normalized {
		if r == ' ' || r == '\n' || r == '\t' {
			continue
		}
		vec[int(r)%p.dimension]++
	}

	return &EmbeddingResponse{
		Embedding: EmbeddingResponseEmbedding{
			Values: NormalizeVector(vec),
		},
	}, nil
}
