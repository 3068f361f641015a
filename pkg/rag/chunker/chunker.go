// Package chunker segments raw document text into bounded chunks along
// paragraph boundaries.
package chunker

import "strings"

const DefaultChunkSize = 500

// Chunker greedily packs paragraphs into chunks of at most chunkSize
// characters. A single paragraph longer than chunkSize is kept whole in its
// own chunk; paragraphs are never split.
type Chunker struct {
	chunkSize int
}

func New(chunkSize int) *Chunker {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Chunker{chunkSize: chunkSize}
}

// Split returns the chunk contents for one document, in order. Paragraphs
// are separated by blank lines; joins inside a chunk preserve the blank-line
// separator so concatenating all chunks reconstructs the paragraph sequence.
func (c *Chunker) Split(rawText string) []string {
	paragraphs := splitParagraphs(rawText)
	if len(paragraphs) == 0 {
		return nil
	}

	var chunks []string
	var current strings.Builder

	for _, paragraph := range paragraphs {
		if current.Len() > 0 && current.Len()+len("\n\n")+len(paragraph) > c.chunkSize {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(paragraph)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}

func splitParagraphs(rawText string) []string {
	normalized := strings.ReplaceAll(rawText, "\r\n", "\n")

	var paragraphs []string
	for _, p := range strings.Split(normalized, "\n\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}
