// Package documents loads the markdown knowledge base from disk.
package documents

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ai-agent-be/pkg/store"
)

// Load reads every .md file in dir, one document per file. The file name is
// the source id, so re-loading a file later replaces its chunks in the index.
// Files are returned in name order for deterministic indexing.
func Load(dir string) ([]store.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read documents dir %s: %w", dir, err)
	}

	var docs []store.Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read document %s: %w", entry.Name(), err)
		}
		docs = append(docs, store.Document{
			SourceID: entry.Name(),
			RawText:  string(raw),
		})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].SourceID < docs[j].SourceID })
	return docs, nil
}
