// Package router decides which plugins a message should invoke and runs
// them. Classification is a fallback chain: the model-backed oracle is asked
// first, and the deterministic pattern classifier takes over whenever the
// oracle errors or returns something unusable.
package router

import (
	"context"

	"ai-agent-be/pkg/plugin"
)

// Classifier maps a user message to the names of the plugins that should
// handle it. An empty slice means no plugin applies.
type Classifier interface {
	Classify(ctx context.Context, message string, plugins []plugin.Plugin) ([]string, error)
}
