package router

import (
	"context"
	"fmt"
	"strings"

	"ai-agent-be/internal/pkg/logger"
	"ai-agent-be/pkg/llm"
	"ai-agent-be/pkg/plugin"
)

// OracleClassifier asks the language model which plugins apply. The model is
// shown each plugin's name and description and must answer with a
// comma-separated list of names, or "none".
type OracleClassifier struct {
	provider llm.LLMProvider
	logger   logger.ILogger
}

func NewOracleClassifier(provider llm.LLMProvider, log logger.ILogger) *OracleClassifier {
	return &OracleClassifier{provider: provider, logger: log}
}

func (c *OracleClassifier) Classify(ctx context.Context, message string, plugins []plugin.Plugin) ([]string, error) {
	if len(plugins) == 0 {
		return nil, nil
	}

	prompt := buildOraclePrompt(message, plugins)

	raw, err := c.provider.Generate(ctx, prompt, llm.WithTemperature(0))
	if err != nil {
		return nil, fmt.Errorf("oracle classification: %w", err)
	}

	names := parseOracleReply(raw, plugins)
	c.logger.Debug("router", "Oracle classification", map[string]interface{}{
		"raw":     strings.TrimSpace(raw),
		"matched": names,
	})
	return names, nil
}

func buildOraclePrompt(message string, plugins []plugin.Plugin) string {
	var b strings.Builder
	b.WriteString("You are a tool router. Given a user message, decide which of the following tools apply.\n\n")
	b.WriteString("Available tools:\n")
	for _, p := range plugins {
		fmt.Fprintf(&b, "- %s: %s\n", p.Name(), p.Description())
	}
	b.WriteString("\nUser message: ")
	b.WriteString(message)
	b.WriteString("\n\nAnswer with a comma-separated list of tool names that apply, or \"none\" if no tool applies. Answer with the list only, no explanation.")
	return b.String()
}

// parseOracleReply keeps only names the registry actually knows; anything
// else the model says is discarded.
func parseOracleReply(raw string, plugins []plugin.Plugin) []string {
	known := make(map[string]bool, len(plugins))
	for _, p := range plugins {
		known[p.Name()] = true
	}

	cleaned := strings.ToLower(strings.TrimSpace(raw))
	cleaned = strings.Trim(cleaned, `"'.`)
	if cleaned == "" || cleaned == "none" {
		return nil
	}

	var names []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(cleaned, ",") {
		name := strings.TrimSpace(part)
		if known[name] && !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}
	return names
}
