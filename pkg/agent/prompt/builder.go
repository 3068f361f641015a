// Package prompt assembles the single system prompt sent to the model:
// instructions, recent conversation, retrieved knowledge, plugin results and
// the current message, in that order.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"ai-agent-be/pkg/plugin"
	mathplugin "ai-agent-be/pkg/plugin/math"
	"ai-agent-be/pkg/store"
	"ai-agent-be/pkg/weather"
)

const systemInstructions = `You are an intelligent AI assistant with access to a knowledge base and various tools. Your goal is to provide helpful, accurate, and contextual responses to user queries.

## System Instructions:
- Be conversational, helpful, and informative
- Use the provided context and plugin results to enhance your responses
- If you have access to real-time data (weather, calculations), incorporate it naturally
- Maintain context from the conversation history
- Be concise but thorough in your explanations`

// Build renders the full prompt. Empty sections are elided except the
// conversation history, which always appears with a placeholder when empty.
func Build(userMessage string, history []store.Message, chunks []store.ScoredChunk, results []plugin.Result) string {
	var b strings.Builder

	b.WriteString(systemInstructions)
	b.WriteString("\n\n## Conversation History:")
	if len(history) > 0 {
		b.WriteString("\n")
		for _, msg := range history {
			role := "Assistant"
			if msg.Role == store.RoleUser {
				role = "User"
			}
			fmt.Fprintf(&b, "%s: %s\n", role, msg.Content)
		}
	} else {
		b.WriteString("\n(No previous conversation history)\n")
	}

	if len(chunks) > 0 {
		b.WriteString("\n## Relevant Knowledge Base Context:\n")
		for i, c := range chunks {
			if i > 0 {
				b.WriteString("\n\n")
			}
			fmt.Fprintf(&b, "%d. %s", i+1, c.Content)
		}
	}

	if len(results) > 0 {
		b.WriteString("\n## Plugin Results:")
		for _, r := range results {
			b.WriteString("\n")
			b.WriteString(formatResult(r))
		}
	}

	b.WriteString("\n\n## Current User Message:\n")
	b.WriteString(userMessage)
	b.WriteString("\n\n## Your Response:\nPlease provide a helpful response based on the above context, conversation history, and any plugin results. Be natural and conversational.")

	return b.String()
}

func formatResult(r plugin.Result) string {
	if !r.Success {
		return fmt.Sprintf("%s plugin error: %s", r.PluginName, r.Error)
	}

	switch data := r.Data.(type) {
	case weather.Data:
		return formatWeather(data)
	case *weather.Data:
		return formatWeather(*data)
	case mathplugin.Data:
		return fmt.Sprintf("Math calculation: %s = %s", data.Expression, formatNumber(data.Result))
	default:
		return fmt.Sprintf("%s plugin result: %v", r.PluginName, r.Data)
	}
}

func formatWeather(w weather.Data) string {
	return fmt.Sprintf("Weather data for %s: %s°C, %s, humidity %d%%, wind speed %s m/s",
		w.Location, formatNumber(w.Temperature), w.Description, w.Humidity, formatNumber(w.WindSpeed))
}

// formatNumber prints floats without trailing zeros, so 40.0 reads as "40".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
