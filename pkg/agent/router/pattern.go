package router

import (
	"context"

	"ai-agent-be/pkg/agent/intent"
	"ai-agent-be/pkg/plugin"
	mathplugin "ai-agent-be/pkg/plugin/math"
	weatherplugin "ai-agent-be/pkg/plugin/weather"
)

// PatternClassifier is the deterministic fallback. It relies on the intent
// detectors, so it works without any model call.
type PatternClassifier struct{}

func NewPatternClassifier() *PatternClassifier {
	return &PatternClassifier{}
}

func (c *PatternClassifier) Classify(_ context.Context, message string, plugins []plugin.Plugin) ([]string, error) {
	registered := make(map[string]bool, len(plugins))
	for _, p := range plugins {
		registered[p.Name()] = true
	}

	var names []string
	if registered[mathplugin.PluginName] && intent.DetectMath(message).IsMath {
		names = append(names, mathplugin.PluginName)
	}
	if registered[weatherplugin.PluginName] && intent.DetectWeather(message).IsWeather {
		names = append(names, weatherplugin.PluginName)
	}
	return names, nil
}
