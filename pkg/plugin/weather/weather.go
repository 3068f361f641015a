package weather

import (
	"context"
	"errors"
	"strings"
	"time"

	"ai-agent-be/internal/pkg/logger"
	"ai-agent-be/pkg/plugin"
	"ai-agent-be/pkg/weather"
)

const PluginName = "weather"

// ErrNoLocation means the router handed us an empty argument.
var ErrNoLocation = errors.New("could not extract location from query")

// Plugin looks up current weather through an injected Source, so the static
// table and the OpenWeather client are interchangeable.
type Plugin struct {
	source weather.Source
	logger logger.ILogger
}

var _ plugin.Plugin = &Plugin{}

func NewPlugin(source weather.Source, log logger.ILogger) *Plugin {
	return &Plugin{source: source, logger: log}
}

func (p *Plugin) Name() string { return PluginName }

func (p *Plugin) Description() string {
	return "Get current weather information for any location worldwide"
}

func (p *Plugin) Execute(ctx context.Context, argument string) plugin.Result {
	start := time.Now()

	location := strings.TrimSpace(argument)
	if location == "" {
		return plugin.ErrorResult(PluginName, ErrNoLocation)
	}

	data, err := p.source.Fetch(ctx, location)

	latency := time.Since(start)
	if err != nil {
		p.logger.Warn("plugin.weather", "Weather lookup failed", map[string]interface{}{
			"location":   location,
			"success":    false,
			"latency_ms": latency.Milliseconds(),
			"error":      err.Error(),
		})
		return plugin.ErrorResult(PluginName, err)
	}

	p.logger.Info("plugin.weather", "Weather fetched", map[string]interface{}{
		"location":   data.Location,
		"success":    true,
		"latency_ms": latency.Milliseconds(),
	})

	return plugin.SuccessResult(PluginName, *data)
}
