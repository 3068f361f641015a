package math

import (
	"context"
	"time"

	"ai-agent-be/internal/pkg/logger"
	"ai-agent-be/pkg/mathexpr"
	"ai-agent-be/pkg/plugin"
)

const PluginName = "math"

// Data is the success payload of the math plugin.
type Data struct {
	Expression string  `json:"expression"`
	Result     float64 `json:"result"`
}

// Plugin evaluates arithmetic expressions extracted from user messages.
type Plugin struct {
	logger logger.ILogger
}

var _ plugin.Plugin = &Plugin{}

func NewPlugin(log logger.ILogger) *Plugin {
	return &Plugin{logger: log}
}

func (p *Plugin) Name() string { return PluginName }

func (p *Plugin) Description() string {
	return "Perform mathematical calculations and solve arithmetic expressions"
}

func (p *Plugin) Execute(_ context.Context, argument string) plugin.Result {
	start := time.Now()

	clean := mathexpr.Sanitize(argument)
	result, err := mathexpr.Evaluate(argument)

	latency := time.Since(start)
	if err != nil {
		p.logger.Warn("plugin.math", "Expression evaluation failed", map[string]interface{}{
			"expression": argument,
			"success":    false,
			"latency_ms": latency.Milliseconds(),
			"error":      err.Error(),
		})
		return plugin.ErrorResult(PluginName, err)
	}

	p.logger.Info("plugin.math", "Expression evaluated", map[string]interface{}{
		"expression": clean,
		"result":     result,
		"success":    true,
		"latency_ms": latency.Milliseconds(),
	})

	return plugin.SuccessResult(PluginName, Data{
		Expression: clean,
		Result:     result,
	})
}
