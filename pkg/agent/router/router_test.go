package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-agent-be/internal/pkg/logger"
	"ai-agent-be/pkg/llm"
	"ai-agent-be/pkg/plugin"
)

// fakeLLM returns a fixed reply, or an error when err is set.
type fakeLLM struct {
	reply string
	err   error
}

func (f *fakeLLM) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return f.reply, f.err
}

func (f *fakeLLM) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	return f.reply, f.err
}

// echoPlugin returns its argument as data.
type echoPlugin struct {
	name string
}

func (p *echoPlugin) Name() string        { return p.name }
func (p *echoPlugin) Description() string { return "echoes the argument" }
func (p *echoPlugin) Execute(_ context.Context, argument string) plugin.Result {
	return plugin.SuccessResult(p.name, argument)
}

type panicPlugin struct{}

func (p *panicPlugin) Name() string        { return "boom" }
func (p *panicPlugin) Description() string { return "always panics" }
func (p *panicPlugin) Execute(_ context.Context, _ string) plugin.Result {
	panic("exploded")
}

func newRouter(oracle Classifier) *Router {
	r := New(oracle, NewPatternClassifier(), logger.NewNopLogger())
	r.Register(&echoPlugin{name: "math"}, MathArgument)
	r.Register(&echoPlugin{name: "weather"}, WeatherArgument)
	return r
}

func TestRouteOracleSelection(t *testing.T) {
	r := newRouter(NewOracleClassifier(&fakeLLM{reply: "math"}, logger.NewNopLogger()))

	results := r.Route(context.Background(), "What is 15 + 25?")
	require.Len(t, results, 1)
	assert.Equal(t, "math", results[0].PluginName)
	assert.True(t, results[0].Success)
	assert.Equal(t, "15 + 25", results[0].Data)
}

func TestRouteOracleNone(t *testing.T) {
	r := newRouter(NewOracleClassifier(&fakeLLM{reply: "none"}, logger.NewNopLogger()))

	results := r.Route(context.Background(), "Tell me about your shipping policy")
	assert.Empty(t, results)
}

func TestRouteOracleDiscardsUnknownNames(t *testing.T) {
	r := newRouter(NewOracleClassifier(&fakeLLM{reply: "math, teleport"}, logger.NewNopLogger()))

	results := r.Route(context.Background(), "calculate 2+2")
	require.Len(t, results, 1)
	assert.Equal(t, "math", results[0].PluginName)
}

func TestRouteFallbackOnOracleError(t *testing.T) {
	oracle := NewOracleClassifier(&fakeLLM{err: errors.New("model down")}, logger.NewNopLogger())
	r := newRouter(oracle)

	results := r.Route(context.Background(), "What's the weather in Tokyo?")
	require.Len(t, results, 1)
	assert.Equal(t, "weather", results[0].PluginName)
	assert.Equal(t, "Tokyo", results[0].Data)
}

func TestRouteMultiplePlugins(t *testing.T) {
	r := newRouter(NewOracleClassifier(&fakeLLM{reply: "math, weather"}, logger.NewNopLogger()))

	results := r.Route(context.Background(), "What's 2+2 and is it raining in Paris?")
	require.Len(t, results, 2)
	assert.Equal(t, "math", results[0].PluginName)
	assert.Equal(t, "weather", results[1].PluginName)
	assert.Equal(t, "Paris", results[1].Data)
}

func TestRoutePanicBecomesErrorResult(t *testing.T) {
	r := New(NewOracleClassifier(&fakeLLM{reply: "boom"}, logger.NewNopLogger()), NewPatternClassifier(), logger.NewNopLogger())
	r.Register(&panicPlugin{}, nil)

	results := r.Route(context.Background(), "anything")
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Contains(t, results[0].Error, "plugin panic")
}

func TestParseOracleReply(t *testing.T) {
	plugins := []plugin.Plugin{&echoPlugin{name: "math"}, &echoPlugin{name: "weather"}}

	tests := []struct {
		name  string
		reply string
		want  []string
	}{
		{"single", "math", []string{"math"}},
		{"comma separated", "math, weather", []string{"math", "weather"}},
		{"none", "none", nil},
		{"quoted none", `"none"`, nil},
		{"empty", "  ", nil},
		{"mixed case", "MATH", []string{"math"}},
		{"duplicates collapse", "math, math", []string{"math"}},
		{"unknown dropped", "weather, rocket", []string{"weather"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseOracleReply(tt.reply, plugins))
		})
	}
}

func TestPatternClassifier(t *testing.T) {
	plugins := []plugin.Plugin{&echoPlugin{name: "math"}, &echoPlugin{name: "weather"}}
	c := NewPatternClassifier()

	names, err := c.Classify(context.Background(), "calculate 12 * 3", plugins)
	require.NoError(t, err)
	assert.Equal(t, []string{"math"}, names)

	names, err = c.Classify(context.Background(), "forecast for Paris please", plugins)
	require.NoError(t, err)
	assert.Equal(t, []string{"weather"}, names)

	names, err = c.Classify(context.Background(), "tell me a story", plugins)
	require.NoError(t, err)
	assert.Empty(t, names)
}
