package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectMath(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		isMath     bool
		expression string
	}{
		{"keyword and digits", "What is 15 + 25?", true, "15 + 25"},
		{"operator and digits", "2+2", true, "2+2"},
		{"calculate command", "calculate 10 * 3", true, "10 * 3"},
		{"solve command", "Solve (4+6)/2!", true, "(4+6)/2"},
		{"digits without cue", "I have 3 cats", false, ""},
		{"keyword without digits", "calculate my destiny", false, ""},
		{"plain chat", "tell me about markdown", false, ""},
		{"empty", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectMath(tt.message)
			assert.Equal(t, tt.isMath, got.IsMath)
			if tt.isMath {
				assert.Equal(t, tt.expression, got.Expression)
			}
		})
	}
}

func TestDetectWeather(t *testing.T) {
	tests := []struct {
		name      string
		message   string
		isWeather bool
		location  string
	}{
		{"in pattern", "What's the weather in Tokyo?", true, "Tokyo"},
		{"for pattern", "forecast for Paris", true, "Paris"},
		{"keyword ending in preposition", "Will it rain in Tokyo?", true, "Tokyo"},
		{"no keyword", "tell me a joke", false, ""},
		{"math message", "what is 2+2", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectWeather(tt.message)
			assert.Equal(t, tt.isWeather, got.IsWeather)
			if tt.location != "" {
				assert.Equal(t, tt.location, got.Location)
			}
		})
	}
}

func TestDetectWeatherDefaultLocation(t *testing.T) {
	got := DetectWeather("is it sunny")
	assert.True(t, got.IsWeather)
	assert.Equal(t, DefaultWeatherLocation, got.Location)
}

func TestDetectorsAreIndependent(t *testing.T) {
	message := "What's 2+2 and is it raining in Paris?"

	math := DetectMath(message)
	weather := DetectWeather(message)

	assert.True(t, math.IsMath)
	assert.True(t, weather.IsWeather)
	assert.Equal(t, "Paris", weather.Location)
}
