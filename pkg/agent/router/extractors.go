package router

import "ai-agent-be/pkg/agent/intent"

// MathArgument isolates the arithmetic expression. When the detector cannot
// isolate one (the oracle routed a message the patterns miss), the raw
// message is passed through and the plugin decides.
func MathArgument(message string) string {
	if it := intent.DetectMath(message); it.Expression != "" {
		return it.Expression
	}
	return message
}

// WeatherArgument isolates the target location, defaulting when absent.
func WeatherArgument(message string) string {
	if it := intent.DetectWeather(message); it.Location != "" {
		return it.Location
	}
	return intent.DefaultWeatherLocation
}
