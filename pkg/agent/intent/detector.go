// Package intent provides pure detectors that map a free-text message to a
// structured tool intent. Detection is deterministic and side-effect free;
// argument validation is left to the plugin that consumes the intent.
package intent

import (
	"regexp"
	"strings"
)

// DefaultWeatherLocation is used when a weather keyword is present but no
// location pattern matches.
const DefaultWeatherLocation = "London"

// MathIntent is the result of DetectMath.
type MathIntent struct {
	IsMath     bool
	Expression string
}

// WeatherIntent is the result of DetectWeather.
type WeatherIntent struct {
	IsWeather bool
	Location  string
}

var (
	mathKeywords = []string{"calculate", "compute", "evaluate", "solve", "what is", "what's", "equals", "="}

	digitPattern    = regexp.MustCompile(`\d`)
	operatorPattern = regexp.MustCompile(`[+\-*/=]`)
	leadingCommand  = regexp.MustCompile(`(?i)^(what\s+is|what's|calculate|compute|evaluate|solve)\s*`)
	trailingPunct   = regexp.MustCompile(`[?!.,\s]+$`)

	weatherKeywords = []string{"weather", "temperature", "forecast", "climate", "hot", "cold", "rain", "sunny"}

	// Ordered: the first matching pattern wins.
	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:in|at|for)\s+([a-zA-Z][a-zA-Z\s]*?)(?:[,.!?]|$)`),
		regexp.MustCompile(`(?i)weather\s+(?:in|at|for)?\s*([a-zA-Z][a-zA-Z\s]*?)(?:[,.!?]|$)`),
		regexp.MustCompile(`(?i)([a-zA-Z][a-zA-Z\s]*?)\s+weather`),
	}
)

// DetectMath reports whether the message looks like an arithmetic request and
// isolates the candidate expression. It requires a digit plus either a math
// keyword or an arithmetic operator, so plain numbers ("I have 3 cats") do
// not trigger.
func DetectMath(message string) MathIntent {
	lower := strings.ToLower(message)

	hasKeyword := false
	for _, kw := range mathKeywords {
		if strings.Contains(lower, kw) {
			hasKeyword = true
			break
		}
	}
	hasDigit := digitPattern.MatchString(message)
	hasOperator := operatorPattern.MatchString(message)

	if !hasDigit || (!hasKeyword && !hasOperator) {
		return MathIntent{}
	}

	expression := leadingCommand.ReplaceAllString(message, "")
	expression = trailingPunct.ReplaceAllString(expression, "")

	return MathIntent{IsMath: true, Expression: strings.TrimSpace(expression)}
}

// DetectWeather reports whether the message asks about weather and extracts
// the target location. Locations are constrained to alphabetic/space strings
// of length 2-49; when no pattern matches, DefaultWeatherLocation is used.
func DetectWeather(message string) WeatherIntent {
	lower := strings.ToLower(message)

	hasKeyword := false
	for _, kw := range weatherKeywords {
		if strings.Contains(lower, kw) {
			hasKeyword = true
			break
		}
	}
	if !hasKeyword {
		return WeatherIntent{}
	}

	for _, pattern := range locationPatterns {
		match := pattern.FindStringSubmatch(message)
		if match == nil {
			continue
		}
		location := strings.TrimSpace(match[1])
		if len(location) > 1 && len(location) < 50 {
			return WeatherIntent{IsWeather: true, Location: location}
		}
	}

	return WeatherIntent{IsWeather: true, Location: DefaultWeatherLocation}
}
