package weather

import (
	"context"
	"strings"
)

// StaticSource serves canned weather data from an in-memory city table.
// Useful for development without an OpenWeather API key.
type StaticSource struct {
	cities map[string]Data
}

func NewStaticSource() *StaticSource {
	return &StaticSource{
		cities: map[string]Data{
			"london":    {Location: "London, GB", Temperature: 12, Description: "overcast clouds", Humidity: 81, WindSpeed: 4.6},
			"tokyo":     {Location: "Tokyo, JP", Temperature: 18, Description: "clear sky", Humidity: 55, WindSpeed: 3.1},
			"paris":     {Location: "Paris, FR", Temperature: 15, Description: "light rain", Humidity: 72, WindSpeed: 5.2},
			"bangalore": {Location: "Bangalore, IN", Temperature: 24, Description: "partly cloudy", Humidity: 65, WindSpeed: 2.8},
			"mumbai":    {Location: "Mumbai, IN", Temperature: 28, Description: "sunny", Humidity: 70, WindSpeed: 3.9},
			"delhi":     {Location: "Delhi, IN", Temperature: 22, Description: "hazy", Humidity: 60, WindSpeed: 2.2},
			"new york":  {Location: "New York, US", Temperature: 10, Description: "scattered clouds", Humidity: 58, WindSpeed: 6.4},
		},
	}
}

func (s *StaticSource) Fetch(_ context.Context, location string) (*Data, error) {
	normalized := strings.ToLower(strings.TrimSpace(location))

	for city, data := range s.cities {
		if strings.Contains(normalized, city) {
			result := data
			return &result, nil
		}
	}

	// Unknown cities get generic conditions rather than an error so the
	// static source stays usable for arbitrary demo queries.
	return &Data{
		Location:    titleCase(normalized),
		Temperature: 25,
		Description: "partly cloudy",
		Humidity:    60,
		WindSpeed:   3.0,
	}, nil
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
