// Package weather defines the external weather data capability consumed by
// the weather plugin. Two interchangeable sources exist: a static city table
// for offline development and a real OpenWeather client, selected by config.
package weather

import (
	"context"
	"errors"
)

// Data is the normalized weather report for one location, metric units.
type Data struct {
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

var (
	// ErrLocationNotFound means the source resolved the request but knows no
	// such location.
	ErrLocationNotFound = errors.New("location not found")
	// ErrSourceUnavailable covers network and upstream failures.
	ErrSourceUnavailable = errors.New("weather source unavailable")
)

// Source fetches current weather for a location.
type Source interface {
	Fetch(ctx context.Context, location string) (*Data, error)
}
