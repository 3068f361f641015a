package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherSource fetches current conditions from the OpenWeather API,
// always in metric units.
type OpenWeatherSource struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

var _ Source = &OpenWeatherSource{}

func NewOpenWeatherSource(apiKey string, timeout time.Duration) *OpenWeatherSource {
	return &OpenWeatherSource{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type openWeatherResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Message string `json:"message"`
}

func (s *OpenWeatherSource) Fetch(ctx context.Context, location string) (*Data, error) {
	endpoint := fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric",
		s.baseURL, url.QueryEscape(location), s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrSourceUnavailable, err)
	}

	var owResp openWeatherResponse
	if err := json.Unmarshal(bodyBytes, &owResp); err != nil {
		return nil, fmt.Errorf("%w: unmarshal response: %v", ErrSourceUnavailable, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		if owResp.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, owResp.Message)
		}
		return nil, ErrLocationNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d, body: %s", ErrSourceUnavailable, resp.StatusCode, string(bodyBytes))
	}

	description := ""
	if len(owResp.Weather) > 0 {
		description = owResp.Weather[0].Description
	}

	return &Data{
		Location:    fmt.Sprintf("%s, %s", owResp.Name, owResp.Sys.Country),
		Temperature: math.Round(owResp.Main.Temp),
		Description: description,
		Humidity:    owResp.Main.Humidity,
		WindSpeed:   owResp.Wind.Speed,
	}, nil
}
