package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"
)

// This file implements the Open-Meteo client. Forecast and geocoding requests
// go through the same service, hidden behind the WeatherService interface so
// handlers can be tested against a mock.

// Reference coordinate used by the provider health check (São Paulo).
const (
	healthCheckLatitude  = -23.5505
	healthCheckLongitude = -46.6333
)

// WeatherService defines the operations the application needs from the
// forecast provider. Using an interface decouples the handlers from the
// concrete Open-Meteo client, which simplifies testing.
type WeatherService interface {
	FetchForecast(ctx context.Context, latitude, longitude float64, forecastDays int) (*ForecastPayload, error)
	SearchLocations(ctx context.Context, name, countryCode string) ([]LocationCandidate, error)
	CheckHealth(ctx context.Context) bool
}

// OpenMeteoService is the Open-Meteo implementation of WeatherService.
// Requests are throttled client-side with a token-bucket rate limiter.
type OpenMeteoService struct {
	forecastURL string
	geocodeURL  string
	httpClient  *http.Client
	limiter     *rate.Limiter
}

// NewOpenMeteoService creates a new OpenMeteoService.
// rps is the maximum requests per second allowed and burst the maximum burst size.
func NewOpenMeteoService(forecastURL, geocodeURL string, httpClient *http.Client, rps float64, burst int) *OpenMeteoService {
	return &OpenMeteoService{
		forecastURL: forecastURL,
		geocodeURL:  geocodeURL,
		httpClient:  httpClient,
		limiter:     rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// FetchForecast retrieves current conditions plus hourly and daily forecast
// blocks for the given coordinates. A single attempt is made; any transport,
// status or decode failure is returned to the caller.
func (s *OpenMeteoService) FetchForecast(ctx context.Context, latitude, longitude float64, forecastDays int) (*ForecastPayload, error) {
	baseURL, err := url.Parse(s.forecastURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse forecast URL: %w", err)
	}

	q := baseURL.Query()
	q.Set("latitude", fmt.Sprintf("%.4f", latitude))
	q.Set("longitude", fmt.Sprintf("%.4f", longitude))
	q.Set("current", "temperature_2m,relative_humidity_2m,apparent_temperature,is_day,precipitation,rain,showers,snowfall,weather_code,cloud_cover,pressure_msl,surface_pressure,wind_speed_10m,wind_direction_10m,wind_gusts_10m")
	q.Set("hourly", "temperature_2m,relative_humidity_2m,apparent_temperature,precipitation_probability,precipitation,weather_code,wind_speed_10m")
	q.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min,apparent_temperature_max,apparent_temperature_min,precipitation_sum,rain_sum,precipitation_probability_max,wind_speed_10m_max,wind_gusts_10m_max,wind_direction_10m_dominant")
	q.Set("timezone", "auto")
	q.Set("forecast_days", fmt.Sprintf("%d", forecastDays))
	baseURL.RawQuery = q.Encode()

	var payload ForecastPayload
	if err := s.performRequest(ctx, baseURL.String(), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SearchLocations queries the geocoding endpoint for city name matches.
// An empty slice (not an error) is returned when the provider finds nothing.
func (s *OpenMeteoService) SearchLocations(ctx context.Context, name, countryCode string) ([]LocationCandidate, error) {
	baseURL, err := url.Parse(s.geocodeURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse geocode URL: %w", err)
	}

	q := baseURL.Query()
	q.Set("name", name)
	q.Set("count", "10")
	q.Set("language", "pt")
	q.Set("format", "json")
	if countryCode != "" {
		q.Set("country", countryCode)
	}
	baseURL.RawQuery = q.Encode()

	var response geocodingResponse
	if err := s.performRequest(ctx, baseURL.String(), &response); err != nil {
		return nil, err
	}

	candidates := make([]LocationCandidate, 0, len(response.Results))
	for _, result := range response.Results {
		candidates = append(candidates, LocationCandidate{
			Name:        result.Name,
			Latitude:    result.Latitude,
			Longitude:   result.Longitude,
			Country:     result.Country,
			CountryCode: result.CountryCode,
			Region:      result.Admin1,
			Timezone:    result.Timezone,
		})
	}
	return candidates, nil
}

// CheckHealth verifies that the provider is reachable by fetching a one-day
// forecast for a fixed reference coordinate.
func (s *OpenMeteoService) CheckHealth(ctx context.Context) bool {
	payload, err := s.FetchForecast(ctx, healthCheckLatitude, healthCheckLongitude, 1)
	return err == nil && payload != nil
}

// performRequest waits for rate limiter permission, executes the GET request
// and decodes the JSON body into target.
func (s *OpenMeteoService) performRequest(ctx context.Context, requestURL string, target any) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait canceled: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("open-meteo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("open-meteo request returned non-200 status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode open-meteo response: %w", err)
	}
	return nil
}

// The following structs represent the structure of the Open-Meteo geocoding
// API JSON response.
type geocodingResponse struct {
	Results []geocodingResult `json:"results"`
}

type geocodingResult struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Admin1      string  `json:"admin1"`
	Timezone    string  `json:"timezone"`
}
