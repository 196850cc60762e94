package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"weathermap/internal/database"
)

// --- Mocks ---

// newTestConfig returns an apiConfig with a discarded logger, suitable as a
// base for handler and helper tests.
func newTestConfig() *apiConfig {
	return &apiConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// mockWeatherService is a mock for the WeatherService interface. It fails the
// test if a method without an injected Func is called.
type mockWeatherService struct {
	t *testing.T

	FetchForecastFunc   func(ctx context.Context, latitude, longitude float64, forecastDays int) (*ForecastPayload, error)
	SearchLocationsFunc func(ctx context.Context, name, countryCode string) ([]LocationCandidate, error)
	CheckHealthFunc     func(ctx context.Context) bool
}

func (m *mockWeatherService) FetchForecast(ctx context.Context, latitude, longitude float64, forecastDays int) (*ForecastPayload, error) {
	if m.FetchForecastFunc != nil {
		return m.FetchForecastFunc(ctx, latitude, longitude, forecastDays)
	}
	if m.t != nil {
		m.t.Fatalf("unexpected call to mockWeatherService.FetchForecast")
	}
	return nil, errors.New("FetchForecastFunc not implemented in mock")
}

func (m *mockWeatherService) SearchLocations(ctx context.Context, name, countryCode string) ([]LocationCandidate, error) {
	if m.SearchLocationsFunc != nil {
		return m.SearchLocationsFunc(ctx, name, countryCode)
	}
	if m.t != nil {
		m.t.Fatalf("unexpected call to mockWeatherService.SearchLocations")
	}
	return nil, errors.New("SearchLocationsFunc not implemented in mock")
}

func (m *mockWeatherService) CheckHealth(ctx context.Context) bool {
	if m.CheckHealthFunc != nil {
		return m.CheckHealthFunc(ctx)
	}
	if m.t != nil {
		m.t.Fatalf("unexpected call to mockWeatherService.CheckHealth")
	}
	return false
}

// mockQuerier is a comprehensive, safe mock for the dbQuerier interface.
// It fails the test if any unexpected method is called.
type mockQuerier struct {
	t *testing.T

	CompareLocationsFunc                 func(ctx context.Context, patterns []string) ([]database.CompareLocationsRow, error)
	CreateDailyForecastFunc              func(ctx context.Context, arg database.CreateDailyForecastParams) (database.DailyForecast, error)
	CreateWeatherHistoryFunc             func(ctx context.Context, arg database.CreateWeatherHistoryParams) (database.WeatherHistory, error)
	DeleteWeatherHistoriesBeforeFunc     func(ctx context.Context, createdAt time.Time) (int64, error)
	DeleteWeatherHistoryFunc             func(ctx context.Context, id uuid.UUID) (int64, error)
	GetDailyForecastsFunc                func(ctx context.Context, weatherHistoryID uuid.UUID) ([]database.DailyForecast, error)
	GetDatabaseHealthFunc                func(ctx context.Context) (database.GetDatabaseHealthRow, error)
	GetForecastsForLocationFunc          func(ctx context.Context, arg database.GetForecastsForLocationParams) ([]database.DailyForecast, error)
	GetLocationStatsFunc                 func(ctx context.Context, createdAt time.Time) ([]database.GetLocationStatsRow, error)
	GetTemperatureTrendsFunc             func(ctx context.Context, arg database.GetTemperatureTrendsParams) ([]database.GetTemperatureTrendsRow, error)
	GetWeatherHistoriesNearFunc          func(ctx context.Context, arg database.GetWeatherHistoriesNearParams) ([]database.WeatherHistory, error)
	GetWeatherHistoryFunc                func(ctx context.Context, id uuid.UUID) (database.WeatherHistory, error)
	ListWeatherHistoriesFunc             func(ctx context.Context, limit int32) ([]database.WeatherHistory, error)
	SearchWeatherHistoriesByLocationFunc func(ctx context.Context, locationName string) ([]database.WeatherHistory, error)
	UpdateWeatherHistoryLocationFunc     func(ctx context.Context, arg database.UpdateWeatherHistoryLocationParams) (database.WeatherHistory, error)
}

func (m *mockQuerier) fail(method string) {
	m.t.Fatalf("unexpected call to mockQuerier method: %s", method)
}

func (m *mockQuerier) CompareLocations(ctx context.Context, patterns []string) ([]database.CompareLocationsRow, error) {
	if m.CompareLocationsFunc != nil {
		return m.CompareLocationsFunc(ctx, patterns)
	}
	m.fail("CompareLocations")
	return nil, nil
}
func (m *mockQuerier) CreateDailyForecast(ctx context.Context, arg database.CreateDailyForecastParams) (database.DailyForecast, error) {
	if m.CreateDailyForecastFunc != nil {
		return m.CreateDailyForecastFunc(ctx, arg)
	}
	m.fail("CreateDailyForecast")
	return database.DailyForecast{}, nil
}
func (m *mockQuerier) CreateWeatherHistory(ctx context.Context, arg database.CreateWeatherHistoryParams) (database.WeatherHistory, error) {
	if m.CreateWeatherHistoryFunc != nil {
		return m.CreateWeatherHistoryFunc(ctx, arg)
	}
	m.fail("CreateWeatherHistory")
	return database.WeatherHistory{}, nil
}
func (m *mockQuerier) DeleteWeatherHistoriesBefore(ctx context.Context, createdAt time.Time) (int64, error) {
	if m.DeleteWeatherHistoriesBeforeFunc != nil {
		return m.DeleteWeatherHistoriesBeforeFunc(ctx, createdAt)
	}
	m.fail("DeleteWeatherHistoriesBefore")
	return 0, nil
}
func (m *mockQuerier) DeleteWeatherHistory(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteWeatherHistoryFunc != nil {
		return m.DeleteWeatherHistoryFunc(ctx, id)
	}
	m.fail("DeleteWeatherHistory")
	return 0, nil
}
func (m *mockQuerier) GetDailyForecasts(ctx context.Context, weatherHistoryID uuid.UUID) ([]database.DailyForecast, error) {
	if m.GetDailyForecastsFunc != nil {
		return m.GetDailyForecastsFunc(ctx, weatherHistoryID)
	}
	m.fail("GetDailyForecasts")
	return nil, nil
}
func (m *mockQuerier) GetDatabaseHealth(ctx context.Context) (database.GetDatabaseHealthRow, error) {
	if m.GetDatabaseHealthFunc != nil {
		return m.GetDatabaseHealthFunc(ctx)
	}
	m.fail("GetDatabaseHealth")
	return database.GetDatabaseHealthRow{}, nil
}
func (m *mockQuerier) GetForecastsForLocation(ctx context.Context, arg database.GetForecastsForLocationParams) ([]database.DailyForecast, error) {
	if m.GetForecastsForLocationFunc != nil {
		return m.GetForecastsForLocationFunc(ctx, arg)
	}
	m.fail("GetForecastsForLocation")
	return nil, nil
}
func (m *mockQuerier) GetLocationStats(ctx context.Context, createdAt time.Time) ([]database.GetLocationStatsRow, error) {
	if m.GetLocationStatsFunc != nil {
		return m.GetLocationStatsFunc(ctx, createdAt)
	}
	m.fail("GetLocationStats")
	return nil, nil
}
func (m *mockQuerier) GetTemperatureTrends(ctx context.Context, arg database.GetTemperatureTrendsParams) ([]database.GetTemperatureTrendsRow, error) {
	if m.GetTemperatureTrendsFunc != nil {
		return m.GetTemperatureTrendsFunc(ctx, arg)
	}
	m.fail("GetTemperatureTrends")
	return nil, nil
}
func (m *mockQuerier) GetWeatherHistoriesNear(ctx context.Context, arg database.GetWeatherHistoriesNearParams) ([]database.WeatherHistory, error) {
	if m.GetWeatherHistoriesNearFunc != nil {
		return m.GetWeatherHistoriesNearFunc(ctx, arg)
	}
	m.fail("GetWeatherHistoriesNear")
	return nil, nil
}
func (m *mockQuerier) GetWeatherHistory(ctx context.Context, id uuid.UUID) (database.WeatherHistory, error) {
	if m.GetWeatherHistoryFunc != nil {
		return m.GetWeatherHistoryFunc(ctx, id)
	}
	m.fail("GetWeatherHistory")
	return database.WeatherHistory{}, nil
}
func (m *mockQuerier) ListWeatherHistories(ctx context.Context, limit int32) ([]database.WeatherHistory, error) {
	if m.ListWeatherHistoriesFunc != nil {
		return m.ListWeatherHistoriesFunc(ctx, limit)
	}
	m.fail("ListWeatherHistories")
	return nil, nil
}
func (m *mockQuerier) SearchWeatherHistoriesByLocation(ctx context.Context, locationName string) ([]database.WeatherHistory, error) {
	if m.SearchWeatherHistoriesByLocationFunc != nil {
		return m.SearchWeatherHistoriesByLocationFunc(ctx, locationName)
	}
	m.fail("SearchWeatherHistoriesByLocation")
	return nil, nil
}
func (m *mockQuerier) UpdateWeatherHistoryLocation(ctx context.Context, arg database.UpdateWeatherHistoryLocationParams) (database.WeatherHistory, error) {
	if m.UpdateWeatherHistoryLocationFunc != nil {
		return m.UpdateWeatherHistoryLocationFunc(ctx, arg)
	}
	m.fail("UpdateWeatherHistoryLocation")
	return database.WeatherHistory{}, nil
}
