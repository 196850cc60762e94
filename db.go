package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"weathermap/internal/database"
)

// ConnectDB establishes a connection to the PostgreSQL database using the
// connection string in the apiConfig struct. It initializes the dbQueries
// field with a sqlc-generated Queries struct, which provides type-safe methods
// for all database operations. This method should be called during application
// startup to ensure that the database is reachable before handling any requests.
func (cfg *apiConfig) ConnectDB() error {
	db, err := cfg.newDBClientFunc("postgres", cfg.dbURL)
	if err != nil {
		cfg.logger.Error("couldn't prepare connection to database", "error", err)
		return err
	}
	if err := db.Ping(); err != nil {
		cfg.logger.Error("couldn't connect to database", "error", err)
		return err
	}
	cfg.db = db
	cfg.dbQueries = database.New(db)
	cfg.logger.Info("connected to database")
	return nil
}

// dbQuerier is an interface that abstracts all database operations.
// It is implemented by the sqlc-generated Queries struct, allowing for dependency
// injection and easy mocking in tests. This decouples business logic from the data layer.
type dbQuerier interface {
	CompareLocations(ctx context.Context, patterns []string) ([]database.CompareLocationsRow, error)
	CreateDailyForecast(ctx context.Context, arg database.CreateDailyForecastParams) (database.DailyForecast, error)
	CreateWeatherHistory(ctx context.Context, arg database.CreateWeatherHistoryParams) (database.WeatherHistory, error)
	DeleteWeatherHistoriesBefore(ctx context.Context, createdAt time.Time) (int64, error)
	DeleteWeatherHistory(ctx context.Context, id uuid.UUID) (int64, error)
	GetDailyForecasts(ctx context.Context, weatherHistoryID uuid.UUID) ([]database.DailyForecast, error)
	GetDatabaseHealth(ctx context.Context) (database.GetDatabaseHealthRow, error)
	GetForecastsForLocation(ctx context.Context, arg database.GetForecastsForLocationParams) ([]database.DailyForecast, error)
	GetLocationStats(ctx context.Context, createdAt time.Time) ([]database.GetLocationStatsRow, error)
	GetTemperatureTrends(ctx context.Context, arg database.GetTemperatureTrendsParams) ([]database.GetTemperatureTrendsRow, error)
	GetWeatherHistoriesNear(ctx context.Context, arg database.GetWeatherHistoriesNearParams) ([]database.WeatherHistory, error)
	GetWeatherHistory(ctx context.Context, id uuid.UUID) (database.WeatherHistory, error)
	ListWeatherHistories(ctx context.Context, limit int32) ([]database.WeatherHistory, error)
	SearchWeatherHistoriesByLocation(ctx context.Context, locationName string) ([]database.WeatherHistory, error)
	UpdateWeatherHistoryLocation(ctx context.Context, arg database.UpdateWeatherHistoryLocationParams) (database.WeatherHistory, error)
}
