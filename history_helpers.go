package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"weathermap/internal/database"
)

// This file contains the persistence helpers for weather history records.
// A record is a weather_histories row plus its daily_forecasts children; the
// helpers here keep that 1:N pair consistent on both the write and read paths.

const defaultCoordinateTolerance = 0.01

// saveWeather persists a WeatherReport atomically: the history row and all of
// its daily forecasts are inserted in a single transaction, so a partial
// record can never be observed.
func (cfg *apiConfig) saveWeather(ctx context.Context, report WeatherReport) (WeatherReport, error) {
	tx, err := cfg.db.BeginTx(ctx, nil)
	if err != nil {
		return WeatherReport{}, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := database.New(tx)

	dbHistory, err := qtx.CreateWeatherHistory(ctx, reportToCreateWeatherHistoryParams(report))
	if err != nil {
		return WeatherReport{}, fmt.Errorf("could not persist weather history: %w", err)
	}

	dbForecasts := make([]database.DailyForecast, 0, len(report.Daily))
	for _, outlook := range report.Daily {
		dbForecast, err := qtx.CreateDailyForecast(ctx, outlookToCreateDailyForecastParams(outlook, dbHistory.ID))
		if err != nil {
			return WeatherReport{}, fmt.Errorf("could not persist daily forecast for %s: %w", outlook.ForecastDate.Format("2006-01-02"), err)
		}
		dbForecasts = append(dbForecasts, dbForecast)
	}

	if err := tx.Commit(); err != nil {
		return WeatherReport{}, fmt.Errorf("could not commit weather record: %w", err)
	}

	cfg.logger.Debug("weather record saved", "location", dbHistory.LocationName, "forecasts", len(dbForecasts))
	return databaseWeatherHistoryToReport(dbHistory, dbForecasts), nil
}

// attachForecasts loads the daily forecasts for each history row and converts
// the pair into WeatherReports. Children come back ordered by forecast date
// regardless of insertion order.
func (cfg *apiConfig) attachForecasts(ctx context.Context, dbHistories []database.WeatherHistory) ([]WeatherReport, error) {
	reports := make([]WeatherReport, 0, len(dbHistories))
	for _, dbHistory := range dbHistories {
		dbForecasts, err := cfg.dbQueries.GetDailyForecasts(ctx, dbHistory.ID)
		if err != nil {
			return nil, fmt.Errorf("could not load forecasts for record %s: %w", dbHistory.ID, err)
		}
		reports = append(reports, databaseWeatherHistoryToReport(dbHistory, dbForecasts))
	}
	return reports, nil
}

// listRecentReports returns the most recently created records, newest first.
func (cfg *apiConfig) listRecentReports(ctx context.Context, limit int32) ([]WeatherReport, error) {
	dbHistories, err := cfg.dbQueries.ListWeatherHistories(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("could not list weather histories: %w", err)
	}
	return cfg.attachForecasts(ctx, dbHistories)
}

// findReportByID returns a single record with its forecasts.
func (cfg *apiConfig) findReportByID(ctx context.Context, id uuid.UUID) (WeatherReport, error) {
	dbHistory, err := cfg.dbQueries.GetWeatherHistory(ctx, id)
	if err != nil {
		return WeatherReport{}, err
	}
	dbForecasts, err := cfg.dbQueries.GetDailyForecasts(ctx, dbHistory.ID)
	if err != nil {
		return WeatherReport{}, fmt.Errorf("could not load forecasts for record %s: %w", dbHistory.ID, err)
	}
	return databaseWeatherHistoryToReport(dbHistory, dbForecasts), nil
}

// searchReportsByLocation returns all records whose location name contains the
// given substring, newest first.
func (cfg *apiConfig) searchReportsByLocation(ctx context.Context, locationName string) ([]WeatherReport, error) {
	dbHistories, err := cfg.dbQueries.SearchWeatherHistoriesByLocation(ctx, locationName)
	if err != nil {
		return nil, fmt.Errorf("could not search weather histories: %w", err)
	}
	return cfg.attachForecasts(ctx, dbHistories)
}

// findReportsNear returns records whose coordinates fall within tolerance
// degrees of the given point on both axes.
func (cfg *apiConfig) findReportsNear(ctx context.Context, latitude, longitude, tolerance float64) ([]WeatherReport, error) {
	dbHistories, err := cfg.dbQueries.GetWeatherHistoriesNear(ctx, database.GetWeatherHistoriesNearParams{
		Latitude:  latitude,
		Longitude: longitude,
		Tolerance: tolerance,
	})
	if err != nil {
		return nil, fmt.Errorf("could not query weather histories by coordinates: %w", err)
	}
	return cfg.attachForecasts(ctx, dbHistories)
}

// renameReportLocation updates the stored location label of a record.
func (cfg *apiConfig) renameReportLocation(ctx context.Context, id uuid.UUID, locationName string) (WeatherReport, error) {
	dbHistory, err := cfg.dbQueries.UpdateWeatherHistoryLocation(ctx, database.UpdateWeatherHistoryLocationParams{
		ID:           id,
		LocationName: locationName,
	})
	if err != nil {
		return WeatherReport{}, err
	}
	dbForecasts, err := cfg.dbQueries.GetDailyForecasts(ctx, dbHistory.ID)
	if err != nil {
		return WeatherReport{}, fmt.Errorf("could not load forecasts for record %s: %w", dbHistory.ID, err)
	}
	return databaseWeatherHistoryToReport(dbHistory, dbForecasts), nil
}

// deleteReport removes a record and, through the cascade, its forecasts.
// It reports whether a record was actually deleted.
func (cfg *apiConfig) deleteReport(ctx context.Context, id uuid.UUID) (bool, error) {
	affected, err := cfg.dbQueries.DeleteWeatherHistory(ctx, id)
	if err != nil {
		return false, fmt.Errorf("could not delete weather history: %w", err)
	}
	return affected > 0, nil
}

// deleteReportsBefore removes every record created strictly before the cutoff
// and returns the number of deleted records.
func (cfg *apiConfig) deleteReportsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	affected, err := cfg.dbQueries.DeleteWeatherHistoriesBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("could not delete old weather histories: %w", err)
	}
	return affected, nil
}
