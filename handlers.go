package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// This file contains the HTTP handlers for the application. Each handler
// validates its inputs, delegates to the persistence and analytics helpers,
// and writes a JSON response. Validation failures are 400s, missing records
// and unreachable provider data are 404s, and persistence failures are 500s.

const (
	maxForecastDays   = 7
	maxHistoryLimit   = 100
	maxAnalyticsDays  = 365
	maxComparisonSize = 10
)

// intQueryParam reads an integer query parameter, returning fallback when the
// parameter is absent.
func intQueryParam(r *http.Request, key string, fallback int) (int, error) {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return fallback, nil
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q", key, valStr)
	}
	return val, nil
}

// forecastDaysParam validates the forecastDays query parameter before any
// network call is made.
func forecastDaysParam(r *http.Request) (int, error) {
	days, err := intQueryParam(r, "forecastDays", maxForecastDays)
	if err != nil {
		return 0, err
	}
	if days < 1 || days > maxForecastDays {
		return 0, fmt.Errorf("forecastDays must be between 1 and %d", maxForecastDays)
	}
	return days, nil
}

// handlerFetchAndSaveCity geocodes a city name, fetches its forecast and
// persists the normalized record. The first geocoding candidate wins.
func (cfg *apiConfig) handlerFetchAndSaveCity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	city := r.PathValue("city")
	countryCode := r.URL.Query().Get("countryCode")

	days, err := forecastDaysParam(r)
	if err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	cfg.logger.Debug("fetch-and-save by city", "city", city, "country_code", countryCode, "days", days)

	candidates, err := cfg.weather.SearchLocations(ctx, city, countryCode)
	if err != nil {
		cfg.respondWithError(w, http.StatusNotFound, fmt.Sprintf("Could not geocode city '%s'", city), err)
		return
	}
	if len(candidates) == 0 {
		cfg.respondWithError(w, http.StatusNotFound, fmt.Sprintf("Location '%s' not found", city), nil)
		return
	}
	candidate := candidates[0]

	payload, err := cfg.weather.FetchForecast(ctx, candidate.Latitude, candidate.Longitude, days)
	if err != nil {
		cfg.respondWithError(w, http.StatusNotFound, fmt.Sprintf("Could not retrieve weather data for '%s'", city), err)
		return
	}

	report := normalizeForecast(payload)
	report.LocationName = fmt.Sprintf("%s, %s", candidate.Name, candidate.Country)

	saved, err := cfg.saveWeather(ctx, report)
	if err != nil {
		cfg.respondWithError(w, http.StatusInternalServerError, "Failed to save weather data", err)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, successResponse{
		Success: true,
		Message: fmt.Sprintf("Weather data for %s saved successfully", saved.LocationName),
		Data:    saved,
	})
}

// handlerFetchAndSaveCoordinates fetches and persists a forecast for raw
// coordinates. There is no reverse geocoding: the record is labeled with the
// coordinates themselves.
func (cfg *apiConfig) handlerFetchAndSaveCoordinates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	lat, err := strconv.ParseFloat(r.URL.Query().Get("latitude"), 64)
	if err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, "Invalid latitude", err)
		return
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("longitude"), 64)
	if err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, "Invalid longitude", err)
		return
	}
	days, err := forecastDaysParam(r)
	if err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	cfg.logger.Debug("fetch-and-save by coordinates", "lat", lat, "lon", lon, "days", days)

	payload, err := cfg.weather.FetchForecast(ctx, lat, lon, days)
	if err != nil {
		cfg.respondWithError(w, http.StatusNotFound, "Could not retrieve weather data for the given coordinates", err)
		return
	}

	report := normalizeForecast(payload)
	report.LocationName = fmt.Sprintf("Lat: %.4f, Lon: %.4f", lat, lon)

	saved, err := cfg.saveWeather(ctx, report)
	if err != nil {
		cfg.respondWithError(w, http.StatusInternalServerError, "Failed to save weather data", err)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, successResponse{
		Success: true,
		Message: fmt.Sprintf("Weather data for %s saved successfully", saved.LocationName),
		Data:    saved,
	})
}

// handlerHistory returns the most recently saved records.
func (cfg *apiConfig) handlerHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := intQueryParam(r, "limit", 50)
	if err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if limit < 1 || limit > maxHistoryLimit {
		cfg.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("limit must be between 1 and %d", maxHistoryLimit), nil)
		return
	}

	reports, err := cfg.listRecentReports(r.Context(), int32(limit))
	if err != nil {
		cfg.respondWithError(w, http.StatusInternalServerError, "Failed to retrieve weather history", err)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, successResponse{
		Success: true,
		Count:   len(reports),
		Data:    reports,
	})
}

// handlerGetSaved returns a single record by id.
func (cfg *apiConfig) handlerGetSaved(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, "Invalid record id", err)
		return
	}

	report, err := cfg.findReportByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			cfg.respondWithError(w, http.StatusNotFound, fmt.Sprintf("Weather record %s not found", id), nil)
			return
		}
		cfg.respondWithError(w, http.StatusInternalServerError, "Failed to retrieve weather record", err)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, successResponse{
		Success: true,
		Data:    report,
	})
}

// handlerGetSavedByLocation returns all records whose location name contains
// the given substring.
func (cfg *apiConfig) handlerGetSavedByLocation(w http.ResponseWriter, r *http.Request) {
	locationName := r.PathValue("name")

	reports, err := cfg.searchReportsByLocation(r.Context(), locationName)
	if err != nil {
		cfg.respondWithError(w, http.StatusInternalServerError, "Failed to search weather records", err)
		return
	}
	if len(reports) == 0 {
		cfg.respondWithError(w, http.StatusNotFound, fmt.Sprintf("No weather records found for location '%s'", locationName), nil)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, successResponse{
		Success: true,
		Count:   len(reports),
		Data:    reports,
	})
}

// handlerGetSavedNear returns records whose coordinates fall within the given
// tolerance of a point.
func (cfg *apiConfig) handlerGetSavedNear(w http.ResponseWriter, r *http.Request) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("latitude"), 64)
	if err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, "Invalid latitude", err)
		return
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("longitude"), 64)
	if err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, "Invalid longitude", err)
		return
	}

	tolerance := defaultCoordinateTolerance
	if tolStr := r.URL.Query().Get("tolerance"); tolStr != "" {
		tolerance, err = strconv.ParseFloat(tolStr, 64)
		if err != nil || tolerance <= 0 {
			cfg.respondWithError(w, http.StatusBadRequest, "Invalid tolerance", err)
			return
		}
	}

	reports, err := cfg.findReportsNear(r.Context(), lat, lon, tolerance)
	if err != nil {
		cfg.respondWithError(w, http.StatusInternalServerError, "Failed to search weather records", err)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, successResponse{
		Success: true,
		Count:   len(reports),
		Data:    reports,
	})
}

// handlerUpdateLocation renames the location label of a saved record.
func (cfg *apiConfig) handlerUpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, "Invalid record id", err)
		return
	}

	var body struct {
		LocationName string `json:"location_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if body.LocationName == "" {
		cfg.respondWithError(w, http.StatusBadRequest, "location_name must not be empty", nil)
		return
	}
	if len(body.LocationName) > 200 {
		cfg.respondWithError(w, http.StatusBadRequest, "location_name must be at most 200 characters", nil)
		return
	}

	report, err := cfg.renameReportLocation(r.Context(), id, body.LocationName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			cfg.respondWithError(w, http.StatusNotFound, fmt.Sprintf("Weather record %s not found", id), nil)
			return
		}
		cfg.respondWithError(w, http.StatusInternalServerError, "Failed to update weather record", err)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, successResponse{
		Success: true,
		Message: "Location name updated successfully",
		Data:    report,
	})
}

// handlerDeleteSaved deletes a record and, through the cascade, its forecasts.
func (cfg *apiConfig) handlerDeleteSaved(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, "Invalid record id", err)
		return
	}

	deleted, err := cfg.deleteReport(r.Context(), id)
	if err != nil {
		cfg.respondWithError(w, http.StatusInternalServerError, "Failed to delete weather record", err)
		return
	}
	if !deleted {
		cfg.respondWithError(w, http.StatusNotFound, fmt.Sprintf("Weather record %s not found", id), nil)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, successResponse{
		Success: true,
		Message: fmt.Sprintf("Weather record %s deleted successfully", id),
	})
}

// handlerCleanup removes all records older than daysOld days.
func (cfg *apiConfig) handlerCleanup(w http.ResponseWriter, r *http.Request) {
	daysOld, err := intQueryParam(r, "daysOld", 90)
	if err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if daysOld < 1 {
		cfg.respondWithError(w, http.StatusBadRequest, "daysOld must be greater than zero", nil)
		return
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -daysOld)
	deleted, err := cfg.deleteReportsBefore(r.Context(), cutoff)
	if err != nil {
		cfg.respondWithError(w, http.StatusInternalServerError, "Failed to clean up weather records", err)
		return
	}
	cfg.logger.Info("cleanup finished", "days_old", daysOld, "deleted", deleted)

	cfg.respondWithJSON(w, http.StatusOK, successResponse{
		Success: true,
		Message: fmt.Sprintf("Deleted %d weather records older than %d days", deleted, daysOld),
	})
}

// analyticsDaysParam validates the days query parameter for analytics endpoints.
func analyticsDaysParam(r *http.Request) (int, error) {
	days, err := intQueryParam(r, "days", 30)
	if err != nil {
		return 0, err
	}
	if days < 1 || days > maxAnalyticsDays {
		return 0, fmt.Errorf("days must be between 1 and %d", maxAnalyticsDays)
	}
	return days, nil
}

// handlerLocationsStats returns per-location aggregates over a trailing window.
func (cfg *apiConfig) handlerLocationsStats(w http.ResponseWriter, r *http.Request) {
	days, err := analyticsDaysParam(r)
	if err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	stats, err := cfg.getLocationStats(r.Context(), days)
	if err != nil {
		cfg.respondWithError(w, http.StatusInternalServerError, "Failed to compute location statistics", err)
		return
	}
	if len(stats) == 0 {
		cfg.respondWithError(w, http.StatusNotFound, fmt.Sprintf("No weather records found in the last %d days", days), nil)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, successResponse{
		Success: true,
		Count:   len(stats),
		Data:    stats,
	})
}

// handlerTemperatureTrends returns daily temperature aggregates for one location.
func (cfg *apiConfig) handlerTemperatureTrends(w http.ResponseWriter, r *http.Request) {
	locationName := r.PathValue("location")
	days, err := analyticsDaysParam(r)
	if err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	trends, err := cfg.getTemperatureTrends(r.Context(), locationName, days)
	if err != nil {
		cfg.respondWithError(w, http.StatusInternalServerError, "Failed to compute temperature trends", err)
		return
	}
	if len(trends) == 0 {
		cfg.respondWithError(w, http.StatusNotFound, fmt.Sprintf("No temperature data found for location '%s' in the last %d days", locationName, days), nil)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, successResponse{
		Success: true,
		Count:   len(trends),
		Data:    trends,
	})
}

// handlerLocationComparison compares aggregate statistics across locations.
func (cfg *apiConfig) handlerLocationComparison(w http.ResponseWriter, r *http.Request) {
	var body struct {
		LocationNames []string `json:"location_names"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if len(body.LocationNames) == 0 {
		cfg.respondWithError(w, http.StatusBadRequest, "location_names must not be empty", nil)
		return
	}
	if len(body.LocationNames) > maxComparisonSize {
		cfg.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("location_names must contain at most %d names", maxComparisonSize), nil)
		return
	}

	comparisons, err := cfg.compareLocations(r.Context(), body.LocationNames)
	if err != nil {
		cfg.respondWithError(w, http.StatusInternalServerError, "Failed to compare locations", err)
		return
	}
	if len(comparisons) == 0 {
		cfg.respondWithError(w, http.StatusNotFound, "No weather records found for the requested locations", nil)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, successResponse{
		Success: true,
		Count:   len(comparisons),
		Data:    comparisons,
	})
}

// handlerForecastTrends aggregates the stored daily forecasts for a location.
func (cfg *apiConfig) handlerForecastTrends(w http.ResponseWriter, r *http.Request) {
	locationName := r.PathValue("location")
	days, err := analyticsDaysParam(r)
	if err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	trends, err := cfg.getForecastTrends(r.Context(), locationName, days)
	if err != nil {
		cfg.respondWithError(w, http.StatusInternalServerError, "Failed to compute forecast trends", err)
		return
	}
	if trends.ForecastCount == 0 {
		cfg.respondWithError(w, http.StatusNotFound, fmt.Sprintf("No forecasts found for location '%s'", locationName), nil)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, successResponse{
		Success: true,
		Data:    trends,
	})
}

// handlerDatabaseHealth summarizes the history store.
func (cfg *apiConfig) handlerDatabaseHealth(w http.ResponseWriter, r *http.Request) {
	health, err := cfg.getDatabaseHealth(r.Context())
	if err != nil {
		cfg.respondWithError(w, http.StatusInternalServerError, "Failed to compute database health", err)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, successResponse{
		Success: true,
		Data:    health,
	})
}

// handlerGeocode exposes the geocoding search without persisting anything.
func (cfg *apiConfig) handlerGeocode(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		cfg.respondWithError(w, http.StatusBadRequest, "city query parameter is required", nil)
		return
	}
	countryCode := r.URL.Query().Get("countryCode")

	candidates, err := cfg.weather.SearchLocations(r.Context(), city, countryCode)
	if err != nil {
		cfg.respondWithError(w, http.StatusNotFound, fmt.Sprintf("Could not geocode city '%s'", city), err)
		return
	}
	if len(candidates) == 0 {
		cfg.respondWithError(w, http.StatusNotFound, fmt.Sprintf("Location '%s' not found", city), nil)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, successResponse{
		Success: true,
		Count:   len(candidates),
		Data:    candidates,
	})
}

// handlerHealth reports whether the forecast provider is reachable.
func (cfg *apiConfig) handlerHealth(w http.ResponseWriter, r *http.Request) {
	if !cfg.weather.CheckHealth(r.Context()) {
		cfg.respondWithError(w, http.StatusServiceUnavailable, "Weather provider is unreachable", nil)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, successResponse{
		Success: true,
		Message: "Weather provider is reachable",
	})
}
