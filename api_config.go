package main

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// apiConfig holds the application's dependencies and configuration. It is
// assembled once at startup and shared by all handlers.
type apiConfig struct {
	db              *sql.DB
	dbQueries       dbQuerier
	weather         WeatherService
	dbURL           string
	newDBClientFunc func(driverName, dataSourceName string) (*sql.DB, error)
	port            string
	logger          *slog.Logger
}

// getRequiredEnv retrieves an environment variable by key, and errors if it's not set.
func getRequiredEnv(key string) (string, error) {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return "", fmt.Errorf("environment variable %s must be set", key)
	}
	return val, nil
}

// getEnv retrieves an environment variable by key, with a fallback value.
func getEnv(key, fallback string, logger *slog.Logger) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	logger.Info("environment variable not set, using fallback", "key", key, "fallback", fallback)
	return fallback
}

// getEnvAsInt retrieves an environment variable as an integer, with a fallback value.
func getEnvAsInt(key string, fallback int, logger *slog.Logger) int {
	valStr, ok := os.LookupEnv(key)
	if !ok || valStr == "" {
		logger.Info("environment variable not set, using fallback", "key", key, "fallback", fallback)
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		logger.Warn("invalid integer value for environment variable, using fallback", "key", key, "value", valStr, "error", err)
		return fallback
	}
	return val
}

// NewAPIConfig reads the environment and builds the application configuration.
// Log output is written to logOut, which lets tests silence it with io.Discard.
func NewAPIConfig(logOut io.Writer) (*apiConfig, error) {
	devModeStr := os.Getenv("DEV_MODE")
	devMode, err := strconv.ParseBool(devModeStr)
	if err != nil {
		devMode = false
	}

	var logger *slog.Logger
	if devMode {
		logger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		logger = slog.New(slog.NewJSONHandler(logOut, nil))
	}

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on environment variables")
	}

	dbURL, err := getRequiredEnv("DB_URL")
	if err != nil {
		return nil, err
	}
	forecastURL, err := getRequiredEnv("OMETEO_FORECAST_URL")
	if err != nil {
		return nil, err
	}
	geocodeURL, err := getRequiredEnv("OMETEO_GEOCODE_URL")
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	providerRPS := getEnvAsInt("PROVIDER_RPS", 5, logger)
	providerBurst := getEnvAsInt("PROVIDER_BURST", 5, logger)

	cfg := apiConfig{
		weather:         NewOpenMeteoService(forecastURL, geocodeURL, httpClient, float64(providerRPS), providerBurst),
		dbURL:           dbURL,
		newDBClientFunc: sql.Open,
		port:            getEnv("PORT", "8080", logger),
		logger:          logger,
	}

	return &cfg, nil
}
