package main

import (
	"net/http"
	"os"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := NewAPIConfig(os.Stdout)
	if err != nil {
		os.Stderr.WriteString("configuration error: " + err.Error() + "\n")
		os.Exit(1)
	}
	cfg.logger.Debug("configuration loaded")

	if err := cfg.ConnectDB(); err != nil {
		os.Exit(1)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/weather/fetch-and-save/city/{city}", cfg.handlerFetchAndSaveCity)
	mux.HandleFunc("POST /api/weather/fetch-and-save/coordinates", cfg.handlerFetchAndSaveCoordinates)

	mux.HandleFunc("GET /api/weather/history", cfg.handlerHistory)
	mux.HandleFunc("GET /api/weather/saved/{id}", cfg.handlerGetSaved)
	mux.HandleFunc("GET /api/weather/saved/near", cfg.handlerGetSavedNear)
	mux.HandleFunc("GET /api/weather/saved/location/{name}", cfg.handlerGetSavedByLocation)
	mux.HandleFunc("PUT /api/weather/saved/{id}/location", cfg.handlerUpdateLocation)
	mux.HandleFunc("DELETE /api/weather/saved/{id}", cfg.handlerDeleteSaved)
	mux.HandleFunc("DELETE /api/weather/cleanup", cfg.handlerCleanup)

	mux.HandleFunc("GET /api/weather/analytics/locations-stats", cfg.handlerLocationsStats)
	mux.HandleFunc("GET /api/weather/analytics/temperature-trends/{location}", cfg.handlerTemperatureTrends)
	mux.HandleFunc("POST /api/weather/analytics/location-comparison", cfg.handlerLocationComparison)
	mux.HandleFunc("GET /api/weather/analytics/forecast-trends/{location}", cfg.handlerForecastTrends)
	mux.HandleFunc("GET /api/weather/analytics/database-health", cfg.handlerDatabaseHealth)

	mux.HandleFunc("GET /api/geocode", cfg.handlerGeocode)
	mux.HandleFunc("GET /api/health", cfg.handlerHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    ":" + cfg.port,
		Handler: corsMiddleware(metricsMiddleware(mux)),
	}

	cfg.logger.Info("starting server", "port", cfg.port)
	if err := server.ListenAndServe(); err != nil {
		cfg.logger.Error("server startup failed", "error", err)
		os.Exit(1)
	}
}
