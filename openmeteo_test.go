package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func newTestService(forecastURL, geocodeURL string) *OpenMeteoService {
	return NewOpenMeteoService(forecastURL, geocodeURL, &http.Client{}, 100, 100)
}

func TestFetchForecastSuccess(t *testing.T) {
	fixture, err := os.ReadFile("testdata/forecast_response.json")
	if err != nil {
		t.Fatalf("could not read fixture: %v", err)
	}

	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"latitude":      r.URL.Query().Get("latitude"),
			"longitude":     r.URL.Query().Get("longitude"),
			"forecast_days": r.URL.Query().Get("forecast_days"),
			"timezone":      r.URL.Query().Get("timezone"),
			"current":       r.URL.Query().Get("current"),
			"daily":         r.URL.Query().Get("daily"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(fixture)
	}))
	defer server.Close()

	service := newTestService(server.URL, server.URL)
	payload, err := service.FetchForecast(context.Background(), -23.5505, -46.6333, 3)
	if err != nil {
		t.Fatalf("FetchForecast returned error: %v", err)
	}

	if gotQuery["latitude"] != "-23.5505" {
		t.Errorf("latitude param = %q, want %q", gotQuery["latitude"], "-23.5505")
	}
	if gotQuery["longitude"] != "-46.6333" {
		t.Errorf("longitude param = %q, want %q", gotQuery["longitude"], "-46.6333")
	}
	if gotQuery["forecast_days"] != "3" {
		t.Errorf("forecast_days param = %q, want %q", gotQuery["forecast_days"], "3")
	}
	if gotQuery["timezone"] != "auto" {
		t.Errorf("timezone param = %q, want %q", gotQuery["timezone"], "auto")
	}
	if gotQuery["current"] == "" || gotQuery["daily"] == "" {
		t.Error("expected current and daily variable lists to be requested")
	}

	if payload.Timezone != "America/Sao_Paulo" {
		t.Errorf("payload.Timezone = %q, want %q", payload.Timezone, "America/Sao_Paulo")
	}
	if payload.Current.Temperature2m != 22.4 {
		t.Errorf("payload.Current.Temperature2m = %v, want 22.4", payload.Current.Temperature2m)
	}
	if len(payload.Daily.Time) != 3 {
		t.Errorf("len(payload.Daily.Time) = %d, want 3", len(payload.Daily.Time))
	}
}

func TestFetchForecastCoordinateRounding(t *testing.T) {
	var gotLat, gotLon string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLat = r.URL.Query().Get("latitude")
		gotLon = r.URL.Query().Get("longitude")
		w.Write([]byte(`{"latitude": 51.5072, "longitude": -0.1276}`))
	}))
	defer server.Close()

	service := newTestService(server.URL, server.URL)
	if _, err := service.FetchForecast(context.Background(), 51.50722431, -0.12757863, 7); err != nil {
		t.Fatalf("FetchForecast returned error: %v", err)
	}

	if gotLat != "51.5072" {
		t.Errorf("latitude param = %q, want %q", gotLat, "51.5072")
	}
	if gotLon != "-0.1276" {
		t.Errorf("longitude param = %q, want %q", gotLon, "-0.1276")
	}
}

func TestFetchForecastServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}))
	defer server.Close()

	service := newTestService(server.URL, server.URL)
	if _, err := service.FetchForecast(context.Background(), 0, 0, 1); err == nil {
		t.Fatal("expected an error for a non-200 response, got nil")
	}
}

func TestFetchForecastMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"latitude": `))
	}))
	defer server.Close()

	service := newTestService(server.URL, server.URL)
	if _, err := service.FetchForecast(context.Background(), 0, 0, 1); err == nil {
		t.Fatal("expected an error for malformed JSON, got nil")
	}
}

func TestSearchLocationsSuccess(t *testing.T) {
	fixture, err := os.ReadFile("testdata/geocode_response.json")
	if err != nil {
		t.Fatalf("could not read fixture: %v", err)
	}

	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"name":     r.URL.Query().Get("name"),
			"count":    r.URL.Query().Get("count"),
			"language": r.URL.Query().Get("language"),
			"format":   r.URL.Query().Get("format"),
			"country":  r.URL.Query().Get("country"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(fixture)
	}))
	defer server.Close()

	service := newTestService(server.URL, server.URL)
	candidates, err := service.SearchLocations(context.Background(), "São Paulo", "BR")
	if err != nil {
		t.Fatalf("SearchLocations returned error: %v", err)
	}

	if gotQuery["name"] != "São Paulo" {
		t.Errorf("name param = %q, want %q", gotQuery["name"], "São Paulo")
	}
	if gotQuery["count"] != "10" {
		t.Errorf("count param = %q, want %q", gotQuery["count"], "10")
	}
	if gotQuery["language"] != "pt" {
		t.Errorf("language param = %q, want %q", gotQuery["language"], "pt")
	}
	if gotQuery["format"] != "json" {
		t.Errorf("format param = %q, want %q", gotQuery["format"], "json")
	}
	if gotQuery["country"] != "BR" {
		t.Errorf("country param = %q, want %q", gotQuery["country"], "BR")
	}

	if len(candidates) != 2 {
		t.Fatalf("len(candidates) = %d, want 2", len(candidates))
	}
	first := candidates[0]
	if first.Name != "São Paulo" {
		t.Errorf("candidates[0].Name = %q, want %q", first.Name, "São Paulo")
	}
	if first.CountryCode != "BR" {
		t.Errorf("candidates[0].CountryCode = %q, want %q", first.CountryCode, "BR")
	}
	if first.Region != "São Paulo" {
		t.Errorf("candidates[0].Region = %q, want %q", first.Region, "São Paulo")
	}
}

func TestSearchLocationsZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"generationtime_ms": 0.5}`))
	}))
	defer server.Close()

	service := newTestService(server.URL, server.URL)
	candidates, err := service.SearchLocations(context.Background(), "Nowhereville", "")
	if err != nil {
		t.Fatalf("SearchLocations returned error: %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("len(candidates) = %d, want 0", len(candidates))
	}
}

func TestSearchLocationsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	service := newTestService(server.URL, server.URL)
	if _, err := service.SearchLocations(context.Background(), "London", ""); err == nil {
		t.Fatal("expected an error for a non-200 response, got nil")
	}
}

func TestCheckHealth(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		var gotDays string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotDays = r.URL.Query().Get("forecast_days")
			w.Write([]byte(`{"latitude": -23.5505, "longitude": -46.6333, "current": {"time": "2025-06-10T14:30", "temperature_2m": 22.4}}`))
		}))
		defer server.Close()

		service := newTestService(server.URL, server.URL)
		if !service.CheckHealth(context.Background()) {
			t.Error("CheckHealth = false, want true")
		}
		if gotDays != "1" {
			t.Errorf("forecast_days param = %q, want %q", gotDays, "1")
		}
	})

	t.Run("Unhealthy", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		service := newTestService(server.URL, server.URL)
		if service.CheckHealth(context.Background()) {
			t.Error("CheckHealth = true, want false")
		}
	})
}
