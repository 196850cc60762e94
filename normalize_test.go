package main

import (
	"embed"
	"encoding/json"
	"testing"
	"time"
)

//go:embed testdata/forecast_response.json
var forecastTestData embed.FS

func loadForecastPayload(t *testing.T) *ForecastPayload {
	t.Helper()
	data, err := forecastTestData.ReadFile("testdata/forecast_response.json")
	if err != nil {
		t.Fatalf("could not read test data: %v", err)
	}
	var payload ForecastPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("could not unmarshal test data: %v", err)
	}
	return &payload
}

func TestNormalizeForecast(t *testing.T) {
	payload := loadForecastPayload(t)
	report := normalizeForecast(payload)

	if report.Latitude != -23.5505 {
		t.Errorf("Latitude = %v, want -23.5505", report.Latitude)
	}
	if report.Longitude != -46.6333 {
		t.Errorf("Longitude = %v, want -46.6333", report.Longitude)
	}
	if report.Timezone != "America/Sao_Paulo" {
		t.Errorf("Timezone = %q, want %q", report.Timezone, "America/Sao_Paulo")
	}

	wantTime := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
	if !report.Current.Time.Equal(wantTime) {
		t.Errorf("Current.Time = %v, want %v", report.Current.Time, wantTime)
	}
	if report.Current.Temperature != 22.4 {
		t.Errorf("Current.Temperature = %v, want 22.4", report.Current.Temperature)
	}
	if report.Current.Humidity != 58 {
		t.Errorf("Current.Humidity = %v, want 58", report.Current.Humidity)
	}
	if !report.Current.IsDay {
		t.Error("Current.IsDay = false, want true")
	}
	if report.Current.WeatherDescription != "Partly cloudy" {
		t.Errorf("Current.WeatherDescription = %q, want %q", report.Current.WeatherDescription, "Partly cloudy")
	}
	if report.Current.WindGusts != 21.2 {
		t.Errorf("Current.WindGusts = %v, want 21.2", report.Current.WindGusts)
	}

	if len(report.Daily) != 3 {
		t.Fatalf("len(Daily) = %d, want 3", len(report.Daily))
	}
	first := report.Daily[0]
	if got := first.ForecastDate.Format("2006-01-02"); got != "2025-06-10" {
		t.Errorf("Daily[0].ForecastDate = %q, want %q", got, "2025-06-10")
	}
	if first.MaxTemperature != 23.1 {
		t.Errorf("Daily[0].MaxTemperature = %v, want 23.1", first.MaxTemperature)
	}
	last := report.Daily[2]
	if last.WeatherDescription != "Thunderstorm" {
		t.Errorf("Daily[2].WeatherDescription = %q, want %q", last.WeatherDescription, "Thunderstorm")
	}
	if last.PrecipitationProbabilityMax != 90 {
		t.Errorf("Daily[2].PrecipitationProbabilityMax = %v, want 90", last.PrecipitationProbabilityMax)
	}
	if last.MaxWindGusts != 48.2 {
		t.Errorf("Daily[2].MaxWindGusts = %v, want 48.2", last.MaxWindGusts)
	}

	if report.RetrievedAt.IsZero() {
		t.Error("RetrievedAt is zero, want current UTC time")
	}
	if report.RetrievedAt.Location() != time.UTC {
		t.Errorf("RetrievedAt location = %v, want UTC", report.RetrievedAt.Location())
	}
}

func TestNormalizeForecastUnparsableCurrentTime(t *testing.T) {
	payload := loadForecastPayload(t)
	payload.Current.Time = "not-a-timestamp"

	before := time.Now().UTC()
	report := normalizeForecast(payload)
	after := time.Now().UTC()

	if report.Current.Time.Before(before) || report.Current.Time.After(after) {
		t.Errorf("Current.Time = %v, want a current UTC timestamp between %v and %v", report.Current.Time, before, after)
	}
}

func TestNormalizeForecastSkipsUnparsableDates(t *testing.T) {
	payload := loadForecastPayload(t)
	payload.Daily.Time[1] = "garbage"

	report := normalizeForecast(payload)

	if len(report.Daily) != 2 {
		t.Fatalf("len(Daily) = %d, want 2", len(report.Daily))
	}
	if got := report.Daily[0].ForecastDate.Format("2006-01-02"); got != "2025-06-10" {
		t.Errorf("Daily[0].ForecastDate = %q, want %q", got, "2025-06-10")
	}
	if got := report.Daily[1].ForecastDate.Format("2006-01-02"); got != "2025-06-12" {
		t.Errorf("Daily[1].ForecastDate = %q, want %q", got, "2025-06-12")
	}
}

func TestNormalizeForecastSparseDailyArrays(t *testing.T) {
	payload := loadForecastPayload(t)
	payload.Daily.Temperature2mMax = payload.Daily.Temperature2mMax[:1]
	payload.Daily.WindGusts10mMax = nil

	report := normalizeForecast(payload)

	if len(report.Daily) != 3 {
		t.Fatalf("len(Daily) = %d, want 3", len(report.Daily))
	}
	if report.Daily[0].MaxTemperature != 23.1 {
		t.Errorf("Daily[0].MaxTemperature = %v, want 23.1", report.Daily[0].MaxTemperature)
	}
	if report.Daily[1].MaxTemperature != 0 {
		t.Errorf("Daily[1].MaxTemperature = %v, want 0", report.Daily[1].MaxTemperature)
	}
	if report.Daily[2].MaxWindGusts != 0 {
		t.Errorf("Daily[2].MaxWindGusts = %v, want 0", report.Daily[2].MaxWindGusts)
	}
}

func TestRound(t *testing.T) {
	testCases := []struct {
		val       float64
		precision int
		want      float64
	}{
		{1.23456, 2, 1.23},
		{3.14159, 3, 3.142},
		{-2.5, 0, -3},
		{10, 0, 10},
	}

	for _, tc := range testCases {
		if got := Round(tc.val, tc.precision); got != tc.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tc.val, tc.precision, got, tc.want)
		}
	}
}
