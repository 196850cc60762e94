package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"weathermap/internal/database"
)

var weatherHistoryColumns = []string{
	"id", "location_name", "latitude", "longitude", "timezone",
	"current_time_utc", "temperature_c", "apparent_temperature_c", "humidity", "is_day",
	"precipitation_mm", "rain_mm", "showers_mm", "snowfall_cm",
	"weather_code", "weather_description", "cloud_cover",
	"pressure_msl_hpa", "surface_pressure_hpa",
	"wind_speed_kmh", "wind_direction_deg", "wind_gusts_kmh",
	"retrieved_at", "created_at",
}

var dailyForecastColumns = []string{
	"id", "weather_history_id", "forecast_date", "weather_code", "weather_description",
	"max_temperature_c", "min_temperature_c",
	"apparent_temperature_max_c", "apparent_temperature_min_c",
	"precipitation_sum_mm", "rain_sum_mm", "precipitation_probability_max",
	"max_wind_speed_kmh", "max_wind_gusts_kmh", "dominant_wind_direction_deg",
	"created_at",
}

// sampleReport builds a WeatherReport with two forecast days, as the
// normalizer would produce it before persistence.
func sampleReport() WeatherReport {
	retrieved := time.Date(2025, 6, 10, 17, 30, 0, 0, time.UTC)
	return WeatherReport{
		LocationName: "São Paulo, Brasil",
		Latitude:     -23.5505,
		Longitude:    -46.6333,
		Timezone:     "America/Sao_Paulo",
		Current: CurrentConditions{
			Time:                time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC),
			Temperature:         22.4,
			ApparentTemperature: 21.9,
			Humidity:            58,
			IsDay:               true,
			WeatherCode:         2,
			WeatherDescription:  "Partly cloudy",
			CloudCover:          40,
			PressureMsl:         1018.2,
			SurfacePressure:     930.4,
			WindSpeed:           9.7,
			WindDirection:       152,
			WindGusts:           21.2,
		},
		Daily: []DailyOutlook{
			{
				ForecastDate:                time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
				WeatherCode:                 2,
				WeatherDescription:          "Partly cloudy",
				MaxTemperature:              23.1,
				MinTemperature:              14.6,
				PrecipitationProbabilityMax: 10,
				MaxWindSpeed:                12.4,
				MaxWindGusts:                27.0,
				DominantWindDirection:       148,
			},
			{
				ForecastDate:                time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
				WeatherCode:                 61,
				WeatherDescription:          "Slight rain",
				MaxTemperature:              19.4,
				MinTemperature:              13.9,
				PrecipitationSum:            4.2,
				RainSum:                     4.2,
				PrecipitationProbabilityMax: 65,
				MaxWindSpeed:                16.8,
				MaxWindGusts:                34.6,
				DominantWindDirection:       170,
			},
		},
		RetrievedAt: retrieved,
	}
}

func historyRowFromReport(report WeatherReport, id uuid.UUID, createdAt time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(weatherHistoryColumns).AddRow(
		id.String(), report.LocationName, report.Latitude, report.Longitude, report.Timezone,
		report.Current.Time, report.Current.Temperature, report.Current.ApparentTemperature,
		report.Current.Humidity, report.Current.IsDay,
		report.Current.Precipitation, report.Current.Rain, report.Current.Showers, report.Current.Snowfall,
		report.Current.WeatherCode, report.Current.WeatherDescription, report.Current.CloudCover,
		report.Current.PressureMsl, report.Current.SurfacePressure,
		report.Current.WindSpeed, report.Current.WindDirection, report.Current.WindGusts,
		report.RetrievedAt, createdAt,
	)
}

func forecastRowFromOutlook(outlook DailyOutlook, id, historyID uuid.UUID, createdAt time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(dailyForecastColumns).AddRow(
		id.String(), historyID.String(), outlook.ForecastDate, outlook.WeatherCode, outlook.WeatherDescription,
		outlook.MaxTemperature, outlook.MinTemperature,
		outlook.ApparentTemperatureMax, outlook.ApparentTemperatureMin,
		outlook.PrecipitationSum, outlook.RainSum, outlook.PrecipitationProbabilityMax,
		outlook.MaxWindSpeed, outlook.MaxWindGusts, outlook.DominantWindDirection,
		createdAt,
	)
}

func TestSaveWeather(t *testing.T) {
	report := sampleReport()
	historyID := uuid.New()
	createdAt := time.Date(2025, 6, 10, 17, 30, 1, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("could not create sqlmock: %v", err)
		}
		defer db.Close()

		cfg := newTestConfig()
		cfg.db = db

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO weather_histories").
			WithArgs(
				report.LocationName, report.Latitude, report.Longitude, report.Timezone,
				report.Current.Time, report.Current.Temperature, report.Current.ApparentTemperature,
				report.Current.Humidity, report.Current.IsDay,
				report.Current.Precipitation, report.Current.Rain, report.Current.Showers, report.Current.Snowfall,
				report.Current.WeatherCode, report.Current.WeatherDescription, report.Current.CloudCover,
				report.Current.PressureMsl, report.Current.SurfacePressure,
				report.Current.WindSpeed, report.Current.WindDirection, report.Current.WindGusts,
				report.RetrievedAt,
			).
			WillReturnRows(historyRowFromReport(report, historyID, createdAt))
		for _, outlook := range report.Daily {
			mock.ExpectQuery("INSERT INTO daily_forecasts").
				WillReturnRows(forecastRowFromOutlook(outlook, uuid.New(), historyID, createdAt))
		}
		mock.ExpectCommit()

		saved, err := cfg.saveWeather(context.Background(), report)
		if err != nil {
			t.Fatalf("saveWeather returned error: %v", err)
		}
		if saved.ID != historyID {
			t.Errorf("saved.ID = %s, want %s", saved.ID, historyID)
		}
		if saved.LocationName != report.LocationName {
			t.Errorf("saved.LocationName = %q, want %q", saved.LocationName, report.LocationName)
		}
		if len(saved.Daily) != 2 {
			t.Errorf("len(saved.Daily) = %d, want 2", len(saved.Daily))
		}
		if !saved.CreatedAt.Equal(createdAt) {
			t.Errorf("saved.CreatedAt = %v, want %v", saved.CreatedAt, createdAt)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
	})

	t.Run("Rolls Back When History Insert Fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("could not create sqlmock: %v", err)
		}
		defer db.Close()

		cfg := newTestConfig()
		cfg.db = db

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO weather_histories").
			WillReturnError(errors.New("constraint violation"))
		mock.ExpectRollback()

		if _, err := cfg.saveWeather(context.Background(), report); err == nil {
			t.Fatal("expected an error when the history insert fails, got nil")
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
	})

	t.Run("Rolls Back When Forecast Insert Fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("could not create sqlmock: %v", err)
		}
		defer db.Close()

		cfg := newTestConfig()
		cfg.db = db

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO weather_histories").
			WillReturnRows(historyRowFromReport(report, historyID, createdAt))
		mock.ExpectQuery("INSERT INTO daily_forecasts").
			WillReturnRows(forecastRowFromOutlook(report.Daily[0], uuid.New(), historyID, createdAt))
		mock.ExpectQuery("INSERT INTO daily_forecasts").
			WillReturnError(errors.New("constraint violation"))
		mock.ExpectRollback()

		if _, err := cfg.saveWeather(context.Background(), report); err == nil {
			t.Fatal("expected an error when a forecast insert fails, got nil")
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
	})
}

func TestListRecentReports(t *testing.T) {
	historyID := uuid.New()
	dbHistory := database.WeatherHistory{
		ID:           historyID,
		LocationName: "London, Reino Unido",
		Latitude:     51.5072,
		Longitude:    -0.1276,
	}
	dbForecast := database.DailyForecast{
		ID:               uuid.New(),
		WeatherHistoryID: historyID,
		ForecastDate:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	}

	cfg := newTestConfig()
	var gotLimit int32
	cfg.dbQueries = &mockQuerier{
		t: t,
		ListWeatherHistoriesFunc: func(ctx context.Context, limit int32) ([]database.WeatherHistory, error) {
			gotLimit = limit
			return []database.WeatherHistory{dbHistory}, nil
		},
		GetDailyForecastsFunc: func(ctx context.Context, weatherHistoryID uuid.UUID) ([]database.DailyForecast, error) {
			if weatherHistoryID != historyID {
				t.Errorf("GetDailyForecasts called with %s, want %s", weatherHistoryID, historyID)
			}
			return []database.DailyForecast{dbForecast}, nil
		},
	}

	reports, err := cfg.listRecentReports(context.Background(), 25)
	if err != nil {
		t.Fatalf("listRecentReports returned error: %v", err)
	}
	if gotLimit != 25 {
		t.Errorf("limit passed to query = %d, want 25", gotLimit)
	}
	if len(reports) != 1 {
		t.Fatalf("len(reports) = %d, want 1", len(reports))
	}
	if reports[0].LocationName != "London, Reino Unido" {
		t.Errorf("reports[0].LocationName = %q, want %q", reports[0].LocationName, "London, Reino Unido")
	}
	if len(reports[0].Daily) != 1 {
		t.Errorf("len(reports[0].Daily) = %d, want 1", len(reports[0].Daily))
	}
}

func TestFindReportsNear(t *testing.T) {
	cfg := newTestConfig()
	var gotParams database.GetWeatherHistoriesNearParams
	cfg.dbQueries = &mockQuerier{
		t: t,
		GetWeatherHistoriesNearFunc: func(ctx context.Context, arg database.GetWeatherHistoriesNearParams) ([]database.WeatherHistory, error) {
			gotParams = arg
			return nil, nil
		},
	}

	reports, err := cfg.findReportsNear(context.Background(), -23.55, -46.63, 0.05)
	if err != nil {
		t.Fatalf("findReportsNear returned error: %v", err)
	}
	if len(reports) != 0 {
		t.Errorf("len(reports) = %d, want 0", len(reports))
	}
	if gotParams.Latitude != -23.55 || gotParams.Longitude != -46.63 || gotParams.Tolerance != 0.05 {
		t.Errorf("query params = %+v, want lat -23.55, lon -46.63, tolerance 0.05", gotParams)
	}
}

func TestSearchReportsByLocation(t *testing.T) {
	cfg := newTestConfig()
	var gotName string
	cfg.dbQueries = &mockQuerier{
		t: t,
		SearchWeatherHistoriesByLocationFunc: func(ctx context.Context, locationName string) ([]database.WeatherHistory, error) {
			gotName = locationName
			return nil, nil
		},
	}

	if _, err := cfg.searchReportsByLocation(context.Background(), "Paulo"); err != nil {
		t.Fatalf("searchReportsByLocation returned error: %v", err)
	}
	if gotName != "Paulo" {
		t.Errorf("location passed to query = %q, want %q", gotName, "Paulo")
	}
}

func TestRenameReportLocation(t *testing.T) {
	historyID := uuid.New()
	cfg := newTestConfig()
	cfg.dbQueries = &mockQuerier{
		t: t,
		UpdateWeatherHistoryLocationFunc: func(ctx context.Context, arg database.UpdateWeatherHistoryLocationParams) (database.WeatherHistory, error) {
			if arg.ID != historyID {
				t.Errorf("update called with ID %s, want %s", arg.ID, historyID)
			}
			return database.WeatherHistory{ID: historyID, LocationName: arg.LocationName}, nil
		},
		GetDailyForecastsFunc: func(ctx context.Context, weatherHistoryID uuid.UUID) ([]database.DailyForecast, error) {
			return nil, nil
		},
	}

	report, err := cfg.renameReportLocation(context.Background(), historyID, "Sampa")
	if err != nil {
		t.Fatalf("renameReportLocation returned error: %v", err)
	}
	if report.LocationName != "Sampa" {
		t.Errorf("report.LocationName = %q, want %q", report.LocationName, "Sampa")
	}
}

func TestDeleteReport(t *testing.T) {
	t.Run("Deleted", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.dbQueries = &mockQuerier{
			t: t,
			DeleteWeatherHistoryFunc: func(ctx context.Context, id uuid.UUID) (int64, error) {
				return 1, nil
			},
		}
		deleted, err := cfg.deleteReport(context.Background(), uuid.New())
		if err != nil {
			t.Fatalf("deleteReport returned error: %v", err)
		}
		if !deleted {
			t.Error("deleted = false, want true")
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.dbQueries = &mockQuerier{
			t: t,
			DeleteWeatherHistoryFunc: func(ctx context.Context, id uuid.UUID) (int64, error) {
				return 0, nil
			},
		}
		deleted, err := cfg.deleteReport(context.Background(), uuid.New())
		if err != nil {
			t.Fatalf("deleteReport returned error: %v", err)
		}
		if deleted {
			t.Error("deleted = true, want false")
		}
	})
}

func TestDeleteReportsBefore(t *testing.T) {
	cutoff := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	cfg := newTestConfig()
	var gotCutoff time.Time
	cfg.dbQueries = &mockQuerier{
		t: t,
		DeleteWeatherHistoriesBeforeFunc: func(ctx context.Context, createdAt time.Time) (int64, error) {
			gotCutoff = createdAt
			return 7, nil
		},
	}

	affected, err := cfg.deleteReportsBefore(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("deleteReportsBefore returned error: %v", err)
	}
	if affected != 7 {
		t.Errorf("affected = %d, want 7", affected)
	}
	if !gotCutoff.Equal(cutoff) {
		t.Errorf("cutoff passed to query = %v, want %v", gotCutoff, cutoff)
	}
}

func TestFindReportByIDPropagatesError(t *testing.T) {
	wantErr := errors.New("connection reset")
	cfg := newTestConfig()
	cfg.dbQueries = &mockQuerier{
		t: t,
		GetWeatherHistoryFunc: func(ctx context.Context, id uuid.UUID) (database.WeatherHistory, error) {
			return database.WeatherHistory{}, wantErr
		},
	}

	if _, err := cfg.findReportByID(context.Background(), uuid.New()); !errors.Is(err, wantErr) {
		t.Errorf("findReportByID error = %v, want %v", err, wantErr)
	}
}
