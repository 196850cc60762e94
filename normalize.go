package main

import (
	"math"
	"time"
)

// Round rounds val to the given number of decimal places.
func Round(val float64, precision int) float64 {
	p := math.Pow10(precision)
	return math.Round(val*p) / p
}

// This file converts the column-oriented Open-Meteo payload into the
// record-oriented WeatherReport model.

var currentTimeLayouts = []string{
	"2006-01-02T15:04",
	time.RFC3339,
}

const forecastDateLayout = "2006-01-02"

// at returns s[i], or the zero value when the index is out of range. The
// provider's parallel arrays are not guaranteed to all have the same length.
func at[T any](s []T, i int) T {
	if i < 0 || i >= len(s) {
		var zero T
		return zero
	}
	return s[i]
}

// parseCurrentTime parses the current-conditions timestamp. An unparsable
// value falls back to the current UTC time instead of failing the whole
// normalization.
func parseCurrentTime(value string) time.Time {
	for _, layout := range currentTimeLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC()
		}
	}
	return time.Now().UTC()
}

// normalizeForecast reshapes a provider payload into a WeatherReport. The
// daily iteration is keyed on the daily time array: entries with unparsable
// dates are skipped, and missing values in the sibling arrays default to zero.
func normalizeForecast(payload *ForecastPayload) WeatherReport {
	current := CurrentConditions{
		Time:                parseCurrentTime(payload.Current.Time),
		Temperature:         payload.Current.Temperature2m,
		ApparentTemperature: payload.Current.ApparentTemperature,
		Humidity:            payload.Current.RelativeHumidity2m,
		IsDay:               payload.Current.IsDay != 0,
		Precipitation:       payload.Current.Precipitation,
		Rain:                payload.Current.Rain,
		Showers:             payload.Current.Showers,
		Snowfall:            payload.Current.Snowfall,
		WeatherCode:         payload.Current.WeatherCode,
		WeatherDescription:  describeWeatherCode(payload.Current.WeatherCode),
		CloudCover:          payload.Current.CloudCover,
		PressureMsl:         payload.Current.PressureMsl,
		SurfacePressure:     payload.Current.SurfacePressure,
		WindSpeed:           payload.Current.WindSpeed10m,
		WindDirection:       payload.Current.WindDirection10m,
		WindGusts:           payload.Current.WindGusts10m,
	}

	daily := make([]DailyOutlook, 0, len(payload.Daily.Time))
	for i, dateStr := range payload.Daily.Time {
		forecastDate, err := time.Parse(forecastDateLayout, dateStr)
		if err != nil {
			continue
		}

		code := at(payload.Daily.WeatherCode, i)
		daily = append(daily, DailyOutlook{
			ForecastDate:                forecastDate.UTC(),
			WeatherCode:                 code,
			WeatherDescription:          describeWeatherCode(code),
			MaxTemperature:              at(payload.Daily.Temperature2mMax, i),
			MinTemperature:              at(payload.Daily.Temperature2mMin, i),
			ApparentTemperatureMax:      at(payload.Daily.ApparentTemperatureMax, i),
			ApparentTemperatureMin:      at(payload.Daily.ApparentTemperatureMin, i),
			PrecipitationSum:            at(payload.Daily.PrecipitationSum, i),
			RainSum:                     at(payload.Daily.RainSum, i),
			PrecipitationProbabilityMax: at(payload.Daily.PrecipitationProbabilityMax, i),
			MaxWindSpeed:                at(payload.Daily.WindSpeed10mMax, i),
			MaxWindGusts:                at(payload.Daily.WindGusts10mMax, i),
			DominantWindDirection:       at(payload.Daily.WindDirection10mDominant, i),
		})
	}

	return WeatherReport{
		Latitude:    payload.Latitude,
		Longitude:   payload.Longitude,
		Timezone:    payload.Timezone,
		Current:     current,
		Daily:       daily,
		RetrievedAt: time.Now().UTC(),
	}
}
