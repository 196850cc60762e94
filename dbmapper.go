package main

import (
	"github.com/google/uuid"
	"weathermap/internal/database"
)

// databaseWeatherHistoryToReport converts a database.WeatherHistory and its
// attached forecasts to a WeatherReport.
func databaseWeatherHistoryToReport(dbHistory database.WeatherHistory, dbForecasts []database.DailyForecast) WeatherReport {
	daily := make([]DailyOutlook, len(dbForecasts))
	for i, f := range dbForecasts {
		daily[i] = databaseDailyForecastToOutlook(f)
	}

	return WeatherReport{
		ID:           dbHistory.ID,
		LocationName: dbHistory.LocationName,
		Latitude:     dbHistory.Latitude,
		Longitude:    dbHistory.Longitude,
		Timezone:     dbHistory.Timezone,
		Current: CurrentConditions{
			Time:                dbHistory.CurrentTimeUtc,
			Temperature:         dbHistory.TemperatureC,
			ApparentTemperature: dbHistory.ApparentTemperatureC,
			Humidity:            dbHistory.Humidity,
			IsDay:               dbHistory.IsDay,
			Precipitation:       dbHistory.PrecipitationMm,
			Rain:                dbHistory.RainMm,
			Showers:             dbHistory.ShowersMm,
			Snowfall:            dbHistory.SnowfallCm,
			WeatherCode:         dbHistory.WeatherCode,
			WeatherDescription:  dbHistory.WeatherDescription,
			CloudCover:          dbHistory.CloudCover,
			PressureMsl:         dbHistory.PressureMslHpa,
			SurfacePressure:     dbHistory.SurfacePressureHpa,
			WindSpeed:           dbHistory.WindSpeedKmh,
			WindDirection:       dbHistory.WindDirectionDeg,
			WindGusts:           dbHistory.WindGustsKmh,
		},
		Daily:       daily,
		RetrievedAt: dbHistory.RetrievedAt,
		CreatedAt:   dbHistory.CreatedAt,
	}
}

// databaseDailyForecastToOutlook converts a database.DailyForecast to a DailyOutlook.
func databaseDailyForecastToOutlook(dbForecast database.DailyForecast) DailyOutlook {
	return DailyOutlook{
		ID:                          dbForecast.ID,
		ForecastDate:                dbForecast.ForecastDate,
		WeatherCode:                 dbForecast.WeatherCode,
		WeatherDescription:          dbForecast.WeatherDescription,
		MaxTemperature:              dbForecast.MaxTemperatureC,
		MinTemperature:              dbForecast.MinTemperatureC,
		ApparentTemperatureMax:      dbForecast.ApparentTemperatureMaxC,
		ApparentTemperatureMin:      dbForecast.ApparentTemperatureMinC,
		PrecipitationSum:            dbForecast.PrecipitationSumMm,
		RainSum:                     dbForecast.RainSumMm,
		PrecipitationProbabilityMax: dbForecast.PrecipitationProbabilityMax,
		MaxWindSpeed:                dbForecast.MaxWindSpeedKmh,
		MaxWindGusts:                dbForecast.MaxWindGustsKmh,
		DominantWindDirection:       dbForecast.DominantWindDirectionDeg,
	}
}

// reportToCreateWeatherHistoryParams converts a WeatherReport to database.CreateWeatherHistoryParams.
func reportToCreateWeatherHistoryParams(report WeatherReport) database.CreateWeatherHistoryParams {
	return database.CreateWeatherHistoryParams{
		LocationName:         report.LocationName,
		Latitude:             report.Latitude,
		Longitude:            report.Longitude,
		Timezone:             report.Timezone,
		CurrentTimeUtc:       report.Current.Time,
		TemperatureC:         report.Current.Temperature,
		ApparentTemperatureC: report.Current.ApparentTemperature,
		Humidity:             report.Current.Humidity,
		IsDay:                report.Current.IsDay,
		PrecipitationMm:      report.Current.Precipitation,
		RainMm:               report.Current.Rain,
		ShowersMm:            report.Current.Showers,
		SnowfallCm:           report.Current.Snowfall,
		WeatherCode:          report.Current.WeatherCode,
		WeatherDescription:   report.Current.WeatherDescription,
		CloudCover:           report.Current.CloudCover,
		PressureMslHpa:       report.Current.PressureMsl,
		SurfacePressureHpa:   report.Current.SurfacePressure,
		WindSpeedKmh:         report.Current.WindSpeed,
		WindDirectionDeg:     report.Current.WindDirection,
		WindGustsKmh:         report.Current.WindGusts,
		RetrievedAt:          report.RetrievedAt,
	}
}

// outlookToCreateDailyForecastParams converts a DailyOutlook to database.CreateDailyForecastParams.
func outlookToCreateDailyForecastParams(outlook DailyOutlook, historyID uuid.UUID) database.CreateDailyForecastParams {
	return database.CreateDailyForecastParams{
		WeatherHistoryID:            historyID,
		ForecastDate:                outlook.ForecastDate,
		WeatherCode:                 outlook.WeatherCode,
		WeatherDescription:          outlook.WeatherDescription,
		MaxTemperatureC:             outlook.MaxTemperature,
		MinTemperatureC:             outlook.MinTemperature,
		ApparentTemperatureMaxC:     outlook.ApparentTemperatureMax,
		ApparentTemperatureMinC:     outlook.ApparentTemperatureMin,
		PrecipitationSumMm:          outlook.PrecipitationSum,
		RainSumMm:                   outlook.RainSum,
		PrecipitationProbabilityMax: outlook.PrecipitationProbabilityMax,
		MaxWindSpeedKmh:             outlook.MaxWindSpeed,
		MaxWindGustsKmh:             outlook.MaxWindGusts,
		DominantWindDirectionDeg:    outlook.DominantWindDirection,
	}
}
