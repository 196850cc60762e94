package main

import (
	"time"

	"github.com/google/uuid"
)

// ForecastPayload mirrors the Open-Meteo forecast response. The current block
// is a flat object, while the hourly and daily blocks are parallel arrays
// indexed by their time arrays.
type ForecastPayload struct {
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Timezone  string       `json:"timezone"`
	Current   CurrentBlock `json:"current"`
	Hourly    HourlyBlock  `json:"hourly"`
	Daily     DailyBlock   `json:"daily"`
}

type CurrentBlock struct {
	Time                string  `json:"time"`
	Temperature2m       float64 `json:"temperature_2m"`
	RelativeHumidity2m  int32   `json:"relative_humidity_2m"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	IsDay               int32   `json:"is_day"`
	Precipitation       float64 `json:"precipitation"`
	Rain                float64 `json:"rain"`
	Showers             float64 `json:"showers"`
	Snowfall            float64 `json:"snowfall"`
	WeatherCode         int32   `json:"weather_code"`
	CloudCover          int32   `json:"cloud_cover"`
	PressureMsl         float64 `json:"pressure_msl"`
	SurfacePressure     float64 `json:"surface_pressure"`
	WindSpeed10m        float64 `json:"wind_speed_10m"`
	WindDirection10m    int32   `json:"wind_direction_10m"`
	WindGusts10m        float64 `json:"wind_gusts_10m"`
}

type HourlyBlock struct {
	Time                     []string  `json:"time"`
	Temperature2m            []float64 `json:"temperature_2m"`
	RelativeHumidity2m       []int32   `json:"relative_humidity_2m"`
	ApparentTemperature      []float64 `json:"apparent_temperature"`
	PrecipitationProbability []int32   `json:"precipitation_probability"`
	Precipitation            []float64 `json:"precipitation"`
	WeatherCode              []int32   `json:"weather_code"`
	WindSpeed10m             []float64 `json:"wind_speed_10m"`
}

type DailyBlock struct {
	Time                        []string  `json:"time"`
	WeatherCode                 []int32   `json:"weather_code"`
	Temperature2mMax            []float64 `json:"temperature_2m_max"`
	Temperature2mMin            []float64 `json:"temperature_2m_min"`
	ApparentTemperatureMax      []float64 `json:"apparent_temperature_max"`
	ApparentTemperatureMin      []float64 `json:"apparent_temperature_min"`
	PrecipitationSum            []float64 `json:"precipitation_sum"`
	RainSum                     []float64 `json:"rain_sum"`
	PrecipitationProbabilityMax []int32   `json:"precipitation_probability_max"`
	WindSpeed10mMax             []float64 `json:"wind_speed_10m_max"`
	WindGusts10mMax             []float64 `json:"wind_gusts_10m_max"`
	WindDirection10mDominant    []int32   `json:"wind_direction_10m_dominant"`
}

// LocationCandidate is a single geocoding match for a city name search.
type LocationCandidate struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Region      string  `json:"region,omitempty"`
	Timezone    string  `json:"timezone,omitempty"`
}

// WeatherReport is the record-oriented form of a forecast: one row of current
// conditions plus one DailyOutlook per forecast day. It is both the
// normalizer's output and the shape persisted to and read from the database.
type WeatherReport struct {
	ID           uuid.UUID         `json:"id"`
	LocationName string            `json:"location_name"`
	Latitude     float64           `json:"latitude"`
	Longitude    float64           `json:"longitude"`
	Timezone     string            `json:"timezone"`
	Current      CurrentConditions `json:"current"`
	Daily        []DailyOutlook    `json:"daily_forecasts"`
	RetrievedAt  time.Time         `json:"retrieved_at"`
	CreatedAt    time.Time         `json:"created_at"`
}

type CurrentConditions struct {
	Time                time.Time `json:"time"`
	Temperature         float64   `json:"temperature_c"`
	ApparentTemperature float64   `json:"apparent_temperature_c"`
	Humidity            int32     `json:"humidity"`
	IsDay               bool      `json:"is_day"`
	Precipitation       float64   `json:"precipitation_mm"`
	Rain                float64   `json:"rain_mm"`
	Showers             float64   `json:"showers_mm"`
	Snowfall            float64   `json:"snowfall_cm"`
	WeatherCode         int32     `json:"weather_code"`
	WeatherDescription  string    `json:"weather_description"`
	CloudCover          int32     `json:"cloud_cover"`
	PressureMsl         float64   `json:"pressure_msl_hpa"`
	SurfacePressure     float64   `json:"surface_pressure_hpa"`
	WindSpeed           float64   `json:"wind_speed_kmh"`
	WindDirection       int32     `json:"wind_direction_deg"`
	WindGusts           float64   `json:"wind_gusts_kmh"`
}

type DailyOutlook struct {
	ID                          uuid.UUID `json:"id"`
	ForecastDate                time.Time `json:"forecast_date"`
	WeatherCode                 int32     `json:"weather_code"`
	WeatherDescription          string    `json:"weather_description"`
	MaxTemperature              float64   `json:"max_temperature_c"`
	MinTemperature              float64   `json:"min_temperature_c"`
	ApparentTemperatureMax      float64   `json:"apparent_temperature_max_c"`
	ApparentTemperatureMin      float64   `json:"apparent_temperature_min_c"`
	PrecipitationSum            float64   `json:"precipitation_sum_mm"`
	RainSum                     float64   `json:"rain_sum_mm"`
	PrecipitationProbabilityMax int32     `json:"precipitation_probability_max"`
	MaxWindSpeed                float64   `json:"max_wind_speed_kmh"`
	MaxWindGusts                float64   `json:"max_wind_gusts_kmh"`
	DominantWindDirection       int32     `json:"dominant_wind_direction_deg"`
}

// Analytics response shapes, computed by the database (see internal/database/analytics.sql.go).

type LocationStats struct {
	LocationName   string    `json:"location_name"`
	RecordCount    int64     `json:"record_count"`
	AvgTemperature float64   `json:"avg_temperature_c"`
	MaxTemperature float64   `json:"max_temperature_c"`
	MinTemperature float64   `json:"min_temperature_c"`
	FirstRecord    time.Time `json:"first_record"`
	LastRecord     time.Time `json:"last_record"`
}

type TemperatureTrend struct {
	Date           string  `json:"date"`
	AvgTemperature float64 `json:"avg_temperature_c"`
	MaxTemperature float64 `json:"max_temperature_c"`
	MinTemperature float64 `json:"min_temperature_c"`
	RecordCount    int64   `json:"record_count"`
}

type LocationComparison struct {
	LocationName   string  `json:"location_name"`
	AvgTemperature float64 `json:"avg_temperature_c"`
	AvgHumidity    float64 `json:"avg_humidity"`
	AvgWindSpeed   float64 `json:"avg_wind_speed_kmh"`
	RecordCount    int64   `json:"record_count"`
	DaysWithData   int64   `json:"days_with_data"`
}

type DatabaseHealth struct {
	TotalRecords        int64      `json:"total_records"`
	TotalForecasts      int64      `json:"total_forecasts"`
	OldestRecord        *time.Time `json:"oldest_record,omitempty"`
	NewestRecord        *time.Time `json:"newest_record,omitempty"`
	MostQueriedLocation string     `json:"most_queried_location,omitempty"`
}

// ForecastTrends aggregates stored daily forecasts for a location in memory.
type ForecastTrends struct {
	LocationName     string            `json:"location_name"`
	ForecastCount    int               `json:"forecast_count"`
	AvgMaxTemp       float64           `json:"avg_max_temp_c"`
	AvgMinTemp       float64           `json:"avg_min_temp_c"`
	HighestMaxTemp   float64           `json:"highest_max_temp_c"`
	LowestMinTemp    float64           `json:"lowest_min_temp_c"`
	TotalRain        float64           `json:"total_rain_mm"`
	RainyDays        int               `json:"rainy_days"`
	AvgRainChance    float64           `json:"avg_rain_chance"`
	AvgMaxWindSpeed  float64           `json:"avg_max_wind_speed_kmh"`
	HighestWindGusts float64           `json:"highest_wind_gusts_kmh"`
	CommonConditions []ConditionTally  `json:"common_conditions"`
	DateRange        map[string]string `json:"date_range,omitempty"`
}

type ConditionTally struct {
	Description string `json:"description"`
	Occurrences int    `json:"occurrences"`
}
