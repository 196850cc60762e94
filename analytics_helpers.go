package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"weathermap/internal/database"
)

// Analytics helpers. The aggregate numbers are computed by the database (see
// internal/database/analytics.sql.go); these functions pick the query window
// and convert the rows into response shapes. The forecast trends report is
// the exception: it aggregates stored daily forecasts in memory.

// getLocationStats returns per-location aggregates over records created in
// the last `days` days, ordered by record count.
func (cfg *apiConfig) getLocationStats(ctx context.Context, days int) ([]LocationStats, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)
	rows, err := cfg.dbQueries.GetLocationStats(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("could not query location stats: %w", err)
	}

	stats := make([]LocationStats, len(rows))
	for i, row := range rows {
		stats[i] = LocationStats{
			LocationName:   row.LocationName,
			RecordCount:    row.RecordCount,
			AvgTemperature: row.AvgTemperature,
			MaxTemperature: row.MaxTemperature,
			MinTemperature: row.MinTemperature,
			FirstRecord:    row.FirstRecord,
			LastRecord:     row.LastRecord,
		}
	}
	return stats, nil
}

// getTemperatureTrends returns daily temperature aggregates for records whose
// location name matches the given substring, bucketed by creation date and
// ordered newest bucket first.
func (cfg *apiConfig) getTemperatureTrends(ctx context.Context, locationName string, days int) ([]TemperatureTrend, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)
	rows, err := cfg.dbQueries.GetTemperatureTrends(ctx, database.GetTemperatureTrendsParams{
		LocationName: locationName,
		CreatedAt:    since,
	})
	if err != nil {
		return nil, fmt.Errorf("could not query temperature trends: %w", err)
	}

	trends := make([]TemperatureTrend, len(rows))
	for i, row := range rows {
		trends[i] = TemperatureTrend{
			Date:           row.Date.Format("2006-01-02"),
			AvgTemperature: row.AvgTemperature,
			MaxTemperature: row.MaxTemperature,
			MinTemperature: row.MinTemperature,
			RecordCount:    row.RecordCount,
		}
	}
	return trends, nil
}

// compareLocations returns aggregate statistics for every stored location
// matching any of the given name substrings, warmest first.
func (cfg *apiConfig) compareLocations(ctx context.Context, locationNames []string) ([]LocationComparison, error) {
	patterns := make([]string, len(locationNames))
	for i, name := range locationNames {
		patterns[i] = "%" + name + "%"
	}

	rows, err := cfg.dbQueries.CompareLocations(ctx, patterns)
	if err != nil {
		return nil, fmt.Errorf("could not compare locations: %w", err)
	}

	comparisons := make([]LocationComparison, len(rows))
	for i, row := range rows {
		comparisons[i] = LocationComparison{
			LocationName:   row.LocationName,
			AvgTemperature: row.AvgTemperature,
			AvgHumidity:    row.AvgHumidity,
			AvgWindSpeed:   row.AvgWindSpeed,
			RecordCount:    row.RecordCount,
			DaysWithData:   row.DaysWithData,
		}
	}
	return comparisons, nil
}

// getDatabaseHealth summarizes the whole history store. The most-queried
// location tie is broken by lexical order so the result is deterministic.
func (cfg *apiConfig) getDatabaseHealth(ctx context.Context) (DatabaseHealth, error) {
	row, err := cfg.dbQueries.GetDatabaseHealth(ctx)
	if err != nil {
		return DatabaseHealth{}, fmt.Errorf("could not query database health: %w", err)
	}

	health := DatabaseHealth{
		TotalRecords:   row.TotalRecords,
		TotalForecasts: row.TotalForecasts,
	}
	if row.OldestRecord.Valid {
		oldest := row.OldestRecord.Time
		health.OldestRecord = &oldest
	}
	if row.NewestRecord.Valid {
		newest := row.NewestRecord.Time
		health.NewestRecord = &newest
	}
	if row.MostQueriedLocation.Valid {
		health.MostQueriedLocation = row.MostQueriedLocation.String
	}
	return health, nil
}

// getForecastTrends aggregates the stored daily forecasts for a location over
// the last `days` days of forecast dates.
func (cfg *apiConfig) getForecastTrends(ctx context.Context, locationName string, days int) (ForecastTrends, error) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)

	dbForecasts, err := cfg.dbQueries.GetForecastsForLocation(ctx, database.GetForecastsForLocationParams{
		LocationName: locationName,
		StartDate:    start,
		EndDate:      end,
	})
	if err != nil {
		return ForecastTrends{}, fmt.Errorf("could not query forecasts for location: %w", err)
	}

	outlooks := make([]DailyOutlook, len(dbForecasts))
	for i, f := range dbForecasts {
		outlooks[i] = databaseDailyForecastToOutlook(f)
	}
	return buildForecastTrends(locationName, outlooks), nil
}

// buildForecastTrends computes the trend report from a set of daily outlooks.
func buildForecastTrends(locationName string, outlooks []DailyOutlook) ForecastTrends {
	trends := ForecastTrends{
		LocationName:     locationName,
		ForecastCount:    len(outlooks),
		CommonConditions: []ConditionTally{},
	}
	if len(outlooks) == 0 {
		return trends
	}

	var sumMax, sumMin, sumChance, sumWind float64
	conditions := make(map[string]int)

	trends.HighestMaxTemp = outlooks[0].MaxTemperature
	trends.LowestMinTemp = outlooks[0].MinTemperature
	for _, o := range outlooks {
		sumMax += o.MaxTemperature
		sumMin += o.MinTemperature
		sumChance += float64(o.PrecipitationProbabilityMax)
		sumWind += o.MaxWindSpeed

		if o.MaxTemperature > trends.HighestMaxTemp {
			trends.HighestMaxTemp = o.MaxTemperature
		}
		if o.MinTemperature < trends.LowestMinTemp {
			trends.LowestMinTemp = o.MinTemperature
		}
		if o.MaxWindGusts > trends.HighestWindGusts {
			trends.HighestWindGusts = o.MaxWindGusts
		}

		trends.TotalRain += o.RainSum
		if o.PrecipitationSum > 0 {
			trends.RainyDays++
		}
		if o.WeatherDescription != "" {
			conditions[o.WeatherDescription]++
		}
	}

	n := float64(len(outlooks))
	trends.AvgMaxTemp = Round(sumMax/n, 2)
	trends.AvgMinTemp = Round(sumMin/n, 2)
	trends.AvgRainChance = Round(sumChance/n, 2)
	trends.AvgMaxWindSpeed = Round(sumWind/n, 2)

	for desc, count := range conditions {
		trends.CommonConditions = append(trends.CommonConditions, ConditionTally{Description: desc, Occurrences: count})
	}
	sort.Slice(trends.CommonConditions, func(i, j int) bool {
		if trends.CommonConditions[i].Occurrences == trends.CommonConditions[j].Occurrences {
			return trends.CommonConditions[i].Description < trends.CommonConditions[j].Description
		}
		return trends.CommonConditions[i].Occurrences > trends.CommonConditions[j].Occurrences
	})
	if len(trends.CommonConditions) > 5 {
		trends.CommonConditions = trends.CommonConditions[:5]
	}

	trends.DateRange = map[string]string{
		"from": outlooks[0].ForecastDate.Format("2006-01-02"),
		"to":   outlooks[len(outlooks)-1].ForecastDate.Format("2006-01-02"),
	}

	return trends
}
