// Package forecast folds raw forecast samples into daily summaries and renders them
package forecast

import (
	"math"
	"sort"
	"time"

	"github.com/ngmaloney/forecast-terminal/internal/models"
)

// MaxDays is the longest horizon the forecast source provides
const MaxDays = 5

// Result holds daily aggregates in ascending date order
type Result []models.DailyAggregate

// Aggregate groups samples by local calendar date and keeps the first days
// dates. Samples are converted to loc before their date is taken; a nil loc
// keeps each sample's own location.
func Aggregate(samples []models.DailySample, days int, loc *time.Location) Result {
	if days < 1 {
		return Result{}
	}

	byKey := make(map[string]*models.DailyAggregate)
	for _, s := range samples {
		t := s.Time
		if loc != nil {
			t = t.In(loc)
		}
		key := t.Format(time.DateOnly)

		day, ok := byKey[key]
		if !ok {
			byKey[key] = &models.DailyAggregate{
				Date:        time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()),
				Key:         key,
				HighF:       s.TemperatureF,
				LowF:        s.TemperatureF,
				Description: s.Description,
			}
			continue
		}
		day.HighF = math.Max(day.HighF, s.TemperatureF)
		day.LowF = math.Min(day.LowF, s.TemperatureF)
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(keys) > days {
		keys = keys[:days]
	}

	result := make(Result, 0, len(keys))
	for _, k := range keys {
		result = append(result, *byKey[k])
	}
	return result
}

// Celsius converts a Fahrenheit reading and rounds half to even.
// High and low are converted independently, so the Celsius span can differ by
// one from the converted Fahrenheit span.
func Celsius(f float64) int {
	return int(math.RoundToEven((f - 32) * 5 / 9))
}

// Fahrenheit rounds a Fahrenheit reading for display (half to even)
func Fahrenheit(f float64) int {
	return int(math.RoundToEven(f))
}
