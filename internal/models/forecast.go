package models

import "time"

// DailySample is one raw forecast entry (OpenWeatherMap uses 3-hour buckets)
type DailySample struct {
	Time         time.Time
	TemperatureF float64
	Description  string
}

// DailyAggregate summarizes all samples that fall on one local calendar date
type DailyAggregate struct {
	Date        time.Time // Midnight of the local date
	Key         string    // "2006-01-02"
	HighF       float64
	LowF        float64
	Description string // Description of the first sample seen that day
}

// Forecast is the result of one forecast fetch
type Forecast struct {
	City      LocationCandidate // Name, country and coordinate reported by the source
	UTCOffset int               // Seconds east of UTC for the forecast city
	Samples   []DailySample
}
