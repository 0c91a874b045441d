package models

import (
	"time"

	"aura_display/internal/weathercode"
)

// ForecastSlots is the number of daily and hourly entries on screen.
const ForecastSlots = 7

// DailyForecastEntry is one row of the 7-day panel. Temperatures are in display units.
type DailyForecastEntry struct {
	DayLabel string               `json:"day_label"`
	High     float64              `json:"high"`
	Low      float64              `json:"low"`
	Category weathercode.Category `json:"category"`
}

// HourlyForecastEntry is one row of the hourly panel.
type HourlyForecastEntry struct {
	TimeLabel     string               `json:"time_label"`
	Temperature   float64              `json:"temperature"`
	Precipitation string               `json:"precipitation"`
	Category      weathercode.Category `json:"category"`
}

// WeatherReport is the result of one successful refresh. It is always
// replaced as a whole.
type WeatherReport struct {
	Daily            [ForecastSlots]DailyForecastEntry  `json:"daily"`
	Hourly           [ForecastSlots]HourlyForecastEntry `json:"hourly"`
	CurrentTemp      float64                            `json:"current_temp"`
	FeelsLike        float64                            `json:"feels_like"`
	CurrentCategory  weathercode.Category               `json:"current_category"`
	Unit             string                             `json:"unit"`
	SunriseLabel     string                             `json:"sunrise_label"`
	SunsetLabel      string                             `json:"sunset_label"`
	UTCOffsetSeconds int                                `json:"utc_offset_seconds"`
	FetchedAt        time.Time                          `json:"fetched_at"`
}
