package models

import "time"

// DailyRow is a formatted row of the 7-day panel.
type DailyRow struct {
	Day  string `json:"day"`
	High string `json:"high"`
	Low  string `json:"low"`
	Icon string `json:"icon"`
}

// HourlyRow is a formatted row of the hourly panel.
type HourlyRow struct {
	Time          string `json:"time"`
	Temperature   string `json:"temperature"`
	Precipitation string `json:"precipitation"`
	Icon          string `json:"icon"`
}

// DisplaySnapshot is an immutable, fully formatted view of the screen.
type DisplaySnapshot struct {
	Panel      Panel  `json:"panel"`
	PanelTitle string `json:"panel_title"`
	Clock      string `json:"clock"`
	NightState string `json:"night_state"`
	Backlight  uint8  `json:"backlight"`

	Location    Location      `json:"location"`
	Preferences Preferences   `json:"preferences"`
	Transit     TransitConfig `json:"transit"`

	HasWeather   bool        `json:"has_weather"`
	CurrentTemp  string      `json:"current_temp"`
	FeelsLike    string      `json:"feels_like"`
	CurrentImage string      `json:"current_image"`
	Sunrise      string      `json:"sunrise"`
	Sunset       string      `json:"sunset"`
	Daily        []DailyRow  `json:"daily"`
	Hourly       []HourlyRow `json:"hourly"`
	WeatherError string      `json:"weather_error,omitempty"`

	TransitEnabled bool     `json:"transit_enabled"`
	BusRows        []string `json:"bus_rows"`
	TubeRows       []string `json:"tube_rows"`

	UpdatedAt time.Time `json:"updated_at"`
}
