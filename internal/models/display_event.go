package models

import "time"

// DisplayEvent is a single entry of the device event log.
type DisplayEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Metadata    any       `json:"metadata,omitempty"`
}

// Event log types.
const (
	EventWeatherRefresh  = "WEATHER_REFRESH"
	EventWeatherFailed   = "WEATHER_FAILED"
	EventTransitRefresh  = "TRANSIT_REFRESH"
	EventSettingsSaved   = "SETTINGS_SAVED"
	EventLocationChanged = "LOCATION_CHANGED"
	EventNightMode       = "NIGHT_MODE"
	EventReset           = "RESET"
)
