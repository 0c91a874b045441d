package service

import (
	"context"

	"aura_display/internal/models"
)

// Controller is the command surface of the display loop.
type Controller interface {
	Snapshot() *models.DisplaySnapshot
	Touch(ctx context.Context, target models.TouchTarget) (bool, error)
	RefreshWeather(ctx context.Context) error
	UpdatePreferences(ctx context.Context, patch models.PreferencesPatch) error
	SetBrightness(ctx context.Context, level uint8) error
	AcceptLocation(ctx context.Context, r models.GeoResult) error
	SetTransit(ctx context.Context, cfg models.TransitConfig) error
	Reset(ctx context.Context) error
}

// Locations searches place names for the location picker.
type Locations interface {
	Search(ctx context.Context, query string) ([]models.GeoResult, error)
}

// EventLog exposes the append-only display event log with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.DisplayEvent, error)
}

// Service aggregates what the HTTP layer needs.
type Service struct {
	Controller
	Locations
	EventLog
}

func NewService(display Controller, locations Locations, events EventLog) *Service {
	return &Service{
		Controller: display,
		Locations:  locations,
		EventLog:   events,
	}
}
