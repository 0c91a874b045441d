package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"aura_display/internal/logger"
	"aura_display/internal/models"
	"aura_display/internal/repository"
)

// LogFilter selects events by time range and type. Zero values do not filter.
type LogFilter struct {
	From time.Time
	To   time.Time
	Type string
}

// EventLogService records notable display events and serves them back.
type EventLogService struct {
	eventRepo repository.EventRepo
	log       *logger.Logger
	now       func() time.Time
}

func NewEventLogService(eventRepo repository.EventRepo, log *logger.Logger) *EventLogService {
	return &EventLogService{eventRepo: eventRepo, log: log, now: time.Now}
}

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func normalizeEventType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

func normalizeAndValidateFilter(f LogFilter) (time.Time, time.Time, string, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, "", errInvalidTimeRange
	}
	return from, to, normalizeEventType(f.Type), nil
}

func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.DisplayEvent, error) {
	from, to, typ, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, from, to, typ)
}

// Record appends an event. Storage failures are logged, never returned:
// the event log must not interfere with the display.
func (s *EventLogService) Record(ctx context.Context, typ, description string, meta map[string]any) {
	ev := models.DisplayEvent{
		OccurredAt:  s.now().UTC(),
		Type:        normalizeEventType(typ),
		Description: description,
	}
	if len(meta) > 0 {
		ev.Metadata = meta
	}
	if err := s.eventRepo.Append(ctx, ev); err != nil && s.log != nil {
		s.log.Warnw("event_append_failed", "err", err, "type", ev.Type)
	}
}

// Prune drops events older than retention.
func (s *EventLogService) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, nil
	}
	return s.eventRepo.Prune(ctx, s.now().Add(-retention))
}
