package service

import (
	"context"
	"errors"
	"time"

	"aura_display/internal/logger"
	"aura_display/internal/models"
	"aura_display/internal/tfl"
)

// ArrivalSource fetches raw predictions for one stop point.
type ArrivalSource interface {
	Arrivals(ctx context.Context, stopID string) ([]tfl.Arrival, error)
}

// TransitService runs the transit arrival pipeline.
type TransitService struct {
	source  ArrivalSource
	network NetworkMonitor
	log     *logger.Logger
}

func NewTransitService(source ArrivalSource, network NetworkMonitor, log *logger.Logger) *TransitService {
	return &TransitService{source: source, network: network, log: log}
}

// Refresh never fails: a mode whose fetches fail comes back empty, which the
// display shows as "no arrivals" when that mode is configured.
func (s *TransitService) Refresh(ctx context.Context, cfg models.TransitConfig) models.TransitBoard {
	cfg = cfg.Normalize()
	board := models.TransitBoard{
		BusConfigured:  cfg.BusConfigured(),
		TubeConfigured: cfg.TubeConfigured(),
		FetchedAt:      time.Now().UTC(),
	}
	if !cfg.Enabled() {
		return board
	}
	if err := ensureNetwork(ctx, s.network, s.log); err != nil {
		s.warn("transit_network_unavailable", err)
		return board
	}

	b := &budget{left: cfg.StopCount()}
	if board.BusConfigured {
		board.Bus = s.busArrivals(ctx, b, cfg.BusStopIDs)
	}
	if board.TubeConfigured {
		board.Tube = s.tubeArrivals(ctx, b, cfg.TubeStationID)
	}
	return board
}

// budget splits the parent deadline evenly across the requests still to be
// made, so one hanging stop cannot starve the others.
type budget struct {
	left int
}

func (b *budget) next(ctx context.Context) (context.Context, context.CancelFunc) {
	deadline, ok := ctx.Deadline()
	if !ok || b.left <= 0 {
		return context.WithCancel(ctx)
	}
	share := time.Until(deadline) / time.Duration(b.left)
	b.left--
	return context.WithTimeout(ctx, share)
}

func (s *TransitService) fetch(ctx context.Context, b *budget, stopID string) ([]tfl.Arrival, error) {
	rctx, cancel := b.next(ctx)
	defer cancel()
	return s.source.Arrivals(rctx, stopID)
}

// busArrivals pools up to ArrivalsPerStop predictions from every configured
// stop. A failing stop is skipped.
func (s *TransitService) busArrivals(ctx context.Context, b *budget, stopIDs [models.BusStopSlots]string) []models.ArrivalInfo {
	pool := models.NewArrivalList(models.BusPoolCapacity)
	for _, id := range stopIDs {
		if id == "" {
			continue
		}
		arrivals, err := s.fetch(ctx, b, id)
		if err != nil {
			s.warn("bus_stop_fetch_failed", classifyFetchError(err), "stop_id", id)
			continue
		}
		if !appendArrivals(pool, arrivals, busArrival) {
			break
		}
	}
	return pool.SortAndTruncate(models.MaxDisplayedArrivals)
}

func (s *TransitService) tubeArrivals(ctx context.Context, b *budget, stationID string) []models.ArrivalInfo {
	arrivals, err := s.fetch(ctx, b, stationID)
	if err != nil {
		s.warn("tube_station_fetch_failed", classifyFetchError(err), "station_id", stationID)
		return nil
	}
	pool := models.NewArrivalList(models.ArrivalsPerStop)
	appendArrivals(pool, arrivals, tubeArrival)
	return pool.SortAndTruncate(models.MaxDisplayedArrivals)
}

// appendArrivals adds at most ArrivalsPerStop entries and reports whether the
// pool still has room.
func appendArrivals(pool *models.ArrivalList, arrivals []tfl.Arrival, convert func(tfl.Arrival) models.ArrivalInfo) bool {
	for i, a := range arrivals {
		if i >= models.ArrivalsPerStop {
			break
		}
		if err := pool.Append(convert(a)); errors.Is(err, models.ErrArrivalListFull) {
			return false
		}
	}
	return !pool.Full()
}

func busArrival(a tfl.Arrival) models.ArrivalInfo {
	return models.NewArrival(a.LineName, a.DestinationName, a.TimeToStation)
}

// tubeArrival prefers the "towards" text, which is what platform boards show.
func tubeArrival(a tfl.Arrival) models.ArrivalInfo {
	dest := a.Towards
	if dest == "" {
		dest = a.DestinationName
	}
	return models.NewArrival(a.LineName, dest, a.TimeToStation)
}

func (s *TransitService) warn(event string, err error, kv ...any) {
	if s.log == nil {
		return
	}
	s.log.Warnw(event, append([]any{"err", err}, kv...)...)
}
