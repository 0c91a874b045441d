package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"aura_display/internal/models"
	"aura_display/internal/openmeteo"
	"aura_display/internal/tfl"
)

type stubNetwork struct {
	connected    bool
	reconnectErr error
	reconnects   int
}

func (n *stubNetwork) Connected(ctx context.Context) bool { return n.connected }

func (n *stubNetwork) Reconnect(ctx context.Context) error {
	n.reconnects++
	if n.reconnectErr == nil {
		n.connected = true
	}
	return n.reconnectErr
}

type stubForecast struct {
	resp  *openmeteo.ForecastResponse
	err   error
	calls int
}

func (s *stubForecast) Forecast(ctx context.Context, lat, lon string) (*openmeteo.ForecastResponse, error) {
	s.calls++
	return s.resp, s.err
}

// sampleForecast is a full 7-slot payload for Monday 2024-01-15, 06:00 local.
func sampleForecast() *openmeteo.ForecastResponse {
	r := &openmeteo.ForecastResponse{UTCOffsetSeconds: 3600}
	r.Current.Temperature2m = 20
	r.Current.ApparentTemperature = 18.4
	r.Current.WeatherCode = 0
	r.Current.IsDay = 1
	for i := 0; i < models.ForecastSlots; i++ {
		r.Daily.Time = append(r.Daily.Time, fmt.Sprintf("2024-01-%02d", 15+i))
		r.Daily.Temperature2mMin = append(r.Daily.Temperature2mMin, float64(i))
		r.Daily.Temperature2mMax = append(r.Daily.Temperature2mMax, float64(10+i))
		r.Daily.WeatherCode = append(r.Daily.WeatherCode, 0)
		r.Hourly.Time = append(r.Hourly.Time, fmt.Sprintf("2024-01-15T%02d:00", 6+i))
		r.Hourly.Temperature2m = append(r.Hourly.Temperature2m, float64(5+i))
		r.Hourly.PrecipitationProbability = append(r.Hourly.PrecipitationProbability, 0)
		r.Hourly.Precipitation = append(r.Hourly.Precipitation, 0)
		r.Hourly.WeatherCode = append(r.Hourly.WeatherCode, 3)
		r.Hourly.IsDay = append(r.Hourly.IsDay, 1)
	}
	r.Daily.Sunrise = []string{"2024-01-15T07:58"}
	r.Daily.Sunset = []string{"2024-01-15T16:21"}
	return r
}

type stubArrivals struct {
	byStop map[string][]tfl.Arrival
	errs   map[string]error
	hang   map[string]bool
	calls  []string
}

// Arrivals blocks until ctx ends for stops listed in hang.
func (s *stubArrivals) Arrivals(ctx context.Context, stopID string) ([]tfl.Arrival, error) {
	s.calls = append(s.calls, stopID)
	if s.hang[stopID] {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if err := s.errs[stopID]; err != nil {
		return nil, err
	}
	return s.byStop[stopID], nil
}

// memSettings is an in-memory repository.SettingsRepo.
type memSettings struct {
	mu     sync.Mutex
	values map[string]string
	putErr error
}

func newMemSettings() *memSettings { return &memSettings{values: map[string]string{}} }

func (m *memSettings) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memSettings) Put(ctx context.Context, key, value string) error {
	return m.PutMany(ctx, map[string]string{key: value})
}

func (m *memSettings) PutMany(ctx context.Context, values map[string]string) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range values {
		m.values[k] = v
	}
	return nil
}

func (m *memSettings) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = map[string]string{}
	return nil
}

func (m *memSettings) keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.values))
	for k := range m.values {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type recordedEvent struct {
	typ, description string
	meta             map[string]any
}

type stubRecorder struct {
	events []recordedEvent
}

func (r *stubRecorder) Record(ctx context.Context, typ, description string, meta map[string]any) {
	r.events = append(r.events, recordedEvent{typ: typ, description: description, meta: meta})
}

func (r *stubRecorder) types() []string {
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.typ)
	}
	return out
}

type stubBacklight struct {
	levels []uint8
	err    error
}

func (b *stubBacklight) Set(level uint8) error {
	b.levels = append(b.levels, level)
	return b.err
}

func (b *stubBacklight) last() (uint8, bool) {
	if len(b.levels) == 0 {
		return 0, false
	}
	return b.levels[len(b.levels)-1], true
}

var errBoom = errors.New("boom")
