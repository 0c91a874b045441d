package handlers

import (
	"context"
	"sync"

	"aura_display/internal/models"
	"aura_display/internal/service"

	"github.com/gin-gonic/gin"
)

type mockController struct {
	mu   sync.Mutex
	snap *models.DisplaySnapshot

	suppressed bool
	err        error

	touches    []models.TouchTarget
	prefs      *models.Preferences
	brightness uint8
	location   *models.GeoResult
	transit    *models.TransitConfig
	refreshes  int
	resets     int
}

func newMockController() *mockController {
	return &mockController{snap: &models.DisplaySnapshot{
		Panel:       models.PanelDaily,
		PanelTitle:  "Daily Forecast",
		Clock:       "14:05",
		NightState:  "normal",
		Backlight:   128,
		Location:    models.DefaultLocation(),
		Preferences: models.DefaultPreferences(),
	}}
}

func (m *mockController) Snapshot() *models.DisplaySnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap
}

// set publishes a copy so pointer comparisons see a change.
func (m *mockController) set(mutate func(s *models.DisplaySnapshot)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := *m.snap
	mutate(&next)
	m.snap = &next
}

func (m *mockController) Touch(_ context.Context, target models.TouchTarget) (bool, error) {
	m.touches = append(m.touches, target)
	if m.err != nil {
		return false, m.err
	}
	if !m.suppressed && target == models.TouchPanel {
		m.set(func(s *models.DisplaySnapshot) { s.Panel = models.PanelHourly })
	}
	return m.suppressed, nil
}

func (m *mockController) RefreshWeather(context.Context) error {
	m.refreshes++
	return m.err
}

func (m *mockController) UpdatePreferences(_ context.Context, patch models.PreferencesPatch) error {
	p := patch.Apply(m.Snapshot().Preferences)
	m.prefs = &p
	if m.err != nil {
		return m.err
	}
	m.set(func(s *models.DisplaySnapshot) { s.Preferences = p })
	return nil
}

func (m *mockController) SetBrightness(_ context.Context, level uint8) error {
	m.brightness = level
	return m.err
}

func (m *mockController) AcceptLocation(_ context.Context, r models.GeoResult) error {
	m.location = &r
	if m.err != nil {
		return m.err
	}
	m.set(func(s *models.DisplaySnapshot) {
		s.Location = models.Location{Name: r.Label(), Latitude: "51.507400", Longitude: "-0.127800"}
	})
	return nil
}

func (m *mockController) SetTransit(_ context.Context, cfg models.TransitConfig) error {
	m.transit = &cfg
	if m.err != nil {
		return m.err
	}
	m.set(func(s *models.DisplaySnapshot) {
		s.Transit = cfg
		s.TransitEnabled = cfg.Enabled()
	})
	return nil
}

func (m *mockController) Reset(context.Context) error {
	m.resets++
	return m.err
}

type mockLocations struct {
	results []models.GeoResult
	err     error
	query   string
}

func (m *mockLocations) Search(_ context.Context, q string) ([]models.GeoResult, error) {
	m.query = q
	return m.results, m.err
}

type mockEventLog struct {
	resp []models.DisplayEvent
	err  error
	last service.LogFilter
}

func (m *mockEventLog) List(_ context.Context, f service.LogFilter) ([]models.DisplayEvent, error) {
	m.last = f
	return m.resp, m.err
}

type testDeps struct {
	ctl  *mockController
	locs *mockLocations
	logs *mockEventLog
}

func newTestDeps() testDeps {
	return testDeps{
		ctl:  newMockController(),
		locs: &mockLocations{},
		logs: &mockEventLog{},
	}
}

func (d testDeps) service() *service.Service {
	return service.NewService(d.ctl, d.locs, d.logs)
}

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewHandler(s, nil).InitRoutes()
}
