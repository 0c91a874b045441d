package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"aura_display/internal/logger"
	"aura_display/internal/models"
)

type WeatherRefresher interface {
	Refresh(ctx context.Context, loc models.Location, prefs models.Preferences) (models.WeatherReport, error)
}

type TransitRefresher interface {
	Refresh(ctx context.Context, cfg models.TransitConfig) models.TransitBoard
}

type SettingsStore interface {
	SavePreferences(ctx context.Context, p models.Preferences) error
	SaveBrightness(ctx context.Context, level uint8) error
	AcceptLocation(ctx context.Context, r models.GeoResult) (models.Location, error)
	SaveTransit(ctx context.Context, cfg models.TransitConfig) (models.TransitConfig, error)
	Reset(ctx context.Context) error
}

type EventRecorder interface {
	Record(ctx context.Context, typ, description string, meta map[string]any)
}

// Backlight drives the panel brightness; 0 turns it off.
type Backlight interface {
	Set(level uint8) error
}

// EventKind selects what a mailbox Event asks the display to do.
type EventKind int

const (
	EventRefreshWeather EventKind = iota + 1
	EventRefreshTransit
	EventTouch
	EventApplyPreferences
	EventSetBrightness
	EventAcceptLocation
	EventSetTransit
	EventReset
)

// Event is a message for the display loop. Only the fields relevant to Kind are read.
type Event struct {
	Kind        EventKind
	Target      models.TouchTarget
	Preferences models.Preferences
	Brightness  uint8
	Location    models.GeoResult
	Transit     models.TransitConfig

	// Patch, when set, is laid over the loop's current preferences instead of
	// using Preferences.
	Patch *models.PreferencesPatch

	reply chan Result
}

// Result answers a posted Event.
type Result struct {
	Suppressed bool
	Err        error
}

// AppState is owned by the display loop; nothing else reads or writes it.
type AppState struct {
	Location    models.Location
	Preferences models.Preferences
	Transit     models.TransitConfig

	Panel      PanelState
	Night      NightMode
	Backlight  uint8
	ClockLabel string

	Weather    models.WeatherReport
	HasWeather bool
	WeatherErr string
	Board      models.TransitBoard
}

// DisplayDeps are the collaborators of the display loop.
type DisplayDeps struct {
	Weather   WeatherRefresher
	Transit   TransitRefresher
	Settings  SettingsStore
	Events    EventRecorder
	Backlight Backlight
	Clock     *Clock
	Log       *logger.Logger

	FetchTimeout time.Duration
	ClockTick    time.Duration
	WakeAfter    time.Duration
	// OnReset runs after settings were wiped; the process is expected to restart.
	OnReset func()
}

const (
	defaultFetchTimeout = 20 * time.Second
	defaultClockTick    = time.Second
	mailboxSize         = 16
)

// Display is the single-writer dispatch loop. Timers, scheduled jobs and
// API handlers reach it only through its mailbox; readers use Snapshot.
type Display struct {
	deps     DisplayDeps
	log      *logger.Logger
	mailbox  chan Event
	snapshot atomic.Pointer[models.DisplaySnapshot]

	state  AppState
	rotate *time.Ticker
	wake   *time.Timer
}

func NewDisplay(deps DisplayDeps, initial models.Settings) *Display {
	if deps.FetchTimeout <= 0 {
		deps.FetchTimeout = defaultFetchTimeout
	}
	if deps.ClockTick <= 0 {
		deps.ClockTick = defaultClockTick
	}
	if deps.WakeAfter <= 0 {
		deps.WakeAfter = WakeDuration
	}
	if deps.Clock == nil {
		deps.Clock = NewClock(nil)
	}
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	d := &Display{
		deps:    deps,
		log:     log,
		mailbox: make(chan Event, mailboxSize),
		state: AppState{
			Location:    initial.Location,
			Preferences: initial.Preferences,
			Transit:     initial.Transit,
			Panel:       PanelState{Current: models.PanelDaily, TransitEnabled: initial.Transit.Enabled()},
			Night: NightMode{
				State:        NightNormal,
				UseNightMode: initial.Preferences.UseNightMode,
				Brightness:   initial.Preferences.Brightness,
			},
		},
	}
	d.publish()
	return d
}

// Run owns the state until ctx is canceled.
func (d *Display) Run(ctx context.Context) {
	tick := time.NewTicker(d.deps.ClockTick)
	defer tick.Stop()
	defer d.stopTimers()

	d.setBacklight(d.state.Night.Level())
	d.onTick(ctx)
	_ = d.refreshWeather(ctx)
	d.resetRotation()
	d.publish()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			d.onTick(ctx)
		case <-tickerC(d.rotate):
			d.apply(ctx, d.advancePanel())
		case <-timerC(d.wake):
			d.wake = nil
			d.onWakeTimeout(ctx)
		case ev := <-d.mailbox:
			res := d.handle(ctx, ev)
			// Callers read the snapshot right after the reply.
			d.publish()
			if ev.reply != nil {
				ev.reply <- res
			}
			continue
		}
		d.publish()
	}
}

// Snapshot returns the latest published view. It is never nil.
func (d *Display) Snapshot() *models.DisplaySnapshot { return d.snapshot.Load() }

// Post sends ev to the loop and waits for its result.
func (d *Display) Post(ctx context.Context, ev Event) (Result, error) {
	ev.reply = make(chan Result, 1)
	select {
	case d.mailbox <- ev:
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
	select {
	case res := <-ev.reply:
		return res, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// Notify enqueues ev without waiting. A full mailbox drops it; scheduled
// refreshes simply run again on their next tick.
func (d *Display) Notify(ev Event) bool {
	select {
	case d.mailbox <- ev:
		return true
	default:
		d.log.Warnw("display_mailbox_full", "kind", int(ev.Kind))
		return false
	}
}

func (d *Display) call(ctx context.Context, ev Event) error {
	res, err := d.Post(ctx, ev)
	if err != nil {
		return err
	}
	return res.Err
}

// Touch reports whether the touch was consumed by waking the screen.
func (d *Display) Touch(ctx context.Context, target models.TouchTarget) (bool, error) {
	res, err := d.Post(ctx, Event{Kind: EventTouch, Target: target})
	if err != nil {
		return false, err
	}
	return res.Suppressed, res.Err
}

func (d *Display) RefreshWeather(ctx context.Context) error {
	return d.call(ctx, Event{Kind: EventRefreshWeather})
}

// UpdatePreferences applies patch to the preferences current in the loop, so
// concurrent updates of different fields do not overwrite each other.
func (d *Display) UpdatePreferences(ctx context.Context, patch models.PreferencesPatch) error {
	return d.call(ctx, Event{Kind: EventApplyPreferences, Patch: &patch})
}

func (d *Display) SetBrightness(ctx context.Context, level uint8) error {
	return d.call(ctx, Event{Kind: EventSetBrightness, Brightness: level})
}

func (d *Display) AcceptLocation(ctx context.Context, r models.GeoResult) error {
	return d.call(ctx, Event{Kind: EventAcceptLocation, Location: r})
}

func (d *Display) SetTransit(ctx context.Context, cfg models.TransitConfig) error {
	return d.call(ctx, Event{Kind: EventSetTransit, Transit: cfg})
}

func (d *Display) Reset(ctx context.Context) error {
	return d.call(ctx, Event{Kind: EventReset})
}

func (d *Display) handle(ctx context.Context, ev Event) Result {
	switch ev.Kind {
	case EventRefreshWeather:
		return Result{Err: d.refreshWeather(ctx)}
	case EventRefreshTransit:
		if d.state.Panel.Current == models.PanelTransit {
			d.refreshTransit(ctx)
		}
		return Result{}
	case EventTouch:
		return d.touch(ctx, ev.Target)
	case EventApplyPreferences:
		p := ev.Preferences
		if ev.Patch != nil {
			p = ev.Patch.Apply(d.state.Preferences)
		}
		return Result{Err: d.applyPreferences(ctx, p)}
	case EventSetBrightness:
		return Result{Err: d.setBrightness(ctx, ev.Brightness)}
	case EventAcceptLocation:
		return Result{Err: d.acceptLocation(ctx, ev.Location)}
	case EventSetTransit:
		return Result{Err: d.setTransit(ctx, ev.Transit)}
	case EventReset:
		return Result{Err: d.reset(ctx)}
	default:
		return Result{Err: fmt.Errorf("unknown display event %d", ev.Kind)}
	}
}

func (d *Display) onTick(ctx context.Context) {
	now := d.deps.Clock.Now()
	next, effects := d.state.Night.Tick(now.Hour())
	d.setNight(ctx, next)
	d.apply(ctx, effects)
	d.state.ClockLabel = d.formatter().Clock(now.Hour(), now.Minute())
}

func (d *Display) onWakeTimeout(ctx context.Context) {
	next, effects := d.state.Night.WakeTimeout(d.deps.Clock.Now().Hour())
	d.setNight(ctx, next)
	d.apply(ctx, effects)
}

func (d *Display) touch(ctx context.Context, target models.TouchTarget) Result {
	next, effects, suppressed := d.state.Night.Touch()
	d.setNight(ctx, next)
	d.apply(ctx, effects)
	if suppressed {
		return Result{Suppressed: true}
	}
	if target == models.TouchPanel {
		d.apply(ctx, d.advancePanel())
	}
	return Result{}
}

func (d *Display) advancePanel() []Effect {
	next, effects := d.state.Panel.Advance()
	d.state.Panel = next
	return effects
}

func (d *Display) applyPreferences(ctx context.Context, p models.Preferences) error {
	if err := d.deps.Settings.SavePreferences(ctx, p); err != nil {
		return err
	}
	prev := d.state.Preferences
	d.state.Preferences = p

	next, effects := d.state.Night.Configure(p.UseNightMode, p.Brightness)
	d.setNight(ctx, next)
	d.apply(ctx, effects)

	if prev.AutoRotate != p.AutoRotate || prev.AutoRotateIntervalMs != p.AutoRotateIntervalMs {
		d.resetRotation()
	}
	d.record(ctx, models.EventSettingsSaved, "display preferences saved", map[string]any{
		"language":       p.Language.String(),
		"use_fahrenheit": p.UseFahrenheit,
		"use_24_hour":    p.Use24Hour,
		"use_night_mode": p.UseNightMode,
		"auto_rotate":    p.AutoRotate,
		"auto_rotate_ms": p.AutoRotateIntervalMs,
		"brightness":     p.Brightness,
	})

	now := d.deps.Clock.Now()
	d.state.ClockLabel = d.formatter().Clock(now.Hour(), now.Minute())

	// Forecast labels and units are baked in at fetch time.
	if prev.Language != p.Language || prev.UseFahrenheit != p.UseFahrenheit || prev.Use24Hour != p.Use24Hour {
		_ = d.refreshWeather(ctx)
	}
	return nil
}

func (d *Display) setBrightness(ctx context.Context, level uint8) error {
	if err := d.deps.Settings.SaveBrightness(ctx, level); err != nil {
		return err
	}
	d.state.Preferences.Brightness = level
	next, effects := d.state.Night.Configure(d.state.Preferences.UseNightMode, level)
	d.setNight(ctx, next)
	d.apply(ctx, effects)
	return nil
}

func (d *Display) acceptLocation(ctx context.Context, r models.GeoResult) error {
	loc, err := d.deps.Settings.AcceptLocation(ctx, r)
	if err != nil {
		return err
	}
	d.state.Location = loc
	d.record(ctx, models.EventLocationChanged, loc.Name, map[string]any{
		"latitude":  loc.Latitude,
		"longitude": loc.Longitude,
	})
	_ = d.refreshWeather(ctx)
	return nil
}

func (d *Display) setTransit(ctx context.Context, cfg models.TransitConfig) error {
	saved, err := d.deps.Settings.SaveTransit(ctx, cfg)
	if err != nil {
		return err
	}
	d.state.Transit = saved
	d.state.Panel = d.state.Panel.WithTransit(saved.Enabled())
	d.state.Board = models.TransitBoard{}
	d.record(ctx, models.EventSettingsSaved, "transit stops saved", map[string]any{
		"bus_stop_ids":    saved.BusStopIDs,
		"tube_station_id": saved.TubeStationID,
	})
	d.refreshTransit(ctx)
	return nil
}

func (d *Display) reset(ctx context.Context) error {
	if err := d.deps.Settings.Reset(ctx); err != nil {
		return err
	}
	d.record(ctx, models.EventReset, "settings cleared, restarting", nil)
	d.log.Warnw("display_reset")
	if d.deps.OnReset != nil {
		d.deps.OnReset()
	}
	return nil
}

// refreshWeather replaces the report only on success.
func (d *Display) refreshWeather(ctx context.Context) error {
	fctx, cancel := context.WithTimeout(ctx, d.deps.FetchTimeout)
	defer cancel()

	loc := d.state.Location
	report, err := d.deps.Weather.Refresh(fctx, loc, d.state.Preferences)
	if err != nil {
		d.state.WeatherErr = err.Error()
		d.log.Warnw("weather_refresh_failed", "err", err, "location", loc.Name)
		d.record(ctx, models.EventWeatherFailed, err.Error(), map[string]any{"location": loc.Name})
		return err
	}
	d.state.Weather = report
	d.state.HasWeather = true
	d.state.WeatherErr = ""
	d.log.Infow("weather_refreshed", "location", loc.Name, "temp", report.CurrentTemp, "unit", report.Unit)
	d.record(ctx, models.EventWeatherRefresh, "weather refreshed", map[string]any{
		"location": loc.Name,
		"temp":     report.CurrentTemp,
		"unit":     report.Unit,
	})
	return nil
}

func (d *Display) refreshTransit(ctx context.Context) {
	if !d.state.Transit.Enabled() {
		return
	}
	fctx, cancel := context.WithTimeout(ctx, d.deps.FetchTimeout)
	defer cancel()

	d.state.Board = d.deps.Transit.Refresh(fctx, d.state.Transit)
	d.log.Debugw("transit_refreshed", "bus", len(d.state.Board.Bus), "tube", len(d.state.Board.Tube))
	d.record(ctx, models.EventTransitRefresh, "transit refreshed", map[string]any{
		"bus":  len(d.state.Board.Bus),
		"tube": len(d.state.Board.Tube),
	})
}

func (d *Display) apply(ctx context.Context, effects []Effect) {
	for _, e := range effects {
		switch e.Kind {
		case EffectSetBacklight:
			d.setBacklight(e.Level)
		case EffectStartWakeTimer:
			d.startWake()
		case EffectRefreshTransit:
			d.refreshTransit(ctx)
		}
	}
}

func (d *Display) setNight(ctx context.Context, next NightMode) {
	prev := d.state.Night.State
	d.state.Night = next
	if prev == next.State {
		return
	}
	d.log.Infow("night_mode_changed", "from", prev.String(), "to", next.State.String())
	d.record(ctx, models.EventNightMode, "night mode "+next.State.String(), map[string]any{
		"from": prev.String(),
		"to":   next.State.String(),
	})
}

func (d *Display) setBacklight(level uint8) {
	d.state.Backlight = level
	if d.deps.Backlight == nil {
		return
	}
	if err := d.deps.Backlight.Set(level); err != nil {
		d.log.Warnw("backlight_set_failed", "err", err, "level", level)
	}
}

func (d *Display) startWake() {
	if d.wake != nil {
		d.wake.Stop()
	}
	d.wake = time.NewTimer(d.deps.WakeAfter)
}

func (d *Display) resetRotation() {
	if d.rotate != nil {
		d.rotate.Stop()
		d.rotate = nil
	}
	p := d.state.Preferences
	if p.AutoRotate && p.AutoRotateIntervalMs > 0 {
		d.rotate = time.NewTicker(p.AutoRotateInterval())
	}
}

func (d *Display) stopTimers() {
	if d.rotate != nil {
		d.rotate.Stop()
	}
	if d.wake != nil {
		d.wake.Stop()
	}
}

func (d *Display) record(ctx context.Context, typ, description string, meta map[string]any) {
	if d.deps.Events != nil {
		d.deps.Events.Record(ctx, typ, description, meta)
	}
}

func (d *Display) publish() {
	d.snapshot.Store(buildSnapshot(&d.state, time.Now()))
}

func tickerC(t *time.Ticker) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}

func timerC(t *time.Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}
