package service

import (
	"context"
	"fmt"
	"strconv"

	"aura_display/internal/logger"
	"aura_display/internal/models"
	"aura_display/internal/repository"

	"github.com/go-playground/validator/v10"
)

// Persisted setting keys.
const (
	keyLatitude      = "latitude"
	keyLongitude     = "longitude"
	keyLocation      = "location"
	keyUseFahrenheit = "useFahrenheit"
	keyUseNightMode  = "useNightMode"
	keyBrightness    = "brightness"
	keyUse24Hour     = "use24Hour"
	keyLanguage      = "language"
	keyAutoRotate    = "autoRotate"
	keyAutoRotateInt = "autoRotateInt"
	keyTubeStationID = "tubeStationId"
)

func busStopKey(i int) string { return "busStopId" + strconv.Itoa(i+1) }

// SettingsService loads settings with layered defaults (stored value, then
// the configured defaults) and persists user changes.
type SettingsService struct {
	repo     repository.SettingsRepo
	prefs    repository.Prefs
	defaults models.Settings
	validate *validator.Validate
	log      *logger.Logger
}

func NewSettingsService(repo repository.SettingsRepo, defaults models.Settings, log *logger.Logger) *SettingsService {
	return &SettingsService{
		repo:     repo,
		prefs:    repository.NewPrefs(repo),
		defaults: defaults,
		validate: validator.New(),
		log:      log,
	}
}

// Load reads every setting. A stored value that cannot be parsed or fails
// validation falls back to its default and is logged.
func (s *SettingsService) Load(ctx context.Context) (models.Settings, error) {
	d := s.defaults
	var (
		out models.Settings
		err error
	)

	if out.Location.Latitude, err = s.prefs.GetString(ctx, keyLatitude, d.Location.Latitude); err != nil {
		return models.Settings{}, err
	}
	if out.Location.Longitude, err = s.prefs.GetString(ctx, keyLongitude, d.Location.Longitude); err != nil {
		return models.Settings{}, err
	}
	if out.Location.Name, err = s.prefs.GetString(ctx, keyLocation, d.Location.Name); err != nil {
		return models.Settings{}, err
	}
	if !out.Location.Valid() {
		s.fallback(keyLatitude, fmt.Errorf("%w: empty coordinates", ErrConfigInvalid))
		out.Location = d.Location
	}

	p := &out.Preferences
	p.UseFahrenheit = s.boolOr(ctx, keyUseFahrenheit, d.Preferences.UseFahrenheit)
	p.Use24Hour = s.boolOr(ctx, keyUse24Hour, d.Preferences.Use24Hour)
	p.UseNightMode = s.boolOr(ctx, keyUseNightMode, d.Preferences.UseNightMode)
	p.AutoRotate = s.boolOr(ctx, keyAutoRotate, d.Preferences.AutoRotate)
	p.Brightness = uint8(s.uintOr(ctx, keyBrightness, uint64(d.Preferences.Brightness), 1, 255))
	p.Language = models.Language(s.uintOr(ctx, keyLanguage, uint64(d.Preferences.Language), 0, uint64(models.LangIT)))
	p.AutoRotateIntervalMs = uint32(s.uintOr(ctx, keyAutoRotateInt, uint64(d.Preferences.AutoRotateIntervalMs), 1000, 3600000))

	for i := range out.Transit.BusStopIDs {
		if out.Transit.BusStopIDs[i], err = s.prefs.GetString(ctx, busStopKey(i), d.Transit.BusStopIDs[i]); err != nil {
			return models.Settings{}, err
		}
	}
	if out.Transit.TubeStationID, err = s.prefs.GetString(ctx, keyTubeStationID, d.Transit.TubeStationID); err != nil {
		return models.Settings{}, err
	}
	out.Transit = out.Transit.Normalize()

	return out, nil
}

func (s *SettingsService) boolOr(ctx context.Context, key string, def bool) bool {
	v, err := s.prefs.GetBool(ctx, key, def)
	if err != nil {
		s.fallback(key, err)
		return def
	}
	return v
}

func (s *SettingsService) uintOr(ctx context.Context, key string, def, lo, hi uint64) uint64 {
	v, err := s.prefs.GetUint(ctx, key, def)
	if err != nil {
		s.fallback(key, err)
		return def
	}
	if v < lo || v > hi {
		s.fallback(key, fmt.Errorf("%w: %d outside [%d, %d]", ErrConfigInvalid, v, lo, hi))
		return def
	}
	return v
}

func (s *SettingsService) fallback(key string, err error) {
	if s.log != nil {
		s.log.Warnw("setting_fallback_to_default", "key", key, "err", err)
	}
}

// ValidatePreferences checks ranges without persisting.
func (s *SettingsService) ValidatePreferences(p models.Preferences) error {
	if err := s.validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	return nil
}

// SavePreferences persists every display preference in one transaction.
func (s *SettingsService) SavePreferences(ctx context.Context, p models.Preferences) error {
	if err := s.ValidatePreferences(p); err != nil {
		return err
	}
	return s.repo.PutMany(ctx, map[string]string{
		keyUseFahrenheit: strconv.FormatBool(p.UseFahrenheit),
		keyUse24Hour:     strconv.FormatBool(p.Use24Hour),
		keyUseNightMode:  strconv.FormatBool(p.UseNightMode),
		keyAutoRotate:    strconv.FormatBool(p.AutoRotate),
		keyAutoRotateInt: strconv.FormatUint(uint64(p.AutoRotateIntervalMs), 10),
		keyLanguage:      strconv.Itoa(int(p.Language)),
		keyBrightness:    strconv.Itoa(int(p.Brightness)),
	})
}

// SaveBrightness persists the slider value immediately.
func (s *SettingsService) SaveBrightness(ctx context.Context, level uint8) error {
	if level == 0 {
		return fmt.Errorf("%w: brightness must be 1-255", ErrConfigInvalid)
	}
	return s.prefs.PutUint(ctx, keyBrightness, uint64(level))
}

// SaveLocation persists coordinates and label together.
func (s *SettingsService) SaveLocation(ctx context.Context, loc models.Location) error {
	if !loc.Valid() {
		return fmt.Errorf("%w: location needs latitude and longitude", ErrConfigInvalid)
	}
	return s.repo.PutMany(ctx, map[string]string{
		keyLatitude:  loc.Latitude,
		keyLongitude: loc.Longitude,
		keyLocation:  loc.Name,
	})
}

// AcceptLocation converts a geocoding candidate and persists it.
func (s *SettingsService) AcceptLocation(ctx context.Context, r models.GeoResult) (models.Location, error) {
	loc, err := LocationFromResult(r)
	if err != nil {
		return models.Location{}, err
	}
	if err := s.SaveLocation(ctx, loc); err != nil {
		return models.Location{}, err
	}
	return loc, nil
}

// SaveTransit persists the stop IDs. Empty IDs disable the slot.
func (s *SettingsService) SaveTransit(ctx context.Context, cfg models.TransitConfig) (models.TransitConfig, error) {
	cfg = cfg.Normalize()
	values := map[string]string{keyTubeStationID: cfg.TubeStationID}
	for i, id := range cfg.BusStopIDs {
		values[busStopKey(i)] = id
	}
	if err := s.repo.PutMany(ctx, values); err != nil {
		return models.TransitConfig{}, err
	}
	return cfg, nil
}

// Reset wipes every stored setting.
func (s *SettingsService) Reset(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
