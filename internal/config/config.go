// Package config loads runtime configuration from configs/config.yml, the
// environment (prefix AURA_) and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"aura_display/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "AURA"

type LogConfig struct {
	Level string
	File  string
}

type UpstreamConfig struct {
	BaseURL         string
	RefreshInterval time.Duration
	RatePerSecond   float64
}

type BacklightConfig struct {
	Driver string
	Pin    string
}

// Config is the process configuration. Defaults seed settings that were
// never stored on the device.
type Config struct {
	Port           string
	DBPath         string
	Log            LogConfig
	Weather        UpstreamConfig
	GeocodingURL   string
	Transit        UpstreamConfig
	HTTPTimeout    time.Duration
	DialAddr       string
	Backlight      BacklightConfig
	EventRetention time.Duration
	Defaults       models.Settings
}

func setDefaults(v *viper.Viper) {
	d := models.DefaultPreferences()
	loc := models.DefaultLocation()

	v.SetDefault("port", "8080")
	v.SetDefault("db.path", "aura.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("weather.base_url", "")
	v.SetDefault("weather.refresh_interval", "10m")
	v.SetDefault("weather.rate_per_second", 1.0)
	v.SetDefault("geocoding.base_url", "")
	v.SetDefault("transit.base_url", "")
	v.SetDefault("transit.refresh_interval", "30s")
	v.SetDefault("transit.rate_per_second", 2.0)
	v.SetDefault("http.timeout", "10s")
	v.SetDefault("network.dial_addr", "api.open-meteo.com:443")
	v.SetDefault("backlight.driver", "log")
	v.SetDefault("backlight.pin", "GPIO13")
	v.SetDefault("event_log.retention", "168h")

	v.SetDefault("defaults.latitude", loc.Latitude)
	v.SetDefault("defaults.longitude", loc.Longitude)
	v.SetDefault("defaults.location", loc.Name)
	v.SetDefault("defaults.use_fahrenheit", d.UseFahrenheit)
	v.SetDefault("defaults.use_24_hour", d.Use24Hour)
	v.SetDefault("defaults.use_night_mode", d.UseNightMode)
	v.SetDefault("defaults.brightness", int(d.Brightness))
	v.SetDefault("defaults.language", d.Language.String())
	v.SetDefault("defaults.auto_rotate", d.AutoRotate)
	v.SetDefault("defaults.auto_rotate_interval_ms", int(d.AutoRotateIntervalMs))
	v.SetDefault("defaults.bus_stop_ids", []string{})
	v.SetDefault("defaults.tube_station_id", "")
}

// Load reads dir/config.yml when present. A missing file is not an error.
func Load(dir string) (*Config, error) {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:   v.GetString("port"),
		DBPath: v.GetString("db.path"),
		Log: LogConfig{
			Level: v.GetString("log.level"),
			File:  v.GetString("log.file"),
		},
		Weather: UpstreamConfig{
			BaseURL:         v.GetString("weather.base_url"),
			RefreshInterval: v.GetDuration("weather.refresh_interval"),
			RatePerSecond:   v.GetFloat64("weather.rate_per_second"),
		},
		GeocodingURL: v.GetString("geocoding.base_url"),
		Transit: UpstreamConfig{
			BaseURL:         v.GetString("transit.base_url"),
			RefreshInterval: v.GetDuration("transit.refresh_interval"),
			RatePerSecond:   v.GetFloat64("transit.rate_per_second"),
		},
		HTTPTimeout: v.GetDuration("http.timeout"),
		DialAddr:    v.GetString("network.dial_addr"),
		Backlight: BacklightConfig{
			Driver: v.GetString("backlight.driver"),
			Pin:    v.GetString("backlight.pin"),
		},
		EventRetention: v.GetDuration("event_log.retention"),
	}

	lang, err := models.ParseLanguage(v.GetString("defaults.language"))
	if err != nil {
		return nil, fmt.Errorf("config: defaults.language: %w", err)
	}
	brightness := v.GetInt("defaults.brightness")
	if brightness < 1 || brightness > 255 {
		return nil, fmt.Errorf("config: defaults.brightness %d outside 1-255", brightness)
	}

	d := &cfg.Defaults
	d.Location = models.Location{
		Latitude:  v.GetString("defaults.latitude"),
		Longitude: v.GetString("defaults.longitude"),
		Name:      v.GetString("defaults.location"),
	}
	d.Preferences = models.Preferences{
		UseFahrenheit:        v.GetBool("defaults.use_fahrenheit"),
		Use24Hour:            v.GetBool("defaults.use_24_hour"),
		UseNightMode:         v.GetBool("defaults.use_night_mode"),
		Brightness:           uint8(brightness),
		Language:             lang,
		AutoRotate:           v.GetBool("defaults.auto_rotate"),
		AutoRotateIntervalMs: v.GetUint32("defaults.auto_rotate_interval_ms"),
	}
	for i, id := range stringList(v.GetStringSlice("defaults.bus_stop_ids")) {
		if i >= models.BusStopSlots {
			return nil, fmt.Errorf("config: at most %d bus stops", models.BusStopSlots)
		}
		d.Transit.BusStopIDs[i] = id
	}
	d.Transit.TubeStationID = v.GetString("defaults.tube_station_id")
	d.Transit = d.Transit.Normalize()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !c.Defaults.Location.Valid() {
		return errors.New("config: defaults.latitude and defaults.longitude are required")
	}
	if err := validator.New().Struct(c.Defaults.Preferences); err != nil {
		return fmt.Errorf("config: defaults: %w", err)
	}
	if c.Weather.RefreshInterval <= 0 || c.Transit.RefreshInterval <= 0 {
		return errors.New("config: refresh intervals must be positive")
	}
	return nil
}

// stringList accepts YAML lists as well as comma separated env values.
func stringList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
