package service

import (
	"context"
	"fmt"
	"time"

	"aura_display/internal/locale"
	"aura_display/internal/logger"
	"aura_display/internal/models"
	"aura_display/internal/openmeteo"
	"aura_display/internal/weathercode"
)

// ForecastSource fetches a raw forecast for a coordinate pair.
type ForecastSource interface {
	Forecast(ctx context.Context, lat, lon string) (*openmeteo.ForecastResponse, error)
}

// WeatherService runs the weather refresh pipeline.
type WeatherService struct {
	source  ForecastSource
	network NetworkMonitor
	clock   *Clock
	log     *logger.Logger
}

func NewWeatherService(source ForecastSource, network NetworkMonitor, clock *Clock, log *logger.Logger) *WeatherService {
	return &WeatherService{source: source, network: network, clock: clock, log: log}
}

// Refresh fetches and converts a full report. On any error nothing is
// returned and the caller keeps its previous report. On success the clock
// adopts the location's UTC offset.
func (s *WeatherService) Refresh(ctx context.Context, loc models.Location, prefs models.Preferences) (models.WeatherReport, error) {
	if !loc.Valid() {
		return models.WeatherReport{}, fmt.Errorf("%w: location %q has no coordinates", ErrConfigInvalid, loc.Name)
	}
	if err := ensureNetwork(ctx, s.network, s.log); err != nil {
		return models.WeatherReport{}, err
	}

	resp, err := s.source.Forecast(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return models.WeatherReport{}, classifyFetchError(err)
	}

	report, err := BuildReport(resp, prefs)
	if err != nil {
		return models.WeatherReport{}, err
	}
	report.FetchedAt = time.Now().UTC()

	if s.clock != nil {
		s.clock.SetUTCOffset(resp.UTCOffsetSeconds)
	}
	return report, nil
}

// ensureNetwork checks connectivity and tries to reconnect once.
func ensureNetwork(ctx context.Context, network NetworkMonitor, log *logger.Logger) error {
	if network == nil || network.Connected(ctx) {
		return nil
	}
	if log != nil {
		log.Warnw("network_down_reconnecting")
	}
	if err := network.Reconnect(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkUnavailable, err)
	}
	return nil
}

// BuildReport validates the payload shape and converts it to display units.
// Temperatures are converted exactly once, here.
func BuildReport(resp *openmeteo.ForecastResponse, prefs models.Preferences) (models.WeatherReport, error) {
	if resp == nil {
		return models.WeatherReport{}, fmt.Errorf("%w: empty response", ErrParseFailed)
	}
	if err := checkShape(resp); err != nil {
		return models.WeatherReport{}, err
	}

	f := locale.NewFormatter(prefs)
	strs := f.Strings()
	var report models.WeatherReport

	report.CurrentTemp, _ = locale.CelsiusToDisplay(resp.Current.Temperature2m, prefs.UseFahrenheit)
	report.FeelsLike, _ = locale.CelsiusToDisplay(resp.Current.ApparentTemperature, prefs.UseFahrenheit)
	report.CurrentCategory = weathercode.Classify(resp.Current.WeatherCode, resp.Current.IsDay != 0)
	report.Unit = string(f.Unit())
	report.UTCOffsetSeconds = resp.UTCOffsetSeconds

	if len(resp.Daily.Sunrise) > 0 {
		label, err := sunLabel(f, strs.Sunrise, resp.Daily.Sunrise[0])
		if err != nil {
			return models.WeatherReport{}, err
		}
		report.SunriseLabel = label
	}
	if len(resp.Daily.Sunset) > 0 {
		label, err := sunLabel(f, strs.Sunset, resp.Daily.Sunset[0])
		if err != nil {
			return models.WeatherReport{}, err
		}
		report.SunsetLabel = label
	}

	for i := 0; i < models.ForecastSlots; i++ {
		date, err := parseLocalDate(resp.Daily.Time[i])
		if err != nil {
			return models.WeatherReport{}, err
		}
		label := f.Weekday(date.Year(), int(date.Month()), date.Day())
		if i == 0 && f.ShowRelativeLabels() {
			label = strs.Today
		}
		high, _ := locale.CelsiusToDisplay(resp.Daily.Temperature2mMax[i], prefs.UseFahrenheit)
		low, _ := locale.CelsiusToDisplay(resp.Daily.Temperature2mMin[i], prefs.UseFahrenheit)
		isDay := true
		if i == 0 {
			isDay = resp.Current.IsDay != 0
		}
		report.Daily[i] = models.DailyForecastEntry{
			DayLabel: label,
			High:     high,
			Low:      low,
			Category: weathercode.Classify(resp.Daily.WeatherCode[i], isDay),
		}
	}

	for i := 0; i < models.ForecastSlots; i++ {
		ts, err := parseLocalTimestamp(resp.Hourly.Time[i])
		if err != nil {
			return models.WeatherReport{}, err
		}
		label := f.Hour(ts.Hour())
		if i == 0 && f.ShowRelativeLabels() {
			label = strs.Now
		}
		temp, _ := locale.CelsiusToDisplay(resp.Hourly.Temperature2m[i], prefs.UseFahrenheit)
		report.Hourly[i] = models.HourlyForecastEntry{
			TimeLabel:     label,
			Temperature:   temp,
			Precipitation: f.Precip(resp.Hourly.Precipitation[i], resp.Hourly.PrecipitationProbability[i]),
			Category:      weathercode.Classify(resp.Hourly.WeatherCode[i], resp.Hourly.IsDay[i] != 0),
		}
	}

	return report, nil
}

func sunLabel(f locale.Formatter, prefix, raw string) (string, error) {
	ts, err := parseLocalTimestamp(raw)
	if err != nil {
		return "", err
	}
	return prefix + " " + f.Clock(ts.Hour(), ts.Minute()), nil
}

// checkShape requires every series used for the 7 slots to be long enough,
// so a short payload never produces a partial report.
func checkShape(resp *openmeteo.ForecastResponse) error {
	series := []struct {
		name  string
		count int
	}{
		{"daily.time", len(resp.Daily.Time)},
		{"daily.temperature_2m_min", len(resp.Daily.Temperature2mMin)},
		{"daily.temperature_2m_max", len(resp.Daily.Temperature2mMax)},
		{"daily.weather_code", len(resp.Daily.WeatherCode)},
		{"hourly.time", len(resp.Hourly.Time)},
		{"hourly.temperature_2m", len(resp.Hourly.Temperature2m)},
		{"hourly.precipitation_probability", len(resp.Hourly.PrecipitationProbability)},
		{"hourly.precipitation", len(resp.Hourly.Precipitation)},
		{"hourly.weather_code", len(resp.Hourly.WeatherCode)},
		{"hourly.is_day", len(resp.Hourly.IsDay)},
	}
	for _, s := range series {
		if s.count < models.ForecastSlots {
			return fmt.Errorf("%w: %s has %d entries, need %d", ErrParseFailed, s.name, s.count, models.ForecastSlots)
		}
	}
	return nil
}
