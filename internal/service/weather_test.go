package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"aura_display/internal/httpclient"
	"aura_display/internal/models"
	"aura_display/internal/openmeteo"
	"aura_display/internal/weathercode"
)

func london() models.Location { return models.DefaultLocation() }

func TestBuildReport_FahrenheitAndLabels(t *testing.T) {
	t.Parallel()

	prefs := models.DefaultPreferences()
	prefs.UseFahrenheit = true

	report, err := BuildReport(sampleForecast(), prefs)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if report.Unit != "F" {
		t.Fatalf("unit = %q, want F", report.Unit)
	}
	if report.CurrentTemp != 68 {
		t.Fatalf("current temp = %v, want 68", report.CurrentTemp)
	}
	if report.CurrentCategory != weathercode.SunnyDay {
		t.Fatalf("category = %q", report.CurrentCategory)
	}
	if report.Daily[0].DayLabel != "Today" || report.Daily[1].DayLabel != "Tue" || report.Daily[6].DayLabel != "Sun" {
		t.Fatalf("day labels = %q %q %q", report.Daily[0].DayLabel, report.Daily[1].DayLabel, report.Daily[6].DayLabel)
	}
	if report.Daily[0].High != 50 || report.Daily[0].Low != 32 {
		t.Fatalf("daily[0] = %+v", report.Daily[0])
	}
	if report.Hourly[0].TimeLabel != "Now" || report.Hourly[1].TimeLabel != "07" {
		t.Fatalf("hour labels = %q %q", report.Hourly[0].TimeLabel, report.Hourly[1].TimeLabel)
	}
	if report.Hourly[0].Category != weathercode.Cloudy {
		t.Fatalf("hourly category = %q", report.Hourly[0].Category)
	}
	if report.SunriseLabel != "Sunrise 07:58" || report.SunsetLabel != "Sunset 16:21" {
		t.Fatalf("sun labels = %q %q", report.SunriseLabel, report.SunsetLabel)
	}
	if report.UTCOffsetSeconds != 3600 {
		t.Fatalf("offset = %d", report.UTCOffsetSeconds)
	}
}

func TestBuildReport_FrenchUsesWeekdayAndHourNames(t *testing.T) {
	t.Parallel()

	prefs := models.DefaultPreferences()
	prefs.Language = models.LangFR

	report, err := BuildReport(sampleForecast(), prefs)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if report.Daily[0].DayLabel != "Lun" {
		t.Fatalf("day 0 = %q, want Lun", report.Daily[0].DayLabel)
	}
	if report.Hourly[0].TimeLabel != "06" {
		t.Fatalf("hour 0 = %q, want 06", report.Hourly[0].TimeLabel)
	}
	if report.Unit != "C" || report.CurrentTemp != 20 {
		t.Fatalf("current = %v%s", report.CurrentTemp, report.Unit)
	}
}

func TestBuildReport_TwelveHourAndPrecip(t *testing.T) {
	t.Parallel()

	resp := sampleForecast()
	resp.Hourly.Precipitation[2] = 1.25
	resp.Hourly.PrecipitationProbability[3] = 40
	prefs := models.DefaultPreferences()
	prefs.Use24Hour = false

	report, err := BuildReport(resp, prefs)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if got := report.Hourly[6].TimeLabel; got != "Noon" {
		t.Fatalf("hour 6 = %q, want Noon", got)
	}
	if got := report.Hourly[1].TimeLabel; got != "7am" {
		t.Fatalf("hour 1 = %q, want 7am", got)
	}
	if got := report.Hourly[2].Precipitation; got != "1.2mm" && got != "1.3mm" {
		t.Fatalf("precip = %q", got)
	}
	if got := report.Hourly[3].Precipitation; got != "40%" {
		t.Fatalf("probability = %q", got)
	}
	if got := report.Hourly[4].Precipitation; got != "" {
		t.Fatalf("empty precip = %q", got)
	}
	if report.SunriseLabel != "Sunrise 7:58am" {
		t.Fatalf("sunrise = %q", report.SunriseLabel)
	}
}

func TestBuildReport_ShortPayload(t *testing.T) {
	t.Parallel()

	resp := sampleForecast()
	resp.Hourly.Time = resp.Hourly.Time[:5]

	_, err := BuildReport(resp, models.DefaultPreferences())
	if !errors.Is(err, ErrParseFailed) {
		t.Fatalf("err = %v, want ErrParseFailed", err)
	}
	if !strings.Contains(err.Error(), "hourly.time") {
		t.Fatalf("err should name the series: %v", err)
	}
}

func TestBuildReport_BadTimestamp(t *testing.T) {
	t.Parallel()

	resp := sampleForecast()
	resp.Daily.Time[3] = "not-a-date"

	if _, err := BuildReport(resp, models.DefaultPreferences()); !errors.Is(err, ErrParseFailed) {
		t.Fatalf("err = %v, want ErrParseFailed", err)
	}
}

func TestBuildReport_MissingSunTimesAreOptional(t *testing.T) {
	t.Parallel()

	resp := sampleForecast()
	resp.Daily.Sunrise = nil
	resp.Daily.Sunset = nil

	report, err := BuildReport(resp, models.DefaultPreferences())
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if report.SunriseLabel != "" || report.SunsetLabel != "" {
		t.Fatalf("sun labels should be empty: %q %q", report.SunriseLabel, report.SunsetLabel)
	}
}

func TestWeatherService_Refresh_SetsClockOffset(t *testing.T) {
	t.Parallel()

	src := &stubForecast{resp: sampleForecast()}
	clock := NewClock(func() time.Time { return time.Date(2024, 1, 15, 5, 30, 0, 0, time.UTC) })
	svc := NewWeatherService(src, &stubNetwork{connected: true}, clock, nil)

	report, err := svc.Refresh(context.Background(), london(), models.DefaultPreferences())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if report.FetchedAt.IsZero() {
		t.Fatalf("FetchedAt not set")
	}
	if !clock.Synced() {
		t.Fatalf("clock should be synced")
	}
	if h := clock.Now().Hour(); h != 6 {
		t.Fatalf("local hour = %d, want 6", h)
	}
}

func TestWeatherService_Refresh_NetworkDown(t *testing.T) {
	t.Parallel()

	src := &stubForecast{resp: sampleForecast()}
	network := &stubNetwork{reconnectErr: errBoom}
	svc := NewWeatherService(src, network, nil, nil)

	_, err := svc.Refresh(context.Background(), london(), models.DefaultPreferences())
	if !errors.Is(err, ErrNetworkUnavailable) {
		t.Fatalf("err = %v, want ErrNetworkUnavailable", err)
	}
	if network.reconnects != 1 {
		t.Fatalf("reconnects = %d, want 1", network.reconnects)
	}
	if src.calls != 0 {
		t.Fatalf("source must not be called while offline")
	}
}

func TestWeatherService_Refresh_ReconnectSucceeds(t *testing.T) {
	t.Parallel()

	src := &stubForecast{resp: sampleForecast()}
	svc := NewWeatherService(src, &stubNetwork{}, nil, nil)

	if _, err := svc.Refresh(context.Background(), london(), models.DefaultPreferences()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if src.calls != 1 {
		t.Fatalf("calls = %d", src.calls)
	}
}

func TestWeatherService_Refresh_ErrorClassification(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want error
	}{
		{"decode", httpclient.ErrDecode, ErrParseFailed},
		{"transport", errBoom, ErrFetchFailed},
		{"status", &httpclient.StatusError{Code: 404}, ErrFetchFailed},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc := NewWeatherService(&stubForecast{err: tc.err}, nil, nil, nil)
			_, err := svc.Refresh(context.Background(), london(), models.DefaultPreferences())
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if !errors.Is(err, tc.err) {
				t.Fatalf("original error lost: %v", err)
			}
		})
	}
}

func TestWeatherService_Refresh_InvalidLocation(t *testing.T) {
	t.Parallel()

	src := &stubForecast{resp: sampleForecast()}
	svc := NewWeatherService(src, nil, nil, nil)

	_, err := svc.Refresh(context.Background(), models.Location{Name: "Nowhere"}, models.DefaultPreferences())
	if !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("err = %v, want ErrConfigInvalid", err)
	}
}

const e2eForecast = `{
  "utc_offset_seconds": 0,
  "current": {"temperature_2m": 20.0, "apparent_temperature": 20.0, "weather_code": 0, "is_day": 1},
  "daily": {
    "time": ["2024-01-15","2024-01-16","2024-01-17","2024-01-18","2024-01-19","2024-01-20","2024-01-21"],
    "temperature_2m_min": [1,2,3,4,5,6,7],
    "temperature_2m_max": [8,9,10,11,12,13,14],
    "weather_code": [0,1,2,3,45,61,95],
    "sunrise": ["2024-01-15T07:58"],
    "sunset": ["2024-01-15T16:21"]
  },
  "hourly": {
    "time": ["2024-01-15T06:00","2024-01-15T07:00","2024-01-15T08:00","2024-01-15T09:00","2024-01-15T10:00","2024-01-15T11:00","2024-01-15T12:00"],
    "temperature_2m": [1,2,3,4,5,6,7],
    "precipitation_probability": [0,0,0,0,0,0,0],
    "precipitation": [0,0,0,0,0,0,0],
    "weather_code": [0,0,0,0,0,0,0],
    "is_day": [0,1,1,1,1,1,1]
  }
}`

func TestWeatherService_Refresh_EndToEnd(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(e2eForecast))
	}))
	defer srv.Close()

	hc := httpclient.New(srv.Client(), httpclient.Config{Name: "weather-e2e"}, nil)
	client := openmeteo.NewClient(hc, nil, srv.URL, srv.URL)
	svc := NewWeatherService(client, nil, NewClock(nil), nil)

	prefs := models.DefaultPreferences()
	prefs.UseFahrenheit = true
	report, err := svc.Refresh(context.Background(), london(), prefs)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	st := &AppState{Preferences: prefs, Weather: report, HasWeather: true}
	snap := buildSnapshot(st, time.Now())
	if snap.CurrentTemp != "68°F" {
		t.Fatalf("current temp = %q, want 68°F", snap.CurrentTemp)
	}
	if snap.CurrentImage != weathercode.SunnyDay.Image() {
		t.Fatalf("image = %q", snap.CurrentImage)
	}
	if report.CurrentCategory != weathercode.SunnyDay {
		t.Fatalf("category = %q, want %q", report.CurrentCategory, weathercode.SunnyDay)
	}
	if report.Hourly[0].Category != weathercode.ClearNight {
		t.Fatalf("hourly[0] = %q, want clear night", report.Hourly[0].Category)
	}
}
