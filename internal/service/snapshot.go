package service

import (
	"time"

	"aura_display/internal/locale"
	"aura_display/internal/models"
)

func (d *Display) formatter() locale.Formatter {
	return locale.NewFormatter(d.state.Preferences)
}

// buildSnapshot renders st into display strings. Weather values were
// converted at fetch time and are only formatted here.
func buildSnapshot(st *AppState, now time.Time) *models.DisplaySnapshot {
	f := locale.NewFormatter(st.Preferences)
	strs := f.Strings()

	snap := &models.DisplaySnapshot{
		Panel:          st.Panel.Current,
		PanelTitle:     panelTitle(strs, st.Panel.Current),
		Clock:          st.ClockLabel,
		NightState:     st.Night.State.String(),
		Backlight:      st.Backlight,
		Location:       st.Location,
		Preferences:    st.Preferences,
		Transit:        st.Transit,
		HasWeather:     st.HasWeather,
		WeatherError:   st.WeatherErr,
		TransitEnabled: st.Panel.TransitEnabled,
		BusRows:        f.ArrivalRows(st.Board.Bus, st.Board.BusConfigured),
		TubeRows:       f.ArrivalRows(st.Board.Tube, st.Board.TubeConfigured),
		UpdatedAt:      now.UTC(),
	}

	if !st.HasWeather {
		return snap
	}
	w := st.Weather
	snap.CurrentTemp = locale.FormatTemp(w.CurrentTemp, w.Unit)
	snap.FeelsLike = strs.FeelsLike + " " + locale.FormatTemp(w.FeelsLike, w.Unit)
	snap.CurrentImage = w.CurrentCategory.Image()
	snap.Sunrise = w.SunriseLabel
	snap.Sunset = w.SunsetLabel

	snap.Daily = make([]models.DailyRow, 0, len(w.Daily))
	for _, e := range w.Daily {
		snap.Daily = append(snap.Daily, models.DailyRow{
			Day:  e.DayLabel,
			High: locale.FormatTemp(e.High, w.Unit),
			Low:  locale.FormatTemp(e.Low, w.Unit),
			Icon: e.Category.Icon(),
		})
	}
	snap.Hourly = make([]models.HourlyRow, 0, len(w.Hourly))
	for _, e := range w.Hourly {
		snap.Hourly = append(snap.Hourly, models.HourlyRow{
			Time:          e.TimeLabel,
			Temperature:   locale.FormatTemp(e.Temperature, w.Unit),
			Precipitation: e.Precipitation,
			Icon:          e.Category.Icon(),
		})
	}
	return snap
}

func panelTitle(strs *locale.Strings, p models.Panel) string {
	switch p {
	case models.PanelHourly:
		return strs.HourlyForecast
	case models.PanelTransit:
		return strs.TransitTitle
	default:
		return strs.SevenDayForecast
	}
}
