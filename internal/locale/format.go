// Package locale turns raw weather and transit values into display strings.
package locale

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"aura_display/internal/models"
)

const (
	maxRowLen  = 35
	ellipsis   = "..."
	mmPerInch  = 25.4
	minPrecipM = 0.1
)

// Formatter holds the active language and unit selectors.
type Formatter struct {
	Lang          models.Language
	Use24Hour     bool
	UseFahrenheit bool
}

// NewFormatter builds a formatter from the user's preferences.
func NewFormatter(p models.Preferences) Formatter {
	return Formatter{Lang: p.Language, Use24Hour: p.Use24Hour, UseFahrenheit: p.UseFahrenheit}
}

// Strings returns the active text table.
func (f Formatter) Strings() *Strings { return For(f.Lang) }

// Hour formats an hour label such as "07", "12am", "Noon" or "5pm".
func (f Formatter) Hour(hour int) string {
	s := f.Strings()
	if hour < 0 || hour > 23 {
		return s.InvalidHour
	}
	if f.Use24Hour {
		return fmt.Sprintf("%02d", hour)
	}
	switch {
	case hour == 0:
		return "12" + s.AM
	case hour == 12:
		return s.Noon
	case hour < 12:
		return fmt.Sprintf("%d%s", hour, s.AM)
	default:
		return fmt.Sprintf("%d%s", hour%12, s.PM)
	}
}

// Clock formats a wall-clock time. Out-of-range input gives the invalid marker.
func (f Formatter) Clock(hour, minute int) string {
	s := f.Strings()
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return s.InvalidHour
	}
	if f.Use24Hour {
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}
	suffix := s.AM
	if hour >= 12 {
		suffix = s.PM
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d%s", h, minute, suffix)
}

// CelsiusToDisplay converts v to the selected unit.
func CelsiusToDisplay(v float64, useFahrenheit bool) (float64, rune) {
	if useFahrenheit {
		return v*9/5 + 32, 'F'
	}
	return v, 'C'
}

// Unit is the active temperature unit letter.
func (f Formatter) Unit() rune {
	_, u := CelsiusToDisplay(0, f.UseFahrenheit)
	return u
}

// FormatTemp renders an already converted temperature, e.g. "68°F".
func FormatTemp(v float64, unit string) string {
	return fmt.Sprintf("%.0f°%s", v, unit)
}

// Temp renders v in the active unit.
func (f Formatter) Temp(v float64) string {
	return FormatTemp(v, string(f.Unit()))
}

// FeelsLike renders the apparent temperature label.
func (f Formatter) FeelsLike(v float64) string {
	return f.Strings().FeelsLike + " " + f.Temp(v)
}

// PrecipDisplay prefers an amount over a probability and is empty when neither applies.
func PrecipDisplay(mm, probability float64, imperial bool) string {
	if mm >= minPrecipM {
		if imperial {
			return fmt.Sprintf("%.1fin", mm/mmPerInch)
		}
		return fmt.Sprintf("%.1fmm", mm)
	}
	if probability > 0 {
		return fmt.Sprintf("%d%%", int(probability))
	}
	return ""
}

// Precip applies PrecipDisplay with the active unit system.
func (f Formatter) Precip(mm, probability float64) string {
	return PrecipDisplay(mm, probability, f.UseFahrenheit)
}

var monthOffsets = [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// DayOfWeek returns 0 for Sunday through 6 for Saturday, or -1 for a bad month.
// January and February count as months of the previous year.
func DayOfWeek(year, month, day int) int {
	if month < 1 || month > 12 {
		return -1
	}
	if month < 3 {
		year--
	}
	return (year + year/4 - year/100 + year/400 + monthOffsets[month-1] + day) % 7
}

// Weekday returns the localized short weekday name for a calendar date.
func (f Formatter) Weekday(year, month, day int) string {
	dow := DayOfWeek(year, month, day)
	if dow < 0 {
		return ""
	}
	return f.Strings().Weekdays[dow]
}

// ShowRelativeLabels is false for French, which always shows weekday and hour names.
func (f Formatter) ShowRelativeLabels() bool { return f.Lang != models.LangFR }

// Arrival renders "LINE → DEST: N mins", or the due token when under a minute.
func (f Formatter) Arrival(a models.ArrivalInfo) string {
	s := f.Strings()
	var row string
	if mins := a.SecondsToArrival / 60; mins > 0 {
		row = fmt.Sprintf("%s → %s: %d %s", a.Line, a.Destination, mins, s.Mins)
	} else {
		row = fmt.Sprintf("%s → %s: %s", a.Line, a.Destination, s.Due)
	}
	return Truncate(row)
}

// ArrivalRows formats one mode of the board. A configured mode with no
// arrivals yields a single "no arrivals" row; an unconfigured one yields none.
func (f Formatter) ArrivalRows(arrivals []models.ArrivalInfo, configured bool) []string {
	if !configured {
		return nil
	}
	if len(arrivals) == 0 {
		return []string{f.Strings().NoArrivals}
	}
	rows := make([]string, 0, len(arrivals))
	for _, a := range arrivals {
		rows = append(rows, f.Arrival(a))
	}
	return rows
}

// Truncate limits s to the row width, replacing the tail with "...".
func Truncate(s string) string {
	if len(s) <= maxRowLen {
		return s
	}
	cut := maxRowLen - len(ellipsis)
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + ellipsis
}

const upperHex = "0123456789ABCDEF"

// PercentEncode escapes everything outside the RFC 3986 unreserved set.
func PercentEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	}
	return false
}
