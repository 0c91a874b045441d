package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Language selects the UI string table.
type Language uint8

const (
	LangEN Language = iota
	LangES
	LangDE
	LangFR
	LangTR
	LangSV
	LangIT
)

var languageCodes = [...]string{"en", "es", "de", "fr", "tr", "sv", "it"}

// Valid reports whether l is a known language.
func (l Language) Valid() bool { return int(l) < len(languageCodes) }

func (l Language) String() string {
	if !l.Valid() {
		return "lang(" + strconv.Itoa(int(l)) + ")"
	}
	return languageCodes[l]
}

// MarshalText encodes the language as its ISO code.
func (l Language) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("unknown language %d", l)
	}
	return []byte(languageCodes[l]), nil
}

// UnmarshalText accepts an ISO code or the numeric index.
func (l *Language) UnmarshalText(b []byte) error {
	v, err := ParseLanguage(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// ParseLanguage accepts "en".."it" or "0".."6".
func ParseLanguage(s string) (Language, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, code := range languageCodes {
		if s == code {
			return Language(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < len(languageCodes) {
		return Language(n), nil
	}
	return LangEN, fmt.Errorf("unknown language %q", s)
}

// Preferences are the user-adjustable display options.
type Preferences struct {
	UseFahrenheit        bool     `json:"use_fahrenheit"`
	Use24Hour            bool     `json:"use_24_hour"`
	UseNightMode         bool     `json:"use_night_mode"`
	Brightness           uint8    `json:"brightness" validate:"min=1"`
	Language             Language `json:"language" validate:"lte=6"`
	AutoRotate           bool     `json:"auto_rotate"`
	AutoRotateIntervalMs uint32   `json:"auto_rotate_interval_ms" validate:"min=1000,max=3600000"`
}

// DefaultPreferences mirrors the factory settings of the device.
func DefaultPreferences() Preferences {
	return Preferences{
		Use24Hour:            true,
		Brightness:           128,
		Language:             LangEN,
		AutoRotateIntervalMs: 10000,
	}
}

// AutoRotateInterval returns the rotation period.
func (p Preferences) AutoRotateInterval() time.Duration {
	return time.Duration(p.AutoRotateIntervalMs) * time.Millisecond
}

// PreferencesPatch changes only the fields that are set.
type PreferencesPatch struct {
	UseFahrenheit        *bool     `json:"use_fahrenheit"`
	Use24Hour            *bool     `json:"use_24_hour"`
	UseNightMode         *bool     `json:"use_night_mode"`
	Brightness           *uint8    `json:"brightness"`
	Language             *Language `json:"language"`
	AutoRotate           *bool     `json:"auto_rotate"`
	AutoRotateIntervalMs *uint32   `json:"auto_rotate_interval_ms"`
}

// Apply returns p with the patch laid over it.
func (pp PreferencesPatch) Apply(p Preferences) Preferences {
	if pp.UseFahrenheit != nil {
		p.UseFahrenheit = *pp.UseFahrenheit
	}
	if pp.Use24Hour != nil {
		p.Use24Hour = *pp.Use24Hour
	}
	if pp.UseNightMode != nil {
		p.UseNightMode = *pp.UseNightMode
	}
	if pp.Brightness != nil {
		p.Brightness = *pp.Brightness
	}
	if pp.Language != nil {
		p.Language = *pp.Language
	}
	if pp.AutoRotate != nil {
		p.AutoRotate = *pp.AutoRotate
	}
	if pp.AutoRotateIntervalMs != nil {
		p.AutoRotateIntervalMs = *pp.AutoRotateIntervalMs
	}
	return p
}

// Settings is the full persisted configuration.
type Settings struct {
	Location    Location      `json:"location"`
	Preferences Preferences   `json:"preferences"`
	Transit     TransitConfig `json:"transit"`
}
