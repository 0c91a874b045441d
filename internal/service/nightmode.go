package service

import "time"

// Night window bounds, local time: dimmed from 22:00 until 06:00.
const (
	NightStartHour = 22
	NightEndHour   = 6
	WakeDuration   = 15 * time.Second
)

// NightState is the backlight state.
type NightState int

const (
	NightNormal NightState = iota
	NightDimmed
	NightAwake
)

func (s NightState) String() string {
	switch s {
	case NightDimmed:
		return "dimmed"
	case NightAwake:
		return "awake"
	default:
		return "normal"
	}
}

// ShouldDim reports whether hour is inside [22, 24) or [0, 6) with night mode on.
func ShouldDim(useNightMode bool, hour int) bool {
	if !useNightMode {
		return false
	}
	return hour >= NightStartHour || hour < NightEndHour
}

// NightMode is the night-mode and temporary-wake machine.
type NightMode struct {
	State        NightState
	UseNightMode bool
	Brightness   uint8
}

// Level is the backlight level for the current state.
func (n NightMode) Level() uint8 {
	if n.State == NightDimmed {
		return 0
	}
	return n.Brightness
}

// Tick runs the once-per-second dimming check. While awake the wake timer
// decides, not the tick.
func (n NightMode) Tick(hour int) (NightMode, []Effect) {
	dim := ShouldDim(n.UseNightMode, hour)
	switch {
	case n.State == NightNormal && dim:
		n.State = NightDimmed
		return n, []Effect{{Kind: EffectSetBacklight, Level: 0}}
	case n.State == NightDimmed && !dim:
		n.State = NightNormal
		return n, []Effect{{Kind: EffectSetBacklight, Level: n.Brightness}}
	}
	return n, nil
}

// Touch handles a touch anywhere on screen. A touch that wakes the screen is
// consumed: suppressed is true and the UI must ignore it.
func (n NightMode) Touch() (next NightMode, effects []Effect, suppressed bool) {
	switch n.State {
	case NightDimmed:
		n.State = NightAwake
		return n, []Effect{
			{Kind: EffectSetBacklight, Level: n.Brightness},
			{Kind: EffectStartWakeTimer},
		}, true
	case NightAwake:
		return n, []Effect{{Kind: EffectStartWakeTimer}}, false
	}
	return n, nil, false
}

// WakeTimeout ends a temporary wake.
func (n NightMode) WakeTimeout(hour int) (NightMode, []Effect) {
	if n.State != NightAwake {
		return n, nil
	}
	if ShouldDim(n.UseNightMode, hour) {
		n.State = NightDimmed
		return n, []Effect{{Kind: EffectSetBacklight, Level: 0}}
	}
	n.State = NightNormal
	return n, nil
}

// Configure applies new preferences. A lit screen follows brightness changes
// immediately; disabling night mode while dimmed relights it.
func (n NightMode) Configure(useNightMode bool, brightness uint8) (NightMode, []Effect) {
	changed := brightness != n.Brightness
	n.UseNightMode = useNightMode
	n.Brightness = brightness
	if !useNightMode && n.State != NightNormal {
		n.State = NightNormal
		return n, []Effect{{Kind: EffectSetBacklight, Level: brightness}}
	}
	if n.State != NightDimmed && changed {
		return n, []Effect{{Kind: EffectSetBacklight, Level: brightness}}
	}
	return n, nil
}
