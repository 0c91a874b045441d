package models

// Panel is the visible forecast view.
type Panel int

const (
	PanelDaily Panel = iota
	PanelHourly
	PanelTransit
)

func (p Panel) String() string {
	switch p {
	case PanelDaily:
		return "daily"
	case PanelHourly:
		return "hourly"
	case PanelTransit:
		return "transit"
	default:
		return "unknown"
	}
}

// MarshalText encodes the panel by name.
func (p Panel) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// TouchTarget tells whether a touch landed on the visible panel or elsewhere on screen.
type TouchTarget string

const (
	TouchPanel  TouchTarget = "panel"
	TouchScreen TouchTarget = "screen"
)
