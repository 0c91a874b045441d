package service

import "aura_display/internal/models"

// NextPanel advances Daily, Hourly, then Transit when enabled, and wraps.
func NextPanel(cur models.Panel, transitEnabled bool) models.Panel {
	switch cur {
	case models.PanelDaily:
		return models.PanelHourly
	case models.PanelHourly:
		if transitEnabled {
			return models.PanelTransit
		}
		return models.PanelDaily
	default:
		return models.PanelDaily
	}
}

// PanelState is the panel rotation machine.
type PanelState struct {
	Current        models.Panel
	TransitEnabled bool
}

// Advance handles a tap on the panel or a rotation tick. Entering the
// transit panel requests an immediate transit refresh.
func (s PanelState) Advance() (PanelState, []Effect) {
	s.Current = NextPanel(s.Current, s.TransitEnabled)
	if s.Current == models.PanelTransit {
		return s, []Effect{{Kind: EffectRefreshTransit}}
	}
	return s, nil
}

// WithTransit applies a new transit configuration. Leaving transit disabled
// while it is visible falls back to the daily panel.
func (s PanelState) WithTransit(enabled bool) PanelState {
	s.TransitEnabled = enabled
	if !enabled && s.Current == models.PanelTransit {
		s.Current = models.PanelDaily
	}
	return s
}
