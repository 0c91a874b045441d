package service

// EffectKind names a side effect requested by a state machine. The display
// loop performs effects; the machines themselves stay pure.
type EffectKind int

const (
	EffectRefreshTransit EffectKind = iota + 1
	EffectSetBacklight
	EffectStartWakeTimer
)

// Effect is one requested side effect. Level is used by EffectSetBacklight.
type Effect struct {
	Kind  EffectKind
	Level uint8
}
