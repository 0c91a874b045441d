package service

import "testing"

func TestShouldDim(t *testing.T) {
	t.Parallel()

	cases := []struct {
		use  bool
		hour int
		want bool
	}{
		{true, 23, true},
		{true, 22, true},
		{true, 0, true},
		{true, 5, true},
		{true, 6, false},
		{true, 12, false},
		{true, 21, false},
		{false, 23, false},
		{false, 3, false},
	}
	for _, tc := range cases {
		if got := ShouldDim(tc.use, tc.hour); got != tc.want {
			t.Errorf("ShouldDim(%v, %d) = %v, want %v", tc.use, tc.hour, got, tc.want)
		}
	}
}

func backlightLevel(t *testing.T, effects []Effect) (uint8, bool) {
	t.Helper()
	for _, e := range effects {
		if e.Kind == EffectSetBacklight {
			return e.Level, true
		}
	}
	return 0, false
}

func hasEffect(effects []Effect, kind EffectKind) bool {
	for _, e := range effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestNightMode_TickDimsAndRestores(t *testing.T) {
	t.Parallel()

	n := NightMode{State: NightNormal, UseNightMode: true, Brightness: 200}

	n, effects := n.Tick(22)
	if n.State != NightDimmed {
		t.Fatalf("state = %v", n.State)
	}
	if lvl, ok := backlightLevel(t, effects); !ok || lvl != 0 {
		t.Fatalf("effects = %+v", effects)
	}

	n, effects = n.Tick(23)
	if n.State != NightDimmed || len(effects) != 0 {
		t.Fatalf("repeat tick should be quiet: %v %+v", n.State, effects)
	}

	n, effects = n.Tick(6)
	if n.State != NightNormal {
		t.Fatalf("state = %v", n.State)
	}
	if lvl, ok := backlightLevel(t, effects); !ok || lvl != 200 {
		t.Fatalf("effects = %+v", effects)
	}
	if n.Level() != 200 {
		t.Fatalf("level = %d", n.Level())
	}
}

func TestNightMode_TouchWhileDimmedIsSuppressed(t *testing.T) {
	t.Parallel()

	n := NightMode{State: NightDimmed, UseNightMode: true, Brightness: 90}

	n, effects, suppressed := n.Touch()
	if !suppressed || n.State != NightAwake {
		t.Fatalf("suppressed=%v state=%v", suppressed, n.State)
	}
	if lvl, ok := backlightLevel(t, effects); !ok || lvl != 90 {
		t.Fatalf("effects = %+v", effects)
	}
	if !hasEffect(effects, EffectStartWakeTimer) {
		t.Fatalf("wake timer not started: %+v", effects)
	}

	n, effects, suppressed = n.Touch()
	if suppressed || n.State != NightAwake || !hasEffect(effects, EffectStartWakeTimer) {
		t.Fatalf("awake touch: suppressed=%v state=%v effects=%+v", suppressed, n.State, effects)
	}

	// Ticks inside the window leave an awake screen alone.
	n, effects = n.Tick(23)
	if n.State != NightAwake || len(effects) != 0 {
		t.Fatalf("tick while awake: %v %+v", n.State, effects)
	}
}

func TestNightMode_TouchWhileNormal(t *testing.T) {
	t.Parallel()

	n := NightMode{State: NightNormal, UseNightMode: true, Brightness: 90}
	next, effects, suppressed := n.Touch()
	if suppressed || next != n || len(effects) != 0 {
		t.Fatalf("normal touch: %+v %+v %v", next, effects, suppressed)
	}
}

func TestNightMode_WakeTimeout(t *testing.T) {
	t.Parallel()

	awake := NightMode{State: NightAwake, UseNightMode: true, Brightness: 90}

	n, effects := awake.WakeTimeout(1)
	if n.State != NightDimmed {
		t.Fatalf("state = %v", n.State)
	}
	if lvl, ok := backlightLevel(t, effects); !ok || lvl != 0 {
		t.Fatalf("effects = %+v", effects)
	}

	n, effects = awake.WakeTimeout(7)
	if n.State != NightNormal || len(effects) != 0 {
		t.Fatalf("after window: %v %+v", n.State, effects)
	}

	n, effects = NightMode{State: NightNormal}.WakeTimeout(1)
	if n.State != NightNormal || len(effects) != 0 {
		t.Fatalf("stray timeout: %v %+v", n.State, effects)
	}
}

func TestNightMode_Configure(t *testing.T) {
	t.Parallel()

	dimmed := NightMode{State: NightDimmed, UseNightMode: true, Brightness: 90}

	n, effects := dimmed.Configure(true, 150)
	if n.State != NightDimmed || len(effects) != 0 || n.Brightness != 150 {
		t.Fatalf("dimmed brightness change: %+v %+v", n, effects)
	}
	if n.Level() != 0 {
		t.Fatalf("dimmed level = %d", n.Level())
	}

	n, effects = dimmed.Configure(false, 90)
	if n.State != NightNormal {
		t.Fatalf("state = %v", n.State)
	}
	if lvl, ok := backlightLevel(t, effects); !ok || lvl != 90 {
		t.Fatalf("effects = %+v", effects)
	}

	n, effects = NightMode{State: NightNormal, Brightness: 90}.Configure(false, 40)
	if lvl, ok := backlightLevel(t, effects); !ok || lvl != 40 || n.Level() != 40 {
		t.Fatalf("lit brightness change: %+v %+v", n, effects)
	}
}
