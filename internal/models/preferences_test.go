package models

import "testing"

func TestPreferencesPatch_Apply(t *testing.T) {
	base := DefaultPreferences()
	base.Brightness = 42

	on := true
	de := LangDE
	var ms uint32 = 5000
	got := PreferencesPatch{UseFahrenheit: &on, Language: &de, AutoRotateIntervalMs: &ms}.Apply(base)

	want := base
	want.UseFahrenheit = true
	want.Language = LangDE
	want.AutoRotateIntervalMs = 5000
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	if got := (PreferencesPatch{}).Apply(base); got != base {
		t.Fatalf("empty patch changed prefs: %+v", got)
	}
}
