package handlers

import (
	"net/http"
	"testing"

	"aura_display/internal/models"
	"aura_display/internal/service"
)

func TestGetSettings(t *testing.T) {
	r := newTestRouter(newTestDeps().service())

	w := do(r, http.MethodGet, "/api/v1/settings", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	body := decodeBody(t, w)
	if body["brightness"] != float64(128) || body["use_24_hour"] != true || body["language"] != "en" {
		t.Fatalf("body = %v", body)
	}
}

func TestPutSettings_OverlaysPresentFields(t *testing.T) {
	deps := newTestDeps()
	r := newTestRouter(deps.service())

	w := do(r, http.MethodPut, "/api/v1/settings", `{"use_fahrenheit":true,"language":"de","auto_rotate_interval_ms":5000}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	got := deps.ctl.prefs
	if got == nil {
		t.Fatalf("UpdatePreferences not called")
	}
	want := models.DefaultPreferences()
	want.UseFahrenheit = true
	want.Language = models.LangDE
	want.AutoRotateIntervalMs = 5000
	if *got != want {
		t.Fatalf("prefs = %+v, want %+v", *got, want)
	}
	if decodeBody(t, w)["language"] != "de" {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestPutSettings_Errors(t *testing.T) {
	deps := newTestDeps()
	r := newTestRouter(deps.service())

	if w := do(r, http.MethodPut, "/api/v1/settings", `{"language":"klingon"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("unknown language: status=%d", w.Code)
	}
	if deps.ctl.prefs != nil {
		t.Fatalf("controller should not be called")
	}

	deps.ctl.err = service.ErrConfigInvalid
	w := do(r, http.MethodPut, "/api/v1/settings", `{"auto_rotate_interval_ms":10}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid prefs: status=%d", w.Code)
	}
	if decodeBody(t, w)["error"] == "" {
		t.Fatalf("missing error message")
	}
}

func TestPutBrightness(t *testing.T) {
	deps := newTestDeps()
	r := newTestRouter(deps.service())

	w := do(r, http.MethodPut, "/api/v1/settings/brightness", `{"brightness":200}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if deps.ctl.brightness != 200 {
		t.Fatalf("brightness = %d", deps.ctl.brightness)
	}

	for _, body := range []string{`{"brightness":0}`, `{"brightness":256}`, `{}`} {
		if w := do(r, http.MethodPut, "/api/v1/settings/brightness", body); w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status=%d", body, w.Code)
		}
	}
}
