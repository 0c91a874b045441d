package handlers

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aura_display/internal/models"
	"aura_display/internal/service"
)

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(newTestDeps().service())
	w := do(r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK || decodeBody(t, w)["status"] != "ok" {
		t.Fatalf("health: %d %s", w.Code, w.Body.String())
	}
}

func TestGetDisplay(t *testing.T) {
	r := newTestRouter(newTestDeps().service())

	w := do(r, http.MethodGet, "/api/v1/display", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	body := decodeBody(t, w)
	if body["panel"] != "daily" || body["panel_title"] != "Daily Forecast" || body["clock"] != "14:05" {
		t.Fatalf("body = %v", body)
	}
	prefs, _ := body["preferences"].(map[string]interface{})
	if prefs["language"] != "en" {
		t.Fatalf("preferences = %v", prefs)
	}
}

func TestGetDisplayPNG(t *testing.T) {
	r := newTestRouter(newTestDeps().service())

	w := do(r, http.MethodGet, "/api/v1/display.png", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type = %q", ct)
	}
	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 240 || b.Dy() != 320 {
		t.Fatalf("bounds = %v", b)
	}
}

func TestTouch(t *testing.T) {
	deps := newTestDeps()
	r := newTestRouter(deps.service())

	w := do(r, http.MethodPost, "/api/v1/touch", `{"target":"panel"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["suppressed"] != false {
		t.Fatalf("suppressed = %v", body["suppressed"])
	}
	display, _ := body["display"].(map[string]interface{})
	if display["panel"] != "hourly" {
		t.Fatalf("display = %v", display)
	}
	if len(deps.ctl.touches) != 1 || deps.ctl.touches[0] != models.TouchPanel {
		t.Fatalf("touches = %v", deps.ctl.touches)
	}
}

func TestTouch_SuppressedWhileDimmed(t *testing.T) {
	deps := newTestDeps()
	deps.ctl.suppressed = true
	r := newTestRouter(deps.service())

	w := do(r, http.MethodPost, "/api/v1/panel/next", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if decodeBody(t, w)["suppressed"] != true {
		t.Fatalf("body = %s", w.Body.String())
	}
	if deps.ctl.touches[0] != models.TouchPanel {
		t.Fatalf("touches = %v", deps.ctl.touches)
	}
}

func TestTouch_BadTarget(t *testing.T) {
	deps := newTestDeps()
	r := newTestRouter(deps.service())

	for _, body := range []string{`{"target":"corner"}`, `{}`, `not json`} {
		if w := do(r, http.MethodPost, "/api/v1/touch", body); w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status=%d", body, w.Code)
		}
	}
	if len(deps.ctl.touches) != 0 {
		t.Fatalf("controller should not be called: %v", deps.ctl.touches)
	}
}

func TestRefresh_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{service.ErrNetworkUnavailable, http.StatusBadGateway},
		{service.ErrFetchFailed, http.StatusBadGateway},
		{service.ErrParseFailed, http.StatusBadGateway},
		{service.ErrConfigInvalid, http.StatusBadRequest},
	}
	for _, tc := range cases {
		deps := newTestDeps()
		deps.ctl.err = tc.err
		r := newTestRouter(deps.service())

		if w := do(r, http.MethodPost, "/api/v1/refresh", ""); w.Code != tc.want {
			t.Fatalf("err=%v: status=%d, want %d", tc.err, w.Code, tc.want)
		}
		if deps.ctl.refreshes != 1 {
			t.Fatalf("refreshes = %d", deps.ctl.refreshes)
		}
	}
}

func TestReset(t *testing.T) {
	deps := newTestDeps()
	r := newTestRouter(deps.service())

	w := do(r, http.MethodPost, "/api/v1/reset", "")
	if w.Code != http.StatusAccepted || decodeBody(t, w)["status"] != "accepted" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if deps.ctl.resets != 1 {
		t.Fatalf("resets = %d", deps.ctl.resets)
	}
}
