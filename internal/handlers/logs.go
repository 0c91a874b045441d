package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"aura_display/internal/service"

	"github.com/gin-gonic/gin"
)

// Accepted query time layouts, most specific first.
var queryTimeLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

var errInvalidRange = errors.New("'from' must be <= 'to'")

// getLogs lists display events filtered by ?from=, ?to= and ?type=.
// A date-only 'to' covers that whole day.
//
// @Summary      Display event log
// @Tags         logs
// @Produce      json
// @Param        from  query     string  false  "RFC3339 or YYYY-MM-DD"
// @Param        to    query     string  false  "RFC3339 or YYYY-MM-DD"
// @Param        type  query     string  false  "WEATHER_REFRESH, WEATHER_FAILED, TRANSIT_REFRESH, SETTINGS_SAVED, LOCATION_CHANGED, NIGHT_MODE, RESET"
// @Success      200   {object}  map[string]interface{}  "count, events"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/logs [get]
func (h *Handler) getLogs(c *gin.Context) {
	filter, err := logFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	events, err := h.services.List(c.Request.Context(), filter)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load logs", "logs_list_failed", err,
			"from", filter.From, "to", filter.To, "type", filter.Type)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(events),
		"events": events,
	})
}

func logFilterFromQuery(c *gin.Context) (service.LogFilter, error) {
	f := service.LogFilter{Type: strings.ToUpper(strings.TrimSpace(c.Query("type")))}

	if raw := c.Query("from"); raw != "" {
		t, err := parseQueryTime(raw)
		if err != nil {
			return f, fmt.Errorf("invalid 'from': %w", err)
		}
		f.From = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := parseQueryTime(raw)
		if err != nil {
			return f, fmt.Errorf("invalid 'to': %w", err)
		}
		if !strings.ContainsAny(raw, "T ") {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		f.To = t
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return f, errInvalidRange
	}
	return f, nil
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range queryTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported time %q, use RFC3339 or YYYY-MM-DD", s)
}
