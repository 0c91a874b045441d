package handlers

import (
	"context"
	"errors"
	"net/http"

	"aura_display/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK       = "ok"
	statusAccepted = "accepted"

	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(requestIDKey)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// statusFor maps service errors onto HTTP codes: bad input is 400, upstream
// trouble is 502, everything else 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrConfigInvalid):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNetworkUnavailable),
		errors.Is(err, service.ErrFetchFailed),
		errors.Is(err, service.ErrParseFailed):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// fail responds with the mapped status. Client errors echo the cause.
func (h *Handler) fail(c *gin.Context, userMsg, logKey string, err error, kv ...interface{}) {
	code := statusFor(err)
	if code == http.StatusBadRequest {
		userMsg = err.Error()
	}
	h.logAndJSONError(c, code, userMsg, logKey, err, kv...)
}
