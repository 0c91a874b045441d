package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"aura_display/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	wsWriteWait   = 10 * time.Second
	wsPongWait    = 60 * time.Second
	wsPingEvery   = wsPongWait * 9 / 10
	wsReadLimit   = 4 << 10
	pollDefault   = time.Second
	pollMax       = 10 * time.Second
	frameSnapshot = "snapshot"
)

// wsEnvelope is the frame written to clients.
type wsEnvelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// The API is served on the device's LAN; any origin may watch the screen.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsConnect streams display snapshots: one on connect, then one for every
// newly published snapshot, polled at ?interval= or ?interval_ms=.
//
// @Summary      Snapshot stream (WebSocket)
// @Tags         display
// @Param        interval     query  string  false  "Poll interval, e.g. 500ms (max 10s)"
// @Param        interval_ms  query  int     false  "Poll interval in milliseconds"
// @Success      101  {string}  string  "Switching Protocols"
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	poll := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.wsLog("ws_upgrade_failed", err)
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(wsReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	closed := make(chan struct{})
	go h.drain(conn, closed)

	h.streamSnapshots(c.Request.Context(), conn, poll, closed)
}

func (h *Handler) streamSnapshots(ctx context.Context, conn *websocket.Conn, poll time.Duration, closed <-chan struct{}) {
	sent := h.services.Snapshot()
	if err := writeSnapshot(conn, sent); err != nil {
		h.wsLog("ws_write_failed", err)
		return
	}

	check := time.NewTicker(poll)
	defer check.Stop()
	ping := time.NewTicker(wsPingEvery)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.wsLog("ws_ping_failed", err)
				return
			}
		case <-check.C:
			// Snapshots are immutable; a new pointer means a new frame.
			if cur := h.services.Snapshot(); cur != sent {
				if err := writeSnapshot(conn, cur); err != nil {
					h.wsLog("ws_write_failed", err)
					return
				}
				sent = cur
			}
		}
	}
}

// parseInterval reads ?interval=2s, then ?interval_ms=2000, within (0, pollMax].
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if d, err := time.ParseDuration(c.Query("interval")); err == nil && d > 0 && d <= pollMax {
		return d
	}
	if ms, err := strconv.Atoi(c.Query("interval_ms")); err == nil {
		if d := time.Duration(ms) * time.Millisecond; d > 0 && d <= pollMax {
			return d
		}
	}
	return pollDefault
}

// drain reads until the client goes away so control frames get handled.
func (h *Handler) drain(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.wsLog("ws_read_closed", err)
			return
		}
	}
}

func (h *Handler) wsLog(key string, err error) {
	if h.log != nil {
		h.log.Infow(key, "err", err)
	}
}

func writeSnapshot(conn *websocket.Conn, snap *models.DisplaySnapshot) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return conn.WriteJSON(wsEnvelope{Type: frameSnapshot, Data: snap})
}
