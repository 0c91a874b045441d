package handlers

import (
	"bytes"
	"net/http"

	"aura_display/internal/models"
	"aura_display/internal/render"

	"github.com/gin-gonic/gin"
)

type touchRequest struct {
	// Where the touch landed: panel or screen
	Target models.TouchTarget `json:"target" binding:"required,oneof=panel screen" example:"panel"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Current screen contents
// @Tags         display
// @Produce      json
// @Success      200  {object}  models.DisplaySnapshot
// @Router       /api/v1/display [get]
func (h *Handler) getDisplay(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Snapshot())
}

// @Summary      Rendered screen frame
// @Tags         display
// @Produce      png
// @Success      200  {file}    binary
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/display.png [get]
func (h *Handler) getDisplayPNG(c *gin.Context) {
	var buf bytes.Buffer
	if err := render.WritePNG(&buf, h.services.Snapshot()); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to render frame", "render_failed", err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// touch reports "suppressed" when the touch only woke a dimmed screen.
//
// @Summary      Touch the screen
// @Tags         display
// @Accept       json
// @Produce      json
// @Param        body  body      touchRequest  true  "Touch target"
// @Success      200   {object}  map[string]interface{}  "suppressed, display"
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/touch [post]
func (h *Handler) touch(c *gin.Context) {
	var req touchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	h.doTouch(c, req.Target)
}

// @Summary      Advance to the next panel
// @Tags         display
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "suppressed, display"
// @Router       /api/v1/panel/next [post]
func (h *Handler) nextPanel(c *gin.Context) {
	h.doTouch(c, models.TouchPanel)
}

func (h *Handler) doTouch(c *gin.Context, target models.TouchTarget) {
	suppressed, err := h.services.Touch(c.Request.Context(), target)
	if err != nil {
		h.fail(c, "failed to handle touch", "touch_failed", err, "target", target)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"suppressed": suppressed,
		"display":    h.services.Snapshot(),
	})
}

// @Summary      Refresh the weather now
// @Tags         display
// @Produce      json
// @Success      200  {object}  models.DisplaySnapshot
// @Failure      502  {object}  map[string]string
// @Failure      504  {object}  map[string]string
// @Router       /api/v1/refresh [post]
func (h *Handler) refresh(c *gin.Context) {
	if err := h.services.RefreshWeather(c.Request.Context()); err != nil {
		h.fail(c, "weather refresh failed", "weather_refresh_failed", err)
		return
	}
	c.JSON(http.StatusOK, h.services.Snapshot())
}

// reset wipes stored settings; the process exits afterwards and is expected
// to be restarted by its supervisor.
//
// @Summary      Factory reset
// @Tags         system
// @Produce      json
// @Success      202  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/reset [post]
func (h *Handler) reset(c *gin.Context) {
	if err := h.services.Reset(c.Request.Context()); err != nil {
		h.fail(c, "failed to reset settings", "reset_failed", err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": statusAccepted})
}
