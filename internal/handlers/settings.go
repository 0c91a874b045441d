package handlers

import (
	"net/http"

	"aura_display/internal/models"

	"github.com/gin-gonic/gin"
)

type brightnessRequest struct {
	// Backlight level, 1 to 255
	Brightness int `json:"brightness" binding:"required,min=1,max=255" example:"128"`
}

// @Summary      Current preferences
// @Tags         settings
// @Produce      json
// @Success      200  {object}  models.Preferences
// @Router       /api/v1/settings [get]
func (h *Handler) getSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Snapshot().Preferences)
}

// putSettings applies and persists the present fields, like closing the
// settings screen on the device.
//
// @Summary      Update preferences
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      models.PreferencesPatch  true  "Fields to change"
// @Success      200   {object}  models.Preferences
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/settings [put]
func (h *Handler) putSettings(c *gin.Context) {
	var patch models.PreferencesPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if err := h.services.UpdatePreferences(c.Request.Context(), patch); err != nil {
		h.fail(c, "failed to save settings", "settings_save_failed", err)
		return
	}
	c.JSON(http.StatusOK, h.services.Snapshot().Preferences)
}

// @Summary      Set backlight brightness
// @Description  Applies and persists immediately, like the brightness slider.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      brightnessRequest  true  "Brightness"
// @Success      200   {object}  map[string]int
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/settings/brightness [put]
func (h *Handler) putBrightness(c *gin.Context) {
	var req brightnessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if err := h.services.SetBrightness(c.Request.Context(), uint8(req.Brightness)); err != nil {
		h.fail(c, "failed to set brightness", "brightness_save_failed", err, "brightness", req.Brightness)
		return
	}
	c.JSON(http.StatusOK, gin.H{"brightness": req.Brightness})
}
