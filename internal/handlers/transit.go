package handlers

import (
	"net/http"

	"aura_display/internal/models"

	"github.com/gin-gonic/gin"
)

type transitRequest struct {
	BusStopIDs    []string `json:"bus_stop_ids" binding:"max=3"`
	TubeStationID string   `json:"tube_station_id"`
}

type transitResponse struct {
	Config   models.TransitConfig `json:"config"`
	Enabled  bool                 `json:"enabled"`
	BusRows  []string             `json:"bus_rows"`
	TubeRows []string             `json:"tube_rows"`
}

func (h *Handler) transitView() transitResponse {
	snap := h.services.Snapshot()
	return transitResponse{
		Config:   snap.Transit,
		Enabled:  snap.TransitEnabled,
		BusRows:  snap.BusRows,
		TubeRows: snap.TubeRows,
	}
}

// @Summary      Transit stops and arrivals
// @Tags         transit
// @Produce      json
// @Success      200  {object}  transitResponse
// @Router       /api/v1/transit [get]
func (h *Handler) getTransit(c *gin.Context) {
	c.JSON(http.StatusOK, h.transitView())
}

// putTransit replaces the stop configuration. Empty IDs disable a slot.
//
// @Summary      Configure transit stops
// @Tags         transit
// @Accept       json
// @Produce      json
// @Param        body  body      transitRequest  true  "Up to 3 bus stops and a tube station"
// @Success      200   {object}  transitResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/transit [put]
func (h *Handler) putTransit(c *gin.Context) {
	var req transitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	var cfg models.TransitConfig
	copy(cfg.BusStopIDs[:], req.BusStopIDs)
	cfg.TubeStationID = req.TubeStationID

	if err := h.services.SetTransit(c.Request.Context(), cfg); err != nil {
		h.fail(c, "failed to save transit stops", "transit_save_failed", err)
		return
	}
	c.JSON(http.StatusOK, h.transitView())
}
