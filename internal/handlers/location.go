package handlers

import (
	"net/http"

	"aura_display/internal/models"

	"github.com/gin-gonic/gin"
)

type locationRequest struct {
	Name        string   `json:"name" binding:"required"`
	Admin1      string   `json:"admin1"`
	CountryCode string   `json:"country_code"`
	Latitude    *float64 `json:"latitude" binding:"required"`
	Longitude   *float64 `json:"longitude" binding:"required"`
}

// @Summary      Search places by name
// @Tags         location
// @Produce      json
// @Param        q    query     string  true  "Place name"
// @Success      200  {object}  map[string]interface{}  "count, results"
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/locations [get]
func (h *Handler) searchLocations(c *gin.Context) {
	query := c.Query("q")
	results, err := h.services.Search(c.Request.Context(), query)
	if err != nil {
		h.fail(c, "location search failed", "location_search_failed", err, "query", query)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(results),
		"results": results,
	})
}

// @Summary      Use a search result as the display location
// @Tags         location
// @Accept       json
// @Produce      json
// @Param        body  body      locationRequest  true  "Chosen place"
// @Success      200   {object}  models.Location
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/location [post]
func (h *Handler) acceptLocation(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	r := models.GeoResult{
		Name:        req.Name,
		Admin1:      req.Admin1,
		CountryCode: req.CountryCode,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
	}
	if err := h.services.AcceptLocation(c.Request.Context(), r); err != nil {
		h.fail(c, "failed to set location", "location_save_failed", err, "name", req.Name)
		return
	}
	c.JSON(http.StatusOK, h.services.Snapshot().Location)
}
