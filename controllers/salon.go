package controllers

import (
	"net/http"
	"strconv"

	"glowbook-backend/models"
	"glowbook-backend/store"
	"glowbook-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetSalons lists salons near the caller, nearest first. Coordinates come
// from the query string or from the stored location; with neither, the
// bundled catalog is returned as-is.
func GetSalons(c *gin.Context) {
	lat, lng, ok := requestCoordinates(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"salons":       models.FallbackSalons,
			"userLocation": false,
		})
		return
	}

	salons := discovery.FindNearbySalons(c.Request.Context(), lat, lng)
	c.JSON(http.StatusOK, gin.H{
		"salons":       salons,
		"userLocation": true,
	})
}

// GetSalon returns a single salon: the wizard's selected one when the id
// matches (discovery results only live there), else a catalog entry.
func GetSalon(c *gin.Context) {
	id := c.Param("id")

	if selected := wizard.Selection().Salon; selected != nil && selected.ID == id {
		c.JSON(http.StatusOK, selected)
		return
	}

	for _, salon := range models.FallbackSalons {
		if salon.ID == id {
			c.JSON(http.StatusOK, salon)
			return
		}
	}

	utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
}

// requestCoordinates reads lat/lng from the query, falling back to the
// stored location.
func requestCoordinates(c *gin.Context) (float64, float64, bool) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if latStr == "" || lngStr == "" {
		latStr, _ = kv.Get(store.KeyUserLat)
		lngStr, _ = kv.Get(store.KeyUserLng)
	}
	if latStr == "" || lngStr == "" {
		return 0, 0, false
	}

	lat, latErr := strconv.ParseFloat(latStr, 64)
	lng, lngErr := strconv.ParseFloat(lngStr, 64)
	if latErr != nil || lngErr != nil {
		return 0, 0, false
	}
	return lat, lng, true
}
