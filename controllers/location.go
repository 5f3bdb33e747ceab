package controllers

import (
	"net/http"
	"strconv"

	"glowbook-backend/store"
	"glowbook-backend/utils"

	"github.com/gin-gonic/gin"
)

type ResolveLocationInput struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

// ResolveLocation stores the acquired coordinates and resolves them to a
// display name. The previous name is cleared first so stale text is never
// shown while a fresh lookup is in flight.
func ResolveLocation(c *gin.Context) {
	var input ResolveLocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	lat, lng := *input.Latitude, *input.Longitude

	kv.Delete(store.KeyLocationName)
	kv.Set(store.KeyUserLat, strconv.FormatFloat(lat, 'f', -1, 64))
	kv.Set(store.KeyUserLng, strconv.FormatFloat(lng, 'f', -1, 64))

	name := resolver.ResolveLocationName(c.Request.Context(), lat, lng)
	kv.Set(store.KeyLocationName, name)

	c.JSON(http.StatusOK, gin.H{
		"latitude":  lat,
		"longitude": lng,
		"name":      name,
	})
}

// GetLocation returns the last stored coordinates and resolved name.
func GetLocation(c *gin.Context) {
	latStr, latOK := kv.Get(store.KeyUserLat)
	lngStr, lngOK := kv.Get(store.KeyUserLng)
	if !latOK || !lngOK {
		utils.RespondWithError(c, http.StatusNotFound, "No location stored")
		return
	}

	lat, _ := strconv.ParseFloat(latStr, 64)
	lng, _ := strconv.ParseFloat(lngStr, 64)
	name, _ := kv.Get(store.KeyLocationName)

	c.JSON(http.StatusOK, gin.H{
		"latitude":  lat,
		"longitude": lng,
		"name":      name,
	})
}

// GeolocationError translates a browser geolocation error code into the
// message shown to the user, with an escape hatch to continue without
// location.
func GeolocationError(c *gin.Context) {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid error code")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  utils.GeolocationErrorMessage(code),
		"fallback": "Browse salons in default location",
	})
}
