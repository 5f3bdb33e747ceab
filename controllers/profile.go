package controllers

import (
	"net/http"

	"glowbook-backend/services"
	"glowbook-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the session user with booking history, password
// omitted.
func GetProfile(c *gin.Context) {
	user := identity.CurrentUser()
	if user == nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "No active session")
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, user)
}

// UpdateProfile merges the provided fields into the session user. Used by
// onboarding (gender, preferences) and by profile edits.
func UpdateProfile(c *gin.Context) {
	if identity.CurrentUser() == nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "No active session")
		return
	}

	var input services.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != nil && *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	identity.UpdateProfile(input)

	user := identity.CurrentUser()
	user.Password = ""
	c.JSON(http.StatusOK, user)
}
