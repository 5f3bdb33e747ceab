package controllers

import (
	"errors"
	"net/http"

	"glowbook-backend/models"
	"glowbook-backend/services"
	"glowbook-backend/utils"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=6"`
	Name        string   `json:"name" binding:"required"`
	Phone       string   `json:"phone"`
	Gender      string   `json:"gender"`
	Preferences []string `json:"preferences"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account and starts a session for it.
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	err := identity.Signup(models.User{
		Email:       input.Email,
		Password:    input.Password,
		Name:        input.Name,
		Phone:       input.Phone,
		Gender:      input.Gender,
		Preferences: input.Preferences,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUser) {
			utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}

	token, err := utils.GenerateToken(input.Email)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user": gin.H{
			"email": input.Email,
			"name":  input.Name,
		},
	})
}

// Login matches email and password exactly. Unknown email and wrong
// password produce the same response.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if !identity.Login(input.Email, input.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(input.Email)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	user := identity.CurrentUser()
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

// Logout clears the session. The account record stays in the store.
func Logout(c *gin.Context) {
	identity.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the session user.
func Me(c *gin.Context) {
	user := identity.CurrentUser()
	if user == nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "No active session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"email":       user.Email,
			"name":        user.Name,
			"phone":       user.Phone,
			"gender":      user.Gender,
			"preferences": user.Preferences,
		},
	})
}
