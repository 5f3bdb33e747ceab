package routes

import (
	"glowbook-backend/config"
	"glowbook-backend/controllers"
	"glowbook-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.POST("/logout", controllers.Logout)
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Profile / onboarding
		api.GET("/profile", controllers.GetProfile)
		api.PUT("/profile", controllers.UpdateProfile)

		// Location
		location := api.Group("/location")
		{
			location.POST("/resolve", controllers.ResolveLocation)
			location.GET("", controllers.GetLocation)
			location.GET("/errors/:code", controllers.GeolocationError)
		}

		// Salon discovery
		salons := api.Group("/salons")
		{
			salons.GET("", controllers.GetSalons)
			salons.GET("/:id", controllers.GetSalon)
		}

		// Booking wizard
		wizard := api.Group("/wizard")
		{
			wizard.GET("", controllers.GetWizard)
			wizard.PUT("/salon", controllers.SetWizardSalon)
			wizard.PUT("/service", controllers.SetWizardService)
			wizard.PUT("/date", controllers.SetWizardDate)
			wizard.PUT("/slot", controllers.SetWizardSlot)
			wizard.DELETE("", controllers.ResetWizard)
		}

		api.GET("/slots", controllers.GetTimeSlots)

		// Checkout and tickets
		api.POST("/checkout", controllers.Checkout)
		api.POST("/checkout/pay", controllers.Pay)
		api.GET("/bookings", controllers.GetBookings)
		api.GET("/bookings/:id/qr", controllers.GetBookingQR)
	}

	return r
}
