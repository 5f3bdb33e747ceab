package main

import (
	"fmt"
	"os"

	"glowbook-backend/config"
	"glowbook-backend/controllers"
	"glowbook-backend/routes"
	"glowbook-backend/services"
	"glowbook-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}

	log := config.InitLogger()
	config.ConnectDB()
	config.DB.AutoMigrate(&store.Entry{})

	kv := store.New(config.DB)
	identity := services.NewIdentityService(kv)
	wizard := services.NewWizardService(kv)
	resolver := services.NewLocationResolver(services.NewGeocodeClient(), services.NewGeminiClient(), log)
	discovery := services.NewDiscoveryService(services.NewGeminiClient(), log)
	payment := services.NewPaymentService()

	controllers.Init(kv, identity, wizard, resolver, discovery, payment)

	reminders := services.NewReminderService(kv, log)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
