package main

import (
	"log"
	"net/http"
	"os"

	"hotelrev/config"
	"hotelrev/jobs"
	"hotelrev/models"
	"hotelrev/routes"
	"hotelrev/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.HotelAssignment{},
		&models.Event{},
		&models.DayForecast{},
		&models.MonthlyForecast{},
		&models.DailyActual{},
		&models.Task{},
		&models.Comment{},
		&models.ActivityLog{},
		&models.ChatHistory{},
	); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env not loaded, falling back to environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	jobs.SetDashboardRefresher(services.AnalyticsRefresher{})
	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
