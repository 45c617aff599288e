package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"devmeup/config"
	"devmeup/controllers"
	"devmeup/middleware"
	"devmeup/models"
	"devmeup/repository"
	"devmeup/routes"
	"devmeup/services"
)

func main() {
	// Load environment variables
	config.LoadEnv()
	cfg := config.New()

	// Connect to the database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to access connection pool: %v", err)
	}
	defer sqlDB.Close()

	// Migrate the database schema
	if err := db.AutoMigrate(&models.AIOutput{}); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	// Wire the service stack
	store := repository.NewOutputRepository(db)
	historyService, err := services.NewHistoryService(store)
	if err != nil {
		log.Fatalf("Failed to build history service: %v", err)
	}

	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())

	// Register API routes
	routes.Register(router,
		controllers.NewHealthController(store),
		controllers.NewHistoryController(historyService),
	)

	// Start the server
	log.Fatal(router.Run(":" + cfg.Port))
}
