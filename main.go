package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pubsched/api-go/config"
	"github.com/pubsched/api-go/repositories"
	"github.com/pubsched/api-go/routes"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	// Initialize storage: postgres by default, in-memory for local runs
	var repos *repositories.Registry
	if os.Getenv("STORAGE") == "memory" {
		log.Println("Using in-memory storage")
		repos = repositories.NewMemory()
	} else {
		db := config.InitDB()
		repos = repositories.NewPostgres(db)
	}

	// Create a new Gin router
	r := gin.Default()

	// Add logging middleware
	r.Use(gin.LoggerWithWriter(os.Stdout))

	// Initialize routes
	routes.SetupRoutes(r, repos)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}
