package main

import (
	"fmt"
	"log"
	"os"
	"time"
	"watchlog/src/config"
	"watchlog/src/modules/movies/repository"
	"watchlog/src/routes"
	"watchlog/src/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if _, err := os.Stat(".env"); err == nil {
		err := godotenv.Load()
		if err != nil {
			log.Println("⚠️  Could not load .env file")
		} else {
			log.Println("✅ Loaded .env file")
		}
	}

	host := os.Getenv("HOST")
	port := os.Getenv("APP_PORT")
	if host == "" {
		host = "0.0.0.0"
	}
	if port == "" {
		port = "2000"
	}

	// Setup Gin router
	router := gin.Default()
	// Enable CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"*"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Optional infrastructure: cache and image storage
	config.ConnectRedis()
	config.ConnectMinio()

	// Movie store: Postgres when configured, in-memory otherwise
	var repo repository.MovieRepository
	if os.Getenv("DB_HOST") != "" {
		config.ConnectDatabase()
		repo = repository.NewGormMovieRepository(config.DB)
	} else {
		log.Println("⚠️  DB_HOST not set, using in-memory movie store")
		repo = repository.NewMemoryMovieRepository()
	}

	// WebSocket change feed
	router.GET("/ws", services.WebSocketHandler)

	// Register other routes
	routes.RegisterRoutes(router, repo)
	services.SetupBackgroundJobs(repo)

	// Start API and WebSocket server
	addr := fmt.Sprintf("%s:%s", host, port)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Could not start server: %v\n", err)
	}
}
