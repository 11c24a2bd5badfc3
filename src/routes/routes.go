package routes

import (
	"net/http"
	"watchlog/src/config"
	files "watchlog/src/modules/files/controllers"
	movies "watchlog/src/modules/movies/controllers"
	"watchlog/src/modules/movies/repository"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine, repo repository.MovieRepository) {
	ctrl := movies.NewController(repo)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/readyz", func(c *gin.Context) {
		// The in-memory store has nothing to probe
		if config.DB == nil || config.CheckConnection() {
			c.JSON(http.StatusOK, gin.H{"status": "ready"})
		} else {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		}
	})

	// Movie library routes
	moviesRoutes := router.Group("/movies")
	{
		moviesRoutes.GET("", ctrl.ListMovies)
		moviesRoutes.POST("", ctrl.AddMovie)
		moviesRoutes.DELETE(":id", ctrl.DeleteMovie)
		moviesRoutes.PATCH(":id", ctrl.UpdateMovie)
		moviesRoutes.POST(":id/review", ctrl.AddReview)
		moviesRoutes.GET(":id/recommend", ctrl.RecommendMovies)
	}

	// Poster storage: proxy MinIO objects and accept uploads
	staticRoutes := router.Group("/static")
	{
		staticRoutes.GET("/*filepath", files.FileController)
		staticRoutes.POST("/upload", files.UploadController)
	}
}
