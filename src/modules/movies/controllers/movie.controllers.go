package movies

import (
	"net/http"
	lib "watchlog/src/modules/movies/lib"
	"watchlog/src/modules/movies/repository"
	service "watchlog/src/modules/movies/services"
	"watchlog/src/utils"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	Movies    *service.MovieService
	Recommend *service.RecommendService
}

func NewController(repo repository.MovieRepository) *Controller {
	return &Controller{
		Movies:    &service.MovieService{Repo: repo},
		Recommend: &service.RecommendService{Repo: repo},
	}
}

func (ctrl *Controller) ListMovies(c *gin.Context) {
	res, err := ctrl.Movies.ListMovies()
	if err != nil {
		c.JSON(err.StatusCode, gin.H{"error": err.Message})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctrl *Controller) AddMovie(c *gin.Context) {
	var req lib.CreateMovieRequest
	// Malformed bodies and wrong field types fall through as 500s; only the
	// required-field check answers 400.
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	id, err := ctrl.Movies.CreateMovie(req)
	if err != nil {
		c.JSON(err.StatusCode, gin.H{"error": err.Message})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Movie added successfully!", "id": id})
}

func (ctrl *Controller) DeleteMovie(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		return
	}

	if err := ctrl.Movies.DeleteMovie(id); err != nil {
		c.JSON(err.StatusCode, gin.H{"error": err.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Movie deleted successfully!"})
}

func (ctrl *Controller) AddReview(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		return
	}

	var req lib.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := ctrl.Movies.AddReview(id, req); err != nil {
		c.JSON(err.StatusCode, gin.H{"error": err.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review added successfully!"})
}

func (ctrl *Controller) UpdateMovie(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		return
	}

	var req lib.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := ctrl.Movies.UpdateProgress(id, req); err != nil {
		c.JSON(err.StatusCode, gin.H{"error": err.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Movie updated successfully!"})
}

func (ctrl *Controller) RecommendMovies(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		return
	}

	res, err := ctrl.Recommend.Recommend(id)
	if err != nil {
		c.JSON(err.StatusCode, gin.H{"error": err.Message})
		return
	}
	c.JSON(http.StatusOK, res)
}
