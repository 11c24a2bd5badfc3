package movies

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	lib "watchlog/src/modules/movies/lib"
	models "watchlog/src/modules/movies/models"
	"watchlog/src/modules/movies/repository"
	realtime "watchlog/src/services"
	"watchlog/src/utils"
)

// MovieService implements the library operations on top of a repository.
// Reads go through the Redis response cache when it is configured; every
// mutation invalidates the cache and broadcasts a change event.
type MovieService struct {
	Repo repository.MovieRepository
}

func (s *MovieService) ListMovies() ([]models.Movie, *utils.ServiceError) {
	if cached, ok := utils.CacheGet(utils.MovieListKey); ok {
		var out []models.Movie
		if err := json.Unmarshal(cached, &out); err == nil {
			return out, nil
		}
	}

	out, err := s.Repo.ListAll()
	if err != nil {
		return nil, &utils.ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}
	if out == nil {
		out = []models.Movie{}
	}

	if data, err := json.Marshal(out); err == nil {
		utils.CacheSet(utils.MovieListKey, data)
	}
	return out, nil
}

func (s *MovieService) CreateMovie(req lib.CreateMovieRequest) (uint, *utils.ServiceError) {
	title := strings.TrimSpace(req.Title)
	director := strings.TrimSpace(req.Director)
	platform := strings.TrimSpace(req.Platform)
	status := strings.TrimSpace(req.Status)
	if title == "" || director == "" || platform == "" || status == "" {
		return 0, &utils.ServiceError{
			StatusCode: http.StatusBadRequest,
			Message:    "title, director, platform, and status are required",
		}
	}

	// A review in the create body seeds the log, but only together with an
	// explicit rating.
	initial := []lib.Review{}
	rating := 0.0
	if req.Rating != nil {
		rating = *req.Rating
		if req.Review != "" {
			initial = append(initial, lib.Review{Rating: rating, Review: req.Review})
		}
	}

	movie := models.Movie{
		Title:           title,
		Director:        director,
		Genre:           string(req.Genre),
		Platform:        platform,
		Status:          status,
		EpisodesWatched: req.EpisodesWatched,
		TotalEpisodes:   req.TotalEpisodes,
		Rating:          rating,
		Review:          lib.EncodeReviews(initial),
		Image:           req.Image,
	}

	if err := s.Repo.Create(&movie); err != nil {
		return 0, &utils.ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}

	utils.InvalidateMovieCache()
	realtime.Broadcast(realtime.Event{Type: "movie_added", MovieID: movie.ID})
	return movie.ID, nil
}

func (s *MovieService) DeleteMovie(id uint) *utils.ServiceError {
	if _, err := s.Repo.GetByID(id); err != nil {
		return storeError(err)
	}
	if err := s.Repo.Delete(id); err != nil {
		return storeError(err)
	}

	utils.InvalidateMovieCache()
	realtime.Broadcast(realtime.Event{Type: "movie_deleted", MovieID: id})
	return nil
}

func (s *MovieService) AddReview(id uint, req lib.AddReviewRequest) *utils.ServiceError {
	movie, err := s.Repo.GetByID(id)
	if err != nil {
		return storeError(err)
	}

	text := strings.TrimSpace(req.Review)
	if text == "" || req.Rating <= 0 {
		return &utils.ServiceError{
			StatusCode: http.StatusBadRequest,
			Message:    "Both rating and review are required",
		}
	}

	movie.Review = lib.AppendReview(movie.Review, req.Rating, text)
	if err := s.Repo.Update(movie); err != nil {
		return &utils.ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}

	utils.InvalidateMovieCache()
	realtime.Broadcast(realtime.Event{Type: "review_added", MovieID: id})
	return nil
}

func (s *MovieService) UpdateProgress(id uint, req lib.UpdateProgressRequest) *utils.ServiceError {
	movie, err := s.Repo.GetByID(id)
	if err != nil {
		return storeError(err)
	}

	// Absent field means nothing to change; the call still succeeds.
	if req.EpisodesWatched != nil {
		movie.EpisodesWatched = *req.EpisodesWatched
		if err := s.Repo.Update(movie); err != nil {
			return &utils.ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
		}
		utils.InvalidateMovieCache()
		realtime.Broadcast(realtime.Event{Type: "movie_updated", MovieID: id})
	}
	return nil
}

func storeError(err error) *utils.ServiceError {
	if errors.Is(err, repository.ErrNotFound) {
		return &utils.ServiceError{StatusCode: http.StatusNotFound, Message: "movie not found"}
	}
	return &utils.ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
}
