package repository

import (
	"errors"
	movies "watchlog/src/modules/movies/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no record exists for the given id.
var ErrNotFound = errors.New("movie not found")

// MovieRepository is the persistence boundary for movie records.
type MovieRepository interface {
	ListAll() ([]movies.Movie, error)
	// ListOthers returns every record except the one with the given id.
	ListOthers(id uint) ([]movies.Movie, error)
	GetByID(id uint) (*movies.Movie, error)
	Create(movie *movies.Movie) error
	Update(movie *movies.Movie) error
	Delete(id uint) error
}

// GormMovieRepository stores movies in Postgres through gorm.
type GormMovieRepository struct {
	db *gorm.DB
}

func NewGormMovieRepository(db *gorm.DB) *GormMovieRepository {
	return &GormMovieRepository{db: db}
}

func (r *GormMovieRepository) ListAll() ([]movies.Movie, error) {
	var out []movies.Movie
	if err := r.db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormMovieRepository) ListOthers(id uint) ([]movies.Movie, error) {
	var out []movies.Movie
	if err := r.db.Where("id <> ?", id).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormMovieRepository) GetByID(id uint) (*movies.Movie, error) {
	var movie movies.Movie
	if err := r.db.First(&movie, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *GormMovieRepository) Create(movie *movies.Movie) error {
	return r.db.Create(movie).Error
}

func (r *GormMovieRepository) Update(movie *movies.Movie) error {
	return r.db.Save(movie).Error
}

func (r *GormMovieRepository) Delete(id uint) error {
	res := r.db.Delete(&movies.Movie{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
