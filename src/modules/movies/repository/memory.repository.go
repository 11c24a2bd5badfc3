package repository

import (
	"sync"
	movies "watchlog/src/modules/movies/models"
)

// MemoryMovieRepository keeps movies in process memory, in insertion order.
// It backs local development without Postgres and the handler tests.
type MemoryMovieRepository struct {
	mu    sync.Mutex
	seq   uint
	byID  map[uint]movies.Movie
	order []uint
}

func NewMemoryMovieRepository() *MemoryMovieRepository {
	return &MemoryMovieRepository{byID: make(map[uint]movies.Movie)}
}

func (r *MemoryMovieRepository) ListAll() ([]movies.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]movies.Movie, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *MemoryMovieRepository) ListOthers(id uint) ([]movies.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]movies.Movie, 0, len(r.order))
	for _, other := range r.order {
		if other != id {
			out = append(out, r.byID[other])
		}
	}
	return out, nil
}

func (r *MemoryMovieRepository) GetByID(id uint) (*movies.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	movie, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &movie, nil
}

func (r *MemoryMovieRepository) Create(movie *movies.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	movie.ID = r.seq
	r.byID[movie.ID] = *movie
	r.order = append(r.order, movie.ID)
	return nil
}

func (r *MemoryMovieRepository) Update(movie *movies.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[movie.ID]; !ok {
		return ErrNotFound
	}
	r.byID[movie.ID] = *movie
	return nil
}

func (r *MemoryMovieRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
