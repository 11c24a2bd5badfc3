package movies

import (
	"encoding/json"
	"math"
	"sort"
	"strings"
	"unicode"
	models "watchlog/src/modules/movies/models"
	"watchlog/src/modules/movies/repository"
	"watchlog/src/utils"

	"golang.org/x/sync/singleflight"
)

// RecommendationItem is the projection returned by the recommend endpoint.
// Rating and reviews are deliberately omitted.
type RecommendationItem struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Genre    string `json:"genre"`
	Platform string `json:"platform"`
	Status   string `json:"status"`
	Image    string `json:"image"`
}

// RecommendService ranks the rest of the library against one target movie by
// genre-token overlap. Results are cached per movie id and concurrent
// computations for the same id are collapsed.
type RecommendService struct {
	Repo  repository.MovieRepository
	group singleflight.Group
}

func (s *RecommendService) Recommend(id uint) ([]RecommendationItem, *utils.ServiceError) {
	if _, err := s.Repo.GetByID(id); err != nil {
		return nil, storeError(err)
	}

	cacheKey := utils.RecommendCacheKey(id)
	if cached, ok := utils.CacheGet(cacheKey); ok {
		var out []RecommendationItem
		if err := json.Unmarshal(cached, &out); err == nil {
			return out, nil
		}
	}

	v, err, _ := s.group.Do(cacheKey, func() (interface{}, error) {
		target, err := s.Repo.GetByID(id)
		if err != nil {
			return nil, err
		}
		others, err := s.Repo.ListOthers(id)
		if err != nil {
			return nil, err
		}
		if len(others) == 0 {
			return []RecommendationItem{}, nil
		}
		return RankByGenre(*target, others), nil
	})
	if err != nil {
		return nil, storeError(err)
	}

	out := v.([]RecommendationItem)
	if data, err := json.Marshal(out); err == nil {
		utils.CacheSet(cacheKey, data)
	}
	return out, nil
}

// RankByGenre scores every other movie by cosine similarity between
// genre-token count vectors and returns the top 5. The vocabulary comes from
// the other movies only; target tokens outside it contribute nothing. Ties
// in similarity are broken by rating, both descending.
func RankByGenre(target models.Movie, others []models.Movie) []RecommendationItem {
	vocab := buildVocabulary(others)

	targetVec := countVector(tokenizeGenres(target.Genre), vocab)

	type scored struct {
		movie models.Movie
		sim   float64
	}
	ranked := make([]scored, 0, len(others))
	for _, movie := range others {
		vec := countVector(tokenizeGenres(movie.Genre), vocab)
		ranked = append(ranked, scored{movie: movie, sim: cosineSimilarity(targetVec, vec)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].sim != ranked[j].sim {
			return ranked[i].sim > ranked[j].sim
		}
		return ranked[i].movie.Rating > ranked[j].movie.Rating
	})

	if len(ranked) > 5 {
		ranked = ranked[:5]
	}

	out := make([]RecommendationItem, 0, len(ranked))
	for _, entry := range ranked {
		out = append(out, RecommendationItem{
			ID:       entry.movie.ID,
			Title:    entry.movie.Title,
			Genre:    entry.movie.Genre,
			Platform: entry.movie.Platform,
			Status:   entry.movie.Status,
			Image:    entry.movie.Image,
		})
	}
	return out
}

// tokenizeGenres treats the comma-joined genre string as free text: runs of
// letters and digits are tokens, case kept as stored. A multi-word genre
// therefore splits into separate tokens; that matches the stored data.
func tokenizeGenres(genre string) []string {
	return strings.FieldsFunc(genre, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func buildVocabulary(others []models.Movie) map[string]int {
	vocab := make(map[string]int)
	for _, movie := range others {
		for _, token := range tokenizeGenres(movie.Genre) {
			if _, ok := vocab[token]; !ok {
				vocab[token] = len(vocab)
			}
		}
	}
	return vocab
}

func countVector(tokens []string, vocab map[string]int) []float64 {
	vec := make([]float64, len(vocab))
	for _, token := range tokens {
		if idx, ok := vocab[token]; ok {
			vec[idx]++
		}
	}
	return vec
}

func cosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
