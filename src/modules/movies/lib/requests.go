package movies

import (
	"encoding/json"
	"strings"
)

// GenreField accepts either a plain string or a list of genre names in the
// request body. A list is trimmed per entry and joined with commas, which is
// the stored representation.
type GenreField string

func (g *GenreField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*g = GenreField(s)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	for i := range list {
		list[i] = strings.TrimSpace(list[i])
	}
	*g = GenreField(strings.Join(list, ","))
	return nil
}

type CreateMovieRequest struct {
	Title           string     `json:"title"`
	Director        string     `json:"director"`
	Genre           GenreField `json:"genre"`
	Platform        string     `json:"platform"`
	Status          string     `json:"status"`
	EpisodesWatched int        `json:"episodesWatched"`
	TotalEpisodes   int        `json:"totalEpisodes"`
	Rating          *float64   `json:"rating"`
	Review          string     `json:"review"`
	Image           string     `json:"image"`
}

type AddReviewRequest struct {
	Rating float64 `json:"rating"`
	Review string  `json:"review"`
}

// EpisodesWatched is a pointer so a PATCH without the field is a no-op.
type UpdateProgressRequest struct {
	EpisodesWatched *int `json:"episodesWatched"`
}
