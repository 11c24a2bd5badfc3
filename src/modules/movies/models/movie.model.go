package movies

import (
	"gorm.io/gorm"
)

// Movie is one tracked title. Genre holds a comma-joined tag list and Review
// holds a JSON-encoded array of review entries; both stay as plain text in
// the row and are only interpreted where needed.
type Movie struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	Title           string  `json:"title" gorm:"type:varchar(100);not null"`
	Director        string  `json:"director" gorm:"type:varchar(100);not null"`
	Genre           string  `json:"genre" gorm:"type:varchar(100)"`
	Platform        string  `json:"platform" gorm:"type:varchar(50);not null"`
	Status          string  `json:"status" gorm:"type:varchar(50);not null"`
	EpisodesWatched int     `json:"episodesWatched" gorm:"default:0"`
	TotalEpisodes   int     `json:"totalEpisodes" gorm:"default:0"`
	Rating          float64 `json:"rating" gorm:"default:0"`
	Review          string  `json:"review" gorm:"type:text"`
	Image           string  `json:"image" gorm:"type:varchar(250)"`
}

func MigrateMovies(db *gorm.DB) error {
	return db.AutoMigrate(&Movie{})
}
