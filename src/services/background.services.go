package services

import (
	"log"
	"watchlog/src/config"
	"watchlog/src/modules/movies/repository"
	"watchlog/src/utils"

	"github.com/robfig/cron/v3"
)

// SetupBackgroundJobs sets up and starts background maintenance: sweeping
// expired cache keys out of the tag set and logging library stats.
func SetupBackgroundJobs(repo repository.MovieRepository) {
	c := cron.New()

	c.AddFunc("@every 15m", func() {
		go sweepCacheTags()
	})
	c.AddFunc("@every 1h", func() {
		go logLibraryStats(repo)
	})

	c.Start()
	log.Println("[Cron] Background jobs initialized")
}

// sweepCacheTags removes tag-set members whose response keys already expired,
// so the set does not grow without bound between mutations.
func sweepCacheTags() {
	if config.RDB == nil {
		return
	}

	keys, err := config.RDB.SMembers(config.Ctx, utils.MovieCacheTagKey).Result()
	if err != nil || len(keys) == 0 {
		return
	}

	removed := 0
	for _, key := range keys {
		exists, err := config.RDB.Exists(config.Ctx, key).Result()
		if err != nil {
			continue
		}
		if exists == 0 {
			config.RDB.SRem(config.Ctx, utils.MovieCacheTagKey, key)
			removed++
		}
	}
	if removed > 0 {
		log.Printf("[Cron] Swept %d expired cache keys", removed)
	}
}

func logLibraryStats(repo repository.MovieRepository) {
	all, err := repo.ListAll()
	if err != nil {
		log.Printf("[Stats] Error fetching movies: %v", err)
		return
	}

	byStatus := make(map[string]int)
	for _, movie := range all {
		byStatus[movie.Status]++
	}
	log.Printf("[Stats] Tracking %d titles: %v", len(all), byStatus)
}
