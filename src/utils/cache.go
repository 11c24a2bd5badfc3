package utils

import (
	"fmt"
	"time"
	"watchlog/src/config"
)

const (
	// MovieCacheTagKey tracks every cached movie response so a single
	// mutation can drop them all.
	MovieCacheTagKey = "movies:cached_keys"
	MovieListKey     = "movies:list"

	listCacheTTL      = 10 * time.Minute
	recommendCacheTTL = 30 * time.Minute
)

func RecommendCacheKey(id uint) string {
	return fmt.Sprintf("movies:recommend:%d", id)
}

// CacheGet returns the cached bytes for key, or false when Redis is not
// configured or the key is missing.
func CacheGet(key string) ([]byte, bool) {
	if config.RDB == nil {
		return nil, false
	}
	cached, err := config.RDB.Get(config.Ctx, key).Bytes()
	if err != nil || len(cached) == 0 {
		return nil, false
	}
	return cached, true
}

// CacheSet stores a response payload and tags the key for invalidation.
func CacheSet(key string, value []byte) {
	if config.RDB == nil {
		return
	}
	ttl := listCacheTTL
	if key != MovieListKey {
		ttl = recommendCacheTTL
	}
	_ = config.RDB.Set(config.Ctx, key, value, ttl).Err()
	config.RDB.SAdd(config.Ctx, MovieCacheTagKey, key)
}

// InvalidateMovieCache drops every tagged response key. Called after each
// mutation so reads never serve a stale library.
func InvalidateMovieCache() {
	if config.RDB == nil {
		return
	}
	keys, err := config.RDB.SMembers(config.Ctx, MovieCacheTagKey).Result()
	if err == nil && len(keys) > 0 {
		config.RDB.Del(config.Ctx, keys...)
	}
	config.RDB.Del(config.Ctx, MovieCacheTagKey)
}
