package config

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RDB *redis.Client
	Ctx = context.Background()
)

// ConnectRedis sets up the response cache. Redis is optional: when REDIS_HOST
// is not set, RDB stays nil and every cache lookup is skipped.
func ConnectRedis() (*redis.Client, context.Context) {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		fmt.Println("REDIS_HOST not set, running without response cache")
		return nil, nil
	}

	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}
	password := os.Getenv("REDIS_PASSWORD")
	addr := fmt.Sprintf("%s:%s", host, port)

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	pong, err := client.Ping(Ctx).Result()
	if err != nil {
		fmt.Printf("Failed to connect to Redis: %v\n", err)
		return nil, nil
	}

	RDB = client
	fmt.Println("Redis connected:", pong)
	return RDB, Ctx
}
