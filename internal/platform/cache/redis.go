package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"lycosidae/internal/platform/config"

	"github.com/redis/go-redis/v9"
)

// RDB backs the leaderboard cache. Redis here is a mirror, never the
// source of truth: an unreachable Redis at boot is fatal, while a
// failure at runtime only degrades leaderboard reads to Postgres.
var RDB *redis.Client

func ConnectRedis() {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := RDB.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis at %s: %v", config.AppConfig.RedisAddr, err)
	}
	fmt.Println("Leaderboard cache connected to Redis.")
}

func CloseRedis() {
	if RDB != nil {
		RDB.Close()
		fmt.Println("Leaderboard cache connection closed.")
	}
}
