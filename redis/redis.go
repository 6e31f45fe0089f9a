package redis

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// InitRedis connects the catalog cache. The cache is optional: when no
// address is configured or the server is unreachable, Client stays nil and
// callers fall through to the database.
func InitRedis(addr string) {
	if addr == "" {
		log.Println("REDIS_ADDR not set, catalog caching disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	if _, err := client.Ping(Ctx).Result(); err != nil {
		log.Printf("Warning: failed to connect to Redis: %v, catalog caching disabled", err)
		return
	}

	Client = client
	log.Println("✅ Connected to Redis")
}
