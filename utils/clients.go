package utils

import (
	"context"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// Process-wide DB and Redis handles, set once at startup.

var db *gorm.DB

func SetDB(database *gorm.DB) {
	db = database
}

func GetDB() *gorm.DB {
	return db
}

var redisClient *redis.Client

func SetRedis(client *redis.Client) {
	redisClient = client
}

func GetRedis() *redis.Client {
	return redisClient
}

var ctx = context.Background()

func RedisCtx() context.Context {
	return ctx
}
