package controllers

import (
	"marine-trading-backend/documents/repositories"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// documentsCacheResource is the redis key prefix for cached document lists.
const documentsCacheResource = "documents"

type DocumentController struct {
	DB           *gorm.DB
	DocumentRepo repositories.DocumentRepository
	RedisClient  *redis.Client
}
