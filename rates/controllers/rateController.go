package controllers

import (
	repositories "marine-trading-backend/rates/repositories"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ExchangeRateController struct {
	DB          *gorm.DB
	RateRepo    repositories.ExchangeRateRepository
	RedisClient *redis.Client
}

const ratesCacheResource = "exchange_rates"
