package controllers

import (
	bleve_repositories "marine-trading-backend/bleve/repositories"
	"marine-trading-backend/companies/repositories"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	companiesCacheResource = "companies"
	vesselsCacheResource   = "vessels"
)

type CompanyController struct {
	DB          *gorm.DB
	CompanyRepo repositories.CompanyRepository
	BleveRepo   bleve_repositories.BleveRepositoryInterface
	RedisClient *redis.Client
}
