package routes

import (
	controllers "marine-trading-backend/rates/controllers"
	"marine-trading-backend/rates/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func ExchangeRateInitRoutes(
	app *fiber.App,
	rateRepo repositories.ExchangeRateRepository,
	redisClient *redis.Client,
	db *gorm.DB,
) {
	rateController := &controllers.ExchangeRateController{
		DB:          db,
		RateRepo:    rateRepo,
		RedisClient: redisClient,
	}

	api := app.Group("/api/v1")

	api.Post("/exchange-rates", rateController.CreateExchangeRateController)
	api.Get("/exchange-rates/active", rateController.GetActiveExchangeRateController)
	api.Get("/exchange-rates/filtered", rateController.GetFilteredExchangeRatesController)
}
