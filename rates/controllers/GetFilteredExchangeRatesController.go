package controllers

import (
	"marine-trading-backend/config"
	"marine-trading-backend/utils"
	"marine-trading-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (rc *ExchangeRateController) GetFilteredExchangeRatesController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	cacheKey := utils.ListCacheKey(ratesCacheResource, params.Filters, params.Page, params.PageSize)
	var cached pagination.PaginatedResponse
	if utils.GetCachedList(c.Context(), rc.RedisClient, cacheKey, &cached) {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "Exchange rates retrieved successfully",
			"data":    cached,
			"cached":  true,
		})
	}

	offset := (params.Page - 1) * params.PageSize
	rates, total, err := rc.RateRepo.GetFilteredRates(params.Filters, params.PageSize, offset)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered exchange rates", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch exchange rates",
		})
	}

	response := pagination.NewPaginatedResponse(c, rates, total, params)
	utils.SetCachedList(c.Context(), rc.RedisClient, cacheKey, response)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Exchange rates retrieved successfully",
		"data":    response,
	})
}
