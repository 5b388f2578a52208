package controllers

import (
	"marine-trading-backend/config"
	"marine-trading-backend/utils"
	"marine-trading-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (cc *CompanyController) GetFilteredCompaniesController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	cacheKey := utils.ListCacheKey(companiesCacheResource, params.Filters, params.Page, params.PageSize)
	var cached pagination.PaginatedResponse
	if utils.GetCachedList(c.Context(), cc.RedisClient, cacheKey, &cached) {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "Companies retrieved successfully",
			"data":    cached,
			"cached":  true,
		})
	}

	offset := (params.Page - 1) * params.PageSize
	companies, total, err := cc.CompanyRepo.GetFilteredCompanies(params.Filters, params.PageSize, offset)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered companies", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch companies",
		})
	}

	response := pagination.NewPaginatedResponse(c, companies, total, params)
	utils.SetCachedList(c.Context(), cc.RedisClient, cacheKey, response)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Companies retrieved successfully",
		"data":    response,
	})
}

func (cc *CompanyController) GetFilteredVesselsController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	cacheKey := utils.ListCacheKey(vesselsCacheResource, params.Filters, params.Page, params.PageSize)
	var cached pagination.PaginatedResponse
	if utils.GetCachedList(c.Context(), cc.RedisClient, cacheKey, &cached) {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "Vessels retrieved successfully",
			"data":    cached,
			"cached":  true,
		})
	}

	offset := (params.Page - 1) * params.PageSize
	vessels, total, err := cc.CompanyRepo.GetFilteredVessels(params.Filters, params.PageSize, offset)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered vessels", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch vessels",
		})
	}

	response := pagination.NewPaginatedResponse(c, vessels, total, params)
	utils.SetCachedList(c.Context(), cc.RedisClient, cacheKey, response)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Vessels retrieved successfully",
		"data":    response,
	})
}
