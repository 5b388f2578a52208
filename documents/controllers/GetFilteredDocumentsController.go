package controllers

import (
	"marine-trading-backend/config"
	"marine-trading-backend/utils"
	"marine-trading-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetFilteredDocumentsController lists documents with pagination and
// filters. Responses are cached in redis for a few minutes; every document
// write invalidates the whole resource.
func (dc *DocumentController) GetFilteredDocumentsController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	cacheKey := utils.ListCacheKey(documentsCacheResource, params.Filters, params.Page, params.PageSize)
	var cached pagination.PaginatedResponse
	if utils.GetCachedList(c.Context(), dc.RedisClient, cacheKey, &cached) {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "Documents retrieved successfully",
			"data":    cached,
			"cached":  true,
		})
	}

	offset := (params.Page - 1) * params.PageSize
	documents, total, err := dc.DocumentRepo.GetFilteredDocuments(params.Filters, params.PageSize, offset)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered documents", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch documents",
		})
	}

	response := pagination.NewPaginatedResponse(c, documents, total, params)
	utils.SetCachedList(c.Context(), dc.RedisClient, cacheKey, response)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Documents retrieved successfully",
		"data":    response,
	})
}
