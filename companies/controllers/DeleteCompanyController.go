package controllers

import (
	"marine-trading-backend/config"
	"marine-trading-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DeleteCompanyController soft-deletes a company and removes it from the
// lookup index.
func (cc *CompanyController) DeleteCompanyController(c *fiber.Ctx) error {
	companyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid company id",
		})
	}

	company, err := cc.CompanyRepo.GetCompanyByID(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load company",
		})
	}
	if company == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Company not found",
		})
	}

	tx := cc.DB.Session(&gorm.Session{}).WithContext(c.Context()).Begin()
	if tx.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to start transaction",
		})
	}

	txCommitted := false
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	if err := cc.CompanyRepo.DeleteCompany(tx, companyID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete company",
		})
	}

	if cc.BleveRepo != nil {
		if err := cc.BleveRepo.DeleteCompany(companyID.String()); err != nil {
			config.Logger.Error("Error removing company from index", zap.Error(err), zap.String("companyID", companyID.String()))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to remove company from index",
			})
		}
	}

	if err := tx.Commit().Error; err != nil {
		config.Logger.Error("Failed to commit company deletion", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to finalize company deletion",
		})
	}
	txCommitted = true

	utils.InvalidateCacheAsync(cc.RedisClient, companiesCacheResource)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Company deleted successfully",
	})
}
