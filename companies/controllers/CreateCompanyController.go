package controllers

import (
	"marine-trading-backend/config"
	"marine-trading-backend/db/models"
	"marine-trading-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateCompanyController creates a customer/supplier and indexes it for
// lookup search within the same transaction scope.
func (cc *CompanyController) CreateCompanyController(c *fiber.Ctx) error {
	var company models.Company
	if err := c.BodyParser(&company); err != nil {
		config.Logger.Error("Invalid request body for CreateCompanyController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if company.CompanyName == "" || company.CreatedBy == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "company_name and created_by are required",
		})
	}
	if company.Role == "" {
		company.Role = models.CompanyCustomer
	}
	company.ID = uuid.New()
	company.IsActive = true

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

	created, err := cc.CompanyRepo.CreateCompany(tx, &company)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create company",
		})
	}

	if cc.BleveRepo != nil {
		if err := cc.BleveRepo.IndexSingleCompany(*created); err != nil {
			config.Logger.Error("Error indexing company", zap.Error(err), zap.String("companyID", created.ID.String()))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to index company",
			})
		}
	} else {
		config.Logger.Warn("BleveRepo is nil, skipping company indexing")
	}

	if err := tx.Commit().Error; err != nil {
		config.Logger.Error("Failed to commit company creation", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to finalize company creation",
		})
	}
	txCommitted = true

	utils.InvalidateCacheAsync(cc.RedisClient, companiesCacheResource)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Company created successfully",
		"data":    created,
	})
}
