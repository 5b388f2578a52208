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

// CreateVesselController registers a vessel under a customer.
func (cc *CompanyController) CreateVesselController(c *fiber.Ctx) error {
	var vessel models.Vessel
	if err := c.BodyParser(&vessel); err != nil {
		config.Logger.Error("Invalid request body for CreateVesselController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if vessel.VesselName == "" || vessel.CompanyID == uuid.Nil || vessel.CreatedBy == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "vessel_name, company_id and created_by are required",
		})
	}
	vessel.ID = uuid.New()
	vessel.IsActive = true

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

	created, err := cc.CompanyRepo.CreateVessel(tx, &vessel)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create vessel",
		})
	}

	if cc.BleveRepo != nil {
		if err := cc.BleveRepo.IndexSingleVessel(*created); err != nil {
			config.Logger.Error("Error indexing vessel", zap.Error(err), zap.String("vesselID", created.ID.String()))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to index vessel",
			})
		}
	}

	if err := tx.Commit().Error; err != nil {
		config.Logger.Error("Failed to commit vessel creation", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to finalize vessel creation",
		})
	}
	txCommitted = true

	utils.InvalidateCacheAsync(cc.RedisClient, vesselsCacheResource)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Vessel created successfully",
		"data":    created,
	})
}
