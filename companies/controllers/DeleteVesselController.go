package controllers

import (
	"marine-trading-backend/config"
	"marine-trading-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DeleteVesselController soft-deletes a vessel and removes it from the
// lookup index.
func (cc *CompanyController) DeleteVesselController(c *fiber.Ctx) error {
	vesselID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid vessel id",
		})
	}

	vessel, err := cc.CompanyRepo.GetVesselByID(vesselID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load vessel",
		})
	}
	if vessel == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Vessel not found",
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

	if err := cc.CompanyRepo.DeleteVessel(tx, vesselID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete vessel",
		})
	}

	if cc.BleveRepo != nil {
		if err := cc.BleveRepo.DeleteVessel(vesselID.String()); err != nil {
			config.Logger.Error("Error removing vessel from index", zap.Error(err), zap.String("vesselID", vesselID.String()))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to remove vessel from index",
			})
		}
	}

	if err := tx.Commit().Error; err != nil {
		config.Logger.Error("Failed to commit vessel deletion", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to finalize vessel deletion",
		})
	}
	txCommitted = true

	utils.InvalidateCacheAsync(cc.RedisClient, vesselsCacheResource)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Vessel deleted successfully",
	})
}
