package controllers

import (
	"marine-trading-backend/config"
	"marine-trading-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type updateVesselRequest struct {
	VesselName string  `json:"vessel_name"`
	IMONumber  *string `json:"imo_number"`
	Flag       *string `json:"flag"`
	IsActive   *bool   `json:"is_active"`
	UpdatedBy  string  `json:"updated_by"`
}

// UpdateVesselController edits a vessel and re-indexes it for lookup search.
func (cc *CompanyController) UpdateVesselController(c *fiber.Ctx) error {
	vesselID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid vessel id",
		})
	}

	var req updateVesselRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Invalid request body for UpdateVesselController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if req.VesselName == "" || req.UpdatedBy == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "vessel_name and updated_by are required",
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

	vessel.VesselName = req.VesselName
	vessel.IMONumber = req.IMONumber
	vessel.Flag = req.Flag
	if req.IsActive != nil {
		vessel.IsActive = *req.IsActive
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

	updated, err := cc.CompanyRepo.UpdateVessel(tx, vessel)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update vessel",
		})
	}

	if cc.BleveRepo != nil {
		if err := cc.BleveRepo.UpdateVessel(*updated); err != nil {
			config.Logger.Error("Error re-indexing vessel", zap.Error(err), zap.String("vesselID", updated.ID.String()))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to re-index vessel",
			})
		}
	}

	if err := tx.Commit().Error; err != nil {
		config.Logger.Error("Failed to commit vessel update", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to finalize vessel update",
		})
	}
	txCommitted = true

	utils.InvalidateCacheAsync(cc.RedisClient, vesselsCacheResource)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Vessel updated successfully",
		"data":    updated,
	})
}
