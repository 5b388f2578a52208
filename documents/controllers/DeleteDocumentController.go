package controllers

import (
	"marine-trading-backend/config"
	"marine-trading-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DeleteDocumentController soft-deletes a document. Its items and charges
// stay in place under the deleted parent for audit purposes.
func (dc *DocumentController) DeleteDocumentController(c *fiber.Ctx) error {
	documentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid document id",
		})
	}

	tx := dc.DB.Session(&gorm.Session{}).WithContext(c.Context()).Begin()
	if tx.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to start transaction",
		})
	}

	if err := dc.DocumentRepo.DeleteDocument(tx, documentID); err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete document",
		})
	}

	if err := tx.Commit().Error; err != nil {
		config.Logger.Error("Failed to commit document deletion", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to finalize document deletion",
		})
	}

	utils.InvalidateCacheAsync(dc.RedisClient, documentsCacheResource)
	config.Logger.Info("Document deleted", zap.String("documentID", documentID.String()))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Document deleted successfully",
	})
}
