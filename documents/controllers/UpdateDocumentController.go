package controllers

import (
	"marine-trading-backend/config"
	"marine-trading-backend/documents/requests"
	"marine-trading-backend/documents/services"
	"marine-trading-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UpdateDocumentController is the wholesale Save: the edited header plus the
// full item and charge lists replace whatever is stored, inside one
// transaction. There is no partial persist; a failed save leaves the stored
// document untouched and the client free to retry.
func (dc *DocumentController) UpdateDocumentController(c *fiber.Ctx) error {
	documentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid document id",
		})
	}

	var req requests.DocumentEditRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Invalid request body for UpdateDocumentController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid document payload",
			"error":   err.Error(),
		})
	}

	document, err := dc.DocumentRepo.GetDocumentByID(documentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load document",
		})
	}
	if document == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Document not found",
		})
	}

	result := services.RecalculateDocument(req.ItemDetailList, req.InvChargeList, req.Discount, req.Currency, req.CurrencyType)

	document.DocumentType = req.DocumentType
	document.RefNumber = req.RefNumber
	document.RefSubject = req.RefSubject
	document.Remark = req.Remark
	document.CurrencyType = req.CurrencyType
	document.Currency = req.Currency
	document.Discount = req.Discount
	document.CustomerID = req.CustomerID
	document.SupplierID = req.SupplierID
	document.VesselID = req.VesselID
	document.ExtraInfo = req.ExtraInfo
	document.UpdatedBy = &req.CreatedBy
	document.Items = nil
	document.Charges = nil
	document.Customer = nil
	document.Supplier = nil
	document.Vessel = nil

	tx := dc.DB.Session(&gorm.Session{}).WithContext(c.Context()).Begin()
	if tx.Error != nil {
		config.Logger.Error("Failed to start transaction", zap.Error(tx.Error))
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

	if err := dc.DocumentRepo.ReplaceDocumentContents(tx, document, result.Items, result.Charges); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to save document",
		})
	}

	if err := tx.Commit().Error; err != nil {
		config.Logger.Error("Failed to commit document save", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to finalize document save",
		})
	}
	txCommitted = true

	utils.InvalidateCacheAsync(dc.RedisClient, documentsCacheResource)
	config.Logger.Info("Document saved",
		zap.String("documentID", document.ID.String()),
		zap.Int("items", len(result.Items)),
		zap.Int("charges", len(result.Charges)))

	document.Items = result.Items
	document.Charges = result.Charges
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"message":      "Document saved successfully",
		"data":         document,
		"final_totals": result.Totals,
	})
}
