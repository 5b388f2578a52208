package controllers

import (
	"marine-trading-backend/config"
	"marine-trading-backend/db/models"
	"marine-trading-backend/documents/requests"
	"marine-trading-backend/documents/services"
	"marine-trading-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateDocumentController creates a document from a wholesale payload. The
// server re-derives all pricing and row numbering before anything is
// persisted; the client's derived fields are never trusted as-is.
func (dc *DocumentController) CreateDocumentController(c *fiber.Ctx) error {
	var req requests.DocumentEditRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Invalid request body for CreateDocumentController", zap.Error(err))
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

	result := services.RecalculateDocument(req.ItemDetailList, req.InvChargeList, req.Discount, req.Currency, req.CurrencyType)

	document := &models.Document{
		ID:           uuid.New(),
		DocumentType: req.DocumentType,
		RefNumber:    req.RefNumber,
		RefSubject:   req.RefSubject,
		Remark:       req.Remark,
		CurrencyType: req.CurrencyType,
		Currency:     req.Currency,
		Discount:     req.Discount,
		CustomerID:   req.CustomerID,
		SupplierID:   req.SupplierID,
		VesselID:     req.VesselID,
		ExtraInfo:    req.ExtraInfo,
		CreatedBy:    req.CreatedBy,
	}

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

	if _, err := dc.DocumentRepo.CreateDocument(tx, document); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create document",
		})
	}
	if err := dc.DocumentRepo.ReplaceDocumentContents(tx, document, result.Items, result.Charges); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to persist document contents",
		})
	}

	if err := tx.Commit().Error; err != nil {
		config.Logger.Error("Failed to commit document creation", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to finalize document creation",
		})
	}
	txCommitted = true

	utils.InvalidateCacheAsync(dc.RedisClient, documentsCacheResource)
	config.Logger.Info("Document created",
		zap.String("documentID", document.ID.String()),
		zap.String("refNumber", document.RefNumber),
		zap.String("documentType", string(document.DocumentType)))

	document.Items = result.Items
	document.Charges = result.Charges
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":      true,
		"message":      "Document created successfully",
		"data":         document,
		"final_totals": result.Totals,
	})
}
