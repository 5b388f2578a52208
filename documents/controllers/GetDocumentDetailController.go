package controllers

import (
	"marine-trading-backend/config"
	"marine-trading-backend/pricing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetDocumentDetailController returns a document with its ordered item table,
// charge list and freshly computed totals. Totals are always derived on read,
// never read from storage.
func (dc *DocumentController) GetDocumentDetailController(c *fiber.Ctx) error {
	documentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid document id",
		})
	}

	document, err := dc.DocumentRepo.GetDocumentByID(documentID)
	if err != nil {
		config.Logger.Error("Failed to fetch document", zap.Error(err), zap.String("documentID", documentID.String()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch document",
		})
	}
	if document == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Document not found",
		})
	}

	totals := pricing.Aggregate(document.Items, document.Charges, document.Discount, document.CurrencyType)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"message":      "Document retrieved successfully",
		"data":         document,
		"final_totals": totals,
	})
}
