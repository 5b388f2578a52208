package controllers

import (
	"fmt"

	"marine-trading-backend/config"
	"marine-trading-backend/documents/services"
	"marine-trading-backend/pricing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExportDocumentExcelController streams a document as an xlsx download.
func (dc *DocumentController) ExportDocumentExcelController(c *fiber.Ctx) error {
	documentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid document id",
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

	totals := pricing.Aggregate(document.Items, document.Charges, document.Discount, document.CurrencyType)
	workbook, err := services.BuildDocumentWorkbook(document, totals)
	if err != nil {
		config.Logger.Error("Failed to build document workbook",
			zap.Error(err), zap.String("documentID", documentID.String()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to build workbook",
		})
	}

	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		config.Logger.Error("Failed to serialize workbook", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to serialize workbook",
		})
	}

	filename := fmt.Sprintf("%s_%s.xlsx", document.DocumentType, document.RefNumber)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buffer.Bytes())
}
