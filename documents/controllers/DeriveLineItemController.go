package controllers

import (
	"marine-trading-backend/config"
	"marine-trading-backend/documents/requests"
	"marine-trading-backend/pricing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DeriveLineItemController is the stateless per-keystroke derivation used by
// the editing screens: one row, the field just edited and its new value in,
// the fully re-derived row out. Nothing is persisted and repeated calls with
// the same input return the same row.
func (dc *DocumentController) DeriveLineItemController(c *fiber.Ctx) error {
	var req requests.DeriveItemRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Invalid request body for DeriveLineItemController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid derive payload",
			"error":   err.Error(),
		})
	}

	rate := pricing.ResolveRate(req.Currency, req.CurrencyType)
	item := pricing.DeriveLineItem(req.Item, req.EditedField, req.NewValue, rate)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Line item derived successfully",
		"data":    item,
	})
}
