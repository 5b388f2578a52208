package controllers

import (
	"marine-trading-backend/config"
	"marine-trading-backend/documents/requests"
	"marine-trading-backend/documents/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RecalculateTotalsController is the stateless totals recompute: current item
// and charge lists plus discount and rate in, normalized lists and
// FinalTotals out. The editing screens call this on every change to the
// discount, the rate or the charge list.
func (dc *DocumentController) RecalculateTotalsController(c *fiber.Ctx) error {
	var req requests.RecalculateRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Invalid request body for RecalculateTotalsController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid recalculate payload",
			"error":   err.Error(),
		})
	}

	result := services.RecalculateDocument(req.ItemDetailList, req.InvChargeList, req.Discount, req.Currency, req.CurrencyType)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Totals recalculated successfully",
		"data":    result,
	})
}
