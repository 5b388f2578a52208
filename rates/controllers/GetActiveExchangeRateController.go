package controllers

import (
	"marine-trading-backend/config"
	"marine-trading-backend/db/models"
	"marine-trading-backend/pricing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetActiveExchangeRateController returns the active rate for a currency.
// When no rate has been configured yet the form default is returned instead,
// flagged so callers can tell a quoted rate from a fallback.
func (rc *ExchangeRateController) GetActiveExchangeRateController(c *fiber.Ctx) error {
	currencyCode := models.CurrencyType(c.Query("currency_code"))
	switch currencyCode {
	case models.CurrencyUSD, models.CurrencyEUR, models.CurrencyINR, models.CurrencyJPY:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "currency_code must be one of USD, EUR, INR, JPY",
		})
	}

	rate, err := rc.RateRepo.GetActiveRate(rc.DB.WithContext(c.Context()), currencyCode)
	if err != nil {
		config.Logger.Error("Failed to fetch active exchange rate", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch active exchange rate",
		})
	}

	if rate == nil {
		fallback, ok := pricing.FormDefaultRates[currencyCode]
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "No active rate configured, returning form default",
			"data": fiber.Map{
				"currency_code": currencyCode,
				"rate":          fallback,
				"is_default":    true,
				"has_default":   ok,
			},
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Active exchange rate retrieved successfully",
		"data":    rate,
	})
}
