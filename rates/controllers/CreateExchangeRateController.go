package controllers

import (
	"time"

	"marine-trading-backend/config"
	"marine-trading-backend/db/models"
	"marine-trading-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type createExchangeRateRequest struct {
	CurrencyCode models.CurrencyType `json:"currency_code"`
	Rate         decimal.Decimal     `json:"rate"`
	CreatedBy    string              `json:"created_by"`
}

// CreateExchangeRateController activates a new rate for a currency. The
// previously active rate (if any) is closed in the same transaction so there
// is never more than one active rate per currency code.
func (rc *ExchangeRateController) CreateExchangeRateController(c *fiber.Ctx) error {
	var req createExchangeRateRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Invalid request body for CreateExchangeRateController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	switch req.CurrencyCode {
	case models.CurrencyUSD, models.CurrencyEUR, models.CurrencyINR, models.CurrencyJPY:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "currency_code must be one of USD, EUR, INR, JPY",
		})
	}
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "rate must be greater than zero",
		})
	}
	if req.CreatedBy == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "created_by is required",
		})
	}

	tx := rc.DB.Session(&gorm.Session{}).WithContext(c.Context()).Begin()
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

	current, err := rc.RateRepo.GetActiveRate(tx, req.CurrencyCode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to look up current rate",
		})
	}
	if current != nil {
		if _, err := rc.RateRepo.DeactivateExchangeRate(tx, current.ID, req.CreatedBy); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to supersede current rate",
			})
		}
	}

	rate := &models.ExchangeRate{
		ID:           uuid.New(),
		CurrencyCode: req.CurrencyCode,
		Rate:         req.Rate,
		Active:       true,
		CreatedBy:    req.CreatedBy,
		ValidFrom:    time.Now(),
	}
	created, err := rc.RateRepo.CreateExchangeRate(tx, rate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create exchange rate",
		})
	}

	if err := tx.Commit().Error; err != nil {
		config.Logger.Error("Failed to commit exchange rate creation", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to finalize exchange rate creation",
		})
	}
	txCommitted = true

	utils.InvalidateCacheAsync(rc.RedisClient, ratesCacheResource)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Exchange rate created successfully",
		"data":    created,
	})
}
