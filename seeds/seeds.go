package seeds

import (
	"errors"
	"fmt"
	"time"

	"marine-trading-backend/config"
	"marine-trading-backend/db/models"
	"marine-trading-backend/pricing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedExchangeRates activates one rate per currency from the form defaults so
// a fresh database can price documents before anyone quotes a real rate.
// Currencies that already have an active rate are left alone.
func SeedExchangeRates(db *gorm.DB) error {
	config.Logger.Info("Starting exchange rate seeding...")

	createdCount := 0
	skippedCount := 0

	for currencyCode, rate := range pricing.FormDefaultRates {
		var existing models.ExchangeRate
		result := db.Where("currency_code = ? AND active = ?", currencyCode, true).First(&existing)

		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				seeded := models.ExchangeRate{
					ID:           uuid.New(),
					CurrencyCode: currencyCode,
					Rate:         rate,
					Active:       true,
					CreatedBy:    "system",
					ValidFrom:    time.Now(),
				}
				if err := db.Create(&seeded).Error; err != nil {
					config.Logger.Error("Failed to seed exchange rate",
						zap.String("currency", string(currencyCode)),
						zap.Error(err))
					return fmt.Errorf("failed to seed exchange rate %s: %w", currencyCode, err)
				}
				createdCount++
				config.Logger.Info("Seeded exchange rate",
					zap.String("currency", string(currencyCode)),
					zap.String("rate", rate.String()))
			} else {
				config.Logger.Error("Error checking for existing exchange rate",
					zap.String("currency", string(currencyCode)),
					zap.Error(result.Error))
				return fmt.Errorf("failed to check exchange rate %s: %w", currencyCode, result.Error)
			}
		} else {
			skippedCount++
		}
	}

	config.Logger.Info("Exchange rate seeding completed",
		zap.Int("created", createdCount),
		zap.Int("skipped", skippedCount))
	return nil
}

// SeedMarineTradingAll runs every seeder in dependency order.
func SeedMarineTradingAll(db *gorm.DB) error {
	if err := SeedExchangeRates(db); err != nil {
		return err
	}
	return nil
}
