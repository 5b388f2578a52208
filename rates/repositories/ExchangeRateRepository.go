package repositories

import (
	"fmt"
	"time"

	"marine-trading-backend/config"
	"marine-trading-backend/db/models"
	"marine-trading-backend/pricing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ExchangeRateRepository interface {
	GetActiveRate(tx *gorm.DB, currencyCode models.CurrencyType) (*models.ExchangeRate, error)
	CreateExchangeRate(tx *gorm.DB, rate *models.ExchangeRate) (*models.ExchangeRate, error)
	DeactivateExchangeRate(tx *gorm.DB, rateID uuid.UUID, updatedBy string) (*models.ExchangeRate, error)
	GetFilteredRates(filters map[string]string, limit, offset int) ([]models.ExchangeRate, int64, error)
}

type exchangeRateRepository struct {
	DB *gorm.DB
}

// NewExchangeRateRepository initializes a new exchange rate repository
func NewExchangeRateRepository(db *gorm.DB) ExchangeRateRepository {
	return &exchangeRateRepository{DB: db}
}

// GetActiveRate retrieves the currently active rate for a currency.
func (rr *exchangeRateRepository) GetActiveRate(tx *gorm.DB, currencyCode models.CurrencyType) (*models.ExchangeRate, error) {
	var rate models.ExchangeRate

	err := tx.Where("currency_code = ? AND active = ? AND (valid_to IS NULL OR valid_to > ?)",
		currencyCode, true, time.Now()).
		First(&rate).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		config.Logger.Error("Failed to get active exchange rate", zap.Error(err))
		return nil, fmt.Errorf("failed to get active exchange rate: %w", err)
	}

	return &rate, nil
}

func (rr *exchangeRateRepository) CreateExchangeRate(tx *gorm.DB, rate *models.ExchangeRate) (*models.ExchangeRate, error) {
	if err := tx.Create(rate).Error; err != nil {
		config.Logger.Error("Failed to create exchange rate",
			zap.Error(err),
			zap.String("currency", string(rate.CurrencyCode)),
			zap.String("rate", rate.Rate.String()))
		return nil, fmt.Errorf("failed to create exchange rate: %w", err)
	}
	return rate, nil
}

// DeactivateExchangeRate closes the validity window of an active rate.
func (rr *exchangeRateRepository) DeactivateExchangeRate(tx *gorm.DB, rateID uuid.UUID, updatedBy string) (*models.ExchangeRate, error) {
	var rate models.ExchangeRate
	if err := tx.Where("id = ?", rateID).First(&rate).Error; err != nil {
		config.Logger.Error("Failed to find exchange rate for deactivation",
			zap.Error(err),
			zap.String("rateID", rateID.String()))
		return nil, fmt.Errorf("failed to find exchange rate: %w", err)
	}

	now := time.Now()
	updates := map[string]interface{}{
		"active":     false,
		"valid_to":   now,
		"updated_by": &updatedBy,
		"updated_at": now,
	}
	if err := tx.Model(&models.ExchangeRate{}).
		Where("id = ?", rateID).
		Updates(updates).Error; err != nil {
		config.Logger.Error("Failed to deactivate exchange rate",
			zap.Error(err),
			zap.String("rateID", rateID.String()))
		return nil, fmt.Errorf("failed to deactivate exchange rate: %w", err)
	}

	if err := tx.Where("id = ?", rateID).First(&rate).Error; err != nil {
		return nil, fmt.Errorf("failed to reload exchange rate: %w", err)
	}
	return &rate, nil
}

func (rr *exchangeRateRepository) GetFilteredRates(filters map[string]string, limit, offset int) ([]models.ExchangeRate, int64, error) {
	var rates []models.ExchangeRate
	var total int64

	query := rr.DB.Model(&models.ExchangeRate{})
	if code, ok := filters["currency_code"]; ok && code != "" {
		query = query.Where("currency_code = ?", code)
	}
	if active, ok := filters["active"]; ok && active != "" {
		query = query.Where("active = ?", active == "true")
	}
	// Rate bounds arrive as query strings, possibly with thousand separators
	// ("1,050"). Unparseable values coerce to zero and the bound is skipped.
	if minStr, ok := filters["min_rate"]; ok && minStr != "" {
		if min := pricing.ParseAmount(minStr); min.IsPositive() {
			query = query.Where("rate >= ?", min)
		}
	}
	if maxStr, ok := filters["max_rate"]; ok && maxStr != "" {
		if max := pricing.ParseAmount(maxStr); max.IsPositive() {
			query = query.Where("rate <= ?", max)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rates).Error; err != nil {
		return nil, 0, err
	}

	return rates, total, nil
}
