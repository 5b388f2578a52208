package controllers

import (
	"marine-trading-backend/config"
	"marine-trading-backend/db/models"
	"marine-trading-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type updateCompanyRequest struct {
	CompanyName string             `json:"company_name"`
	Role        models.CompanyRole `json:"role"`
	Country     *string            `json:"country"`
	Address     *string            `json:"address"`
	ContactName *string            `json:"contact_name"`
	Email       *string            `json:"email"`
	Phone       *string            `json:"phone"`
	IsActive    *bool              `json:"is_active"`
	UpdatedBy   string             `json:"updated_by"`
}

// UpdateCompanyController edits a company and re-indexes it for lookup search
// within the same transaction scope.
func (cc *CompanyController) UpdateCompanyController(c *fiber.Ctx) error {
	companyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid company id",
		})
	}

	var req updateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Invalid request body for UpdateCompanyController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if req.CompanyName == "" || req.UpdatedBy == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "company_name and updated_by are required",
		})
	}

	company, err := cc.CompanyRepo.GetCompanyByID(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load company",
		})
	}
	if company == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Company not found",
		})
	}

	company.CompanyName = req.CompanyName
	if req.Role != "" {
		company.Role = req.Role
	}
	company.Country = req.Country
	company.Address = req.Address
	company.ContactName = req.ContactName
	company.Email = req.Email
	company.Phone = req.Phone
	if req.IsActive != nil {
		company.IsActive = *req.IsActive
	}
	company.UpdatedBy = &req.UpdatedBy

	tx := cc.DB.Session(&gorm.Session{}).WithContext(c.Context()).Begin()
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

	updated, err := cc.CompanyRepo.UpdateCompany(tx, company)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update company",
		})
	}

	if cc.BleveRepo != nil {
		if err := cc.BleveRepo.UpdateCompany(*updated); err != nil {
			config.Logger.Error("Error re-indexing company", zap.Error(err), zap.String("companyID", updated.ID.String()))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to re-index company",
			})
		}
	}

	if err := tx.Commit().Error; err != nil {
		config.Logger.Error("Failed to commit company update", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to finalize company update",
		})
	}
	txCommitted = true

	utils.InvalidateCacheAsync(cc.RedisClient, companiesCacheResource)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Company updated successfully",
		"data":    updated,
	})
}
