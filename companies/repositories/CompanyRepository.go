package repositories

import (
	"fmt"

	"marine-trading-backend/config"
	"marine-trading-backend/db/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompanyRepository interface {
	CreateCompany(tx *gorm.DB, company *models.Company) (*models.Company, error)
	CreateVessel(tx *gorm.DB, vessel *models.Vessel) (*models.Vessel, error)
	GetCompanyByID(id uuid.UUID) (*models.Company, error)
	GetVesselByID(id uuid.UUID) (*models.Vessel, error)
	UpdateCompany(tx *gorm.DB, company *models.Company) (*models.Company, error)
	UpdateVessel(tx *gorm.DB, vessel *models.Vessel) (*models.Vessel, error)
	DeleteCompany(tx *gorm.DB, id uuid.UUID) error
	DeleteVessel(tx *gorm.DB, id uuid.UUID) error
	GetAllCompanies() ([]models.Company, error)
	GetAllVessels() ([]models.Vessel, error)
	GetFilteredCompanies(filters map[string]string, limit, offset int) ([]models.Company, int64, error)
	GetFilteredVessels(filters map[string]string, limit, offset int) ([]models.Vessel, int64, error)
}

type companyRepository struct {
	DB *gorm.DB
}

// NewCompanyRepository initializes a new company repository
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{DB: db}
}

func (cr *companyRepository) CreateCompany(tx *gorm.DB, company *models.Company) (*models.Company, error) {
	if err := tx.Create(company).Error; err != nil {
		config.Logger.Error("Failed to create company",
			zap.Error(err),
			zap.String("companyName", company.CompanyName))
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return company, nil
}

func (cr *companyRepository) CreateVessel(tx *gorm.DB, vessel *models.Vessel) (*models.Vessel, error) {
	if err := tx.Create(vessel).Error; err != nil {
		config.Logger.Error("Failed to create vessel",
			zap.Error(err),
			zap.String("vesselName", vessel.VesselName))
		return nil, fmt.Errorf("failed to create vessel: %w", err)
	}
	return vessel, nil
}

func (cr *companyRepository) GetCompanyByID(id uuid.UUID) (*models.Company, error) {
	var company models.Company
	err := cr.DB.Where("id = ?", id).First(&company).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		config.Logger.Error("Failed to get company", zap.Error(err), zap.String("companyID", id.String()))
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &company, nil
}

func (cr *companyRepository) GetVesselByID(id uuid.UUID) (*models.Vessel, error) {
	var vessel models.Vessel
	err := cr.DB.Where("id = ?", id).First(&vessel).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		config.Logger.Error("Failed to get vessel", zap.Error(err), zap.String("vesselID", id.String()))
		return nil, fmt.Errorf("failed to get vessel: %w", err)
	}
	return &vessel, nil
}

func (cr *companyRepository) UpdateCompany(tx *gorm.DB, company *models.Company) (*models.Company, error) {
	if err := tx.Save(company).Error; err != nil {
		config.Logger.Error("Failed to update company",
			zap.Error(err),
			zap.String("companyID", company.ID.String()))
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return company, nil
}

func (cr *companyRepository) UpdateVessel(tx *gorm.DB, vessel *models.Vessel) (*models.Vessel, error) {
	if err := tx.Save(vessel).Error; err != nil {
		config.Logger.Error("Failed to update vessel",
			zap.Error(err),
			zap.String("vesselID", vessel.ID.String()))
		return nil, fmt.Errorf("failed to update vessel: %w", err)
	}
	return vessel, nil
}

func (cr *companyRepository) DeleteCompany(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Where("id = ?", id).Delete(&models.Company{}).Error; err != nil {
		config.Logger.Error("Failed to delete company", zap.Error(err), zap.String("companyID", id.String()))
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}

func (cr *companyRepository) DeleteVessel(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Where("id = ?", id).Delete(&models.Vessel{}).Error; err != nil {
		config.Logger.Error("Failed to delete vessel", zap.Error(err), zap.String("vesselID", id.String()))
		return fmt.Errorf("failed to delete vessel: %w", err)
	}
	return nil
}

func (cr *companyRepository) GetAllCompanies() ([]models.Company, error) {
	var companies []models.Company
	if err := cr.DB.Find(&companies).Error; err != nil {
		config.Logger.Error("Failed to get all companies", zap.Error(err))
		return nil, fmt.Errorf("failed to get all companies: %w", err)
	}
	return companies, nil
}

func (cr *companyRepository) GetAllVessels() ([]models.Vessel, error) {
	var vessels []models.Vessel
	if err := cr.DB.Preload("Company").Find(&vessels).Error; err != nil {
		config.Logger.Error("Failed to get all vessels", zap.Error(err))
		return nil, fmt.Errorf("failed to get all vessels: %w", err)
	}
	return vessels, nil
}

func (cr *companyRepository) GetFilteredCompanies(filters map[string]string, limit, offset int) ([]models.Company, int64, error) {
	var companies []models.Company
	var total int64

	query := cr.DB.Model(&models.Company{})
	if role, ok := filters["role"]; ok && role != "" {
		query = query.Where("role = ? OR role = ?", role, models.CompanyBoth)
	}
	if name, ok := filters["company_name"]; ok && name != "" {
		query = query.Where("company_name ILIKE ?", "%"+name+"%")
	}
	if active, ok := filters["is_active"]; ok && active != "" {
		query = query.Where("is_active = ?", active == "true")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("updated_at DESC, created_at DESC").Limit(limit).Offset(offset).Find(&companies).Error; err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

func (cr *companyRepository) GetFilteredVessels(filters map[string]string, limit, offset int) ([]models.Vessel, int64, error) {
	var vessels []models.Vessel
	var total int64

	query := cr.DB.Model(&models.Vessel{})
	if companyID, ok := filters["company_id"]; ok && companyID != "" {
		query = query.Where("company_id = ?", companyID)
	}
	if name, ok := filters["vessel_name"]; ok && name != "" {
		query = query.Where("vessel_name ILIKE ?", "%"+name+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Preload("Company").Order("updated_at DESC, created_at DESC").Limit(limit).Offset(offset).Find(&vessels).Error; err != nil {
		return nil, 0, err
	}

	return vessels, total, nil
}
