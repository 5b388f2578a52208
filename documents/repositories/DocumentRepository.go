package repositories

import (
	"fmt"

	"marine-trading-backend/config"
	"marine-trading-backend/db/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	CreateDocument(tx *gorm.DB, document *models.Document) (*models.Document, error)
	GetDocumentByID(id uuid.UUID) (*models.Document, error)
	ReplaceDocumentContents(tx *gorm.DB, document *models.Document, items []models.LineItem, charges []models.InvCharge) error
	DeleteDocument(tx *gorm.DB, id uuid.UUID) error
	GetFilteredDocuments(filters map[string]string, limit, offset int) ([]models.Document, int64, error)
}

type documentRepository struct {
	DB *gorm.DB
}

// NewDocumentRepository initializes a new document repository
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{DB: db}
}

func (dr *documentRepository) CreateDocument(tx *gorm.DB, document *models.Document) (*models.Document, error) {
	if err := tx.Create(document).Error; err != nil {
		config.Logger.Error("Failed to create document",
			zap.Error(err),
			zap.String("refNumber", document.RefNumber))
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return document, nil
}

// GetDocumentByID loads a document with its parties, ordered item table and
// charge list.
func (dr *documentRepository) GetDocumentByID(id uuid.UUID) (*models.Document, error) {
	var document models.Document
	err := dr.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Charges").
		Preload("Customer").
		Preload("Supplier").
		Preload("Vessel").
		Where("id = ?", id).
		First(&document).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		config.Logger.Error("Failed to get document", zap.Error(err), zap.String("documentID", id.String()))
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &document, nil
}

// ReplaceDocumentContents persists a wholesale Save: header update plus full
// replacement of the item and charge lists, all inside the caller's
// transaction so the save stays all-or-nothing.
func (dr *documentRepository) ReplaceDocumentContents(tx *gorm.DB, document *models.Document, items []models.LineItem, charges []models.InvCharge) error {
	if err := tx.Save(document).Error; err != nil {
		config.Logger.Error("Failed to update document header",
			zap.Error(err),
			zap.String("documentID", document.ID.String()))
		return fmt.Errorf("failed to update document header: %w", err)
	}

	if err := tx.Where("document_id = ?", document.ID).Delete(&models.LineItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear line items: %w", err)
	}
	if err := tx.Where("document_id = ?", document.ID).Delete(&models.InvCharge{}).Error; err != nil {
		return fmt.Errorf("failed to clear charges: %w", err)
	}

	for i := range items {
		items[i].DocumentID = document.ID
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	if len(items) > 0 {
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to insert line items: %w", err)
		}
	}

	for i := range charges {
		charges[i].DocumentID = document.ID
		if charges[i].ID == uuid.Nil {
			charges[i].ID = uuid.New()
		}
	}
	if len(charges) > 0 {
		if err := tx.Create(&charges).Error; err != nil {
			return fmt.Errorf("failed to insert charges: %w", err)
		}
	}

	return nil
}

func (dr *documentRepository) DeleteDocument(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Where("id = ?", id).Delete(&models.Document{}).Error; err != nil {
		config.Logger.Error("Failed to delete document", zap.Error(err), zap.String("documentID", id.String()))
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
