package repositories

import (
	"marine-trading-backend/db/models"

	"gorm.io/gorm"
)

// documentsQueryBuilder builds queries for document filtering
type documentsQueryBuilder struct {
	query   *gorm.DB
	filters map[string]string
}

func newDocumentsQueryBuilder(db *gorm.DB, filters map[string]string) *documentsQueryBuilder {
	return &documentsQueryBuilder{
		query:   db.Model(&models.Document{}),
		filters: filters,
	}
}

func (dqb *documentsQueryBuilder) applyBasicFilters() *documentsQueryBuilder {
	if docType, ok := dqb.filters["document_type"]; ok && docType != "" {
		dqb.query = dqb.query.Where("document_type = ?", docType)
	}
	if customerID, ok := dqb.filters["customer_id"]; ok && customerID != "" {
		dqb.query = dqb.query.Where("customer_id = ?", customerID)
	}
	if supplierID, ok := dqb.filters["supplier_id"]; ok && supplierID != "" {
		dqb.query = dqb.query.Where("supplier_id = ?", supplierID)
	}
	if vesselID, ok := dqb.filters["vessel_id"]; ok && vesselID != "" {
		dqb.query = dqb.query.Where("vessel_id = ?", vesselID)
	}
	if currencyType, ok := dqb.filters["currency_type"]; ok && currencyType != "" {
		dqb.query = dqb.query.Where("currency_type = ?", currencyType)
	}
	if refNumber, ok := dqb.filters["ref_number"]; ok && refNumber != "" {
		dqb.query = dqb.query.Where("ref_number ILIKE ?", "%"+refNumber+"%")
	}
	return dqb
}

func (dqb *documentsQueryBuilder) applyDateRangeFilter() *documentsQueryBuilder {
	startDate := dqb.filters["start_date"]
	endDate := dqb.filters["end_date"]

	if startDate != "" && startDate != "null" && endDate != "" && endDate != "null" {
		dqb.query = dqb.query.Where("DATE(created_at) BETWEEN DATE(?) AND DATE(?)", startDate, endDate)
	}
	return dqb
}

func (dqb *documentsQueryBuilder) applyLatestOrder() *documentsQueryBuilder {
	dqb.query = dqb.query.Order("GREATEST(created_at, updated_at) DESC").Order("created_at DESC")
	return dqb
}

// GetFilteredDocuments returns filtered documents with pagination. Line items
// are not preloaded here; the list screens only show header fields.
func (dr *documentRepository) GetFilteredDocuments(filters map[string]string, limit, offset int) ([]models.Document, int64, error) {
	var documents []models.Document
	var total int64

	countQuery := newDocumentsQueryBuilder(dr.DB, filters).applyBasicFilters().applyDateRangeFilter()
	if err := countQuery.query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := newDocumentsQueryBuilder(dr.DB, filters).applyBasicFilters().applyDateRangeFilter().applyLatestOrder()
	if err := listQuery.query.
		Preload("Customer").
		Preload("Vessel").
		Limit(limit).
		Offset(offset).
		Find(&documents).Error; err != nil {
		return nil, 0, err
	}

	return documents, total, nil
}
