package repositories

import (
	"marine-trading-backend/config"
	"marine-trading-backend/db/models"

	"github.com/blevesearch/bleve/v2"
	"go.uber.org/zap"
)

type bleveCompanyDoc struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	Role        string `json:"role"`
	Country     string `json:"country,omitempty"`
	ContactName string `json:"contact_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	IsActive    bool   `json:"is_active"`
}

func newBleveCompanyDoc(company models.Company) bleveCompanyDoc {
	doc := bleveCompanyDoc{
		ID:          company.ID.String(),
		CompanyName: company.CompanyName,
		Role:        string(company.Role),
		IsActive:    company.IsActive,
	}
	if company.Country != nil {
		doc.Country = *company.Country
	}
	if company.ContactName != nil {
		doc.ContactName = *company.ContactName
	}
	if company.Email != nil {
		doc.Email = *company.Email
	}
	if company.Phone != nil {
		doc.Phone = *company.Phone
	}
	return doc
}

// SearchCompanies matches the query against name and contact fields using
// exact, prefix and fuzzy strategies, optionally narrowed to one role.
func (r *BleveRepository) SearchCompanies(queryString string, role *models.CompanyRole) (*bleve.SearchResult, error) {
	booleanQuery := bleve.NewBooleanQuery()

	fieldsToSearch := []string{"company_name", "contact_name", "email", "country"}

	for _, field := range fieldsToSearch {
		fieldMatchQuery := bleve.NewMatchQuery(queryString)
		fieldMatchQuery.SetField(field)
		fieldMatchQuery.SetBoost(3.0)
		booleanQuery.AddShould(fieldMatchQuery)

		fieldPrefixQuery := bleve.NewPrefixQuery(queryString)
		fieldPrefixQuery.SetField(field)
		fieldPrefixQuery.SetBoost(2.0)
		booleanQuery.AddShould(fieldPrefixQuery)

		fieldFuzzyQuery := bleve.NewFuzzyQuery(queryString)
		fieldFuzzyQuery.SetField(field)
		fieldFuzzyQuery.SetFuzziness(1)
		fieldFuzzyQuery.SetBoost(1.0)
		booleanQuery.AddShould(fieldFuzzyQuery)
	}
	booleanQuery.SetMinShould(1)

	if role != nil {
		// BOTH companies satisfy either role filter.
		roleQuery := bleve.NewBooleanQuery()
		exactRole := bleve.NewMatchQuery(string(*role))
		exactRole.SetField("role")
		roleQuery.AddShould(exactRole)
		bothRole := bleve.NewMatchQuery(string(models.CompanyBoth))
		bothRole.SetField("role")
		roleQuery.AddShould(bothRole)
		roleQuery.SetMinShould(1)
		booleanQuery.AddMust(roleQuery)
	}

	return r.indexer.SearchIndex("companies", booleanQuery, 20)
}

func (r *BleveRepository) GetCompanyDocument(id string) (interface{}, error) {
	return r.indexer.GetDocument("companies", id)
}

func (r *BleveRepository) IndexSingleCompany(company models.Company) error {
	err := r.indexer.IndexDocument("companies", company.ID.String(), newBleveCompanyDoc(company))
	if err != nil {
		config.Logger.Error("Failed to index single company into Bleve",
			zap.Error(err),
			zap.String("company_id", company.ID.String()))
		return err
	}

	return nil
}

// UpdateCompany deletes the existing company document and re-indexes it.
func (r *BleveRepository) UpdateCompany(company models.Company) error {
	companyID := company.ID.String()

	if err := r.indexer.DeleteDocument("companies", companyID); err != nil {
		config.Logger.Error("Failed to delete company document for update in Bleve",
			zap.Error(err),
			zap.String("company_id", companyID))
		return err
	}

	return r.IndexSingleCompany(company)
}

func (r *BleveRepository) DeleteCompany(companyID string) error {
	err := r.indexer.DeleteDocument("companies", companyID)
	if err != nil {
		config.Logger.Error("Failed to delete company from Bleve",
			zap.Error(err),
			zap.String("company_id", companyID))
		return err
	}

	return nil
}

func (r *BleveRepository) IndexExistingCompanies(companies []models.Company) error {
	docsToBleveIndex := make(map[string]interface{})

	for _, company := range companies {
		docsToBleveIndex[company.ID.String()] = newBleveCompanyDoc(company)
	}

	if len(docsToBleveIndex) > 0 {
		err := r.indexer.BulkIndexDocuments("companies", docsToBleveIndex)
		if err != nil {
			config.Logger.Error("Failed to bulk index existing companies into Bleve", zap.Error(err))
			return err
		}
		config.Logger.Info("Bulk indexed existing companies into Bleve",
			zap.Int("count", len(docsToBleveIndex)))
	} else {
		config.Logger.Info("No existing companies to index into Bleve.")
	}
	return nil
}
