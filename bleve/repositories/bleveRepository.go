package repositories

import (
	"context"

	bleveindex "marine-trading-backend/bleve/services"
	"marine-trading-backend/db/models"

	"github.com/blevesearch/bleve/v2"
)

type BleveRepository struct {
	indexer *bleveindex.IndexingService
}

type BleveRepositoryInterface interface {
	// General
	DeleteAllIndices(ctx context.Context) error

	// ==== Company Indexing ====
	IndexSingleCompany(company models.Company) error
	IndexExistingCompanies(companies []models.Company) error
	UpdateCompany(company models.Company) error
	DeleteCompany(companyID string) error
	SearchCompanies(queryString string, role *models.CompanyRole) (*bleve.SearchResult, error)
	GetCompanyDocument(id string) (interface{}, error)

	// ==== Vessel Indexing ====
	IndexSingleVessel(vessel models.Vessel) error
	IndexExistingVessels(vessels []models.Vessel) error
	UpdateVessel(vessel models.Vessel) error
	DeleteVessel(vesselID string) error
	SearchVessels(queryString string, companyID *string) (*bleve.SearchResult, error)
	GetVesselDocument(id string) (interface{}, error)
}

// Constructor returning both the struct and the interface
func NewBleveRepository(indexer *bleveindex.IndexingService) (*BleveRepository, BleveRepositoryInterface) {
	repo := &BleveRepository{indexer: indexer}
	return repo, repo
}

func (r *BleveRepository) DeleteAllIndices(ctx context.Context) error {
	return r.indexer.DeleteAllIndices()
}
