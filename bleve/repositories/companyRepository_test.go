package repositories

import (
	"testing"

	"marine-trading-backend/bleve/services"
	"marine-trading-backend/config"
	"marine-trading-backend/db/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) BleveRepositoryInterface {
	t.Helper()
	config.Logger = zap.NewNop()
	indexer := services.NewIndexingService(zap.NewNop(), t.TempDir())
	_, repo := NewBleveRepository(indexer)
	return repo
}

func strPtr(s string) *string { return &s }

func TestCompanyIndexLifecycle(t *testing.T) {
	repo := newTestRepo(t)

	company := models.Company{
		ID:          uuid.New(),
		CompanyName: "Hanjin Marine Supply",
		Role:        models.CompanySupplier,
		Country:     strPtr("South Korea"),
		IsActive:    true,
	}

	if err := repo.IndexSingleCompany(company); err != nil {
		t.Fatalf("IndexSingleCompany: %v", err)
	}

	results, err := repo.SearchCompanies("Hanjin", nil)
	if err != nil {
		t.Fatalf("SearchCompanies: %v", err)
	}
	if results.Total != 1 {
		t.Fatalf("search total = %d, want 1", results.Total)
	}
	if results.Hits[0].ID != company.ID.String() {
		t.Errorf("hit id = %s, want %s", results.Hits[0].ID, company.ID.String())
	}

	// An edit re-indexes under the same id with the new fields.
	company.CompanyName = "Hanjin Ocean Trading"
	if err := repo.UpdateCompany(company); err != nil {
		t.Fatalf("UpdateCompany: %v", err)
	}

	doc, err := repo.GetCompanyDocument(company.ID.String())
	if err != nil {
		t.Fatalf("GetCompanyDocument after update: %v", err)
	}
	fields, ok := doc.(map[string]interface{})
	if !ok {
		t.Fatalf("document fields have type %T, want map", doc)
	}
	if fields["company_name"] != "Hanjin Ocean Trading" {
		t.Errorf("company_name = %v, want updated name", fields["company_name"])
	}

	if err := repo.DeleteCompany(company.ID.String()); err != nil {
		t.Fatalf("DeleteCompany: %v", err)
	}
	if _, err := repo.GetCompanyDocument(company.ID.String()); err == nil {
		t.Error("GetCompanyDocument after delete returned a document")
	}
}

func TestSearchCompaniesRoleFilterIncludesBoth(t *testing.T) {
	repo := newTestRepo(t)

	customer := models.Company{ID: uuid.New(), CompanyName: "Pacific Shipping", Role: models.CompanyCustomer, IsActive: true}
	both := models.Company{ID: uuid.New(), CompanyName: "Pacific Trading", Role: models.CompanyBoth, IsActive: true}
	supplier := models.Company{ID: uuid.New(), CompanyName: "Pacific Parts", Role: models.CompanySupplier, IsActive: true}
	for _, c := range []models.Company{customer, both, supplier} {
		if err := repo.IndexSingleCompany(c); err != nil {
			t.Fatalf("IndexSingleCompany: %v", err)
		}
	}

	role := models.CompanyCustomer
	results, err := repo.SearchCompanies("Pacific", &role)
	if err != nil {
		t.Fatalf("SearchCompanies: %v", err)
	}
	if results.Total != 2 {
		t.Fatalf("search total = %d, want 2 (customer + both)", results.Total)
	}
	for _, hit := range results.Hits {
		if hit.ID == supplier.ID.String() {
			t.Error("supplier-only company matched a customer search")
		}
	}
}

func TestVesselIndexLifecycle(t *testing.T) {
	repo := newTestRepo(t)

	companyID := uuid.New()
	vessel := models.Vessel{
		ID:         uuid.New(),
		VesselName: "MV Ocean Star",
		CompanyID:  companyID,
		IMONumber:  strPtr("9876543"),
		IsActive:   true,
	}

	if err := repo.IndexSingleVessel(vessel); err != nil {
		t.Fatalf("IndexSingleVessel: %v", err)
	}

	scope := companyID.String()
	results, err := repo.SearchVessels("Ocean", &scope)
	if err != nil {
		t.Fatalf("SearchVessels: %v", err)
	}
	if results.Total != 1 {
		t.Fatalf("search total = %d, want 1", results.Total)
	}

	vessel.VesselName = "MV Ocean Pearl"
	if err := repo.UpdateVessel(vessel); err != nil {
		t.Fatalf("UpdateVessel: %v", err)
	}

	doc, err := repo.GetVesselDocument(vessel.ID.String())
	if err != nil {
		t.Fatalf("GetVesselDocument after update: %v", err)
	}
	fields, ok := doc.(map[string]interface{})
	if !ok {
		t.Fatalf("document fields have type %T, want map", doc)
	}
	if fields["vessel_name"] != "MV Ocean Pearl" {
		t.Errorf("vessel_name = %v, want updated name", fields["vessel_name"])
	}

	if err := repo.DeleteVessel(vessel.ID.String()); err != nil {
		t.Fatalf("DeleteVessel: %v", err)
	}
	if _, err := repo.GetVesselDocument(vessel.ID.String()); err == nil {
		t.Error("GetVesselDocument after delete returned a document")
	}
}
