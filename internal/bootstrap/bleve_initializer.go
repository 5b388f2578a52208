package bootstrap

import (
	"context"
	"log"

	bleveRepositories "marine-trading-backend/bleve/repositories"
	companies_repositories "marine-trading-backend/companies/repositories"
	"marine-trading-backend/config"

	"go.uber.org/zap"
)

// IndexBleveData rebuilds the lookup indexes from the database. Run at
// startup and on the nightly reindex schedule.
func IndexBleveData(
	ctx context.Context,
	companyRepo companies_repositories.CompanyRepository,
	bleveRepo bleveRepositories.BleveRepositoryInterface,
) {

	// Delete All Indexes first
	err := bleveRepo.DeleteAllIndices(ctx)
	if err != nil {
		log.Fatalf("Error deleting all indices: %v", err)
	}

	// Index Companies
	if companies, err := companyRepo.GetAllCompanies(); err != nil {
		config.Logger.Error("Error fetching companies for Bleve indexing", zap.Error(err))
	} else if err := bleveRepo.IndexExistingCompanies(companies); err != nil {
		config.Logger.Error("Failed to index companies into Bleve", zap.Error(err))
	}

	// Index Vessels
	if vessels, err := companyRepo.GetAllVessels(); err != nil {
		config.Logger.Error("Error fetching vessels for Bleve indexing", zap.Error(err))
	} else if err := bleveRepo.IndexExistingVessels(vessels); err != nil {
		config.Logger.Error("Failed to index vessels into Bleve", zap.Error(err))
	}
}
