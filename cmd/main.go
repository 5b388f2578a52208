package main

import (
	"context"

	config "marine-trading-backend/config"
	"marine-trading-backend/internal/bootstrap"
	"marine-trading-backend/middleware"
	"marine-trading-backend/seeds"

	// Repositories
	companies_repositories "marine-trading-backend/companies/repositories"
	document_repositories "marine-trading-backend/documents/repositories"
	rates_repositories "marine-trading-backend/rates/repositories"

	// Routes
	company_routes "marine-trading-backend/companies/routes"
	document_routes "marine-trading-backend/documents/routes"
	rate_routes "marine-trading-backend/rates/routes"

	// bleve
	bleveControllers "marine-trading-backend/bleve/controllers"
	bleveRepositories "marine-trading-backend/bleve/repositories"
	bleveRoutes "marine-trading-backend/bleve/routes"
	bleveServices "marine-trading-backend/bleve/services"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	// Initialize Zap logger
	config.InitLogger()
	defer config.Logger.Sync()

	// Load environment variables
	config.LoadEnv()

	app := fiber.New()

	// Apply CORS and rate limiting middleware
	middleware.InitCors(app)
	middleware.InitRateLimiter(app)

	// Initialize database and configs
	db := config.ConfigureDatabase()
	port := config.GetEnvOrDefault("PORT", "8080")
	ctx := context.Background()

	redisClient := config.InitRedisServer(ctx)

	indexPath := config.GetEnv("BLEVE_INDEX_PATH")
	if indexPath == "" {
		indexPath = "./bleve_data" // Default for local development
		config.Logger.Warn("BLEVE_INDEX_PATH not set, using default: ./bleve_data")
	}

	// Repositories
	bleveIndexingService := bleveServices.NewIndexingService(config.Logger, indexPath)
	bleveServiceRepo, bleveInterfaceRepo := bleveRepositories.NewBleveRepository(bleveIndexingService)
	companyRepo := companies_repositories.NewCompanyRepository(db)
	documentRepo := document_repositories.NewDocumentRepository(db)
	rateRepo := rates_repositories.NewExchangeRateRepository(db)

	// Routes
	company_routes.CompanyInitRoutes(app, companyRepo, bleveInterfaceRepo, redisClient, db)
	document_routes.DocumentInitRoutes(app, documentRepo, redisClient, db)
	rate_routes.ExchangeRateInitRoutes(app, rateRepo, redisClient, db)

	// Bleve Routes
	bleveController := bleveControllers.NewSearchController(bleveServiceRepo)
	bleveRoutes.InitBleveRoutes(app, bleveController, db)

	// Seed fallback rates so pricing works on a fresh database
	if err := seeds.SeedMarineTradingAll(db); err != nil {
		config.Logger.Error("Database seeding failed", zap.Error(err))
	}

	// Re-Index all lookup data at startup
	bootstrap.IndexBleveData(ctx, companyRepo, bleveInterfaceRepo)

	// Nightly rebuild keeps the lookup indexes aligned with the database
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 2 * * *", func() {
		bootstrap.IndexBleveData(ctx, companyRepo, bleveInterfaceRepo)
	}); err != nil {
		config.Logger.Error("Failed to schedule nightly reindex", zap.Error(err))
	}
	scheduler.Start()

	// Start the application
	config.Logger.Info("Server starting", zap.String("port", port))
	config.Logger.Fatal("Server failed", zap.String("port", port), zap.Error(app.Listen(":"+port)))
}
