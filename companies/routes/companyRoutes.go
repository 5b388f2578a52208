package routes

import (
	indexing_repository "marine-trading-backend/bleve/repositories"
	controllers "marine-trading-backend/companies/controllers"
	"marine-trading-backend/companies/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func CompanyInitRoutes(
	app *fiber.App,
	companyRepo repositories.CompanyRepository,
	bleveInterfaceRepo indexing_repository.BleveRepositoryInterface,
	redisClient *redis.Client,
	db *gorm.DB,
) {
	companyController := &controllers.CompanyController{
		DB:          db,
		CompanyRepo: companyRepo,
		BleveRepo:   bleveInterfaceRepo,
		RedisClient: redisClient,
	}

	api := app.Group("/api/v1")

	api.Post("/companies", companyController.CreateCompanyController)
	api.Get("/companies/filtered", companyController.GetFilteredCompaniesController)
	api.Put("/companies/:id", companyController.UpdateCompanyController)
	api.Delete("/companies/:id", companyController.DeleteCompanyController)
	api.Post("/vessels", companyController.CreateVesselController)
	api.Get("/vessels/filtered", companyController.GetFilteredVesselsController)
	api.Put("/vessels/:id", companyController.UpdateVesselController)
	api.Delete("/vessels/:id", companyController.DeleteVesselController)
}
