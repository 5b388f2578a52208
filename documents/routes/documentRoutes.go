package routes

import (
	controllers "marine-trading-backend/documents/controllers"
	"marine-trading-backend/documents/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func DocumentInitRoutes(
	app *fiber.App,
	documentRepo repositories.DocumentRepository,
	redisClient *redis.Client,
	db *gorm.DB,
) {
	documentController := &controllers.DocumentController{
		DB:           db,
		DocumentRepo: documentRepo,
		RedisClient:  redisClient,
	}

	api := app.Group("/api/v1")

	api.Post("/documents", documentController.CreateDocumentController)
	api.Get("/documents/filtered", documentController.GetFilteredDocumentsController)
	api.Post("/documents/derive-item", documentController.DeriveLineItemController)
	api.Post("/documents/recalculate", documentController.RecalculateTotalsController)
	api.Get("/documents/:id", documentController.GetDocumentDetailController)
	api.Put("/documents/:id", documentController.UpdateDocumentController)
	api.Delete("/documents/:id", documentController.DeleteDocumentController)
	api.Get("/documents/:id/excel", documentController.ExportDocumentExcelController)
}
