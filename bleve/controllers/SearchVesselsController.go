package controllers

import (
	bleve_models "marine-trading-backend/bleve/models"

	"github.com/gofiber/fiber/v2"
)

// SearchVesselsController answers typeahead lookups for the vessel picker,
// optionally scoped to the selected customer.
func (c *SearchController) SearchVesselsController(ctx *fiber.Ctx) error {
	queryString := ctx.Query("q")
	if queryString == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Query parameter 'q' is required",
		})
	}

	var companyID *string
	if companyStr := ctx.Query("company_id"); companyStr != "" {
		companyID = &companyStr
	}

	results, err := c.repo.SearchVessels(queryString, companyID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Vessel search failed",
		})
	}

	response := bleve_models.SearchResponse{Hits: []bleve_models.SearchHit{}}
	for _, hit := range results.Hits {
		doc, err := c.repo.GetVesselDocument(hit.ID)
		if err != nil {
			// Hit may have been deleted between search and fetch.
			continue
		}
		fields, ok := doc.(map[string]interface{})
		if !ok {
			continue
		}
		response.Hits = append(response.Hits, bleve_models.SearchHit{
			ID:     hit.ID,
			Fields: fields,
		})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Vessels retrieved successfully",
		"data":    response,
		"total":   results.Total,
	})
}
