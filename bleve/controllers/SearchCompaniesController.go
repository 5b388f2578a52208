package controllers

import (
	bleve_models "marine-trading-backend/bleve/models"
	"marine-trading-backend/db/models"

	"github.com/gofiber/fiber/v2"
)

// SearchCompaniesController answers typeahead lookups for the customer and
// supplier pickers on the document form.
func (c *SearchController) SearchCompaniesController(ctx *fiber.Ctx) error {
	queryString := ctx.Query("q")
	if queryString == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Query parameter 'q' is required",
		})
	}

	var role *models.CompanyRole
	if roleStr := ctx.Query("role"); roleStr != "" {
		r := models.CompanyRole(roleStr)
		switch r {
		case models.CompanyCustomer, models.CompanySupplier, models.CompanyBoth:
			role = &r
		default:
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "role must be one of CUSTOMER, SUPPLIER, BOTH",
			})
		}
	}

	results, err := c.repo.SearchCompanies(queryString, role)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Company search failed",
		})
	}

	response := bleve_models.SearchResponse{Hits: []bleve_models.SearchHit{}}
	for _, hit := range results.Hits {
		doc, err := c.repo.GetCompanyDocument(hit.ID)
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
		"message": "Companies retrieved successfully",
		"data":    response,
		"total":   results.Total,
	})
}
