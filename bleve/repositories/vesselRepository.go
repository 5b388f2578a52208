package repositories

import (
	"marine-trading-backend/config"
	"marine-trading-backend/db/models"

	"github.com/blevesearch/bleve/v2"
	"go.uber.org/zap"
)

type bleveVesselDoc struct {
	ID         string `json:"id"`
	VesselName string `json:"vessel_name"`
	CompanyID  string `json:"company_id"`
	IMONumber  string `json:"imo_number,omitempty"`
	Flag       string `json:"flag,omitempty"`
	IsActive   bool   `json:"is_active"`
}

func newBleveVesselDoc(vessel models.Vessel) bleveVesselDoc {
	doc := bleveVesselDoc{
		ID:         vessel.ID.String(),
		VesselName: vessel.VesselName,
		CompanyID:  vessel.CompanyID.String(),
		IsActive:   vessel.IsActive,
	}
	if vessel.IMONumber != nil {
		doc.IMONumber = *vessel.IMONumber
	}
	if vessel.Flag != nil {
		doc.Flag = *vessel.Flag
	}
	return doc
}

// SearchVessels matches the query against vessel name and IMO number,
// optionally narrowed to vessels of one customer.
func (r *BleveRepository) SearchVessels(queryString string, companyID *string) (*bleve.SearchResult, error) {
	booleanQuery := bleve.NewBooleanQuery()

	fieldsToSearch := []string{"vessel_name", "imo_number", "flag"}

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

	if companyID != nil && *companyID != "" {
		companyQuery := bleve.NewMatchQuery(*companyID)
		companyQuery.SetField("company_id")
		booleanQuery.AddMust(companyQuery)
	}

	return r.indexer.SearchIndex("vessels", booleanQuery, 20)
}

func (r *BleveRepository) GetVesselDocument(id string) (interface{}, error) {
	return r.indexer.GetDocument("vessels", id)
}

func (r *BleveRepository) IndexSingleVessel(vessel models.Vessel) error {
	err := r.indexer.IndexDocument("vessels", vessel.ID.String(), newBleveVesselDoc(vessel))
	if err != nil {
		config.Logger.Error("Failed to index single vessel into Bleve",
			zap.Error(err),
			zap.String("vessel_id", vessel.ID.String()))
		return err
	}

	return nil
}

// UpdateVessel deletes the existing vessel document and re-indexes it.
func (r *BleveRepository) UpdateVessel(vessel models.Vessel) error {
	vesselID := vessel.ID.String()

	if err := r.indexer.DeleteDocument("vessels", vesselID); err != nil {
		config.Logger.Error("Failed to delete vessel document for update in Bleve",
			zap.Error(err),
			zap.String("vessel_id", vesselID))
		return err
	}

	return r.IndexSingleVessel(vessel)
}

func (r *BleveRepository) DeleteVessel(vesselID string) error {
	err := r.indexer.DeleteDocument("vessels", vesselID)
	if err != nil {
		config.Logger.Error("Failed to delete vessel from Bleve",
			zap.Error(err),
			zap.String("vessel_id", vesselID))
		return err
	}

	return nil
}

func (r *BleveRepository) IndexExistingVessels(vessels []models.Vessel) error {
	docsToBleveIndex := make(map[string]interface{})

	for _, vessel := range vessels {
		docsToBleveIndex[vessel.ID.String()] = newBleveVesselDoc(vessel)
	}

	if len(docsToBleveIndex) > 0 {
		err := r.indexer.BulkIndexDocuments("vessels", docsToBleveIndex)
		if err != nil {
			config.Logger.Error("Failed to bulk index existing vessels into Bleve", zap.Error(err))
			return err
		}
		config.Logger.Info("Bulk indexed existing vessels into Bleve",
			zap.Int("count", len(docsToBleveIndex)))
	} else {
		config.Logger.Info("No existing vessels to index into Bleve.")
	}
	return nil
}
