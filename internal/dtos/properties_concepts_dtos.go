package dtos

import "github.com/seba-moreno/real-estate-tracker/internal/models"

type PropertiesConceptsRequest struct {
	ConceptID  int64 `json:"concept_id" validate:"gte=1"`
	PropertyID int64 `json:"property_id" validate:"gte=1"`
	Enabled    *bool `json:"enabled" validate:"required"`
}

func (r *PropertiesConceptsRequest) Normalize() {}

func (r *PropertiesConceptsRequest) ToModel(id int64) *models.PropertiesConcepts {
	pc := &models.PropertiesConcepts{
		ID:         id,
		ConceptID:  r.ConceptID,
		PropertyID: r.PropertyID,
	}
	if r.Enabled != nil {
		pc.Enabled = *r.Enabled
	}
	return pc
}

// PropertiesConcepts embeds the related concept and property; either is null
// when its id cannot be resolved.
type PropertiesConcepts struct {
	ID         int64     `json:"id"`
	ConceptID  int64     `json:"concept_id"`
	PropertyID int64     `json:"property_id"`
	Enabled    bool      `json:"enabled"`
	Concept    *Concept  `json:"concept"`
	Property   *Property `json:"property"`
}

func NewPropertiesConceptsFromModel(
	pc *models.PropertiesConcepts,
	concept *models.Concept,
	property *models.Property,
) PropertiesConcepts {
	out := PropertiesConcepts{
		ID:         pc.ID,
		ConceptID:  pc.ConceptID,
		PropertyID: pc.PropertyID,
		Enabled:    pc.Enabled,
	}
	if concept != nil {
		c := NewConceptFromModel(concept)
		out.Concept = &c
	}
	if property != nil {
		p := NewPropertyFromModel(property)
		out.Property = &p
	}
	return out
}
