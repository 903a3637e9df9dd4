package models

// PropertiesConcepts links a Property to a Concept; Enabled toggles whether
// the concept currently applies.
type PropertiesConcepts struct {
	ID         int64 `json:"id"`
	PropertyID int64 `json:"property_id"`
	ConceptID  int64 `json:"concept_id"`
	Enabled    bool  `json:"enabled"`
}
