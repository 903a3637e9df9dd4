package dtos

import (
	"strings"

	"github.com/seba-moreno/real-estate-tracker/internal/models"
)

type ConceptRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	IsOrdinary  *bool   `json:"is_ordinary" validate:"required"`
	Periodicity *int32  `json:"periodicity" validate:"omitempty,gte=0"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

func (r *ConceptRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = trimPtr(r.Description)
}

func (r *ConceptRequest) ToModel(id int64) *models.Concept {
	c := &models.Concept{
		ID:          id,
		Name:        r.Name,
		Periodicity: r.Periodicity,
		Description: r.Description,
	}
	if r.IsOrdinary != nil {
		c.IsOrdinary = *r.IsOrdinary
	}
	return c
}

type Concept struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	IsOrdinary  bool    `json:"is_ordinary"`
	Periodicity *int32  `json:"periodicity"`
	Description *string `json:"description"`
}

func NewConceptFromModel(c *models.Concept) Concept {
	return Concept{
		ID:          c.ID,
		Name:        c.Name,
		IsOrdinary:  c.IsOrdinary,
		Periodicity: c.Periodicity,
		Description: c.Description,
	}
}
