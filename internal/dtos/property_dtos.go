package dtos

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/seba-moreno/real-estate-tracker/internal/models"
)

// PropertyRequest is the body of both create and update; updates replace every field.
type PropertyRequest struct {
	Location  string           `json:"location" validate:"required,max=100"`
	Area      *int32           `json:"area" validate:"omitempty,gte=1"`
	Valuation *decimal.Decimal `json:"valuation" validate:"required,money"`
	Details   *string          `json:"details" validate:"omitempty,max=500"`
}

func (r *PropertyRequest) Normalize() {
	r.Location = strings.TrimSpace(r.Location)
	r.Details = trimPtr(r.Details)
}

func (r *PropertyRequest) ToModel(id int64) *models.Property {
	p := &models.Property{
		ID:       id,
		Location: r.Location,
		Area:     r.Area,
		Details:  r.Details,
	}
	if r.Valuation != nil {
		p.Valuation = *r.Valuation
	}
	return p
}

type Property struct {
	ID        int64           `json:"id"`
	Location  string          `json:"location"`
	Area      *int32          `json:"area"`
	Valuation decimal.Decimal `json:"valuation"`
	Details   *string         `json:"details"`
}

func NewPropertyFromModel(p *models.Property) Property {
	return Property{
		ID:        p.ID,
		Location:  p.Location,
		Area:      p.Area,
		Valuation: p.Valuation,
		Details:   p.Details,
	}
}
