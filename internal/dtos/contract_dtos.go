package dtos

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/seba-moreno/real-estate-tracker/internal/models"
)

// ContractRequest additionally requires end_date >= start_date (see validateContractDates).
type ContractRequest struct {
	PropertyID int64      `json:"property_id" validate:"gte=1"`
	StartDate  civil.Date `json:"start_date" validate:"required"`
	EndDate    civil.Date `json:"end_date" validate:"required"`
	Details    *string    `json:"details" validate:"omitempty,max=500"`
}

func (r *ContractRequest) Normalize() {
	r.Details = trimPtr(r.Details)
}

func (r *ContractRequest) ToModel(id int64) *models.Contract {
	return &models.Contract{
		ID:         id,
		PropertyID: r.PropertyID,
		StartDate:  r.StartDate.In(time.UTC),
		EndDate:    r.EndDate.In(time.UTC),
		Details:    r.Details,
	}
}

type Contract struct {
	ID         int64      `json:"id"`
	PropertyID int64      `json:"property_id"`
	StartDate  civil.Date `json:"start_date"`
	EndDate    civil.Date `json:"end_date"`
	Details    *string    `json:"details"`
}

func NewContractFromModel(c *models.Contract) Contract {
	return Contract{
		ID:         c.ID,
		PropertyID: c.PropertyID,
		StartDate:  civil.DateOf(c.StartDate),
		EndDate:    civil.DateOf(c.EndDate),
		Details:    c.Details,
	}
}
