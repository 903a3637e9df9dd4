package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/seba-moreno/real-estate-tracker/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Property, error)
	ListAll(ctx context.Context) ([]*models.Property, error)

	// Create stores p and returns the row as persisted, including its new id.
	Create(ctx context.Context, p *models.Property) (*models.Property, error)
	// Update overwrites every column; it returns nil, nil when p.ID does not exist.
	Update(ctx context.Context, p *models.Property) (*models.Property, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct {
	*baseRepo[*models.Property]
}

func NewPropertyRepository(db DB) PropertyRepository {
	return &propertyRepo{
		baseRepo: newBaseRepo(db, "properties", baseSelectProperty(), scanProperty),
	}
}

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) (*models.Property, error) {
	return r.writeReturning(ctx, `
        INSERT INTO properties (location, area, valuation, details)
        VALUES ($1,$2,$3,$4)
        RETURNING `+propertyColumns,
		p.Location,
		p.Area,
		p.Valuation,
		p.Details,
	)
}

func (r *propertyRepo) Update(ctx context.Context, p *models.Property) (*models.Property, error) {
	return r.writeReturning(ctx, `
        UPDATE properties SET
            location=$1, area=$2, valuation=$3, details=$4
        WHERE id=$5
        RETURNING `+propertyColumns,
		p.Location,
		p.Area,
		p.Valuation,
		p.Details,
		p.ID,
	)
}

const propertyColumns = `id, location, area, valuation, details`

func baseSelectProperty() string {
	return `SELECT ` + propertyColumns + ` FROM properties`
}

func scanProperty(row pgx.Row) (*models.Property, error) {
	var p models.Property
	err := row.Scan(
		&p.ID,
		&p.Location,
		&p.Area,
		&p.Valuation,
		&p.Details,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
