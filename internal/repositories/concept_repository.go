package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/seba-moreno/real-estate-tracker/internal/models"
)

type ConceptRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Concept, error)
	ListAll(ctx context.Context) ([]*models.Concept, error)

	Create(ctx context.Context, c *models.Concept) (*models.Concept, error)
	Update(ctx context.Context, c *models.Concept) (*models.Concept, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type conceptRepo struct {
	*baseRepo[*models.Concept]
}

func NewConceptRepository(db DB) ConceptRepository {
	return &conceptRepo{
		baseRepo: newBaseRepo(db, "concepts", baseSelectConcept(), scanConcept),
	}
}

func (r *conceptRepo) Create(ctx context.Context, c *models.Concept) (*models.Concept, error) {
	return r.writeReturning(ctx, `
        INSERT INTO concepts (name, is_ordinary, periodicity, description)
        VALUES ($1,$2,$3,$4)
        RETURNING `+conceptColumns,
		c.Name,
		c.IsOrdinary,
		c.Periodicity,
		c.Description,
	)
}

func (r *conceptRepo) Update(ctx context.Context, c *models.Concept) (*models.Concept, error) {
	return r.writeReturning(ctx, `
        UPDATE concepts SET
            name=$1, is_ordinary=$2, periodicity=$3, description=$4
        WHERE id=$5
        RETURNING `+conceptColumns,
		c.Name,
		c.IsOrdinary,
		c.Periodicity,
		c.Description,
		c.ID,
	)
}

const conceptColumns = `id, name, is_ordinary, periodicity, description`

func baseSelectConcept() string {
	return `SELECT ` + conceptColumns + ` FROM concepts`
}

func scanConcept(row pgx.Row) (*models.Concept, error) {
	var c models.Concept
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.IsOrdinary,
		&c.Periodicity,
		&c.Description,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
