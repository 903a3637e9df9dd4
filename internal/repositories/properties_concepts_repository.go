package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/seba-moreno/real-estate-tracker/internal/models"
)

type PropertiesConceptsRepository interface {
	GetByID(ctx context.Context, id int64) (*models.PropertiesConcepts, error)
	ListAll(ctx context.Context) ([]*models.PropertiesConcepts, error)
	ListByPropertyID(ctx context.Context, propertyID int64) ([]*models.PropertiesConcepts, error)
	ListByConceptID(ctx context.Context, conceptID int64) ([]*models.PropertiesConcepts, error)

	Create(ctx context.Context, pc *models.PropertiesConcepts) (*models.PropertiesConcepts, error)
	Update(ctx context.Context, pc *models.PropertiesConcepts) (*models.PropertiesConcepts, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type propertiesConceptsRepo struct {
	*baseRepo[*models.PropertiesConcepts]
}

func NewPropertiesConceptsRepository(db DB) PropertiesConceptsRepository {
	return &propertiesConceptsRepo{
		baseRepo: newBaseRepo(db, "properties_concepts", baseSelectPropertiesConcepts(), scanPropertiesConcepts),
	}
}

func (r *propertiesConceptsRepo) ListByPropertyID(ctx context.Context, propertyID int64) ([]*models.PropertiesConcepts, error) {
	return r.list(ctx, " WHERE property_id=$1 ORDER BY id", propertyID)
}

func (r *propertiesConceptsRepo) ListByConceptID(ctx context.Context, conceptID int64) ([]*models.PropertiesConcepts, error) {
	return r.list(ctx, " WHERE concept_id=$1 ORDER BY id", conceptID)
}

func (r *propertiesConceptsRepo) Create(ctx context.Context, pc *models.PropertiesConcepts) (*models.PropertiesConcepts, error) {
	return r.writeReturning(ctx, `
        INSERT INTO properties_concepts (property_id, concept_id, enabled)
        VALUES ($1,$2,$3)
        RETURNING `+propertiesConceptsColumns,
		pc.PropertyID,
		pc.ConceptID,
		pc.Enabled,
	)
}

func (r *propertiesConceptsRepo) Update(ctx context.Context, pc *models.PropertiesConcepts) (*models.PropertiesConcepts, error) {
	return r.writeReturning(ctx, `
        UPDATE properties_concepts SET
            property_id=$1, concept_id=$2, enabled=$3
        WHERE id=$4
        RETURNING `+propertiesConceptsColumns,
		pc.PropertyID,
		pc.ConceptID,
		pc.Enabled,
		pc.ID,
	)
}

const propertiesConceptsColumns = `id, property_id, concept_id, enabled`

func baseSelectPropertiesConcepts() string {
	return `SELECT ` + propertiesConceptsColumns + ` FROM properties_concepts`
}

func scanPropertiesConcepts(row pgx.Row) (*models.PropertiesConcepts, error) {
	var pc models.PropertiesConcepts
	err := row.Scan(
		&pc.ID,
		&pc.PropertyID,
		&pc.ConceptID,
		&pc.Enabled,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &pc, nil
}
