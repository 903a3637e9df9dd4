package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/seba-moreno/real-estate-tracker/internal/models"
)

type ContractRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Contract, error)
	ListAll(ctx context.Context) ([]*models.Contract, error)
	ListByPropertyID(ctx context.Context, propertyID int64) ([]*models.Contract, error)
	// ListEndingBetween returns contracts with from <= end_date <= to.
	ListEndingBetween(ctx context.Context, from, to time.Time) ([]*models.Contract, error)

	Create(ctx context.Context, c *models.Contract) (*models.Contract, error)
	Update(ctx context.Context, c *models.Contract) (*models.Contract, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type contractRepo struct {
	*baseRepo[*models.Contract]
}

func NewContractRepository(db DB) ContractRepository {
	return &contractRepo{
		baseRepo: newBaseRepo(db, "contracts", baseSelectContract(), scanContract),
	}
}

func (r *contractRepo) ListByPropertyID(ctx context.Context, propertyID int64) ([]*models.Contract, error) {
	return r.list(ctx, " WHERE property_id=$1 ORDER BY start_date", propertyID)
}

func (r *contractRepo) ListEndingBetween(ctx context.Context, from, to time.Time) ([]*models.Contract, error) {
	return r.list(ctx, " WHERE end_date BETWEEN $1 AND $2 ORDER BY end_date, id", from, to)
}

func (r *contractRepo) Create(ctx context.Context, c *models.Contract) (*models.Contract, error) {
	return r.writeReturning(ctx, `
        INSERT INTO contracts (property_id, start_date, end_date, details)
        VALUES ($1,$2,$3,$4)
        RETURNING `+contractColumns,
		c.PropertyID,
		c.StartDate,
		c.EndDate,
		c.Details,
	)
}

func (r *contractRepo) Update(ctx context.Context, c *models.Contract) (*models.Contract, error) {
	return r.writeReturning(ctx, `
        UPDATE contracts SET
            property_id=$1, start_date=$2, end_date=$3, details=$4
        WHERE id=$5
        RETURNING `+contractColumns,
		c.PropertyID,
		c.StartDate,
		c.EndDate,
		c.Details,
		c.ID,
	)
}

const contractColumns = `id, property_id, start_date, end_date, details`

func baseSelectContract() string {
	return `SELECT ` + contractColumns + ` FROM contracts`
}

func scanContract(row pgx.Row) (*models.Contract, error) {
	var c models.Contract
	err := row.Scan(
		&c.ID,
		&c.PropertyID,
		&c.StartDate,
		&c.EndDate,
		&c.Details,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
