package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/seba-moreno/real-estate-tracker/internal/models"
)

type TransactionRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	ListAll(ctx context.Context) ([]*models.Transaction, error)
	ListByPropertiesConceptsID(ctx context.Context, pcID int64) ([]*models.Transaction, error)

	Create(ctx context.Context, t *models.Transaction) (*models.Transaction, error)
	Update(ctx context.Context, t *models.Transaction) (*models.Transaction, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type transactionRepo struct {
	*baseRepo[*models.Transaction]
}

func NewTransactionRepository(db DB) TransactionRepository {
	return &transactionRepo{
		baseRepo: newBaseRepo(db, "transactions", baseSelectTransaction(), scanTransaction),
	}
}

func (r *transactionRepo) ListByPropertiesConceptsID(ctx context.Context, pcID int64) ([]*models.Transaction, error) {
	return r.list(ctx, " WHERE properties_concepts_id=$1 ORDER BY date, id", pcID)
}

func (r *transactionRepo) Create(ctx context.Context, t *models.Transaction) (*models.Transaction, error) {
	return r.writeReturning(ctx, `
        INSERT INTO transactions (date, properties_concepts_id, transaction_type, period, amount)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING `+transactionColumns,
		t.Date,
		t.PropertiesConceptsID,
		string(t.TransactionType),
		t.Period,
		t.Amount,
	)
}

func (r *transactionRepo) Update(ctx context.Context, t *models.Transaction) (*models.Transaction, error) {
	return r.writeReturning(ctx, `
        UPDATE transactions SET
            date=$1, properties_concepts_id=$2, transaction_type=$3, period=$4, amount=$5
        WHERE id=$6
        RETURNING `+transactionColumns,
		t.Date,
		t.PropertiesConceptsID,
		string(t.TransactionType),
		t.Period,
		t.Amount,
		t.ID,
	)
}

const transactionColumns = `id, date, properties_concepts_id, transaction_type, period, amount`

func baseSelectTransaction() string {
	return `SELECT ` + transactionColumns + ` FROM transactions`
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var t models.Transaction
	var txType string
	err := row.Scan(
		&t.ID,
		&t.Date,
		&t.PropertiesConceptsID,
		&txType,
		&t.Period,
		&t.Amount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	t.TransactionType = models.TransactionType(txType)
	return &t, nil
}
