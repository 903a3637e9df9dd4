// Package memstore keeps every repository in process memory. It backs the
// "memory" storage driver and the handler tests.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/seba-moreno/real-estate-tracker/internal/models"
	"github.com/seba-moreno/real-estate-tracker/internal/repositories"
)

// Store owns one table per entity. Ids are assigned sequentially from 1.
type Store struct {
	properties         *repo[models.Property]
	concepts           *repo[models.Concept]
	contracts          *contractRepo
	propertiesConcepts *propertiesConceptsRepo
	transactions       *transactionRepo
}

func New() *Store {
	return &Store{
		properties:         newRepo(func(m *models.Property) *int64 { return &m.ID }),
		concepts:           newRepo(func(m *models.Concept) *int64 { return &m.ID }),
		contracts:          &contractRepo{newRepo(func(m *models.Contract) *int64 { return &m.ID })},
		propertiesConcepts: &propertiesConceptsRepo{newRepo(func(m *models.PropertiesConcepts) *int64 { return &m.ID })},
		transactions:       &transactionRepo{newRepo(func(m *models.Transaction) *int64 { return &m.ID })},
	}
}

func (s *Store) Properties() repositories.PropertyRepository { return s.properties }
func (s *Store) Concepts() repositories.ConceptRepository    { return s.concepts }
func (s *Store) Contracts() repositories.ContractRepository  { return s.contracts }
func (s *Store) PropertiesConcepts() repositories.PropertiesConceptsRepository {
	return s.propertiesConcepts
}
func (s *Store) Transactions() repositories.TransactionRepository { return s.transactions }

// Ping always succeeds unless ctx is done.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

/* ------------------------------------------------------------------
   Generic table
------------------------------------------------------------------ */

type repo[M any] struct {
	mu     sync.RWMutex
	rows   map[int64]M
	nextID int64
	id     func(*M) *int64
}

func newRepo[M any](id func(*M) *int64) *repo[M] {
	return &repo[M]{rows: make(map[int64]M), id: id}
}

func (r *repo[M]) GetByID(ctx context.Context, id int64) (*M, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *repo[M]) ListAll(ctx context.Context) ([]*M, error) {
	return r.filter(ctx, func(*M) bool { return true })
}

func (r *repo[M]) Create(ctx context.Context, m *M) (*M, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	row := *m
	*r.id(&row) = r.nextID
	r.rows[r.nextID] = row
	return &row, nil
}

func (r *repo[M]) Update(ctx context.Context, m *M) (*M, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	id := *r.id(m)
	if _, ok := r.rows[id]; !ok {
		return nil, nil
	}
	row := *m
	r.rows[id] = row
	return &row, nil
}

func (r *repo[M]) Delete(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

// filter returns copies of the matching rows ordered by id.
func (r *repo[M]) filter(ctx context.Context, keep func(*M) bool) ([]*M, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*M, 0, len(r.rows))
	for _, m := range r.rows {
		row := m
		if keep(&row) {
			out = append(out, &row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return *r.id(out[i]) < *r.id(out[j]) })
	return out, nil
}

/* ------------------------------------------------------------------
   Entity-specific queries
------------------------------------------------------------------ */

type contractRepo struct {
	*repo[models.Contract]
}

func (r *contractRepo) ListByPropertyID(ctx context.Context, propertyID int64) ([]*models.Contract, error) {
	return r.filter(ctx, func(c *models.Contract) bool { return c.PropertyID == propertyID })
}

func (r *contractRepo) ListEndingBetween(ctx context.Context, from, to time.Time) ([]*models.Contract, error) {
	out, err := r.filter(ctx, func(c *models.Contract) bool {
		return !c.EndDate.Before(from) && !c.EndDate.After(to)
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EndDate.Before(out[j].EndDate) })
	return out, nil
}

type propertiesConceptsRepo struct {
	*repo[models.PropertiesConcepts]
}

func (r *propertiesConceptsRepo) ListByPropertyID(ctx context.Context, propertyID int64) ([]*models.PropertiesConcepts, error) {
	return r.filter(ctx, func(pc *models.PropertiesConcepts) bool { return pc.PropertyID == propertyID })
}

func (r *propertiesConceptsRepo) ListByConceptID(ctx context.Context, conceptID int64) ([]*models.PropertiesConcepts, error) {
	return r.filter(ctx, func(pc *models.PropertiesConcepts) bool { return pc.ConceptID == conceptID })
}

type transactionRepo struct {
	*repo[models.Transaction]
}

func (r *transactionRepo) ListByPropertiesConceptsID(ctx context.Context, pcID int64) ([]*models.Transaction, error) {
	return r.filter(ctx, func(t *models.Transaction) bool { return t.PropertiesConceptsID == pcID })
}
