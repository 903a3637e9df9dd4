//go:build integration

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seba-moreno/real-estate-tracker/internal/app"
	"github.com/seba-moreno/real-estate-tracker/internal/models"
	"github.com/seba-moreno/real-estate-tracker/internal/repositories"
	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

func TestPropertyRepository_RoundTrip(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	repo := repositories.NewPropertyRepository(application.DB)

	created, err := repo.Create(ctx, &models.Property{
		Location:  "Avellaneda 500 1°A",
		Area:      utils.Ptr(int32(60)),
		Valuation: decimal.RequireFromString("100000.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.True(t, created.Valuation.Equal(decimal.RequireFromString("100000.5")))
	assert.Nil(t, created.Details)

	created.Details = utils.Ptr("front")
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "front", utils.Val(updated.Details))

	missing, err := repo.Update(ctx, &models.Property{ID: 99, Location: "x"})
	require.NoError(t, err)
	assert.Nil(t, missing)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestForeignKeysRestrictDeletes(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	props := repositories.NewPropertyRepository(application.DB)
	contracts := repositories.NewContractRepository(application.DB)

	p, err := props.Create(ctx, &models.Property{Location: "Campo", Valuation: decimal.NewFromInt(1)})
	require.NoError(t, err)
	_, err = contracts.Create(ctx, &models.Contract{
		PropertyID: p.ID,
		StartDate:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = props.Delete(ctx, p.ID)
	require.Error(t, err)
	assert.True(t, repositories.IsForeignKeyViolation(err))

	_, err = contracts.Create(ctx, &models.Contract{
		PropertyID: 42,
		StartDate:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	assert.True(t, repositories.IsForeignKeyViolation(err))
}

func TestContractsEndingBetween(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	props := repositories.NewPropertyRepository(application.DB)
	contracts := repositories.NewContractRepository(application.DB)

	day := func(m time.Month, d int) time.Time { return time.Date(2026, m, d, 0, 0, 0, 0, time.UTC) }
	for _, end := range []time.Time{day(time.October, 19), day(time.November, 19), day(time.November, 20)} {
		p, err := props.Create(ctx, &models.Property{Location: "p", Valuation: decimal.Zero})
		require.NoError(t, err)
		_, err = contracts.Create(ctx, &models.Contract{PropertyID: p.ID, StartDate: day(time.January, 1), EndDate: end})
		require.NoError(t, err)
	}

	got, err := contracts.ListEndingBetween(ctx, day(time.October, 19), day(time.November, 19))
	require.NoError(t, err)
	require.Len(t, got, 2, "both bounds are inclusive")
}

func TestRateLimitRepository(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	repo := repositories.NewRateLimitRepository(application.DB)

	for i := 0; i < 3; i++ {
		ok, err := repo.IncrementAndCheck(ctx, "ip:203.0.113.1", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := repo.IncrementAndCheck(ctx, "ip:203.0.113.1", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.IncrementAndCheck(ctx, "ip:203.0.113.2", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "keys are counted separately")

	require.NoError(t, repo.CleanupExpired(ctx))
}

func TestSeedAndBalanceOverHTTP(t *testing.T) {
	resetTables(t)
	require.NoError(t, app.SeedAllTestData(context.Background(), application))

	status, body := call(t, http.MethodGet, "/api/v1/transaction/balance", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"balance":20720}`, body)

	status, _ = call(t, http.MethodDelete, "/api/v1/concept/1", "")
	assert.Equal(t, http.StatusConflict, status)

	status, body = call(t, http.MethodGet, "/health/db", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}
