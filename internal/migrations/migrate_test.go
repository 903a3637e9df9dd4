package migrations

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every pooled connection would otherwise get its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMigrate_CreatesTables(t *testing.T) {
	db := setupTestDB(t)
	for _, table := range []string{
		"properties", "concepts", "contracts", "properties_concepts", "transactions", "rate_limit_counters",
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasConstraint(&Contract{}, "chk_contracts_date_order"))
}

func TestMigrate_RestrictsDeletingReferencedRows(t *testing.T) {
	db := setupTestDB(t)

	property := Property{Location: "Avellaneda 500 1°A", Valuation: decimal.NewFromInt(100000)}
	require.NoError(t, db.Create(&property).Error)
	require.NoError(t, db.Create(&Contract{
		PropertyID: property.ID,
		StartDate:  day(2023, 1, 20),
		EndDate:    day(2026, 1, 19),
	}).Error)

	assert.Error(t, db.Delete(&Property{}, property.ID).Error)

	var count int64
	require.NoError(t, db.Model(&Property{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMigrate_RejectsDanglingReference(t *testing.T) {
	db := setupTestDB(t)
	err := db.Create(&PropertiesConcepts{PropertyID: 41, ConceptID: 42, Enabled: true}).Error
	assert.Error(t, err)
}

func TestMigrate_CheckConstraints(t *testing.T) {
	db := setupTestDB(t)

	property := Property{Location: "Campo", Valuation: decimal.NewFromInt(1)}
	require.NoError(t, db.Create(&property).Error)
	concept := Concept{Name: "Alquiler mensual", IsOrdinary: true}
	require.NoError(t, db.Create(&concept).Error)
	link := PropertiesConcepts{PropertyID: property.ID, ConceptID: concept.ID, Enabled: true}
	require.NoError(t, db.Create(&link).Error)

	err := db.Create(&Contract{PropertyID: property.ID, StartDate: day(2026, 6, 1), EndDate: day(2026, 5, 31)}).Error
	assert.Error(t, err, "end before start")

	err = db.Create(&Transaction{
		Date:                 day(2026, 1, 4),
		PropertiesConceptsID: link.ID,
		TransactionType:      "refund",
		Period:               "2026-01",
		Amount:               decimal.NewFromInt(10),
	}).Error
	assert.Error(t, err, "unknown transaction type")

	err = db.Create(&Transaction{
		Date:                 day(2026, 1, 4),
		PropertiesConceptsID: link.ID,
		TransactionType:      "income",
		Period:               "2026-01",
		Amount:               decimal.RequireFromString("400.00"),
	}).Error
	assert.NoError(t, err)
}
