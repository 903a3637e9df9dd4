// Package migrations declares the relational schema as GORM models and
// applies it with AutoMigrate. Runtime queries go through the pgx
// repositories; these models only describe tables and constraints.
package migrations

import (
	"time"

	"github.com/shopspring/decimal"
)

type Property struct {
	ID        int64           `gorm:"primaryKey"`
	Location  string          `gorm:"type:varchar(100);not null"`
	Area      *int32          `gorm:"check:chk_properties_area,area IS NULL OR area >= 1"`
	Valuation decimal.Decimal `gorm:"type:numeric(19,2);not null;check:chk_properties_valuation,valuation >= 0"`
	Details   *string         `gorm:"type:varchar(500)"`
}

func (Property) TableName() string { return "properties" }

type Concept struct {
	ID          int64   `gorm:"primaryKey"`
	Name        string  `gorm:"type:varchar(100);not null"`
	IsOrdinary  bool    `gorm:"not null"`
	Periodicity *int32  `gorm:"check:chk_concepts_periodicity,periodicity IS NULL OR periodicity >= 0"`
	Description *string `gorm:"type:varchar(500)"`
}

func (Concept) TableName() string { return "concepts" }

type Contract struct {
	ID         int64     `gorm:"primaryKey"`
	PropertyID int64     `gorm:"not null;index"`
	Property   *Property `gorm:"foreignKey:PropertyID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	StartDate  time.Time `gorm:"type:date;not null"`
	EndDate    time.Time `gorm:"type:date;not null;index;check:chk_contracts_date_order,end_date >= start_date"`
	Details    *string   `gorm:"type:varchar(500)"`
}

func (Contract) TableName() string { return "contracts" }

type PropertiesConcepts struct {
	ID         int64     `gorm:"primaryKey"`
	PropertyID int64     `gorm:"not null;index"`
	Property   *Property `gorm:"foreignKey:PropertyID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ConceptID  int64     `gorm:"not null;index"`
	Concept    *Concept  `gorm:"foreignKey:ConceptID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Enabled    bool      `gorm:"not null"`
}

func (PropertiesConcepts) TableName() string { return "properties_concepts" }

type Transaction struct {
	ID                   int64               `gorm:"primaryKey"`
	Date                 time.Time           `gorm:"type:date;not null"`
	PropertiesConceptsID int64               `gorm:"not null;index"`
	PropertiesConcepts   *PropertiesConcepts `gorm:"foreignKey:PropertiesConceptsID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	TransactionType      string              `gorm:"type:varchar(7);not null;check:chk_transactions_type,transaction_type IN ('income','expense')"`
	Period               string              `gorm:"type:char(7);not null"`
	Amount               decimal.Decimal     `gorm:"type:numeric(19,2);not null;check:chk_transactions_amount,amount >= 0"`
}

func (Transaction) TableName() string { return "transactions" }

// RateLimitCounter backs the shared, database-resident rate limiter.
type RateLimitCounter struct {
	Key          string    `gorm:"primaryKey;type:varchar(255)"`
	Hits         int       `gorm:"not null"`
	WindowEndsAt time.Time `gorm:"not null;index"`
}

func (RateLimitCounter) TableName() string { return "rate_limit_counters" }

// Models lists every table in dependency order.
func Models() []interface{} {
	return []interface{}{
		&Property{},
		&Concept{},
		&Contract{},
		&PropertiesConcepts{},
		&Transaction{},
		&RateLimitCounter{},
	}
}
