package app

import (
	"context"
	_ "embed"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/seba-moreno/real-estate-tracker/internal/dtos"
	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

//go:embed seed_data.yaml
var seedYAML []byte

type seedData struct {
	Properties []struct {
		Key       string  `yaml:"key"`
		Location  string  `yaml:"location"`
		Area      *int32  `yaml:"area"`
		Valuation string  `yaml:"valuation"`
		Details   *string `yaml:"details"`
	} `yaml:"properties"`
	Concepts []struct {
		Key         string  `yaml:"key"`
		Name        string  `yaml:"name"`
		IsOrdinary  bool    `yaml:"is_ordinary"`
		Periodicity *int32  `yaml:"periodicity"`
		Description *string `yaml:"description"`
	} `yaml:"concepts"`
	Contracts []struct {
		Property  string  `yaml:"property"`
		StartDate string  `yaml:"start_date"`
		EndDate   string  `yaml:"end_date"`
		Details   *string `yaml:"details"`
	} `yaml:"contracts"`
	PropertiesConcepts []struct {
		Key      string `yaml:"key"`
		Property string `yaml:"property"`
		Concept  string `yaml:"concept"`
		Enabled  bool   `yaml:"enabled"`
	} `yaml:"properties_concepts"`
	Transactions []struct {
		Link            string `yaml:"link"`
		Date            string `yaml:"date"`
		TransactionType string `yaml:"transaction_type"`
		Period          string `yaml:"period"`
		Amount          string `yaml:"amount"`
	} `yaml:"transactions"`
}

// SeedAllTestData loads the demo dataset through the services, so every
// record passes the same validation and reference checks as API input.
// It is idempotent: nothing happens when any property already exists.
func SeedAllTestData(ctx context.Context, a *App) error {
	existing, err := a.PropertyService.List(ctx)
	if err != nil {
		return fmt.Errorf("check existing data: %w", err)
	}
	if len(existing) > 0 {
		utils.Logger.Info("Seed data already present; skipping seeding.")
		return nil
	}

	var data seedData
	if err := yaml.Unmarshal(seedYAML, &data); err != nil {
		return fmt.Errorf("parse seed data: %w", err)
	}

	propertyIDs := map[string]int64{}
	for _, p := range data.Properties {
		valuation, err := decimal.NewFromString(p.Valuation)
		if err != nil {
			return fmt.Errorf("seed property %s: %w", p.Key, err)
		}
		req := &dtos.PropertyRequest{
			Location:  p.Location,
			Area:      p.Area,
			Valuation: &valuation,
			Details:   p.Details,
		}
		if err := checkSeed(req); err != nil {
			return fmt.Errorf("seed property %s: %w", p.Key, err)
		}
		created, err := a.PropertyService.Create(ctx, req)
		if err != nil {
			return fmt.Errorf("seed property %s: %w", p.Key, err)
		}
		propertyIDs[p.Key] = created.ID
	}

	conceptIDs := map[string]int64{}
	for _, c := range data.Concepts {
		req := &dtos.ConceptRequest{
			Name:        c.Name,
			IsOrdinary:  utils.Ptr(c.IsOrdinary),
			Periodicity: c.Periodicity,
			Description: c.Description,
		}
		if err := checkSeed(req); err != nil {
			return fmt.Errorf("seed concept %s: %w", c.Key, err)
		}
		created, err := a.ConceptService.Create(ctx, req)
		if err != nil {
			return fmt.Errorf("seed concept %s: %w", c.Key, err)
		}
		conceptIDs[c.Key] = created.ID
	}

	for _, c := range data.Contracts {
		start, err := civil.ParseDate(c.StartDate)
		if err != nil {
			return fmt.Errorf("seed contract for %s: %w", c.Property, err)
		}
		end, err := civil.ParseDate(c.EndDate)
		if err != nil {
			return fmt.Errorf("seed contract for %s: %w", c.Property, err)
		}
		req := &dtos.ContractRequest{
			PropertyID: propertyIDs[c.Property],
			StartDate:  start,
			EndDate:    end,
			Details:    c.Details,
		}
		if err := checkSeed(req); err != nil {
			return fmt.Errorf("seed contract for %s: %w", c.Property, err)
		}
		if _, err := a.ContractService.Create(ctx, req); err != nil {
			return fmt.Errorf("seed contract for %s: %w", c.Property, err)
		}
	}

	linkIDs := map[string]int64{}
	for _, pc := range data.PropertiesConcepts {
		req := &dtos.PropertiesConceptsRequest{
			PropertyID: propertyIDs[pc.Property],
			ConceptID:  conceptIDs[pc.Concept],
			Enabled:    utils.Ptr(pc.Enabled),
		}
		if err := checkSeed(req); err != nil {
			return fmt.Errorf("seed properties-concepts %s: %w", pc.Key, err)
		}
		created, err := a.PropertiesConceptsService.Create(ctx, req)
		if err != nil {
			return fmt.Errorf("seed properties-concepts %s: %w", pc.Key, err)
		}
		linkIDs[pc.Key] = created.ID
	}

	for i, t := range data.Transactions {
		date, err := civil.ParseDate(t.Date)
		if err != nil {
			return fmt.Errorf("seed transaction %d: %w", i+1, err)
		}
		amount, err := decimal.NewFromString(t.Amount)
		if err != nil {
			return fmt.Errorf("seed transaction %d: %w", i+1, err)
		}
		req := &dtos.TransactionRequest{
			Date:                 date,
			PropertiesConceptsID: linkIDs[t.Link],
			TransactionType:      t.TransactionType,
			Period:               t.Period,
			Amount:               &amount,
		}
		if err := checkSeed(req); err != nil {
			return fmt.Errorf("seed transaction %d: %w", i+1, err)
		}
		if _, err := a.TransactionService.Create(ctx, req); err != nil {
			return fmt.Errorf("seed transaction %d: %w", i+1, err)
		}
	}

	utils.Logger.Infof("Seeding completed successfully (%d properties, %d concepts, %d contracts, %d links, %d transactions).",
		len(data.Properties), len(data.Concepts), len(data.Contracts), len(data.PropertiesConcepts), len(data.Transactions))
	return nil
}

// checkSeed applies the request rules BindRequest would apply to API input.
func checkSeed(req dtos.Request) error {
	req.Normalize()
	return dtos.Validate.Struct(req)
}
