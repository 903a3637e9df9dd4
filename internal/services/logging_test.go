package services

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seba-moreno/real-estate-tracker/internal/dtos"
	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

// captureLogs records every entry of utils.Logger at debug level for the test's duration.
func captureLogs(t *testing.T) *logtest.Hook {
	t.Helper()
	hook := new(logtest.Hook)
	prevHooks := utils.Logger.ReplaceHooks(logrus.LevelHooks{})
	utils.Logger.AddHook(hook)
	prevLevel := utils.Logger.GetLevel()
	utils.Logger.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		utils.Logger.ReplaceHooks(prevHooks)
		utils.Logger.SetLevel(prevLevel)
	})
	return hook
}

func entryWithMessage(hook *logtest.Hook, msg string) *logrus.Entry {
	for _, e := range hook.AllEntries() {
		if e.Message == msg {
			return e
		}
	}
	return nil
}

func TestPropertyService_LogsPayloadValues(t *testing.T) {
	hook := captureLogs(t)
	f := newFixture(time.Now())

	_, err := f.props.Create(context.Background(), &dtos.PropertyRequest{
		Location:  "x",
		Area:      utils.Ptr(int32(50)),
		Valuation: money("1.5"),
		Details:   utils.Ptr("nice"),
	})
	require.NoError(t, err)

	attempt := entryWithMessage(hook, "Creating property")
	require.NotNil(t, attempt)
	payload, ok := attempt.Data["payload"].(string)
	require.True(t, ok)
	assert.JSONEq(t, `{"location":"x","area":50,"valuation":1.5,"details":"nice"}`, payload)
	assert.NotContains(t, payload, "0xc")

	created := entryWithMessage(hook, "Property created successfully")
	require.NotNil(t, created)
	assert.JSONEq(t, `{"id":1,"location":"x","area":50,"valuation":1.5,"details":"nice"}`, created.Data["property"].(string))
}

func TestTransactionService_LogsPayloadValuesOnUpdate(t *testing.T) {
	f := newFixture(time.Now())
	p := f.property(t, "Campo")
	c := f.concept(t, "Alquiler")
	pc := f.link(t, p.ID, c.ID)
	req := &dtos.TransactionRequest{
		Date:                 civil.Date{Year: 2026, Month: time.January, Day: 4},
		PropertiesConceptsID: pc.ID,
		TransactionType:      "income",
		Period:               "2026-01",
		Amount:               money("400"),
	}
	tx, err := f.txs.Create(context.Background(), req)
	require.NoError(t, err)

	hook := captureLogs(t)
	req.Amount = money("450.25")
	_, err = f.txs.Update(context.Background(), tx.ID, req)
	require.NoError(t, err)

	attempt := entryWithMessage(hook, "Updating transaction")
	require.NotNil(t, attempt)
	assert.Contains(t, attempt.Data["payload"], `"amount":450.25`)
	assert.Contains(t, attempt.Data["payload"], `"date":"2026-01-04"`)
}

func TestServices_LogReadAttemptsAndResults(t *testing.T) {
	f := newFixture(time.Now())
	p := f.property(t, "Avellaneda 500 1°A")

	hook := captureLogs(t)
	ctx := context.Background()

	_, err := f.props.Get(ctx, p.ID)
	require.NoError(t, err)
	_, err = f.props.List(ctx)
	require.NoError(t, err)
	_, err = f.txs.Balance(ctx)
	require.NoError(t, err)

	for _, msg := range []string{
		"Fetching property", "Property fetched",
		"Listing properties", "Listed properties",
		"Computing balance", "Balance computed",
	} {
		e := entryWithMessage(hook, msg)
		if assert.NotNil(t, e, msg) {
			assert.Equal(t, logrus.DebugLevel, e.Level, msg)
		}
	}
	assert.EqualValues(t, 1, entryWithMessage(hook, "Listed properties").Data["count"])
}
