package dtos

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seba-moreno/real-estate-tracker/internal/models"
	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

func appErr(t *testing.T, err error) *utils.AppError {
	t.Helper()
	require.Error(t, err)
	ae, ok := err.(*utils.AppError)
	require.True(t, ok, "expected *utils.AppError, got %T", err)
	return ae
}

func fields(ae *utils.AppError) []string {
	details, _ := ae.Details.([]ValidationErrorDetail)
	out := make([]string, 0, len(details))
	for _, d := range details {
		out = append(out, d.Field)
	}
	return out
}

func TestValidPeriod(t *testing.T) {
	for _, ok := range []string{"2026-01", "2026-12", "1999-06"} {
		assert.True(t, ValidPeriod(ok), ok)
	}
	for _, bad := range []string{"2026-13", "26-01", "2026/01", "2026-00", "2026-1", "", "２０２６-01"} {
		assert.False(t, ValidPeriod(bad), bad)
	}
}

func TestMoneyFits(t *testing.T) {
	cases := map[string]bool{
		"0":                    true,
		"400.00":               true,
		"0.01":                 true,
		"12345678901234567.99": true,
		"123456789012345678":   false,
		"1.005":                false,
		"-1":                   false,
	}
	for in, want := range cases {
		assert.Equal(t, want, MoneyFits(decimal.RequireFromString(in)), in)
	}
}

func TestBindRequest_PropertyTrimsAndValidates(t *testing.T) {
	var req PropertyRequest
	err := BindRequest(strings.NewReader(`{"location":"  Avellaneda 500  ","valuation":100000,"details":"  corner "}`), &req)
	require.NoError(t, err)
	assert.Equal(t, "Avellaneda 500", req.Location)
	assert.Equal(t, "corner", *req.Details)
	assert.True(t, req.Valuation.Equal(decimal.NewFromInt(100000)))
	assert.Nil(t, req.Area)
}

func TestBindRequest_PropertyFailures(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"blank location", `{"location":"   ","valuation":1}`, "location"},
		{"long location", `{"location":"` + strings.Repeat("a", 101) + `","valuation":1}`, "location"},
		{"zero area", `{"location":"x","area":0,"valuation":1}`, "area"},
		{"negative valuation", `{"location":"x","valuation":-1}`, "valuation"},
		{"three decimals", `{"location":"x","valuation":1.234}`, "valuation"},
		{"missing valuation", `{"location":"x"}`, "valuation"},
		{"long details", `{"location":"x","valuation":1,"details":"` + strings.Repeat("d", 501) + `"}`, "details"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var req PropertyRequest
			ae := appErr(t, BindRequest(strings.NewReader(tc.body), &req))
			assert.Equal(t, http.StatusUnprocessableEntity, ae.StatusCode)
			assert.Contains(t, fields(ae), tc.field)
		})
	}
}

func TestBindRequest_UnknownFieldRejected(t *testing.T) {
	var req ConceptRequest
	ae := appErr(t, BindRequest(strings.NewReader(`{"name":"TGI","is_ordinary":true,"color":"red"}`), &req))
	assert.Equal(t, http.StatusUnprocessableEntity, ae.StatusCode)
	assert.Equal(t, []string{"color"}, fields(ae))
}

func TestBindRequest_MalformedJSON(t *testing.T) {
	var req ConceptRequest
	ae := appErr(t, BindRequest(strings.NewReader(`{"name":`), &req))
	assert.Equal(t, http.StatusBadRequest, ae.StatusCode)
	assert.Equal(t, utils.ErrCodeInvalidPayload, ae.Code)

	ae = appErr(t, BindRequest(strings.NewReader(`{"name":"a","is_ordinary":true} {}`), &req))
	assert.Equal(t, http.StatusBadRequest, ae.StatusCode)
}

func TestBindRequest_ConceptRequiresIsOrdinary(t *testing.T) {
	var req ConceptRequest
	ae := appErr(t, BindRequest(strings.NewReader(`{"name":"TGI"}`), &req))
	assert.Equal(t, []string{"is_ordinary"}, fields(ae))

	req = ConceptRequest{}
	require.NoError(t, BindRequest(strings.NewReader(`{"name":"TGI","is_ordinary":false,"periodicity":0}`), &req))
	assert.False(t, *req.IsOrdinary)
}

func TestBindRequest_ContractDateOrder(t *testing.T) {
	var req ContractRequest
	ae := appErr(t, BindRequest(strings.NewReader(
		`{"property_id":1,"start_date":"2026-06-01","end_date":"2026-05-31"}`), &req))
	assert.Equal(t, []string{"end_date"}, fields(ae))
	details := ae.Details.([]ValidationErrorDetail)
	assert.Equal(t, "validation_date_order", details[0].Code)

	req = ContractRequest{}
	require.NoError(t, BindRequest(strings.NewReader(
		`{"property_id":1,"start_date":"2026-06-01","end_date":"2026-06-01"}`), &req))
}

func TestBindRequest_ContractRequiresDatesAndProperty(t *testing.T) {
	var req ContractRequest
	ae := appErr(t, BindRequest(strings.NewReader(`{"property_id":0}`), &req))
	assert.ElementsMatch(t, []string{"property_id", "start_date", "end_date"}, fields(ae))
}

func TestBindRequest_TransactionPeriods(t *testing.T) {
	body := func(period string) string {
		return `{"date":"2026-01-04","properties_concepts_id":1,"transaction_type":"income","period":"` +
			period + `","amount":400}`
	}
	for _, ok := range []string{"2026-01", "2026-12"} {
		var req TransactionRequest
		assert.NoError(t, BindRequest(strings.NewReader(body(ok)), &req), ok)
	}
	for _, bad := range []string{"2026-13", "26-01", "2026/01"} {
		var req TransactionRequest
		ae := appErr(t, BindRequest(strings.NewReader(body(bad)), &req))
		assert.Equal(t, []string{"period"}, fields(ae), bad)
	}
}

func TestBindRequest_TransactionTypeNormalized(t *testing.T) {
	var req TransactionRequest
	require.NoError(t, BindRequest(strings.NewReader(
		`{"date":"2026-01-04","properties_concepts_id":2,"transaction_type":"  Expense ","period":"2026-01","amount":"20.50"}`), &req))
	assert.Equal(t, "expense", req.TransactionType)

	m := req.ToModel(0)
	assert.Equal(t, models.TransactionTypeExpense, m.TransactionType)
	assert.True(t, m.Signed().Equal(decimal.RequireFromString("-20.5")))

	req = TransactionRequest{}
	ae := appErr(t, BindRequest(strings.NewReader(
		`{"date":"2026-01-04","properties_concepts_id":2,"transaction_type":"refund","period":"2026-01","amount":1}`), &req))
	assert.Equal(t, []string{"transaction_type"}, fields(ae))
}

func TestResponsesSerializeDecimalsAsNumbers(t *testing.T) {
	out, err := json.Marshal(NewTransactionFromModel(&models.Transaction{
		ID:                   3,
		Date:                 civil.Date{Year: 2026, Month: 1, Day: 4}.In(time.UTC),
		PropertiesConceptsID: 1,
		TransactionType:      models.TransactionTypeIncome,
		Period:               "2026-01",
		Amount:               decimal.RequireFromString("400.5"),
	}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"date":"2026-01-04","properties_concepts_id":1,
		"transaction_type":"income","period":"2026-01","amount":400.5}`, string(out))
}

func TestPropertiesConceptsEmbedsNullWhenUnresolved(t *testing.T) {
	pc := &models.PropertiesConcepts{ID: 1, PropertyID: 2, ConceptID: 3, Enabled: true}
	out, err := json.Marshal(NewPropertiesConceptsFromModel(pc, nil, &models.Property{ID: 2, Location: "x"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"concept_id":3,"property_id":2,"enabled":true,"concept":null,
		"property":{"id":2,"location":"x","area":null,"valuation":0,"details":null}}`, string(out))
}
