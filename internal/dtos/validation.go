package dtos

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

const (
	moneyMaxDigits   = 19
	moneyMaxDecimals = 2
)

var periodPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Validate is shared by every request type; it reports fields by their JSON name.
var Validate = newValidator()

// Request is implemented by every inbound payload. Normalize runs after
// decoding and before validation.
type Request interface {
	Normalize()
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.RegisterCustomTypeFunc(dateValue, civil.Date{})
	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("period", validatePeriod)
	v.RegisterStructValidation(validateContractDates, ContractRequest{})
	return v
}

// BindRequest decodes body into req (rejecting unknown fields), normalizes it
// and validates it. Failures are returned as *utils.AppError.
func BindRequest(body io.Reader, req Request) error {
	if err := decodeStrict(body, req); err != nil {
		if field, ok := unknownField(err); ok {
			return utils.NewValidationError("Unknown field in payload", []ValidationErrorDetail{{
				Field:   field,
				Message: fmt.Sprintf("Field '%s' is not allowed", field),
				Code:    "validation_unknown_field",
			}})
		}
		return &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeInvalidPayload,
			Message:    "Invalid JSON payload",
			Err:        err,
		}
	}

	req.Normalize()

	if err := Validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return utils.NewValidationError("Validation error", FormatValidationErrors(validationErrs))
		}
		return utils.NewValidationError("Validation error", nil)
	}
	return nil
}

// FormatValidationErrors converts validator errors into a user-friendly format.
func FormatValidationErrors(errs validator.ValidationErrors) []ValidationErrorDetail {
	details := make([]ValidationErrorDetail, 0, len(errs))
	for _, err := range errs {
		var message string
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("Field '%s' is required", err.Field())
		case "max":
			message = fmt.Sprintf("Field '%s' must not exceed %s characters", err.Field(), err.Param())
		case "gte":
			message = fmt.Sprintf("Field '%s' must be greater than or equal to %s", err.Field(), err.Param())
		case "oneof":
			message = fmt.Sprintf("Field '%s' must be one of [%s]", err.Field(), err.Param())
		case "period":
			message = fmt.Sprintf("Field '%s' must be a YYYY-MM period with a month between 01 and 12", err.Field())
		case "money":
			message = fmt.Sprintf("Field '%s' must be non-negative with at most %d decimal places and %d digits",
				err.Field(), moneyMaxDecimals, moneyMaxDigits)
		case "date_order":
			message = fmt.Sprintf("Field '%s' must be on or after %s", err.Field(), err.Param())
		default:
			message = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", err.Field(), err.Tag())
		}
		details = append(details, ValidationErrorDetail{
			Field:   err.Field(),
			Message: message,
			Code:    "validation_" + err.Tag(),
		})
	}
	return details
}

// ValidPeriod reports whether s is a YYYY-MM period with a real month.
func ValidPeriod(s string) bool {
	if !periodPattern.MatchString(s) {
		return false
	}
	month, err := strconv.Atoi(s[5:7])
	if err != nil {
		return false
	}
	return month >= 1 && month <= 12
}

// MoneyFits reports whether d can be stored as NUMERIC(19,2) without rounding
// and is not negative.
func MoneyFits(d decimal.Decimal) bool {
	if d.IsNegative() {
		return false
	}
	intPart, frac, _ := strings.Cut(d.String(), ".")
	if len(frac) > moneyMaxDecimals {
		return false
	}
	return len(strings.TrimLeft(intPart, "0")) <= moneyMaxDigits-moneyMaxDecimals
}

func validatePeriod(fl validator.FieldLevel) bool {
	return ValidPeriod(fl.Field().String())
}

func validateMoney(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return MoneyFits(d)
}

func validateContractDates(sl validator.StructLevel) {
	req, ok := sl.Current().Interface().(ContractRequest)
	if !ok || req.StartDate == (civil.Date{}) || req.EndDate == (civil.Date{}) {
		return
	}
	if req.EndDate.Before(req.StartDate) {
		sl.ReportError(req.EndDate, "end_date", "EndDate", "date_order", "start_date")
	}
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// Zero dates are reported as absent so `required` rejects them.
func dateValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(civil.Date); ok && d != (civil.Date{}) {
		return d.String()
	}
	return nil
}

func decodeStrict(body io.Reader, dst any) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("unexpected data after JSON object")
	}
	return nil
}

func unknownField(err error) (string, bool) {
	const prefix = "json: unknown field "
	msg := err.Error()
	if !strings.HasPrefix(msg, prefix) {
		return "", false
	}
	return strings.Trim(strings.TrimPrefix(msg, prefix), `"`), true
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
