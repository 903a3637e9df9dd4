package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/seba-moreno/real-estate-tracker/internal/dtos"
	"github.com/seba-moreno/real-estate-tracker/internal/repositories"
	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

const (
	entityProperty           = "Property"
	entityConcept            = "Concept"
	entityContract           = "Contract"
	entityPropertiesConcepts = "PropertiesConcepts"
	entityTransaction        = "Transaction"
)

// mustExist loads id through get and turns absence into a NotFound error.
func mustExist[T any](ctx context.Context, entity string, id int64, get func(context.Context, int64) (*T, error)) (*T, error) {
	found, err := get(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError(fmt.Sprintf("Failed to load %s", strings.ToLower(entity)), err)
	}
	if found == nil {
		return nil, utils.NewNotFoundError(entity, id)
	}
	return found, nil
}

// checkReference rejects payloads whose field points at a missing record.
func checkReference[T any](ctx context.Context, field string, id int64, get func(context.Context, int64) (*T, error)) error {
	found, err := get(ctx, id)
	if err != nil {
		return utils.NewInternalError(fmt.Sprintf("Failed to verify %s", field), err)
	}
	if found == nil {
		return utils.NewValidationError("Referenced record does not exist", []dtos.ValidationErrorDetail{{
			Field:   field,
			Message: fmt.Sprintf("Field '%s' references id %d, which does not exist", field, id),
			Code:    "validation_reference",
		}})
	}
	return nil
}

// writeFailure classifies a failed insert/update.
func writeFailure(err error, message string) *utils.AppError {
	switch {
	case repositories.IsForeignKeyViolation(err):
		return utils.NewValidationError("Referenced record does not exist", nil)
	case repositories.IsCheckViolation(err):
		return utils.NewValidationError("Payload violates a storage constraint", nil)
	}
	return utils.NewInternalError(message, err)
}

func restrictError(entity string, id int64, dependents string) *utils.AppError {
	return utils.NewConflictError(fmt.Sprintf("%s %d is still referenced by %s", entity, id, dependents))
}

// remove deletes a record already known to exist.
func remove(
	ctx context.Context,
	logger *logrus.Entry,
	entity string,
	id int64,
	del func(ctx context.Context, id int64) (bool, error),
) error {
	deleted, err := del(ctx, id)
	if err != nil {
		var appErr *utils.AppError
		if repositories.IsForeignKeyViolation(err) {
			appErr = restrictError(entity, id, "other records")
		} else {
			appErr = utils.NewInternalError(fmt.Sprintf("Failed to delete %s", strings.ToLower(entity)), err)
		}
		logFailure(logger, appErr, "Delete failed")
		return appErr
	}
	if !deleted {
		appErr := utils.NewInternalError(fmt.Sprintf("Failed to delete %s", strings.ToLower(entity)), nil)
		logFailure(logger, appErr, "Delete failed: store did not confirm removal")
		return appErr
	}
	logger.Infof("%s deleted successfully", entity)
	return nil
}

// logFailure logs client errors as warnings and everything else as errors.
func logFailure(logger *logrus.Entry, err error, message string) {
	var appErr *utils.AppError
	if errors.As(err, &appErr) && appErr.StatusCode < http.StatusInternalServerError {
		logger.WithField("reason", appErr.Message).Warn(message)
		return
	}
	logger.WithError(err).Error(message)
}

// asJSON renders v by value for log fields.
func asJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}
