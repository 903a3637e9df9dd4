package services

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/sirupsen/logrus"

	"github.com/seba-moreno/real-estate-tracker/internal/dtos"
	"github.com/seba-moreno/real-estate-tracker/internal/models"
	"github.com/seba-moreno/real-estate-tracker/internal/repositories"
	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

const (
	MinEndingMonths = 1
	MaxEndingMonths = 12
)

type ContractService struct {
	contractRepo repositories.ContractRepository
	propRepo     repositories.PropertyRepository
	now          func() time.Time
}

func NewContractService(
	contractRepo repositories.ContractRepository,
	propRepo repositories.PropertyRepository,
) *ContractService {
	return &ContractService{
		contractRepo: contractRepo,
		propRepo:     propRepo,
		now:          time.Now,
	}
}

func (s *ContractService) Get(ctx context.Context, id int64) (*dtos.Contract, error) {
	logger := utils.LoggerFromContext(ctx).WithField("contract_id", id)
	logger.Debug("Fetching contract")

	c, err := mustExist(ctx, entityContract, id, s.contractRepo.GetByID)
	if err != nil {
		logFailure(logger, err, "Get by id failed")
		return nil, err
	}
	dto := dtos.NewContractFromModel(c)
	logger.Debug("Contract fetched")
	return &dto, nil
}

func (s *ContractService) List(ctx context.Context) ([]dtos.Contract, error) {
	logger := utils.LoggerFromContext(ctx)
	logger.Debug("Listing contracts")

	contracts, err := s.contractRepo.ListAll(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to list contracts")
		return nil, utils.NewInternalError("Failed to list contracts", err)
	}
	logger.WithField("count", len(contracts)).Debug("Listed contracts")
	return contractDTOs(contracts), nil
}

func (s *ContractService) Create(ctx context.Context, req *dtos.ContractRequest) (*dtos.Contract, error) {
	logger := utils.LoggerFromContext(ctx).WithField("payload", asJSON(req))
	logger.Info("Creating contract")

	c := req.ToModel(0)
	if err := s.checkWrite(ctx, c); err != nil {
		logFailure(logger, err, "Failed to create contract")
		return nil, err
	}

	created, err := s.contractRepo.Create(ctx, c)
	if err != nil {
		appErr := writeFailure(err, "Failed to create contract")
		logFailure(logger, appErr, "Failed to create contract")
		return nil, appErr
	}

	dto := dtos.NewContractFromModel(created)
	logger.WithFields(logrus.Fields{"contract_id": dto.ID, "contract": asJSON(dto)}).Info("Contract created successfully")
	return &dto, nil
}

func (s *ContractService) Update(ctx context.Context, id int64, req *dtos.ContractRequest) (*dtos.Contract, error) {
	logger := utils.LoggerFromContext(ctx).WithFields(logrus.Fields{"contract_id": id, "payload": asJSON(req)})
	logger.Info("Updating contract")

	if _, err := mustExist(ctx, entityContract, id, s.contractRepo.GetByID); err != nil {
		logFailure(logger, err, "Update failed")
		return nil, err
	}

	c := req.ToModel(id)
	if err := s.checkWrite(ctx, c); err != nil {
		logFailure(logger, err, "Update failed")
		return nil, err
	}

	updated, err := s.contractRepo.Update(ctx, c)
	if err != nil {
		appErr := writeFailure(err, "Failed to update contract")
		logFailure(logger, appErr, "Update failed")
		return nil, appErr
	}
	if updated == nil {
		err := utils.NewNotFoundError(entityContract, id)
		logFailure(logger, err, "Update failed")
		return nil, err
	}

	dto := dtos.NewContractFromModel(updated)
	logger.WithField("contract", asJSON(dto)).Info("Contract updated successfully")
	return &dto, nil
}

func (s *ContractService) Delete(ctx context.Context, id int64) error {
	logger := utils.LoggerFromContext(ctx).WithField("contract_id", id)
	logger.Info("Removing contract")

	if _, err := mustExist(ctx, entityContract, id, s.contractRepo.GetByID); err != nil {
		logFailure(logger, err, "Delete failed")
		return err
	}
	return remove(ctx, logger, entityContract, id, s.contractRepo.Delete)
}

// EndingWithin lists contracts whose end date falls between today and today
// plus months calendar months, both inclusive.
func (s *ContractService) EndingWithin(ctx context.Context, months int) ([]dtos.Contract, error) {
	logger := utils.LoggerFromContext(ctx).WithField("months", months)

	if months < MinEndingMonths || months > MaxEndingMonths {
		err := utils.NewValidationError("Invalid months", []dtos.ValidationErrorDetail{{
			Field:   "months",
			Message: fmt.Sprintf("Field 'months' must be between %d and %d", MinEndingMonths, MaxEndingMonths),
			Code:    "validation_range",
		}})
		logFailure(logger, err, "Ending-in query rejected")
		return nil, err
	}

	today := utils.Today(s.now())
	until := utils.AddMonthsClamped(today, months)
	logger.Debug("Listing contracts ending soon")

	contracts, err := s.contractRepo.ListEndingBetween(ctx, today.In(time.UTC), until.In(time.UTC))
	if err != nil {
		logger.WithError(err).Error("Failed to list contracts ending soon")
		return nil, utils.NewInternalError("Failed to list contracts", err)
	}

	logger.WithFields(logrus.Fields{"from": today, "to": until, "count": len(contracts)}).Debug("Listed contracts ending soon")
	return contractDTOs(contracts), nil
}

// checkWrite verifies the property exists and that no other contract of the
// same property overlaps c.
func (s *ContractService) checkWrite(ctx context.Context, c *models.Contract) error {
	if err := checkReference(ctx, "property_id", c.PropertyID, s.propRepo.GetByID); err != nil {
		return err
	}

	existing, err := s.contractRepo.ListByPropertyID(ctx, c.PropertyID)
	if err != nil {
		return utils.NewInternalError("Failed to verify contract overlap", err)
	}
	for _, other := range existing {
		if other.ID != c.ID && other.Overlaps(c.StartDate, c.EndDate) {
			return utils.NewConflictError(fmt.Sprintf(
				"Property %d already has contract %d in force from %s to %s",
				c.PropertyID, other.ID, civil.DateOf(other.StartDate), civil.DateOf(other.EndDate),
			))
		}
	}
	return nil
}

func contractDTOs(contracts []*models.Contract) []dtos.Contract {
	out := make([]dtos.Contract, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, dtos.NewContractFromModel(c))
	}
	return out
}
