package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/seba-moreno/real-estate-tracker/internal/dtos"
	"github.com/seba-moreno/real-estate-tracker/internal/repositories"
	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

type PropertyService struct {
	propRepo     repositories.PropertyRepository
	contractRepo repositories.ContractRepository
	pcRepo       repositories.PropertiesConceptsRepository
}

func NewPropertyService(
	propRepo repositories.PropertyRepository,
	contractRepo repositories.ContractRepository,
	pcRepo repositories.PropertiesConceptsRepository,
) *PropertyService {
	return &PropertyService{
		propRepo:     propRepo,
		contractRepo: contractRepo,
		pcRepo:       pcRepo,
	}
}

func (s *PropertyService) Get(ctx context.Context, id int64) (*dtos.Property, error) {
	logger := utils.LoggerFromContext(ctx).WithField("property_id", id)
	logger.Debug("Fetching property")

	p, err := mustExist(ctx, entityProperty, id, s.propRepo.GetByID)
	if err != nil {
		logFailure(logger, err, "Get by id failed")
		return nil, err
	}
	dto := dtos.NewPropertyFromModel(p)
	logger.Debug("Property fetched")
	return &dto, nil
}

func (s *PropertyService) List(ctx context.Context) ([]dtos.Property, error) {
	logger := utils.LoggerFromContext(ctx)
	logger.Debug("Listing properties")

	props, err := s.propRepo.ListAll(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to list properties")
		return nil, utils.NewInternalError("Failed to list properties", err)
	}

	out := make([]dtos.Property, 0, len(props))
	for _, p := range props {
		out = append(out, dtos.NewPropertyFromModel(p))
	}
	logger.WithField("count", len(out)).Debug("Listed properties")
	return out, nil
}

func (s *PropertyService) Create(ctx context.Context, req *dtos.PropertyRequest) (*dtos.Property, error) {
	logger := utils.LoggerFromContext(ctx).WithField("payload", asJSON(req))
	logger.Info("Creating property")

	created, err := s.propRepo.Create(ctx, req.ToModel(0))
	if err != nil {
		appErr := writeFailure(err, "Failed to create property")
		logFailure(logger, appErr, "Failed to create property")
		return nil, appErr
	}

	dto := dtos.NewPropertyFromModel(created)
	logger.WithFields(logrus.Fields{"property_id": dto.ID, "property": asJSON(dto)}).Info("Property created successfully")
	return &dto, nil
}

// Update replaces every field of the property.
func (s *PropertyService) Update(ctx context.Context, id int64, req *dtos.PropertyRequest) (*dtos.Property, error) {
	logger := utils.LoggerFromContext(ctx).WithFields(logrus.Fields{"property_id": id, "payload": asJSON(req)})
	logger.Info("Updating property")

	if _, err := mustExist(ctx, entityProperty, id, s.propRepo.GetByID); err != nil {
		logFailure(logger, err, "Update failed")
		return nil, err
	}

	updated, err := s.propRepo.Update(ctx, req.ToModel(id))
	if err != nil {
		appErr := writeFailure(err, "Failed to update property")
		logFailure(logger, appErr, "Update failed")
		return nil, appErr
	}
	if updated == nil {
		err := utils.NewNotFoundError(entityProperty, id)
		logFailure(logger, err, "Update failed")
		return nil, err
	}

	dto := dtos.NewPropertyFromModel(updated)
	logger.WithField("property", asJSON(dto)).Info("Property updated successfully")
	return &dto, nil
}

// Delete refuses to remove a property that still has contracts or concept links.
func (s *PropertyService) Delete(ctx context.Context, id int64) error {
	logger := utils.LoggerFromContext(ctx).WithField("property_id", id)
	logger.Info("Removing property")

	if _, err := mustExist(ctx, entityProperty, id, s.propRepo.GetByID); err != nil {
		logFailure(logger, err, "Delete failed")
		return err
	}

	contracts, err := s.contractRepo.ListByPropertyID(ctx, id)
	if err != nil {
		logger.WithError(err).Error("Failed to list contracts for property")
		return utils.NewInternalError("Failed to delete property", err)
	}
	links, err := s.pcRepo.ListByPropertyID(ctx, id)
	if err != nil {
		logger.WithError(err).Error("Failed to list concept links for property")
		return utils.NewInternalError("Failed to delete property", err)
	}
	if len(contracts) > 0 || len(links) > 0 {
		appErr := restrictError(entityProperty, id,
			fmt.Sprintf("%d contract(s) and %d concept link(s)", len(contracts), len(links)))
		logFailure(logger, appErr, "Delete failed")
		return appErr
	}

	return remove(ctx, logger, entityProperty, id, s.propRepo.Delete)
}
