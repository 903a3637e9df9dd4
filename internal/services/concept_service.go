package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/seba-moreno/real-estate-tracker/internal/dtos"
	"github.com/seba-moreno/real-estate-tracker/internal/repositories"
	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

type ConceptService struct {
	conceptRepo repositories.ConceptRepository
	pcRepo      repositories.PropertiesConceptsRepository
}

func NewConceptService(
	conceptRepo repositories.ConceptRepository,
	pcRepo repositories.PropertiesConceptsRepository,
) *ConceptService {
	return &ConceptService{conceptRepo: conceptRepo, pcRepo: pcRepo}
}

func (s *ConceptService) Get(ctx context.Context, id int64) (*dtos.Concept, error) {
	logger := utils.LoggerFromContext(ctx).WithField("concept_id", id)
	logger.Debug("Fetching concept")

	c, err := mustExist(ctx, entityConcept, id, s.conceptRepo.GetByID)
	if err != nil {
		logFailure(logger, err, "Get by id failed")
		return nil, err
	}
	dto := dtos.NewConceptFromModel(c)
	logger.Debug("Concept fetched")
	return &dto, nil
}

func (s *ConceptService) List(ctx context.Context) ([]dtos.Concept, error) {
	logger := utils.LoggerFromContext(ctx)
	logger.Debug("Listing concepts")

	concepts, err := s.conceptRepo.ListAll(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to list concepts")
		return nil, utils.NewInternalError("Failed to list concepts", err)
	}

	out := make([]dtos.Concept, 0, len(concepts))
	for _, c := range concepts {
		out = append(out, dtos.NewConceptFromModel(c))
	}
	logger.WithField("count", len(out)).Debug("Listed concepts")
	return out, nil
}

func (s *ConceptService) Create(ctx context.Context, req *dtos.ConceptRequest) (*dtos.Concept, error) {
	logger := utils.LoggerFromContext(ctx).WithField("payload", asJSON(req))
	logger.Info("Creating concept")

	created, err := s.conceptRepo.Create(ctx, req.ToModel(0))
	if err != nil {
		appErr := writeFailure(err, "Failed to create concept")
		logFailure(logger, appErr, "Failed to create concept")
		return nil, appErr
	}

	dto := dtos.NewConceptFromModel(created)
	logger.WithFields(logrus.Fields{"concept_id": dto.ID, "concept": asJSON(dto)}).Info("Concept created successfully")
	return &dto, nil
}

func (s *ConceptService) Update(ctx context.Context, id int64, req *dtos.ConceptRequest) (*dtos.Concept, error) {
	logger := utils.LoggerFromContext(ctx).WithFields(logrus.Fields{"concept_id": id, "payload": asJSON(req)})
	logger.Info("Updating concept")

	if _, err := mustExist(ctx, entityConcept, id, s.conceptRepo.GetByID); err != nil {
		logFailure(logger, err, "Update failed")
		return nil, err
	}

	updated, err := s.conceptRepo.Update(ctx, req.ToModel(id))
	if err != nil {
		appErr := writeFailure(err, "Failed to update concept")
		logFailure(logger, appErr, "Update failed")
		return nil, appErr
	}
	if updated == nil {
		err := utils.NewNotFoundError(entityConcept, id)
		logFailure(logger, err, "Update failed")
		return nil, err
	}

	dto := dtos.NewConceptFromModel(updated)
	logger.WithField("concept", asJSON(dto)).Info("Concept updated successfully")
	return &dto, nil
}

func (s *ConceptService) Delete(ctx context.Context, id int64) error {
	logger := utils.LoggerFromContext(ctx).WithField("concept_id", id)
	logger.Info("Removing concept")

	if _, err := mustExist(ctx, entityConcept, id, s.conceptRepo.GetByID); err != nil {
		logFailure(logger, err, "Delete failed")
		return err
	}

	links, err := s.pcRepo.ListByConceptID(ctx, id)
	if err != nil {
		logger.WithError(err).Error("Failed to list property links for concept")
		return utils.NewInternalError("Failed to delete concept", err)
	}
	if len(links) > 0 {
		appErr := restrictError(entityConcept, id, fmt.Sprintf("%d property link(s)", len(links)))
		logFailure(logger, appErr, "Delete failed")
		return appErr
	}

	return remove(ctx, logger, entityConcept, id, s.conceptRepo.Delete)
}
