package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/seba-moreno/real-estate-tracker/internal/dtos"
	"github.com/seba-moreno/real-estate-tracker/internal/models"
	"github.com/seba-moreno/real-estate-tracker/internal/repositories"
	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

// PropertiesConceptsService manages the links between properties and concepts.
// Every response embeds the linked concept and property, resolved per row.
type PropertiesConceptsService struct {
	pcRepo      repositories.PropertiesConceptsRepository
	propRepo    repositories.PropertyRepository
	conceptRepo repositories.ConceptRepository
	txRepo      repositories.TransactionRepository
}

func NewPropertiesConceptsService(
	pcRepo repositories.PropertiesConceptsRepository,
	propRepo repositories.PropertyRepository,
	conceptRepo repositories.ConceptRepository,
	txRepo repositories.TransactionRepository,
) *PropertiesConceptsService {
	return &PropertiesConceptsService{
		pcRepo:      pcRepo,
		propRepo:    propRepo,
		conceptRepo: conceptRepo,
		txRepo:      txRepo,
	}
}

func (s *PropertiesConceptsService) Get(ctx context.Context, id int64) (*dtos.PropertiesConcepts, error) {
	logger := utils.LoggerFromContext(ctx).WithField("properties_concepts_id", id)
	logger.Debug("Fetching properties-concepts link")

	pc, err := mustExist(ctx, entityPropertiesConcepts, id, s.pcRepo.GetByID)
	if err != nil {
		logFailure(logger, err, "Get by id failed")
		return nil, err
	}

	dto, err := s.resolve(ctx, pc)
	if err != nil {
		logger.WithError(err).Error("Failed to resolve related records")
		return nil, utils.NewInternalError("Failed to load properties-concepts", err)
	}
	logger.Debug("Properties-concepts link fetched")
	return &dto, nil
}

// List returns every link with its concept and property embedded.
func (s *PropertiesConceptsService) List(ctx context.Context) ([]dtos.PropertiesConcepts, error) {
	logger := utils.LoggerFromContext(ctx)
	logger.Debug("Listing properties-concepts")

	links, err := s.pcRepo.ListAll(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to list properties-concepts")
		return nil, utils.NewInternalError("Failed to list properties-concepts", err)
	}

	out := make([]dtos.PropertiesConcepts, 0, len(links))
	for _, pc := range links {
		dto, err := s.resolve(ctx, pc)
		if err != nil {
			logger.WithError(err).WithField("properties_concepts_id", pc.ID).Error("Failed to resolve related records")
			return nil, utils.NewInternalError("Failed to list properties-concepts", err)
		}
		out = append(out, dto)
	}
	logger.WithField("count", len(out)).Debug("Listed properties-concepts")
	return out, nil
}

func (s *PropertiesConceptsService) Create(ctx context.Context, req *dtos.PropertiesConceptsRequest) (*dtos.PropertiesConcepts, error) {
	logger := utils.LoggerFromContext(ctx).WithField("payload", asJSON(req))
	logger.Info("Creating properties-concepts")

	if err := s.checkReferences(ctx, req); err != nil {
		logFailure(logger, err, "Failed to create properties-concepts")
		return nil, err
	}

	created, err := s.pcRepo.Create(ctx, req.ToModel(0))
	if err != nil {
		appErr := writeFailure(err, "Failed to create properties-concepts")
		logFailure(logger, appErr, "Failed to create properties-concepts")
		return nil, appErr
	}

	dto, err := s.resolve(ctx, created)
	if err != nil {
		logger.WithError(err).Error("Failed to resolve related records")
		return nil, utils.NewInternalError("Failed to load properties-concepts", err)
	}
	logger.WithFields(logrus.Fields{"properties_concepts_id": dto.ID, "properties_concepts": asJSON(dto)}).
		Info("PropertiesConcepts created successfully")
	return &dto, nil
}

func (s *PropertiesConceptsService) Update(ctx context.Context, id int64, req *dtos.PropertiesConceptsRequest) (*dtos.PropertiesConcepts, error) {
	logger := utils.LoggerFromContext(ctx).WithFields(logrus.Fields{"properties_concepts_id": id, "payload": asJSON(req)})
	logger.Info("Updating properties-concepts")

	if _, err := mustExist(ctx, entityPropertiesConcepts, id, s.pcRepo.GetByID); err != nil {
		logFailure(logger, err, "Update failed")
		return nil, err
	}
	if err := s.checkReferences(ctx, req); err != nil {
		logFailure(logger, err, "Update failed")
		return nil, err
	}

	updated, err := s.pcRepo.Update(ctx, req.ToModel(id))
	if err != nil {
		appErr := writeFailure(err, "Failed to update properties-concepts")
		logFailure(logger, appErr, "Update failed")
		return nil, appErr
	}
	if updated == nil {
		err := utils.NewNotFoundError(entityPropertiesConcepts, id)
		logFailure(logger, err, "Update failed")
		return nil, err
	}

	dto, err := s.resolve(ctx, updated)
	if err != nil {
		logger.WithError(err).Error("Failed to resolve related records")
		return nil, utils.NewInternalError("Failed to load properties-concepts", err)
	}
	logger.WithField("properties_concepts", asJSON(dto)).Info("PropertiesConcepts updated successfully")
	return &dto, nil
}

func (s *PropertiesConceptsService) Delete(ctx context.Context, id int64) error {
	logger := utils.LoggerFromContext(ctx).WithField("properties_concepts_id", id)
	logger.Info("Removing properties-concepts")

	if _, err := mustExist(ctx, entityPropertiesConcepts, id, s.pcRepo.GetByID); err != nil {
		logFailure(logger, err, "Delete failed")
		return err
	}

	txs, err := s.txRepo.ListByPropertiesConceptsID(ctx, id)
	if err != nil {
		logger.WithError(err).Error("Failed to list transactions for properties-concepts")
		return utils.NewInternalError("Failed to delete properties-concepts", err)
	}
	if len(txs) > 0 {
		appErr := restrictError(entityPropertiesConcepts, id, fmt.Sprintf("%d transaction(s)", len(txs)))
		logFailure(logger, appErr, "Delete failed")
		return appErr
	}

	return remove(ctx, logger, entityPropertiesConcepts, id, s.pcRepo.Delete)
}

func (s *PropertiesConceptsService) checkReferences(ctx context.Context, req *dtos.PropertiesConceptsRequest) error {
	if err := checkReference(ctx, "property_id", req.PropertyID, s.propRepo.GetByID); err != nil {
		return err
	}
	return checkReference(ctx, "concept_id", req.ConceptID, s.conceptRepo.GetByID)
}

// resolve embeds the concept and property; a dangling id yields a null embed.
func (s *PropertiesConceptsService) resolve(ctx context.Context, pc *models.PropertiesConcepts) (dtos.PropertiesConcepts, error) {
	concept, err := s.conceptRepo.GetByID(ctx, pc.ConceptID)
	if err != nil {
		return dtos.PropertiesConcepts{}, err
	}
	property, err := s.propRepo.GetByID(ctx, pc.PropertyID)
	if err != nil {
		return dtos.PropertiesConcepts{}, err
	}
	return dtos.NewPropertiesConceptsFromModel(pc, concept, property), nil
}
