package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/seba-moreno/real-estate-tracker/internal/dtos"
	"github.com/seba-moreno/real-estate-tracker/internal/repositories"
	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

type TransactionService struct {
	txRepo repositories.TransactionRepository
	pcRepo repositories.PropertiesConceptsRepository
}

func NewTransactionService(
	txRepo repositories.TransactionRepository,
	pcRepo repositories.PropertiesConceptsRepository,
) *TransactionService {
	return &TransactionService{txRepo: txRepo, pcRepo: pcRepo}
}

func (s *TransactionService) Get(ctx context.Context, id int64) (*dtos.Transaction, error) {
	logger := utils.LoggerFromContext(ctx).WithField("transaction_id", id)
	logger.Debug("Fetching transaction")

	t, err := mustExist(ctx, entityTransaction, id, s.txRepo.GetByID)
	if err != nil {
		logFailure(logger, err, "Get by id failed")
		return nil, err
	}
	dto := dtos.NewTransactionFromModel(t)
	logger.Debug("Transaction fetched")
	return &dto, nil
}

func (s *TransactionService) List(ctx context.Context) ([]dtos.Transaction, error) {
	logger := utils.LoggerFromContext(ctx)
	logger.Debug("Listing transactions")

	txs, err := s.txRepo.ListAll(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to list transactions")
		return nil, utils.NewInternalError("Failed to list transactions", err)
	}

	out := make([]dtos.Transaction, 0, len(txs))
	for _, t := range txs {
		out = append(out, dtos.NewTransactionFromModel(t))
	}
	logger.WithField("count", len(out)).Debug("Listed transactions")
	return out, nil
}

func (s *TransactionService) Create(ctx context.Context, req *dtos.TransactionRequest) (*dtos.Transaction, error) {
	logger := utils.LoggerFromContext(ctx).WithField("payload", asJSON(req))
	logger.Info("Creating transaction")

	if err := checkReference(ctx, "properties_concepts_id", req.PropertiesConceptsID, s.pcRepo.GetByID); err != nil {
		logFailure(logger, err, "Failed to create transaction")
		return nil, err
	}

	created, err := s.txRepo.Create(ctx, req.ToModel(0))
	if err != nil {
		appErr := writeFailure(err, "Failed to create transaction")
		logFailure(logger, appErr, "Failed to create transaction")
		return nil, appErr
	}

	dto := dtos.NewTransactionFromModel(created)
	logger.WithFields(logrus.Fields{"transaction_id": dto.ID, "transaction": asJSON(dto)}).Info("Transaction created successfully")
	return &dto, nil
}

func (s *TransactionService) Update(ctx context.Context, id int64, req *dtos.TransactionRequest) (*dtos.Transaction, error) {
	logger := utils.LoggerFromContext(ctx).WithFields(logrus.Fields{"transaction_id": id, "payload": asJSON(req)})
	logger.Info("Updating transaction")

	if _, err := mustExist(ctx, entityTransaction, id, s.txRepo.GetByID); err != nil {
		logFailure(logger, err, "Update failed")
		return nil, err
	}
	if err := checkReference(ctx, "properties_concepts_id", req.PropertiesConceptsID, s.pcRepo.GetByID); err != nil {
		logFailure(logger, err, "Update failed")
		return nil, err
	}

	updated, err := s.txRepo.Update(ctx, req.ToModel(id))
	if err != nil {
		appErr := writeFailure(err, "Failed to update transaction")
		logFailure(logger, appErr, "Update failed")
		return nil, appErr
	}
	if updated == nil {
		err := utils.NewNotFoundError(entityTransaction, id)
		logFailure(logger, err, "Update failed")
		return nil, err
	}

	dto := dtos.NewTransactionFromModel(updated)
	logger.WithField("transaction", asJSON(dto)).Info("Transaction updated successfully")
	return &dto, nil
}

func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	logger := utils.LoggerFromContext(ctx).WithField("transaction_id", id)
	logger.Info("Removing transaction")

	if _, err := mustExist(ctx, entityTransaction, id, s.txRepo.GetByID); err != nil {
		logFailure(logger, err, "Delete failed")
		return err
	}
	return remove(ctx, logger, entityTransaction, id, s.txRepo.Delete)
}

// Balance is the all-time sum of incomes minus expenses.
func (s *TransactionService) Balance(ctx context.Context) (*dtos.BalanceResponse, error) {
	logger := utils.LoggerFromContext(ctx)
	logger.Debug("Computing balance")

	txs, err := s.txRepo.ListAll(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to compute balance")
		return nil, utils.NewInternalError("Failed to compute balance", err)
	}

	balance := decimal.Zero
	for _, t := range txs {
		balance = balance.Add(t.Signed())
	}
	logger.WithFields(logrus.Fields{"count": len(txs), "balance": balance.String()}).Debug("Balance computed")
	return &dtos.BalanceResponse{Balance: balance}, nil
}
