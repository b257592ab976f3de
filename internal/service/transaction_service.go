package service

import (
	"context"
	"errors"
	"time"

	"clubbooks/internal/dto"
	"clubbooks/internal/ledger"
	"clubbooks/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNotFound              = errors.New("record not found")
	ErrInvalidAmount         = errors.New("amount must be non-negative")
	ErrInvalidClassification = errors.New("unknown classification")
	ErrInvalidDate           = errors.New("invalid date")
)

type TransactionService struct {
	transactions TransactionStore
	logger       *zap.Logger
	now          func() time.Time
}

func NewTransactionService(transactions TransactionStore, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *TransactionService) Create(ctx context.Context, req *dto.CreateTransactionRequest, createdBy uuid.UUID) (*models.Transaction, error) {
	tx, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}

	now := s.now()
	tx.ID = uuid.New()
	tx.CreatedBy = createdBy
	tx.CreatedAt = now
	tx.UpdatedAt = now

	if err := s.transactions.Create(ctx, tx); err != nil {
		s.logger.Error("Failed to create transaction", zap.Error(err))
		return nil, err
	}

	return tx, nil
}

func (s *TransactionService) Update(ctx context.Context, id uuid.UUID, req *dto.CreateTransactionRequest, updatedBy uuid.UUID) (*models.Transaction, error) {
	existing, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	tx, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}

	tx.ID = existing.ID
	tx.CreatedBy = existing.CreatedBy
	tx.CreatedAt = existing.CreatedAt
	tx.UpdatedBy = &updatedBy
	tx.UpdatedAt = s.now()

	if err := s.transactions.Update(ctx, tx); err != nil {
		s.logger.Error("Failed to update transaction", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	return tx, nil
}

func (s *TransactionService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.transactions.GetByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.transactions.Delete(ctx, id)
}

func (s *TransactionService) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	tx, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return tx, nil
}

func (s *TransactionService) List(ctx context.Context, f models.TransactionFilter, limit, offset uint64) ([]*models.Transaction, error) {
	return s.transactions.List(ctx, f, limit, offset)
}

func (s *TransactionService) fromRequest(req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	if req.Amount.IsNegative() {
		return nil, ErrInvalidAmount
	}

	classification := ledger.Classification(req.Classification)
	if !classification.Valid() {
		return nil, ErrInvalidClassification
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	tx := &models.Transaction{
		Amount:          req.Amount,
		Date:            date,
		Classification:  classification,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
	}

	if req.CategoryID != "" {
		id, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, err
		}
		tx.CategoryID = &id
	}
	if req.AccountID != "" {
		id, err := uuid.Parse(req.AccountID)
		if err != nil {
			return nil, err
		}
		tx.AccountID = &id
	}
	if req.VendorID != "" {
		id, err := uuid.Parse(req.VendorID)
		if err != nil {
			return nil, err
		}
		tx.VendorID = &id
	}

	return tx, nil
}
