package service

import (
	"context"
	"errors"

	"clubbooks/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrAccountHasTransactions = errors.New("account has transactions; reassign them first")
	ErrAccountHasChildren     = errors.New("account has child accounts")
)

// ChartService manages the chart-of-accounts and category trees, including
// the soft-guarded account deletion rule.
type ChartService struct {
	accounts   AccountStore
	categories CategoryStore
	logger     *zap.Logger
}

func NewChartService(accounts AccountStore, categories CategoryStore, logger *zap.Logger) *ChartService {
	return &ChartService{
		accounts:   accounts,
		categories: categories,
		logger:     logger,
	}
}

func (s *ChartService) CreateAccount(ctx context.Context, account *models.LedgerAccount) error {
	return s.accounts.Create(ctx, account)
}

func (s *ChartService) UpdateAccount(ctx context.Context, account *models.LedgerAccount) error {
	return s.accounts.Update(ctx, account)
}

func (s *ChartService) GetAccount(ctx context.Context, id uuid.UUID) (*models.LedgerAccount, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return account, nil
}

func (s *ChartService) ListAccounts(ctx context.Context, activeOnly bool) ([]*models.LedgerAccount, error) {
	return s.accounts.List(ctx, activeOnly)
}

// DeleteAccount refuses to delete an account that still has transactions
// or child accounts. Transactions can first be moved with
// ReassignTransactions.
func (s *ChartService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	txCount, err := s.accounts.CountTransactions(ctx, id)
	if err != nil {
		return err
	}
	if txCount > 0 {
		return ErrAccountHasTransactions
	}

	children, err := s.accounts.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if children > 0 {
		return ErrAccountHasChildren
	}

	return s.accounts.Delete(ctx, id)
}

// ReassignTransactions moves every transaction from one account to another,
// clearing the way for deletion.
func (s *ChartService) ReassignTransactions(ctx context.Context, fromAccountID, toAccountID uuid.UUID) error {
	if _, err := s.accounts.GetByID(ctx, toAccountID); err != nil {
		return ErrNotFound
	}

	if err := s.accounts.ReassignTransactions(ctx, fromAccountID, toAccountID); err != nil {
		return err
	}

	s.logger.Info("Reassigned transactions between accounts",
		zap.String("from", fromAccountID.String()),
		zap.String("to", toAccountID.String()),
	)
	return nil
}

func (s *ChartService) CreateCategory(ctx context.Context, category *models.Category) error {
	return s.categories.Create(ctx, category)
}

func (s *ChartService) UpdateCategory(ctx context.Context, category *models.Category) error {
	return s.categories.Update(ctx, category)
}

func (s *ChartService) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return category, nil
}

func (s *ChartService) ListCategories(ctx context.Context, activeOnly bool) ([]*models.Category, error) {
	return s.categories.List(ctx, activeOnly)
}

func (s *ChartService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.categories.Delete(ctx, id)
}
