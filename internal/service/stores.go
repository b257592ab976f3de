package service

import (
	"context"
	"time"

	"clubbooks/internal/ledger"
	"clubbooks/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store interfaces consumed by the service layer. The pgx repositories in
// internal/repository are the production implementations; tests substitute
// in-memory fakes. Every store handle is constructor-injected.

type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	Update(ctx context.Context, tx *models.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	List(ctx context.Context, f models.TransactionFilter, limit, offset uint64) ([]*models.Transaction, error)

	SumAmount(ctx context.Context, f models.TransactionFilter) (decimal.Decimal, error)
	Count(ctx context.Context, f models.TransactionFilter) (int64, error)
	SumByCategory(ctx context.Context, c ledger.Classification, start, end time.Time, limit uint64) ([]models.CategoryTotal, error)
	SumByActivityGroup(ctx context.Context, c ledger.Classification, g ledger.ActivityGroup, start, end time.Time) (decimal.Decimal, error)
	ListRegisterRows(ctx context.Context, f models.RegisterFilter) ([]models.TransactionRegisterRow, error)
}

type JournalStore interface {
	CreateWithLines(ctx context.Context, journal *models.Journal, lines []models.JournalLine) error
	ListRegisterRows(ctx context.Context, f models.RegisterFilter) ([]models.JournalLineRegisterRow, error)
	SumLiabilityBalance(ctx context.Context, asOf time.Time) (decimal.Decimal, error)
}

type AssetStore interface {
	Create(ctx context.Context, asset *models.Asset) error
	Update(ctx context.Context, asset *models.Asset) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Asset, error)
	List(ctx context.Context) ([]*models.Asset, error)
	SumOriginalValue(ctx context.Context, asOf time.Time) (decimal.Decimal, error)
}

type BudgetStore interface {
	CreatePlan(ctx context.Context, plan *models.BudgetPlan) error
	GetPlanByYear(ctx context.Context, fiscalYear int) (*models.BudgetPlan, error)
	ListLinesWithAccounts(ctx context.Context, planID uuid.UUID) ([]models.BudgetLineWithAccount, error)
	UpsertLine(ctx context.Context, line *models.BudgetPlanLine) error
	DeleteLine(ctx context.Context, id uuid.UUID) error
}

type AccountStore interface {
	Create(ctx context.Context, account *models.LedgerAccount) error
	Update(ctx context.Context, account *models.LedgerAccount) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.LedgerAccount, error)
	List(ctx context.Context, activeOnly bool) ([]*models.LedgerAccount, error)
	CountTransactions(ctx context.Context, accountID uuid.UUID) (int64, error)
	CountChildren(ctx context.Context, accountID uuid.UUID) (int64, error)
	ReassignTransactions(ctx context.Context, fromAccountID, toAccountID uuid.UUID) error
}

type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Category, error)
}

type ReportStore interface {
	Create(ctx context.Context, report *models.Report) error
	List(ctx context.Context, limit, offset uint64) ([]*models.Report, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
