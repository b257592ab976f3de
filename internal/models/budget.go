package models

import (
	"time"

	"clubbooks/internal/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPlan is a named plan for one fiscal year. TotalAnnualAmount is a
// cached sum of the plan's lines, recomputed on every line mutation.
type BudgetPlan struct {
	ID                uuid.UUID       `db:"id"`
	Name              string          `db:"name"`
	FiscalYear        int             `db:"fiscal_year"`
	TotalAnnualAmount decimal.Decimal `db:"total_annual_amount"`
	Notes             string          `db:"notes"`
	CreatedBy         uuid.UUID       `db:"created_by"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`

	Lines []BudgetPlanLine `db:"-"`
}

// BudgetLineWithAccount is a plan line joined with its account, as read
// for the variance report.
type BudgetLineWithAccount struct {
	BudgetPlanLine
	AccountName string             `db:"account_name"`
	AccountType ledger.AccountType `db:"account_type"`
}

// BudgetPlanLine is one account's annual allocation within a plan.
type BudgetPlanLine struct {
	ID           uuid.UUID       `db:"id"`
	PlanID       uuid.UUID       `db:"plan_id"`
	AccountID    uuid.UUID       `db:"account_id"`
	AnnualAmount decimal.Decimal `db:"annual_amount"`
	Notes        string          `db:"notes"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}
