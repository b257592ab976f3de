package dto

import "github.com/shopspring/decimal"

type BudgetLineVariance struct {
	AccountID    string          `json:"account_id"`
	AccountName  string          `json:"account_name"`
	AccountType  string          `json:"account_type"`
	BudgetAmount decimal.Decimal `json:"budget_amount"`
	ActualAmount decimal.Decimal `json:"actual_amount"`
	Variance     decimal.Decimal `json:"variance"`
	Percentage   decimal.Decimal `json:"percentage"`
	Status       string          `json:"status"`
}

type BudgetVarianceTotals struct {
	BudgetAmount decimal.Decimal `json:"budget_amount"`
	ActualAmount decimal.Decimal `json:"actual_amount"`
	Variance     decimal.Decimal `json:"variance"`
}

type BudgetVarianceReport struct {
	FiscalYear int                  `json:"fiscal_year"`
	PlanName   string               `json:"plan_name"`
	Lines      []BudgetLineVariance `json:"lines"`
	Totals     BudgetVarianceTotals `json:"totals"`
	Error      string               `json:"error,omitempty"`
}

type UpsertBudgetLineRequest struct {
	AccountID    string          `json:"account_id"`
	AnnualAmount decimal.Decimal `json:"annual_amount"`
	Notes        string          `json:"notes,omitempty"`
}

type CreateBudgetPlanRequest struct {
	Name       string `json:"name"`
	FiscalYear int    `json:"fiscal_year"`
	Notes      string `json:"notes,omitempty"`
}
