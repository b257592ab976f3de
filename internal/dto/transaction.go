package dto

import "github.com/shopspring/decimal"

type CreateTransactionRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	Date            string          `json:"date"`
	Classification  string          `json:"classification"`
	CategoryID      string          `json:"category_id,omitempty"`
	AccountID       string          `json:"account_id,omitempty"`
	VendorID        string          `json:"vendor_id,omitempty"`
	Description     string          `json:"description"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

type TransactionResponse struct {
	ID              string          `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	Date            string          `json:"date"`
	Classification  string          `json:"classification"`
	CategoryID      string          `json:"category_id,omitempty"`
	AccountID       string          `json:"account_id,omitempty"`
	VendorID        string          `json:"vendor_id,omitempty"`
	Description     string          `json:"description"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       string          `json:"created_at"`
}

// PeriodTotals is the dashboard aggregate for one period.
type PeriodTotals struct {
	Income           decimal.Decimal `json:"income"`
	Expenses         decimal.Decimal `json:"expenses"`
	NetBalance       decimal.Decimal `json:"net_balance"`
	TransactionCount int64           `json:"transaction_count"`
}

type DashboardSummary struct {
	Period        PeriodRef       `json:"period"`
	Totals        PeriodTotals    `json:"totals"`
	YearToDate    PeriodTotals    `json:"year_to_date"`
	CashBalance   decimal.Decimal `json:"cash_balance"`
	TopExpenses   []CategoryLine  `json:"top_expenses"`
}
