package dto

import "github.com/shopspring/decimal"

// PeriodRef identifies the window a statement covers. Days is the inclusive
// day count between start and end.
type PeriodRef struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Label     string `json:"display_label"`
	Days      int    `json:"days"`
}

type CategoryLine struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

type StatementSection struct {
	Categories []CategoryLine  `json:"categories"`
	Total      decimal.Decimal `json:"total"`
}

type IncomeStatement struct {
	Period    PeriodRef        `json:"period"`
	Income    StatementSection `json:"income"`
	Expenses  StatementSection `json:"expenses"`
	NetIncome decimal.Decimal  `json:"net_income"`
	Error     string           `json:"error,omitempty"`
}

type BalanceSheetAssets struct {
	Cash           decimal.Decimal `json:"cash"`
	PhysicalAssets decimal.Decimal `json:"physical_assets"`
	Total          decimal.Decimal `json:"total"`
}

type BalanceSheet struct {
	Date        string             `json:"date"`
	Assets      BalanceSheetAssets `json:"assets"`
	Liabilities decimal.Decimal    `json:"liabilities"`
	Equity      decimal.Decimal    `json:"equity"`
	Error       string             `json:"error,omitempty"`
}

// ActivityFlow is one cash-flow activity group's income, expense and net.
type ActivityFlow struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

type CashFlowStatement struct {
	Period           PeriodRef       `json:"period"`
	BeginningBalance decimal.Decimal `json:"beginning_balance"`
	Operating        ActivityFlow    `json:"operating"`
	Investing        ActivityFlow    `json:"investing"`
	Financing        ActivityFlow    `json:"financing"`
	EndingBalance    decimal.Decimal `json:"ending_balance"`
	Error            string          `json:"error,omitempty"`
}

type MonthRollup struct {
	Month    int             `json:"month"`
	Label    string          `json:"label"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

type YTDTotals struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

type YTDStatement struct {
	Year   int           `json:"year"`
	Months []MonthRollup `json:"months"`
	Totals YTDTotals     `json:"totals"`
}
