package models

import (
	"time"

	"github.com/google/uuid"
)

type ReportType string

const (
	ReportTypeIncomeStatement ReportType = "income_statement"
	ReportTypeBalanceSheet    ReportType = "balance_sheet"
	ReportTypeCashFlow        ReportType = "cash_flow"
	ReportTypeYTD             ReportType = "ytd"
	ReportTypeBudgetVariance  ReportType = "budget_variance"
	ReportTypeAssets          ReportType = "assets"
)

// Report records one generated statement: write-once, immutable except for
// deletion. Parameters holds the JSON-serialized generation inputs.
type Report struct {
	ID          uuid.UUID  `db:"id"`
	Type        ReportType `db:"report_type"`
	Parameters  string     `db:"parameters"`
	FilePath    string     `db:"file_path"`
	GeneratedBy uuid.UUID  `db:"generated_by"`
	CreatedAt   time.Time  `db:"created_at"`
}
