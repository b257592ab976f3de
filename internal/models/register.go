package models

import (
	"time"

	"clubbooks/internal/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRegisterRow is a transaction joined with its account and
// category names, as read for the ledger register.
type TransactionRegisterRow struct {
	ID              uuid.UUID             `db:"id"`
	Date            time.Time             `db:"transaction_date"`
	ReferenceNumber string                `db:"reference_number"`
	Description     string                `db:"description"`
	Classification  ledger.Classification `db:"classification"`
	Amount          decimal.Decimal       `db:"amount"`
	AccountID       *uuid.UUID            `db:"account_id"`
	AccountName     string                `db:"account_name"`
	CategoryName    string                `db:"category_name"`
}

// JournalLineRegisterRow is a journal line joined with its parent journal
// and the account and category names, as read for the ledger register.
type JournalLineRegisterRow struct {
	LineID       uuid.UUID       `db:"line_id"`
	JournalID    uuid.UUID       `db:"journal_id"`
	Date         time.Time       `db:"journal_date"`
	Reference    string          `db:"reference"`
	Memo         string          `db:"memo"`
	Debit        decimal.Decimal `db:"debit"`
	Credit       decimal.Decimal `db:"credit"`
	AccountID    *uuid.UUID      `db:"account_id"`
	AccountName  string          `db:"account_name"`
	CategoryName string          `db:"category_name"`
}
