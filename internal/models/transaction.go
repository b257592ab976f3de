package models

import (
	"time"

	"clubbooks/internal/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a single flat financial event. The amount is always stored
// positive; direction is inferred from Classification at aggregation time.
type Transaction struct {
	ID              uuid.UUID             `db:"id"`
	Amount          decimal.Decimal       `db:"amount"`
	Date            time.Time             `db:"transaction_date"`
	Classification  ledger.Classification `db:"classification"`
	CategoryID      *uuid.UUID            `db:"category_id"`
	AccountID       *uuid.UUID            `db:"account_id"`
	VendorID        *uuid.UUID            `db:"vendor_id"`
	Description     string                `db:"description"`
	ReferenceNumber string                `db:"reference_number"`
	Notes           string                `db:"notes"`
	CreatedBy       uuid.UUID             `db:"created_by"`
	UpdatedBy       *uuid.UUID            `db:"updated_by"`
	CreatedAt       time.Time             `db:"created_at"`
	UpdatedAt       time.Time             `db:"updated_at"`
}

// CategoryTotal is an aggregation row: a category with its summed amount.
type CategoryTotal struct {
	CategoryID uuid.UUID       `db:"category_id"`
	Name       string          `db:"name"`
	Total      decimal.Decimal `db:"total"`
}
