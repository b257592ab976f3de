package models

import (
	"time"

	"clubbooks/internal/ledger"

	"github.com/google/uuid"
)

// LedgerAccount is a chart-of-accounts node. Accounts form a tree via
// ParentAccountID; AccountNumber is unique across active and inactive
// accounts.
type LedgerAccount struct {
	ID              uuid.UUID          `db:"id"`
	AccountNumber   string             `db:"account_number"`
	Name            string             `db:"name"`
	Type            ledger.AccountType `db:"account_type"`
	ParentAccountID *uuid.UUID         `db:"parent_account_id"`
	Description     string             `db:"description"`
	Active          bool               `db:"active"`
	CreatedAt       time.Time          `db:"created_at"`
	UpdatedAt       time.Time          `db:"updated_at"`
}
