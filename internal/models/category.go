package models

import (
	"time"

	"clubbooks/internal/ledger"

	"github.com/google/uuid"
)

// Category groups transactions and journal lines for statements. Type
// mirrors the account-type vocabulary; ActivityGroup is the separate
// cash-flow grouping dimension.
type Category struct {
	ID               uuid.UUID            `db:"id"`
	Name             string               `db:"name"`
	Type             ledger.AccountType   `db:"category_type"`
	ActivityGroup    ledger.ActivityGroup `db:"activity_group"`
	ParentCategoryID *uuid.UUID           `db:"parent_category_id"`
	Active           bool                 `db:"active"`
	CreatedAt        time.Time            `db:"created_at"`
	UpdatedAt        time.Time            `db:"updated_at"`
}
