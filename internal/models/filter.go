package models

import (
	"time"

	"clubbooks/internal/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionFilter narrows transaction queries. Nil fields are ignored.
type TransactionFilter struct {
	Start          *time.Time
	End            *time.Time
	Classification *ledger.Classification
	CategoryID     *uuid.UUID
	AccountID      *uuid.UUID
	VendorID       *uuid.UUID
	Search         string
	MinAmount      *decimal.Decimal
	MaxAmount      *decimal.Decimal
}

// RegisterFilter narrows the merged ledger register feed.
type RegisterFilter struct {
	Start     *time.Time
	End       *time.Time
	AccountID *uuid.UUID
	Search    string
}
