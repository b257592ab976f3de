package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Journal is a dated, memoed group of journal lines.
type Journal struct {
	ID        uuid.UUID `db:"id"`
	Date      time.Time `db:"journal_date"`
	Memo      string    `db:"memo"`
	Reference string    `db:"reference"`
	CreatedBy uuid.UUID `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// JournalLine carries explicit debit and credit columns; typically one of
// the two is zero. Its net effect is debit minus credit.
type JournalLine struct {
	ID         uuid.UUID       `db:"id"`
	JournalID  uuid.UUID       `db:"journal_id"`
	AccountID  *uuid.UUID      `db:"account_id"`
	CategoryID *uuid.UUID      `db:"category_id"`
	Debit      decimal.Decimal `db:"debit"`
	Credit     decimal.Decimal `db:"credit"`
	Memo       string          `db:"memo"`
	CreatedAt  time.Time       `db:"created_at"`
}

// Net returns the line's net effect.
func (l JournalLine) Net() decimal.Decimal {
	return l.Debit.Sub(l.Credit)
}
