package dto

import "github.com/shopspring/decimal"

// RegisterEntry is one normalized row of the merged ledger register.
// SortKey is the synthetic per-source tie-break key; it is compared as a
// string when entries share a date.
type RegisterEntry struct {
	EntryDate    string          `json:"entry_date"`
	Reference    string          `json:"reference"`
	Memo         string          `json:"memo"`
	AccountID    string          `json:"account_id,omitempty"`
	AccountName  string          `json:"account_name"`
	CategoryName string          `json:"category_name"`
	DebitAmount  decimal.Decimal `json:"debit_amount"`
	CreditAmount decimal.Decimal `json:"credit_amount"`
	EntrySource  string          `json:"entry_source"`
	SortKey      string          `json:"-"`
}
