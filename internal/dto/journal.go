package dto

import "github.com/shopspring/decimal"

type JournalLineRequest struct {
	AccountID  string          `json:"account_id,omitempty"`
	CategoryID string          `json:"category_id,omitempty"`
	Debit      decimal.Decimal `json:"debit"`
	Credit     decimal.Decimal `json:"credit"`
	Memo       string          `json:"memo,omitempty"`
}

type CreateJournalRequest struct {
	Date      string               `json:"date"`
	Memo      string               `json:"memo"`
	Reference string               `json:"reference,omitempty"`
	Lines     []JournalLineRequest `json:"lines"`
}
