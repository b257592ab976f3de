package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"clubbooks/internal/dto"
	"clubbooks/internal/ledger"
	"clubbooks/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrEmptyJournal      = errors.New("journal needs at least one line")
	ErrUnbalancedJournal = errors.New("journal debits and credits must balance")
)

// RegisterService merges transaction rows and journal-line rows into one
// chronologically sorted, debit/credit-annotated feed.
type RegisterService struct {
	transactions TransactionStore
	journals     JournalStore
	logger       *zap.Logger
}

func NewRegisterService(transactions TransactionStore, journals JournalStore, logger *zap.Logger) *RegisterService {
	return &RegisterService{
		transactions: transactions,
		journals:     journals,
		logger:       logger,
	}
}

// CreateJournal validates and stores a manual journal entry with its lines.
// Debits and credits must balance across the lines.
func (s *RegisterService) CreateJournal(ctx context.Context, req *dto.CreateJournalRequest, createdBy uuid.UUID) (*models.Journal, error) {
	if len(req.Lines) == 0 {
		return nil, ErrEmptyJournal
	}

	journalDate, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	now := time.Now()
	journal := &models.Journal{
		ID:        uuid.New(),
		Date:      journalDate,
		Memo:      req.Memo,
		Reference: req.Reference,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	debits := decimal.Zero
	credits := decimal.Zero
	lines := make([]models.JournalLine, 0, len(req.Lines))
	for _, lr := range req.Lines {
		if lr.Debit.IsNegative() || lr.Credit.IsNegative() {
			return nil, ErrInvalidAmount
		}

		line := models.JournalLine{
			ID:        uuid.New(),
			JournalID: journal.ID,
			Debit:     lr.Debit,
			Credit:    lr.Credit,
			Memo:      lr.Memo,
			CreatedAt: now,
		}
		if lr.AccountID != "" {
			id, err := uuid.Parse(lr.AccountID)
			if err != nil {
				return nil, err
			}
			line.AccountID = &id
		}
		if lr.CategoryID != "" {
			id, err := uuid.Parse(lr.CategoryID)
			if err != nil {
				return nil, err
			}
			line.CategoryID = &id
		}

		debits = debits.Add(lr.Debit)
		credits = credits.Add(lr.Credit)
		lines = append(lines, line)
	}

	if !debits.Equal(credits) {
		return nil, ErrUnbalancedJournal
	}

	if err := s.journals.CreateWithLines(ctx, journal, lines); err != nil {
		s.logger.Error("Failed to create journal", zap.Error(err))
		return nil, err
	}

	return journal, nil
}

// FetchLedgerRegister returns the merged register. A failing source is
// logged and contributes no rows; the feed itself is always returned.
//
// Sort order: entry date ascending, then the synthetic per-source sort key
// compared as a string. The string comparison is kept deliberately for
// output compatibility with the system this replaces.
func (s *RegisterService) FetchLedgerRegister(ctx context.Context, f models.RegisterFilter) []dto.RegisterEntry {
	entries := []dto.RegisterEntry{}

	txRows, err := s.transactions.ListRegisterRows(ctx, f)
	if err != nil {
		s.logger.Error("Failed to read transaction register rows, degrading to empty", zap.Error(err))
		txRows = nil
	}
	for _, row := range txRows {
		entries = append(entries, transactionEntry(row))
	}

	journalRows, err := s.journals.ListRegisterRows(ctx, f)
	if err != nil {
		s.logger.Error("Failed to read journal register rows, degrading to empty", zap.Error(err))
		journalRows = nil
	}
	for _, row := range journalRows {
		entries = append(entries, journalEntry(row))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].EntryDate != entries[j].EntryDate {
			return entries[i].EntryDate < entries[j].EntryDate
		}
		return entries[i].SortKey < entries[j].SortKey
	})

	return entries
}

// transactionEntry splits a flat transaction amount into a debit or credit
// column via the classification side table.
func transactionEntry(row models.TransactionRegisterRow) dto.RegisterEntry {
	debit := decimal.Zero
	credit := decimal.Zero
	if ledger.SideOf(row.Classification) == ledger.SideDebit {
		debit = row.Amount
	} else {
		credit = row.Amount
	}

	accountID := ""
	if row.AccountID != nil {
		accountID = row.AccountID.String()
	}

	return dto.RegisterEntry{
		EntryDate:    row.Date.Format(dateLayout),
		Reference:    row.ReferenceNumber,
		Memo:         row.Description,
		AccountID:    accountID,
		AccountName:  row.AccountName,
		CategoryName: row.CategoryName,
		DebitAmount:  debit,
		CreditAmount: credit,
		EntrySource:  "transaction",
		SortKey:      fmt.Sprintf("transaction-%s", row.ID),
	}
}

// journalEntry carries the stored debit and credit columns through without
// inference.
func journalEntry(row models.JournalLineRegisterRow) dto.RegisterEntry {
	accountID := ""
	if row.AccountID != nil {
		accountID = row.AccountID.String()
	}

	return dto.RegisterEntry{
		EntryDate:    row.Date.Format(dateLayout),
		Reference:    row.Reference,
		Memo:         row.Memo,
		AccountID:    accountID,
		AccountName:  row.AccountName,
		CategoryName: row.CategoryName,
		DebitAmount:  row.Debit,
		CreditAmount: row.Credit,
		EntrySource:  "journal",
		SortKey:      fmt.Sprintf("journal-%s-%s", row.JournalID, row.LineID),
	}
}
