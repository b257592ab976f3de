package service

import (
	"context"
	"testing"
	"time"

	"clubbooks/internal/dto"
	"clubbooks/internal/ledger"
	"clubbooks/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRegisterFixture() (*fakeTransactionStore, *fakeJournalStore, *RegisterService) {
	txStore := &fakeTransactionStore{}
	journals := &fakeJournalStore{}
	return txStore, journals, NewRegisterService(txStore, journals, zap.NewNop())
}

func TestFetchLedgerRegisterSides(t *testing.T) {
	cases := []struct {
		classification ledger.Classification
		side           ledger.Side
	}{
		{ledger.ClassificationExpense, ledger.SideDebit},
		{ledger.ClassificationAsset, ledger.SideDebit},
		{ledger.ClassificationIncome, ledger.SideCredit},
		{ledger.ClassificationTransfer, ledger.SideCredit},
	}

	for _, tc := range cases {
		t.Run(string(tc.classification), func(t *testing.T) {
			txStore, _, svc := newRegisterFixture()
			txStore.transactions = []models.Transaction{
				tx(tc.classification, "75.00", date(2025, time.April, 1), nil),
			}

			entries := svc.FetchLedgerRegister(context.Background(), models.RegisterFilter{})

			require.Len(t, entries, 1)
			if tc.side == ledger.SideDebit {
				assert.True(t, entries[0].DebitAmount.Equal(amount("75.00")))
				assert.True(t, entries[0].CreditAmount.IsZero())
			} else {
				assert.True(t, entries[0].DebitAmount.IsZero())
				assert.True(t, entries[0].CreditAmount.Equal(amount("75.00")))
			}
		})
	}
}

func TestFetchLedgerRegisterJournalPassthrough(t *testing.T) {
	_, journals, svc := newRegisterFixture()
	journals.rows = []models.JournalLineRegisterRow{{
		LineID:    uuid.New(),
		JournalID: uuid.New(),
		Date:      date(2025, time.April, 1),
		Reference: "JRN-7",
		Memo:      "Loan repayment",
		Debit:     amount("120.00"),
		Credit:    amount("0"),
	}}

	entries := svc.FetchLedgerRegister(context.Background(), models.RegisterFilter{})

	require.Len(t, entries, 1)
	assert.Equal(t, "journal", entries[0].EntrySource)
	assert.Equal(t, "JRN-7", entries[0].Reference)
	assert.True(t, entries[0].DebitAmount.Equal(amount("120.00")))
	assert.True(t, entries[0].CreditAmount.IsZero())
}

func TestFetchLedgerRegisterOrdering(t *testing.T) {
	t.Run("chronological across sources", func(t *testing.T) {
		txStore, journals, svc := newRegisterFixture()
		txStore.transactions = []models.Transaction{
			tx(ledger.ClassificationExpense, "10.00", date(2025, time.March, 5), nil),
			tx(ledger.ClassificationIncome, "20.00", date(2025, time.January, 10), nil),
		}
		journals.rows = []models.JournalLineRegisterRow{{
			LineID:    uuid.New(),
			JournalID: uuid.New(),
			Date:      date(2025, time.February, 1),
		}}

		entries := svc.FetchLedgerRegister(context.Background(), models.RegisterFilter{})

		require.Len(t, entries, 3)
		assert.Equal(t, "2025-01-10", entries[0].EntryDate)
		assert.Equal(t, "2025-02-01", entries[1].EntryDate)
		assert.Equal(t, "2025-03-05", entries[2].EntryDate)
	})

	t.Run("same-day ties break on sort key", func(t *testing.T) {
		txStore, journals, svc := newRegisterFixture()
		day := date(2025, time.March, 5)
		txStore.transactions = []models.Transaction{
			tx(ledger.ClassificationExpense, "10.00", day, nil),
		}
		journals.rows = []models.JournalLineRegisterRow{{
			LineID:    uuid.New(),
			JournalID: uuid.New(),
			Date:      day,
		}}

		entries := svc.FetchLedgerRegister(context.Background(), models.RegisterFilter{})

		require.Len(t, entries, 2)
		// "journal-..." sorts before "transaction-..." lexicographically.
		assert.Equal(t, "journal", entries[0].EntrySource)
		assert.Equal(t, "transaction", entries[1].EntrySource)
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		txStore, journals, svc := newRegisterFixture()
		day := date(2025, time.March, 5)
		for i := 0; i < 5; i++ {
			txStore.transactions = append(txStore.transactions,
				tx(ledger.ClassificationExpense, "10.00", day, nil))
			journals.rows = append(journals.rows, models.JournalLineRegisterRow{
				LineID:    uuid.New(),
				JournalID: uuid.New(),
				Date:      day,
			})
		}

		first := svc.FetchLedgerRegister(context.Background(), models.RegisterFilter{})
		second := svc.FetchLedgerRegister(context.Background(), models.RegisterFilter{})

		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, first[i].SortKey, second[i].SortKey)
		}
	})
}

func TestCreateJournal(t *testing.T) {
	userID := uuid.New()

	t.Run("balanced entry is stored", func(t *testing.T) {
		_, _, svc := newRegisterFixture()

		journal, err := svc.CreateJournal(context.Background(), &dto.CreateJournalRequest{
			Date: "2025-04-01",
			Memo: "Loan drawdown",
			Lines: []dto.JournalLineRequest{
				{Debit: amount("500.00")},
				{Credit: amount("500.00")},
			},
		}, userID)

		require.NoError(t, err)
		assert.Equal(t, userID, journal.CreatedBy)
		assert.Equal(t, "Loan drawdown", journal.Memo)
	})

	t.Run("unbalanced entry is rejected", func(t *testing.T) {
		_, _, svc := newRegisterFixture()

		_, err := svc.CreateJournal(context.Background(), &dto.CreateJournalRequest{
			Date: "2025-04-01",
			Lines: []dto.JournalLineRequest{
				{Debit: amount("500.00")},
				{Credit: amount("400.00")},
			},
		}, userID)

		assert.ErrorIs(t, err, ErrUnbalancedJournal)
	})

	t.Run("empty entry is rejected", func(t *testing.T) {
		_, _, svc := newRegisterFixture()

		_, err := svc.CreateJournal(context.Background(), &dto.CreateJournalRequest{Date: "2025-04-01"}, userID)

		assert.ErrorIs(t, err, ErrEmptyJournal)
	})

	t.Run("negative line amount is rejected", func(t *testing.T) {
		_, _, svc := newRegisterFixture()

		_, err := svc.CreateJournal(context.Background(), &dto.CreateJournalRequest{
			Date: "2025-04-01",
			Lines: []dto.JournalLineRequest{
				{Debit: amount("-10.00")},
				{Credit: amount("-10.00")},
			},
		}, userID)

		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestFetchLedgerRegisterSourceFailure(t *testing.T) {
	t.Run("failing journal source still yields transactions", func(t *testing.T) {
		txStore, journals, svc := newRegisterFixture()
		txStore.transactions = []models.Transaction{
			tx(ledger.ClassificationIncome, "20.00", date(2025, time.January, 10), nil),
		}
		journals.err = errStoreDown

		entries := svc.FetchLedgerRegister(context.Background(), models.RegisterFilter{})

		require.Len(t, entries, 1)
		assert.Equal(t, "transaction", entries[0].EntrySource)
	})

	t.Run("both sources failing yields an empty feed", func(t *testing.T) {
		txStore, journals, svc := newRegisterFixture()
		txStore.err = errStoreDown
		journals.err = errStoreDown

		entries := svc.FetchLedgerRegister(context.Background(), models.RegisterFilter{})

		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
}
