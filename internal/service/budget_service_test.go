package service

import (
	"context"
	"testing"
	"time"

	"clubbooks/internal/ledger"
	"clubbooks/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func budgetLine(planID uuid.UUID, accountName string, accountType ledger.AccountType, annual string) models.BudgetLineWithAccount {
	return models.BudgetLineWithAccount{
		BudgetPlanLine: models.BudgetPlanLine{
			ID:           uuid.New(),
			PlanID:       planID,
			AccountID:    uuid.New(),
			AnnualAmount: amount(annual),
		},
		AccountName: accountName,
		AccountType: accountType,
	}
}

func newBudgetFixture() (*fakeTransactionStore, *fakeBudgetStore, *BudgetService) {
	txStore := &fakeTransactionStore{}
	budgets := &fakeBudgetStore{
		plan: &models.BudgetPlan{
			ID:         uuid.New(),
			Name:       "2025 Operating Budget",
			FiscalYear: 2025,
		},
	}
	agg := NewAggregationService(txStore, zap.NewNop())
	return txStore, budgets, NewBudgetService(budgets, agg, zap.NewNop())
}

func accountTx(c ledger.Classification, a string, day time.Time, accountID uuid.UUID) models.Transaction {
	transaction := tx(c, a, day, nil)
	transaction.AccountID = &accountID
	return transaction
}

func TestVarianceReport(t *testing.T) {
	t.Run("compares actuals against plan lines", func(t *testing.T) {
		txStore, budgets, svc := newBudgetFixture()
		dues := budgetLine(budgets.plan.ID, "Membership Dues", ledger.AccountTypeIncome, "1000.00")
		supplies := budgetLine(budgets.plan.ID, "Supplies", ledger.AccountTypeExpense, "500.00")
		budgets.lines = []models.BudgetLineWithAccount{dues, supplies}

		txStore.transactions = []models.Transaction{
			accountTx(ledger.ClassificationIncome, "950.00", date(2025, time.April, 1), dues.AccountID),
			accountTx(ledger.ClassificationExpense, "600.00", date(2025, time.May, 1), supplies.AccountID),
		}

		report := svc.VarianceReport(context.Background(), 2025)

		assert.Empty(t, report.Error)
		assert.Equal(t, "2025 Operating Budget", report.PlanName)
		require.Len(t, report.Lines, 2)

		assert.True(t, report.Lines[0].ActualAmount.Equal(amount("950.00")))
		assert.True(t, report.Lines[0].Percentage.Equal(amount("95")), "pct = %s", report.Lines[0].Percentage)
		assert.Equal(t, StatusOnTrack, report.Lines[0].Status)

		assert.True(t, report.Lines[1].Variance.Equal(amount("100.00")))
		assert.True(t, report.Lines[1].Percentage.Equal(amount("120")), "pct = %s", report.Lines[1].Percentage)
		assert.Equal(t, StatusOverBudget, report.Lines[1].Status)

		assert.True(t, report.Totals.BudgetAmount.Equal(amount("1500.00")))
		assert.True(t, report.Totals.ActualAmount.Equal(amount("1550.00")))
		assert.True(t, report.Totals.Variance.Equal(amount("50.00")))
	})

	t.Run("missing plan sets the error field", func(t *testing.T) {
		_, _, svc := newBudgetFixture()

		report := svc.VarianceReport(context.Background(), 1999)

		assert.NotEmpty(t, report.Error)
		assert.Empty(t, report.Lines)
	})

	t.Run("line read failure degrades to empty", func(t *testing.T) {
		_, budgets, svc := newBudgetFixture()
		budgets.linesErr = errStoreDown

		report := svc.VarianceReport(context.Background(), 2025)

		assert.NotEmpty(t, report.Error)
		assert.Empty(t, report.Lines)
	})

	t.Run("zero budget yields exactly zero percentage", func(t *testing.T) {
		txStore, budgets, svc := newBudgetFixture()
		line := budgetLine(budgets.plan.ID, "Contingency", ledger.AccountTypeExpense, "0")
		budgets.lines = []models.BudgetLineWithAccount{line}
		txStore.transactions = []models.Transaction{
			accountTx(ledger.ClassificationExpense, "250.00", date(2025, time.March, 1), line.AccountID),
		}

		report := svc.VarianceReport(context.Background(), 2025)

		require.Len(t, report.Lines, 1)
		assert.True(t, report.Lines[0].Percentage.Equal(decimal.Zero))
		assert.True(t, report.Lines[0].Variance.Equal(amount("250.00")))
	})
}

func TestVarianceForAccount(t *testing.T) {
	t.Run("account without a plan line gets zero budget", func(t *testing.T) {
		_, _, svc := newBudgetFixture()

		variance, err := svc.VarianceForAccount(context.Background(), uuid.New(), 2025)

		require.NoError(t, err)
		assert.True(t, variance.BudgetAmount.IsZero())
		assert.True(t, variance.Percentage.IsZero())
	})

	t.Run("missing plan returns ErrPlanNotFound", func(t *testing.T) {
		_, _, svc := newBudgetFixture()

		_, err := svc.VarianceForAccount(context.Background(), uuid.New(), 1999)

		assert.ErrorIs(t, err, ErrPlanNotFound)
	})
}

func TestIncomeStatus(t *testing.T) {
	cases := []struct {
		pct    string
		status string
	}{
		{"120", StatusOverBudget},
		{"100", StatusOverBudget},
		{"99.99", StatusOnTrack},
		{"90", StatusOnTrack},
		{"89.99", StatusUnderBudget},
		{"50", StatusUnderBudget},
		{"49.99", StatusSignificantlyUnder},
		{"0", StatusSignificantlyUnder},
	}

	for _, tc := range cases {
		t.Run(tc.pct, func(t *testing.T) {
			assert.Equal(t, tc.status, incomeStatus(amount(tc.pct)))
		})
	}
}

func TestExpenseStatus(t *testing.T) {
	cases := []struct {
		pct    string
		status string
	}{
		{"120", StatusOverBudget},
		{"110.01", StatusOverBudget},
		{"110", StatusSlightlyOver},
		{"100.01", StatusSlightlyOver},
		{"100", StatusOnTrack},
		{"90", StatusOnTrack},
		{"89.99", StatusUnderBudget},
		{"0", StatusUnderBudget},
	}

	for _, tc := range cases {
		t.Run(tc.pct, func(t *testing.T) {
			assert.Equal(t, tc.status, expenseStatus(amount(tc.pct)))
		})
	}
}
