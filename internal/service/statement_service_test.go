package service

import (
	"context"
	"testing"
	"time"

	"clubbooks/internal/models"
	"clubbooks/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStatementFixture() (*fakeTransactionStore, *fakeAssetStore, *fakeJournalStore, *StatementService) {
	txStore, agg := newAggregationFixture()
	assets := &fakeAssetStore{}
	journals := &fakeJournalStore{}

	svc := NewStatementService(agg, assets, journals, config.ReportConfig{
		DayCountBasis:    365.25,
		InflationRate:    3.0,
		TopCategoryLimit: 5,
	}, zap.NewNop())
	svc.now = func() time.Time { return date(2025, time.June, 15) }

	return txStore, assets, journals, svc
}

func TestGenerateIncomeStatement(t *testing.T) {
	t.Run("january scenario", func(t *testing.T) {
		_, _, _, svc := newStatementFixture()

		stmt := svc.GenerateIncomeStatement(context.Background(), date(2025, time.January, 1), date(2025, time.January, 31), "January 2025")

		assert.Equal(t, "2025-01-01", stmt.Period.StartDate)
		assert.Equal(t, "2025-01-31", stmt.Period.EndDate)
		assert.Equal(t, 31, stmt.Period.Days)
		assert.True(t, stmt.Income.Total.Equal(amount("100.00")), "income = %s", stmt.Income.Total)
		assert.True(t, stmt.Expenses.Total.Equal(amount("40.00")), "expenses = %s", stmt.Expenses.Total)
		assert.True(t, stmt.NetIncome.Equal(amount("60.00")), "net = %s", stmt.NetIncome)

		require.Len(t, stmt.Income.Categories, 1)
		assert.Equal(t, "Membership Dues", stmt.Income.Categories[0].Name)
		require.Len(t, stmt.Expenses.Categories, 1)
		assert.Equal(t, "Supplies", stmt.Expenses.Categories[0].Name)
	})

	t.Run("section totals include uncategorized transactions", func(t *testing.T) {
		txStore, _, _, svc := newStatementFixture()
		txStore.transactions = append(txStore.transactions,
			tx("income", "25.00", date(2025, time.January, 10), nil))

		stmt := svc.GenerateIncomeStatement(context.Background(), date(2025, time.January, 1), date(2025, time.January, 31), "")

		assert.True(t, stmt.Income.Total.Equal(amount("125.00")), "income = %s", stmt.Income.Total)
		// The uncategorized amount has no category line to land in.
		require.Len(t, stmt.Income.Categories, 1)
		assert.True(t, stmt.Income.Categories[0].Total.Equal(amount("100.00")))
	})

	t.Run("inverted range is swapped", func(t *testing.T) {
		_, _, _, svc := newStatementFixture()

		stmt := svc.GenerateIncomeStatement(context.Background(), date(2025, time.January, 31), date(2025, time.January, 1), "")

		assert.Equal(t, "2025-01-01", stmt.Period.StartDate)
		assert.Equal(t, "2025-01-31", stmt.Period.EndDate)
		assert.True(t, stmt.Income.Total.Equal(amount("100.00")))
	})

	t.Run("empty period renders zeros", func(t *testing.T) {
		_, _, _, svc := newStatementFixture()

		stmt := svc.GenerateIncomeStatement(context.Background(), date(2024, time.July, 1), date(2024, time.July, 31), "")

		assert.True(t, stmt.Income.Total.IsZero())
		assert.True(t, stmt.Expenses.Total.IsZero())
		assert.True(t, stmt.NetIncome.IsZero())
		assert.Empty(t, stmt.Income.Categories)
	})

	t.Run("store failure renders zeros", func(t *testing.T) {
		txStore, _, _, svc := newStatementFixture()
		txStore.err = errStoreDown

		stmt := svc.GenerateIncomeStatement(context.Background(), date(2025, time.January, 1), date(2025, time.January, 31), "")

		assert.True(t, stmt.Income.Total.IsZero())
		assert.True(t, stmt.NetIncome.IsZero())
		assert.Empty(t, stmt.Income.Categories)
	})
}

func TestGenerateBalanceSheet(t *testing.T) {
	t.Run("values assets at original cost", func(t *testing.T) {
		_, assets, journals, svc := newStatementFixture()
		assets.assets = []*models.Asset{{
			ID:               uuid.New(),
			Name:             "Projector",
			Value:            amount("1000.00"),
			AcquisitionDate:  date(2022, time.June, 15),
			DepreciationRate: amount("10"),
		}}
		journals.liability = amount("200.00")

		sheet := svc.GenerateBalanceSheet(context.Background(), nil)

		assert.Equal(t, "2025-06-15", sheet.Date)
		assert.True(t, sheet.Assets.Cash.Equal(amount("560.00")), "cash = %s", sheet.Assets.Cash)
		// Original value, not the depreciated 700.00.
		assert.True(t, sheet.Assets.PhysicalAssets.Equal(amount("1000.00")))
		assert.True(t, sheet.Assets.Total.Equal(amount("1560.00")))
		assert.True(t, sheet.Liabilities.Equal(amount("200.00")))
		assert.True(t, sheet.Equity.Equal(amount("1360.00")))
	})

	t.Run("as-of date excludes later activity", func(t *testing.T) {
		_, assets, _, svc := newStatementFixture()
		assets.assets = []*models.Asset{{
			ID:              uuid.New(),
			Value:           amount("300.00"),
			AcquisitionDate: date(2025, time.February, 1),
		}}
		asOf := date(2025, time.January, 31)

		sheet := svc.GenerateBalanceSheet(context.Background(), &asOf)

		assert.True(t, sheet.Assets.Cash.Equal(amount("60.00")), "cash = %s", sheet.Assets.Cash)
		assert.True(t, sheet.Assets.PhysicalAssets.IsZero())
	})

	t.Run("degrades to zero on store failure", func(t *testing.T) {
		txStore, assets, journals, svc := newStatementFixture()
		txStore.err = errStoreDown
		assets.err = errStoreDown
		journals.err = errStoreDown

		sheet := svc.GenerateBalanceSheet(context.Background(), nil)

		assert.True(t, sheet.Assets.Total.IsZero())
		assert.True(t, sheet.Liabilities.IsZero())
		assert.True(t, sheet.Equity.IsZero())
	})
}

func TestGenerateCashFlowStatement(t *testing.T) {
	t.Run("ending balance reconciles with beginning plus nets", func(t *testing.T) {
		_, _, _, svc := newStatementFixture()

		stmt := svc.GenerateCashFlowStatement(context.Background(), date(2025, time.March, 1), date(2025, time.March, 31))

		// January nets +60.00 before the window opens.
		assert.True(t, stmt.BeginningBalance.Equal(amount("60.00")), "beginning = %s", stmt.BeginningBalance)
		assert.True(t, stmt.Operating.Net.Equal(amount("500.00")), "operating = %s", stmt.Operating.Net)
		assert.True(t, stmt.Investing.Net.IsZero())
		assert.True(t, stmt.Financing.Net.IsZero())
		assert.True(t, stmt.EndingBalance.Equal(amount("560.00")), "ending = %s", stmt.EndingBalance)
	})

	t.Run("beginning balance excludes the start date itself", func(t *testing.T) {
		_, _, _, svc := newStatementFixture()

		stmt := svc.GenerateCashFlowStatement(context.Background(), date(2025, time.January, 5), date(2025, time.January, 31))

		assert.True(t, stmt.BeginningBalance.IsZero(), "beginning = %s", stmt.BeginningBalance)
	})
}

func TestGenerateYTDStatement(t *testing.T) {
	t.Run("stops at the current month", func(t *testing.T) {
		_, _, _, svc := newStatementFixture()

		stmt := svc.GenerateYTDStatement(context.Background(), 2025)

		// now is June 15th, so January through June.
		require.Len(t, stmt.Months, 6)
		assert.Equal(t, 1, stmt.Months[0].Month)
		assert.Equal(t, "January", stmt.Months[0].Label)
		assert.Equal(t, 6, stmt.Months[5].Month)
	})

	t.Run("totals accumulate the monthly rollups", func(t *testing.T) {
		_, _, _, svc := newStatementFixture()

		stmt := svc.GenerateYTDStatement(context.Background(), 2025)

		assert.True(t, stmt.Months[0].Net.Equal(amount("60.00")))
		assert.True(t, stmt.Months[2].Income.Equal(amount("500.00")))
		assert.True(t, stmt.Totals.Income.Equal(amount("600.00")), "income = %s", stmt.Totals.Income)
		assert.True(t, stmt.Totals.Expenses.Equal(amount("40.00")))
		assert.True(t, stmt.Totals.Net.Equal(amount("560.00")))
	})

	t.Run("past year covers all twelve months", func(t *testing.T) {
		_, _, _, svc := newStatementFixture()

		stmt := svc.GenerateYTDStatement(context.Background(), 2024)

		assert.Len(t, stmt.Months, 12)
		assert.True(t, stmt.Totals.Net.IsZero())
	})
}

func TestDashboardSummary(t *testing.T) {
	txStore, _, _, svc := newStatementFixture()
	var suppliesID uuid.UUID
	for id, c := range txStore.categories {
		if c.name == "Supplies" {
			suppliesID = id
		}
	}
	txStore.transactions = append(txStore.transactions,
		tx("expense", "15.00", date(2025, time.June, 2), &suppliesID))

	summary := svc.DashboardSummary(context.Background())

	assert.Equal(t, "2025-06-01", summary.Period.StartDate)
	assert.Equal(t, "2025-06-15", summary.Period.EndDate)
	assert.True(t, summary.Totals.Expenses.Equal(amount("15.00")))
	assert.True(t, summary.YearToDate.Income.Equal(amount("600.00")))
	assert.True(t, summary.CashBalance.Equal(amount("545.00")), "cash = %s", summary.CashBalance)
	require.Len(t, summary.TopExpenses, 1)
	assert.Equal(t, "Supplies", summary.TopExpenses[0].Name)
}
