package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"clubbooks/internal/dto"
	"clubbooks/internal/ledger"
	"clubbooks/internal/models"
	"clubbooks/pkg/config"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// StatementService composes aggregation results into the named financial
// statements. Like the aggregation engine it never returns a storage error:
// a failed read produces a zeroed statement with the Error field set.
type StatementService struct {
	agg      *AggregationService
	assets   AssetStore
	journals JournalStore
	cfg      config.ReportConfig
	logger   *zap.Logger
	now      func() time.Time
}

func NewStatementService(
	agg *AggregationService,
	assets AssetStore,
	journals JournalStore,
	cfg config.ReportConfig,
	logger *zap.Logger,
) *StatementService {
	return &StatementService{
		agg:      agg,
		assets:   assets,
		journals: journals,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// GenerateIncomeStatement builds the income statement for [start, end].
// An inverted range is corrected in place by swapping the bounds.
func (s *StatementService) GenerateIncomeStatement(ctx context.Context, start, end time.Time, label string) dto.IncomeStatement {
	if end.Before(start) {
		start, end = end, start
	}
	if label == "" {
		label = fmt.Sprintf("%s to %s", start.Format(dateLayout), end.Format(dateLayout))
	}

	income := s.buildSection(ctx, ledger.ClassificationIncome, start, end)
	expenses := s.buildSection(ctx, ledger.ClassificationExpense, start, end)

	return dto.IncomeStatement{
		Period:    periodRef(start, end, label),
		Income:    income,
		Expenses:  expenses,
		NetIncome: income.Total.Sub(expenses.Total),
	}
}

// buildSection groups one classification by category, ordered by category
// name ascending. The section total is the full classification sum, so
// uncategorized transactions still count toward the total.
func (s *StatementService) buildSection(ctx context.Context, c ledger.Classification, start, end time.Time) dto.StatementSection {
	totals := s.agg.ByCategory(ctx, c, start, end, 0)
	sort.Slice(totals, func(i, j int) bool { return totals[i].Name < totals[j].Name })

	categories := make([]dto.CategoryLine, 0, len(totals))
	for _, t := range totals {
		categories = append(categories, dto.CategoryLine{
			ID:    t.CategoryID.String(),
			Name:  t.Name,
			Total: t.Total,
		})
	}

	return dto.StatementSection{
		Categories: categories,
		Total: s.agg.TotalByClassification(ctx, c, models.TransactionFilter{
			Start: &start,
			End:   &end,
		}),
	}
}

// GenerateBalanceSheet builds the balance sheet as of the given date, or
// today when asOf is nil. Physical assets are valued at original
// acquisition cost here, not at depreciated current value; the asset report
// is the depreciated view.
func (s *StatementService) GenerateBalanceSheet(ctx context.Context, asOf *time.Time) dto.BalanceSheet {
	date := dateOnly(s.now())
	if asOf != nil {
		date = dateOnly(*asOf)
	}

	cash := s.agg.RunningCashBalance(ctx, &date)

	physical, err := s.assets.SumOriginalValue(ctx, date)
	if err != nil {
		s.logger.Error("Failed to sum asset values, degrading to zero", zap.Error(err))
		physical = decimal.Zero
	}

	liabilities, err := s.journals.SumLiabilityBalance(ctx, date)
	if err != nil {
		s.logger.Error("Failed to sum liabilities, degrading to zero", zap.Error(err))
		liabilities = decimal.Zero
	}

	totalAssets := cash.Add(physical)

	return dto.BalanceSheet{
		Date: date.Format(dateLayout),
		Assets: dto.BalanceSheetAssets{
			Cash:           cash,
			PhysicalAssets: physical,
			Total:          totalAssets,
		},
		Liabilities: liabilities,
		Equity:      totalAssets.Sub(liabilities),
	}
}

// GenerateCashFlowStatement builds the cash flow statement for [start, end],
// grouped by the operating/investing/financing activity dimension carried
// on categories.
func (s *StatementService) GenerateCashFlowStatement(ctx context.Context, start, end time.Time) dto.CashFlowStatement {
	if end.Before(start) {
		start, end = end, start
	}

	dayBefore := start.AddDate(0, 0, -1)
	beginning := s.agg.RunningCashBalance(ctx, &dayBefore)

	operating := s.agg.ActivityNet(ctx, ledger.ActivityOperating, start, end)
	investing := s.agg.ActivityNet(ctx, ledger.ActivityInvesting, start, end)
	financing := s.agg.ActivityNet(ctx, ledger.ActivityFinancing, start, end)

	ending := beginning.Add(operating.Net).Add(investing.Net).Add(financing.Net)

	label := fmt.Sprintf("%s to %s", start.Format(dateLayout), end.Format(dateLayout))

	return dto.CashFlowStatement{
		Period:           periodRef(start, end, label),
		BeginningBalance: beginning,
		Operating:        operating,
		Investing:        investing,
		Financing:        financing,
		EndingBalance:    ending,
	}
}

// GenerateYTDStatement rolls up monthly income statements for a year,
// stopping at the first month that starts in the future.
func (s *StatementService) GenerateYTDStatement(ctx context.Context, year int) dto.YTDStatement {
	now := s.now()
	today := dateOnly(now)

	statement := dto.YTDStatement{
		Year:   year,
		Months: []dto.MonthRollup{},
	}

	income := decimal.Zero
	expenses := decimal.Zero

	for month := 1; month <= 12; month++ {
		monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		if monthStart.After(today) {
			break
		}

		window := ResolvePeriod(PeriodMonthly, year, month, now)
		monthly := s.GenerateIncomeStatement(ctx, window.Start, window.End, window.Label)

		statement.Months = append(statement.Months, dto.MonthRollup{
			Month:    month,
			Label:    monthStart.Month().String(),
			Income:   monthly.Income.Total,
			Expenses: monthly.Expenses.Total,
			Net:      monthly.NetIncome,
		})

		income = income.Add(monthly.Income.Total)
		expenses = expenses.Add(monthly.Expenses.Total)
	}

	statement.Totals = dto.YTDTotals{
		Income:   income,
		Expenses: expenses,
		Net:      income.Sub(expenses),
	}

	return statement
}

// DashboardSummary aggregates the current month, year to date, running cash
// balance and top expense categories into one payload.
func (s *StatementService) DashboardSummary(ctx context.Context) dto.DashboardSummary {
	now := s.now()

	month := ResolvePeriod(PeriodMonthly, now.Year(), int(now.Month()), now)
	ytd := ResolvePeriod(PeriodYTD, now.Year(), 0, now)

	topExpenses := s.agg.ByCategory(ctx, ledger.ClassificationExpense, month.Start, month.End, s.cfg.TopCategoryLimit)
	expenseLines := make([]dto.CategoryLine, 0, len(topExpenses))
	for _, t := range topExpenses {
		expenseLines = append(expenseLines, dto.CategoryLine{
			ID:    t.CategoryID.String(),
			Name:  t.Name,
			Total: t.Total,
		})
	}

	return dto.DashboardSummary{
		Period:      periodRef(month.Start, month.End, month.Label),
		Totals:      s.agg.TotalsForPeriod(ctx, month.Start, month.End, models.TransactionFilter{}),
		YearToDate:  s.agg.TotalsForPeriod(ctx, ytd.Start, ytd.End, models.TransactionFilter{}),
		CashBalance: s.agg.RunningCashBalance(ctx, nil),
		TopExpenses: expenseLines,
	}
}

func periodRef(start, end time.Time, label string) dto.PeriodRef {
	return dto.PeriodRef{
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
		Label:     label,
		Days:      int(end.Sub(start).Hours()/24) + 1,
	}
}
