package service

import (
	"context"
	"time"

	"clubbooks/internal/dto"
	"clubbooks/internal/ledger"
	"clubbooks/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AggregationService is the statistical core shared by the dashboard, the
// statement builders and the budget variance report. Every method degrades
// to its zero-value shape when the store fails: reports never surface a
// storage error to the caller, they log it and render zeros.
type AggregationService struct {
	transactions TransactionStore
	logger       *zap.Logger
}

func NewAggregationService(transactions TransactionStore, logger *zap.Logger) *AggregationService {
	return &AggregationService{
		transactions: transactions,
		logger:       logger,
	}
}

// TotalByClassification sums transaction amounts for one classification
// within the filter's window.
func (s *AggregationService) TotalByClassification(ctx context.Context, c ledger.Classification, f models.TransactionFilter) decimal.Decimal {
	f.Classification = &c
	total, err := s.transactions.SumAmount(ctx, f)
	if err != nil {
		s.logger.Error("Failed to sum transactions, degrading to zero",
			zap.String("classification", string(c)),
			zap.Error(err),
		)
		return decimal.Zero
	}
	return total
}

// TotalsForPeriod computes income, expenses, net balance and transaction
// count for a period.
func (s *AggregationService) TotalsForPeriod(ctx context.Context, start, end time.Time, f models.TransactionFilter) dto.PeriodTotals {
	f.Start = &start
	f.End = &end

	income := s.TotalByClassification(ctx, ledger.ClassificationIncome, f)
	expenses := s.TotalByClassification(ctx, ledger.ClassificationExpense, f)

	countFilter := f
	countFilter.Classification = nil
	count, err := s.transactions.Count(ctx, countFilter)
	if err != nil {
		s.logger.Error("Failed to count transactions, degrading to zero", zap.Error(err))
		count = 0
	}

	return dto.PeriodTotals{
		Income:           income,
		Expenses:         expenses,
		NetBalance:       income.Sub(expenses),
		TransactionCount: count,
	}
}

// ByCategory returns per-category totals for one classification within
// [start, end], ordered by total descending. A limit of zero means no limit.
func (s *AggregationService) ByCategory(ctx context.Context, c ledger.Classification, start, end time.Time, limit uint64) []models.CategoryTotal {
	totals, err := s.transactions.SumByCategory(ctx, c, start, end, limit)
	if err != nil {
		s.logger.Error("Failed to sum transactions by category, degrading to empty",
			zap.String("classification", string(c)),
			zap.Error(err),
		)
		return []models.CategoryTotal{}
	}
	if totals == nil {
		totals = []models.CategoryTotal{}
	}
	return totals
}

// RunningCashBalance is all-history income minus expenses up to asOf, or up
// to now when asOf is nil.
func (s *AggregationService) RunningCashBalance(ctx context.Context, asOf *time.Time) decimal.Decimal {
	f := models.TransactionFilter{End: asOf}
	income := s.TotalByClassification(ctx, ledger.ClassificationIncome, f)
	expenses := s.TotalByClassification(ctx, ledger.ClassificationExpense, f)
	return income.Sub(expenses)
}

// ActivityNet sums income and expense for one cash-flow activity group
// within [start, end].
func (s *AggregationService) ActivityNet(ctx context.Context, g ledger.ActivityGroup, start, end time.Time) dto.ActivityFlow {
	income, err := s.transactions.SumByActivityGroup(ctx, ledger.ClassificationIncome, g, start, end)
	if err != nil {
		s.logger.Error("Failed to sum activity income, degrading to zero",
			zap.String("activity_group", string(g)),
			zap.Error(err),
		)
		income = decimal.Zero
	}

	expense, err := s.transactions.SumByActivityGroup(ctx, ledger.ClassificationExpense, g, start, end)
	if err != nil {
		s.logger.Error("Failed to sum activity expense, degrading to zero",
			zap.String("activity_group", string(g)),
			zap.Error(err),
		)
		expense = decimal.Zero
	}

	return dto.ActivityFlow{
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
	}
}
