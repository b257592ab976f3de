package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clubbooks/internal/dto"
	"clubbooks/internal/ledger"
	"clubbooks/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrPlanNotFound = errors.New("budget plan not found")

// Budget status labels. The thresholds differ for inflow and outflow
// accounts and are business policy, not derived figures.
const (
	StatusOverBudget         = "Over Budget"
	StatusSlightlyOver       = "Slightly Over"
	StatusOnTrack            = "On Track"
	StatusUnderBudget        = "Under Budget"
	StatusSignificantlyUnder = "Significantly Under"
)

// BudgetService compares budget plan lines against actual aggregated
// amounts per account and fiscal year.
type BudgetService struct {
	budgets BudgetStore
	agg     *AggregationService
	logger  *zap.Logger
}

func NewBudgetService(budgets BudgetStore, agg *AggregationService, logger *zap.Logger) *BudgetService {
	return &BudgetService{
		budgets: budgets,
		agg:     agg,
		logger:  logger,
	}
}

func (s *BudgetService) CreatePlan(ctx context.Context, plan *models.BudgetPlan) error {
	return s.budgets.CreatePlan(ctx, plan)
}

func (s *BudgetService) GetPlanByYear(ctx context.Context, fiscalYear int) (*models.BudgetPlan, error) {
	return s.budgets.GetPlanByYear(ctx, fiscalYear)
}

func (s *BudgetService) UpsertLine(ctx context.Context, line *models.BudgetPlanLine) error {
	return s.budgets.UpsertLine(ctx, line)
}

func (s *BudgetService) DeleteLine(ctx context.Context, id uuid.UUID) error {
	return s.budgets.DeleteLine(ctx, id)
}

// VarianceReport compares every plan line of the fiscal year against the
// actual full-year aggregate for its account. A missing plan yields an
// empty report with the Error field set rather than a failure.
func (s *BudgetService) VarianceReport(ctx context.Context, fiscalYear int) dto.BudgetVarianceReport {
	report := dto.BudgetVarianceReport{
		FiscalYear: fiscalYear,
		Lines:      []dto.BudgetLineVariance{},
	}

	plan, err := s.budgets.GetPlanByYear(ctx, fiscalYear)
	if err != nil {
		s.logger.Warn("No budget plan for fiscal year",
			zap.Int("fiscal_year", fiscalYear),
			zap.Error(err),
		)
		report.Error = fmt.Sprintf("no budget plan for fiscal year %d", fiscalYear)
		return report
	}
	report.PlanName = plan.Name

	lines, err := s.budgets.ListLinesWithAccounts(ctx, plan.ID)
	if err != nil {
		s.logger.Error("Failed to list budget lines, degrading to empty",
			zap.Int("fiscal_year", fiscalYear),
			zap.Error(err),
		)
		report.Error = "budget lines unavailable"
		return report
	}

	budgetTotal := decimal.Zero
	actualTotal := decimal.Zero

	for _, line := range lines {
		variance := s.lineVariance(ctx, line, fiscalYear)
		report.Lines = append(report.Lines, variance)
		budgetTotal = budgetTotal.Add(variance.BudgetAmount)
		actualTotal = actualTotal.Add(variance.ActualAmount)
	}

	report.Totals = dto.BudgetVarianceTotals{
		BudgetAmount: budgetTotal,
		ActualAmount: actualTotal,
		Variance:     actualTotal.Sub(budgetTotal),
	}

	return report
}

// VarianceForAccount reports one account's variance for a fiscal year. An
// account with no plan line gets a zero budget amount.
func (s *BudgetService) VarianceForAccount(ctx context.Context, accountID uuid.UUID, fiscalYear int) (dto.BudgetLineVariance, error) {
	plan, err := s.budgets.GetPlanByYear(ctx, fiscalYear)
	if err != nil {
		return dto.BudgetLineVariance{}, ErrPlanNotFound
	}

	lines, err := s.budgets.ListLinesWithAccounts(ctx, plan.ID)
	if err != nil {
		return dto.BudgetLineVariance{}, err
	}

	for _, line := range lines {
		if line.AccountID == accountID {
			return s.lineVariance(ctx, line, fiscalYear), nil
		}
	}

	return s.lineVariance(ctx, models.BudgetLineWithAccount{
		BudgetPlanLine: models.BudgetPlanLine{AccountID: accountID},
	}, fiscalYear), nil
}

func (s *BudgetService) lineVariance(ctx context.Context, line models.BudgetLineWithAccount, fiscalYear int) dto.BudgetLineVariance {
	start := time.Date(fiscalYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(fiscalYear, time.December, 31, 0, 0, 0, 0, time.UTC)

	classification := ledger.ClassificationExpense
	incomeLike := line.AccountType == ledger.AccountTypeIncome
	if incomeLike {
		classification = ledger.ClassificationIncome
	}

	accountID := line.AccountID
	actual := s.agg.TotalByClassification(ctx, classification, models.TransactionFilter{
		Start:     &start,
		End:       &end,
		AccountID: &accountID,
	})

	budget := line.AnnualAmount
	variance := actual.Sub(budget)
	percentage := decimal.Zero
	if budget.IsPositive() {
		percentage = actual.Div(budget).Mul(decimal.NewFromInt(100))
	}

	status := expenseStatus(percentage)
	if incomeLike {
		status = incomeStatus(percentage)
	}

	return dto.BudgetLineVariance{
		AccountID:    line.AccountID.String(),
		AccountName:  line.AccountName,
		AccountType:  string(line.AccountType),
		BudgetAmount: budget,
		ActualAmount: actual,
		Variance:     variance,
		Percentage:   percentage,
		Status:       status,
	}
}

func incomeStatus(pct decimal.Decimal) string {
	switch {
	case pct.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return StatusOverBudget
	case pct.GreaterThanOrEqual(decimal.NewFromInt(90)):
		return StatusOnTrack
	case pct.GreaterThanOrEqual(decimal.NewFromInt(50)):
		return StatusUnderBudget
	default:
		return StatusSignificantlyUnder
	}
}

func expenseStatus(pct decimal.Decimal) string {
	switch {
	case pct.GreaterThan(decimal.NewFromInt(110)):
		return StatusOverBudget
	case pct.GreaterThan(decimal.NewFromInt(100)):
		return StatusSlightlyOver
	case pct.GreaterThanOrEqual(decimal.NewFromInt(90)):
		return StatusOnTrack
	default:
		return StatusUnderBudget
	}
}
