package repository

import (
	"context"

	"clubbooks/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type BudgetRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewBudgetRepository(db *pgxpool.Pool, logger *zap.Logger) *BudgetRepository {
	return &BudgetRepository{
		db:     db,
		logger: logger,
	}
}

func (r *BudgetRepository) CreatePlan(ctx context.Context, plan *models.BudgetPlan) error {
	query := squirrel.Insert("budget_plans").
		Columns("id", "name", "fiscal_year", "total_annual_amount", "notes", "created_by", "created_at", "updated_at").
		Values(plan.ID, plan.Name, plan.FiscalYear, plan.TotalAnnualAmount, plan.Notes, plan.CreatedBy, plan.CreatedAt, plan.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *BudgetRepository) GetPlanByYear(ctx context.Context, fiscalYear int) (*models.BudgetPlan, error) {
	query := squirrel.Select("id", "name", "fiscal_year", "total_annual_amount", "notes", "created_by", "created_at", "updated_at").
		From("budget_plans").
		Where(squirrel.Eq{"fiscal_year": fiscalYear}).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var plan models.BudgetPlan
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&plan.ID, &plan.Name, &plan.FiscalYear, &plan.TotalAnnualAmount, &plan.Notes, &plan.CreatedBy, &plan.CreatedAt, &plan.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	lines, err := r.listLines(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	plan.Lines = lines

	return &plan, nil
}

func (r *BudgetRepository) listLines(ctx context.Context, planID uuid.UUID) ([]models.BudgetPlanLine, error) {
	query := squirrel.Select("id", "plan_id", "account_id", "annual_amount", "notes", "created_at", "updated_at").
		From("budget_plan_lines").
		Where(squirrel.Eq{"plan_id": planID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []models.BudgetPlanLine
	for rows.Next() {
		var line models.BudgetPlanLine
		if err := rows.Scan(&line.ID, &line.PlanID, &line.AccountID, &line.AnnualAmount, &line.Notes, &line.CreatedAt, &line.UpdatedAt); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

func (r *BudgetRepository) ListLinesWithAccounts(ctx context.Context, planID uuid.UUID) ([]models.BudgetLineWithAccount, error) {
	query := squirrel.Select(
		"l.id", "l.plan_id", "l.account_id", "l.annual_amount", "l.notes",
		"l.created_at", "l.updated_at", "a.name", "a.account_type").
		From("budget_plan_lines l").
		Join("ledger_accounts a ON a.id = l.account_id").
		Where(squirrel.Eq{"l.plan_id": planID}).
		OrderBy("a.account_number ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []models.BudgetLineWithAccount
	for rows.Next() {
		var line models.BudgetLineWithAccount
		if err := rows.Scan(
			&line.ID, &line.PlanID, &line.AccountID, &line.AnnualAmount, &line.Notes,
			&line.CreatedAt, &line.UpdatedAt, &line.AccountName, &line.AccountType,
		); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

// UpsertLine inserts or updates one plan line and recomputes the plan's
// cached total in the same transaction.
func (r *BudgetRepository) UpsertLine(ctx context.Context, line *models.BudgetPlanLine) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := squirrel.Insert("budget_plan_lines").
		Columns("id", "plan_id", "account_id", "annual_amount", "notes", "created_at", "updated_at").
		Values(line.ID, line.PlanID, line.AccountID, line.AnnualAmount, line.Notes, line.CreatedAt, line.UpdatedAt).
		Suffix("ON CONFLICT (plan_id, account_id) DO UPDATE SET annual_amount = EXCLUDED.annual_amount, notes = EXCLUDED.notes, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return err
	}

	if err := r.recomputePlanTotal(ctx, tx, line.PlanID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// DeleteLine removes one plan line and recomputes the plan's cached total.
func (r *BudgetRepository) DeleteLine(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var planID uuid.UUID
	if err := tx.QueryRow(ctx, "SELECT plan_id FROM budget_plan_lines WHERE id = $1", id).Scan(&planID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, "DELETE FROM budget_plan_lines WHERE id = $1", id); err != nil {
		return err
	}

	if err := r.recomputePlanTotal(ctx, tx, planID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *BudgetRepository) recomputePlanTotal(ctx context.Context, tx pgx.Tx, planID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
		UPDATE budget_plans
		SET total_annual_amount = (
			SELECT COALESCE(SUM(annual_amount), 0)
			FROM budget_plan_lines
			WHERE plan_id = $1
		), updated_at = NOW()
		WHERE id = $1`, planID)
	return err
}
