package repository

import (
	"context"
	"time"

	"clubbooks/internal/ledger"
	"clubbooks/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type JournalRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewJournalRepository(db *pgxpool.Pool, logger *zap.Logger) *JournalRepository {
	return &JournalRepository{
		db:     db,
		logger: logger,
	}
}

// CreateWithLines inserts a journal and its lines in one transaction.
func (r *JournalRepository) CreateWithLines(ctx context.Context, journal *models.Journal, lines []models.JournalLine) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := squirrel.Insert("journals").
		Columns("id", "journal_date", "memo", "reference", "created_by", "created_at", "updated_at").
		Values(journal.ID, journal.Date, journal.Memo, journal.Reference, journal.CreatedBy, journal.CreatedAt, journal.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return err
	}

	if len(lines) > 0 {
		builder := squirrel.Insert("journal_lines").
			Columns("id", "journal_id", "account_id", "category_id", "debit", "credit", "memo", "created_at").
			PlaceholderFormat(squirrel.Dollar)

		for _, line := range lines {
			builder = builder.Values(line.ID, line.JournalID, line.AccountID, line.CategoryID, line.Debit, line.Credit, line.Memo, line.CreatedAt)
		}

		sql, args, err := builder.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *JournalRepository) ListRegisterRows(ctx context.Context, f models.RegisterFilter) ([]models.JournalLineRegisterRow, error) {
	query := squirrel.Select(
		"l.id", "l.journal_id", "j.journal_date", "j.reference",
		"COALESCE(NULLIF(l.memo, ''), j.memo)", "l.debit", "l.credit",
		"l.account_id", "COALESCE(a.name, '')", "COALESCE(c.name, '')").
		From("journal_lines l").
		Join("journals j ON j.id = l.journal_id").
		LeftJoin("ledger_accounts a ON a.id = l.account_id").
		LeftJoin("categories c ON c.id = l.category_id").
		OrderBy("j.journal_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if f.Start != nil {
		query = query.Where(squirrel.GtOrEq{"j.journal_date": *f.Start})
	}
	if f.End != nil {
		query = query.Where(squirrel.LtOrEq{"j.journal_date": *f.End})
	}
	if f.AccountID != nil {
		query = query.Where(squirrel.Eq{"l.account_id": *f.AccountID})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"j.memo": pattern},
			squirrel.ILike{"j.reference": pattern},
			squirrel.ILike{"l.memo": pattern},
		})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.JournalLineRegisterRow
	for rows.Next() {
		var row models.JournalLineRegisterRow
		if err := rows.Scan(
			&row.LineID, &row.JournalID, &row.Date, &row.Reference,
			&row.Memo, &row.Debit, &row.Credit,
			&row.AccountID, &row.AccountName, &row.CategoryName,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// SumLiabilityBalance nets journal-line credits against debits for active
// liability accounts, up to and including asOf.
func (r *JournalRepository) SumLiabilityBalance(ctx context.Context, asOf time.Time) (decimal.Decimal, error) {
	query := squirrel.Select("COALESCE(SUM(l.credit - l.debit), 0)").
		From("journal_lines l").
		Join("journals j ON j.id = l.journal_id").
		Join("ledger_accounts a ON a.id = l.account_id").
		Where(squirrel.Eq{"a.account_type": ledger.AccountTypeLiability}).
		Where(squirrel.Eq{"a.active": true}).
		Where(squirrel.LtOrEq{"j.journal_date": asOf}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return decimal.Zero, err
	}

	return total, nil
}
