package repository

import (
	"context"
	"time"

	"clubbooks/internal/ledger"
	"clubbooks/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Insert("transactions").
		Columns("id", "amount", "transaction_date", "classification", "category_id", "account_id", "vendor_id", "description", "reference_number", "notes", "created_by", "updated_by", "created_at", "updated_at").
		Values(tx.ID, tx.Amount, tx.Date, tx.Classification, tx.CategoryID, tx.AccountID, tx.VendorID, tx.Description, tx.ReferenceNumber, tx.Notes, tx.CreatedBy, tx.UpdatedBy, tx.CreatedAt, tx.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) Update(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Update("transactions").
		Set("amount", tx.Amount).
		Set("transaction_date", tx.Date).
		Set("classification", tx.Classification).
		Set("category_id", tx.CategoryID).
		Set("account_id", tx.AccountID).
		Set("vendor_id", tx.VendorID).
		Set("description", tx.Description).
		Set("reference_number", tx.ReferenceNumber).
		Set("notes", tx.Notes).
		Set("updated_by", tx.UpdatedBy).
		Set("updated_at", tx.UpdatedAt).
		Where(squirrel.Eq{"id": tx.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("transactions").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions t").
		Where(squirrel.Eq{"t.id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var tx models.Transaction
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&tx.ID, &tx.Amount, &tx.Date, &tx.Classification, &tx.CategoryID, &tx.AccountID, &tx.VendorID, &tx.Description, &tx.ReferenceNumber, &tx.Notes, &tx.CreatedBy, &tx.UpdatedBy, &tx.CreatedAt, &tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &tx, nil
}

func (r *TransactionRepository) List(ctx context.Context, f models.TransactionFilter, limit, offset uint64) ([]*models.Transaction, error) {
	query := applyTransactionFilter(
		squirrel.Select(transactionColumns...).From("transactions t"), f).
		OrderBy("t.transaction_date DESC, t.created_at DESC").
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar)
	if limit > 0 {
		query = query.Limit(limit)
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

	var transactions []*models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.Amount, &tx.Date, &tx.Classification, &tx.CategoryID, &tx.AccountID, &tx.VendorID, &tx.Description, &tx.ReferenceNumber, &tx.Notes, &tx.CreatedBy, &tx.UpdatedBy, &tx.CreatedAt, &tx.UpdatedAt,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, &tx)
	}

	return transactions, rows.Err()
}

func (r *TransactionRepository) SumAmount(ctx context.Context, f models.TransactionFilter) (decimal.Decimal, error) {
	query := applyTransactionFilter(
		squirrel.Select("COALESCE(SUM(t.amount), 0)").From("transactions t"), f).
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

func (r *TransactionRepository) Count(ctx context.Context, f models.TransactionFilter) (int64, error) {
	query := applyTransactionFilter(
		squirrel.Select("COUNT(*)").From("transactions t"), f).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// SumByCategory groups one classification's amounts by category within
// [start, end], ordered by total descending. A limit of zero means no
// limit. Uncategorized transactions are excluded from the grouping.
func (r *TransactionRepository) SumByCategory(ctx context.Context, c ledger.Classification, start, end time.Time, limit uint64) ([]models.CategoryTotal, error) {
	query := squirrel.Select("c.id", "c.name", "COALESCE(SUM(t.amount), 0) AS total").
		From("transactions t").
		Join("categories c ON c.id = t.category_id").
		Where(squirrel.Eq{"t.classification": c}).
		Where(squirrel.GtOrEq{"t.transaction_date": start}).
		Where(squirrel.LtOrEq{"t.transaction_date": end}).
		GroupBy("c.id", "c.name").
		OrderBy("total DESC").
		PlaceholderFormat(squirrel.Dollar)
	if limit > 0 {
		query = query.Limit(limit)
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

	var totals []models.CategoryTotal
	for rows.Next() {
		var t models.CategoryTotal
		if err := rows.Scan(&t.CategoryID, &t.Name, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}

// SumByActivityGroup sums one classification's amounts for categories in a
// cash-flow activity group within [start, end].
func (r *TransactionRepository) SumByActivityGroup(ctx context.Context, c ledger.Classification, g ledger.ActivityGroup, start, end time.Time) (decimal.Decimal, error) {
	query := squirrel.Select("COALESCE(SUM(t.amount), 0)").
		From("transactions t").
		Join("categories c ON c.id = t.category_id").
		Where(squirrel.Eq{"t.classification": c}).
		Where(squirrel.Eq{"c.activity_group": g}).
		Where(squirrel.GtOrEq{"t.transaction_date": start}).
		Where(squirrel.LtOrEq{"t.transaction_date": end}).
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

func (r *TransactionRepository) ListRegisterRows(ctx context.Context, f models.RegisterFilter) ([]models.TransactionRegisterRow, error) {
	query := squirrel.Select(
		"t.id", "t.transaction_date", "t.reference_number", "t.description",
		"t.classification", "t.amount", "t.account_id",
		"COALESCE(a.name, '')", "COALESCE(c.name, '')").
		From("transactions t").
		LeftJoin("ledger_accounts a ON a.id = t.account_id").
		LeftJoin("categories c ON c.id = t.category_id").
		OrderBy("t.transaction_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if f.Start != nil {
		query = query.Where(squirrel.GtOrEq{"t.transaction_date": *f.Start})
	}
	if f.End != nil {
		query = query.Where(squirrel.LtOrEq{"t.transaction_date": *f.End})
	}
	if f.AccountID != nil {
		query = query.Where(squirrel.Eq{"t.account_id": *f.AccountID})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"t.description": pattern},
			squirrel.ILike{"t.reference_number": pattern},
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

	var result []models.TransactionRegisterRow
	for rows.Next() {
		var row models.TransactionRegisterRow
		if err := rows.Scan(
			&row.ID, &row.Date, &row.ReferenceNumber, &row.Description,
			&row.Classification, &row.Amount, &row.AccountID,
			&row.AccountName, &row.CategoryName,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

var transactionColumns = []string{
	"t.id", "t.amount", "t.transaction_date", "t.classification",
	"t.category_id", "t.account_id", "t.vendor_id", "t.description",
	"t.reference_number", "t.notes", "t.created_by", "t.updated_by",
	"t.created_at", "t.updated_at",
}

func applyTransactionFilter(query squirrel.SelectBuilder, f models.TransactionFilter) squirrel.SelectBuilder {
	if f.Start != nil {
		query = query.Where(squirrel.GtOrEq{"t.transaction_date": *f.Start})
	}
	if f.End != nil {
		query = query.Where(squirrel.LtOrEq{"t.transaction_date": *f.End})
	}
	if f.Classification != nil {
		query = query.Where(squirrel.Eq{"t.classification": *f.Classification})
	}
	if f.CategoryID != nil {
		query = query.Where(squirrel.Eq{"t.category_id": *f.CategoryID})
	}
	if f.AccountID != nil {
		query = query.Where(squirrel.Eq{"t.account_id": *f.AccountID})
	}
	if f.VendorID != nil {
		query = query.Where(squirrel.Eq{"t.vendor_id": *f.VendorID})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"t.description": pattern},
			squirrel.ILike{"t.reference_number": pattern},
			squirrel.ILike{"t.notes": pattern},
		})
	}
	if f.MinAmount != nil {
		query = query.Where(squirrel.GtOrEq{"t.amount": *f.MinAmount})
	}
	if f.MaxAmount != nil {
		query = query.Where(squirrel.LtOrEq{"t.amount": *f.MaxAmount})
	}
	return query
}
