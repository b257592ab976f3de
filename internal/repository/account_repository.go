package repository

import (
	"context"

	"clubbooks/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type AccountRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewAccountRepository(db *pgxpool.Pool, logger *zap.Logger) *AccountRepository {
	return &AccountRepository{
		db:     db,
		logger: logger,
	}
}

var accountColumns = []string{
	"id", "account_number", "name", "account_type", "parent_account_id",
	"description", "active", "created_at", "updated_at",
}

func (r *AccountRepository) Create(ctx context.Context, account *models.LedgerAccount) error {
	query := squirrel.Insert("ledger_accounts").
		Columns(accountColumns...).
		Values(account.ID, account.AccountNumber, account.Name, account.Type, account.ParentAccountID, account.Description, account.Active, account.CreatedAt, account.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *AccountRepository) Update(ctx context.Context, account *models.LedgerAccount) error {
	query := squirrel.Update("ledger_accounts").
		Set("account_number", account.AccountNumber).
		Set("name", account.Name).
		Set("account_type", account.Type).
		Set("parent_account_id", account.ParentAccountID).
		Set("description", account.Description).
		Set("active", account.Active).
		Set("updated_at", account.UpdatedAt).
		Where(squirrel.Eq{"id": account.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("ledger_accounts").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.LedgerAccount, error) {
	query := squirrel.Select(accountColumns...).
		From("ledger_accounts").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var account models.LedgerAccount
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&account.ID, &account.AccountNumber, &account.Name, &account.Type, &account.ParentAccountID, &account.Description, &account.Active, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &account, nil
}

func (r *AccountRepository) List(ctx context.Context, activeOnly bool) ([]*models.LedgerAccount, error) {
	query := squirrel.Select(accountColumns...).
		From("ledger_accounts").
		OrderBy("account_number ASC").
		PlaceholderFormat(squirrel.Dollar)
	if activeOnly {
		query = query.Where(squirrel.Eq{"active": true})
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

	var accounts []*models.LedgerAccount
	for rows.Next() {
		var account models.LedgerAccount
		if err := rows.Scan(
			&account.ID, &account.AccountNumber, &account.Name, &account.Type, &account.ParentAccountID, &account.Description, &account.Active, &account.CreatedAt, &account.UpdatedAt,
		); err != nil {
			return nil, err
		}
		accounts = append(accounts, &account)
	}

	return accounts, rows.Err()
}

func (r *AccountRepository) CountTransactions(ctx context.Context, accountID uuid.UUID) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("transactions").
		Where(squirrel.Eq{"account_id": accountID}).
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

func (r *AccountRepository) CountChildren(ctx context.Context, accountID uuid.UUID) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("ledger_accounts").
		Where(squirrel.Eq{"parent_account_id": accountID}).
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

func (r *AccountRepository) ReassignTransactions(ctx context.Context, fromAccountID, toAccountID uuid.UUID) error {
	query := squirrel.Update("transactions").
		Set("account_id", toAccountID).
		Where(squirrel.Eq{"account_id": fromAccountID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}

	r.logger.Info("Reassigned transactions",
		zap.String("from_account", fromAccountID.String()),
		zap.String("to_account", toAccountID.String()),
		zap.Int64("rows", tag.RowsAffected()),
	)
	return nil
}
