package repository

import (
	"context"

	"clubbooks/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ReportRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewReportRepository(db *pgxpool.Pool, logger *zap.Logger) *ReportRepository {
	return &ReportRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	query := squirrel.Insert("reports").
		Columns("id", "report_type", "parameters", "file_path", "generated_by", "created_at").
		Values(report.ID, report.Type, report.Parameters, report.FilePath, report.GeneratedBy, report.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ReportRepository) List(ctx context.Context, limit, offset uint64) ([]*models.Report, error) {
	query := squirrel.Select("id", "report_type", "parameters", "file_path", "generated_by", "created_at").
		From("reports").
		OrderBy("created_at DESC").
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

	var reports []*models.Report
	for rows.Next() {
		var report models.Report
		if err := rows.Scan(&report.ID, &report.Type, &report.Parameters, &report.FilePath, &report.GeneratedBy, &report.CreatedAt); err != nil {
			return nil, err
		}
		reports = append(reports, &report)
	}

	return reports, rows.Err()
}

func (r *ReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("reports").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
