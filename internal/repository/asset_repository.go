package repository

import (
	"context"
	"time"

	"clubbooks/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type AssetRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewAssetRepository(db *pgxpool.Pool, logger *zap.Logger) *AssetRepository {
	return &AssetRepository{
		db:     db,
		logger: logger,
	}
}

var assetColumns = []string{
	"id", "name", "category", "value", "acquisition_date", "depreciation_rate",
	"serial_number", "location", "notes", "created_by", "created_at", "updated_at",
}

func (r *AssetRepository) Create(ctx context.Context, asset *models.Asset) error {
	query := squirrel.Insert("assets").
		Columns(assetColumns...).
		Values(asset.ID, asset.Name, asset.Category, asset.Value, asset.AcquisitionDate, asset.DepreciationRate, asset.SerialNumber, asset.Location, asset.Notes, asset.CreatedBy, asset.CreatedAt, asset.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *AssetRepository) Update(ctx context.Context, asset *models.Asset) error {
	query := squirrel.Update("assets").
		Set("name", asset.Name).
		Set("category", asset.Category).
		Set("value", asset.Value).
		Set("acquisition_date", asset.AcquisitionDate).
		Set("depreciation_rate", asset.DepreciationRate).
		Set("serial_number", asset.SerialNumber).
		Set("location", asset.Location).
		Set("notes", asset.Notes).
		Set("updated_at", asset.UpdatedAt).
		Where(squirrel.Eq{"id": asset.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *AssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("assets").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *AssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Asset, error) {
	query := squirrel.Select(assetColumns...).
		From("assets").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var asset models.Asset
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&asset.ID, &asset.Name, &asset.Category, &asset.Value, &asset.AcquisitionDate, &asset.DepreciationRate, &asset.SerialNumber, &asset.Location, &asset.Notes, &asset.CreatedBy, &asset.CreatedAt, &asset.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &asset, nil
}

func (r *AssetRepository) List(ctx context.Context) ([]*models.Asset, error) {
	query := squirrel.Select(assetColumns...).
		From("assets").
		OrderBy("acquisition_date ASC, name ASC").
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

	var assets []*models.Asset
	for rows.Next() {
		var asset models.Asset
		if err := rows.Scan(
			&asset.ID, &asset.Name, &asset.Category, &asset.Value, &asset.AcquisitionDate, &asset.DepreciationRate, &asset.SerialNumber, &asset.Location, &asset.Notes, &asset.CreatedBy, &asset.CreatedAt, &asset.UpdatedAt,
		); err != nil {
			return nil, err
		}
		assets = append(assets, &asset)
	}

	return assets, rows.Err()
}

// SumOriginalValue totals original acquisition cost for assets acquired on
// or before asOf. The balance sheet reads this figure, not the depreciated
// one.
func (r *AssetRepository) SumOriginalValue(ctx context.Context, asOf time.Time) (decimal.Decimal, error) {
	query := squirrel.Select("COALESCE(SUM(value), 0)").
		From("assets").
		Where(squirrel.LtOrEq{"acquisition_date": asOf}).
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
