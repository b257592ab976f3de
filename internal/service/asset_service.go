package service

import (
	"context"
	"time"

	"clubbooks/internal/dto"
	"clubbooks/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type AssetService struct {
	assets AssetStore
	calc   *DepreciationCalculator
	logger *zap.Logger
	now    func() time.Time
}

func NewAssetService(assets AssetStore, calc *DepreciationCalculator, logger *zap.Logger) *AssetService {
	return &AssetService{
		assets: assets,
		calc:   calc,
		logger: logger,
		now:    time.Now,
	}
}

func (s *AssetService) Create(ctx context.Context, req *dto.CreateAssetRequest, createdBy uuid.UUID) (*models.Asset, error) {
	if req.Value.IsNegative() {
		return nil, ErrInvalidAmount
	}

	date, err := time.Parse(dateLayout, req.AcquisitionDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	now := s.now()
	asset := &models.Asset{
		ID:               uuid.New(),
		Name:             req.Name,
		Category:         req.Category,
		Value:            req.Value,
		AcquisitionDate:  date,
		DepreciationRate: req.DepreciationRate,
		SerialNumber:     req.SerialNumber,
		Location:         req.Location,
		Notes:            req.Notes,
		CreatedBy:        createdBy,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.assets.Create(ctx, asset); err != nil {
		s.logger.Error("Failed to create asset", zap.Error(err))
		return nil, err
	}

	return asset, nil
}

func (s *AssetService) Update(ctx context.Context, asset *models.Asset) error {
	asset.UpdatedAt = s.now()
	return s.assets.Update(ctx, asset)
}

func (s *AssetService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.assets.GetByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.assets.Delete(ctx, id)
}

func (s *AssetService) GetByID(ctx context.Context, id uuid.UUID) (*models.Asset, error) {
	asset, err := s.assets.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return asset, nil
}

// Valuation derives the read-time figures for one asset.
func (s *AssetService) Valuation(asset *models.Asset, now time.Time) dto.AssetValuation {
	return dto.AssetValuation{
		ID:                 asset.ID.String(),
		Name:               asset.Name,
		Category:           asset.Category,
		OriginalValue:      asset.Value,
		AcquisitionDate:    asset.AcquisitionDate.Format(dateLayout),
		DepreciationRate:   asset.DepreciationRate,
		YearsOwned:         s.calc.YearsOwned(asset.AcquisitionDate, now),
		AnnualDepreciation: s.calc.AnnualDepreciation(asset),
		TotalDepreciation:  s.calc.TotalDepreciation(asset, now),
		CurrentValue:       s.calc.CurrentValue(asset, now),
		ReplacementValue:   s.calc.ReplacementValue(asset, now),
		InsuranceValue:     s.calc.InsuranceValue(asset, now),
	}
}

// Report lists every asset with depreciated and replacement values. A store
// failure yields an empty report with the Error field set, never an error.
func (s *AssetService) Report(ctx context.Context) dto.AssetReport {
	now := s.now()
	report := dto.AssetReport{
		AsOf:               now.Format(dateLayout),
		Assets:             []dto.AssetValuation{},
		TotalOriginalValue: decimal.Zero,
		TotalCurrentValue:  decimal.Zero,
	}

	assets, err := s.assets.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list assets, degrading to empty report", zap.Error(err))
		report.Error = "asset records unavailable"
		return report
	}

	for _, asset := range assets {
		valuation := s.Valuation(asset, now)
		report.Assets = append(report.Assets, valuation)
		report.TotalOriginalValue = report.TotalOriginalValue.Add(asset.Value)
		report.TotalCurrentValue = report.TotalCurrentValue.Add(valuation.CurrentValue)
	}

	return report
}
