package service

import (
	"context"
	"encoding/json"
	"time"

	"clubbooks/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReportService persists a record of every generated statement. Records are
// write-once and immutable except for deletion.
type ReportService struct {
	reports ReportStore
	logger  *zap.Logger
	now     func() time.Time
}

func NewReportService(reports ReportStore, logger *zap.Logger) *ReportService {
	return &ReportService{
		reports: reports,
		logger:  logger,
		now:     time.Now,
	}
}

// Record stores a generation event. Persistence failure is logged but does
// not fail the statement that was generated.
func (s *ReportService) Record(ctx context.Context, reportType models.ReportType, parameters interface{}, generatedBy uuid.UUID) {
	params, err := json.Marshal(parameters)
	if err != nil {
		s.logger.Error("Failed to marshal report parameters", zap.Error(err))
		return
	}

	report := &models.Report{
		ID:          uuid.New(),
		Type:        reportType,
		Parameters:  string(params),
		GeneratedBy: generatedBy,
		CreatedAt:   s.now(),
	}

	if err := s.reports.Create(ctx, report); err != nil {
		s.logger.Error("Failed to record report generation",
			zap.String("type", string(reportType)),
			zap.Error(err),
		)
	}
}

func (s *ReportService) List(ctx context.Context, limit, offset uint64) ([]*models.Report, error) {
	return s.reports.List(ctx, limit, offset)
}

func (s *ReportService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.reports.Delete(ctx, id)
}
