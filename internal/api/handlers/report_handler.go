package handlers

import (
	"time"

	"clubbooks/internal/models"
	"clubbooks/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ReportHandler serves the generated statements. Statement endpoints always
// answer 200 with a report body; a degraded report carries its own error
// field instead of an HTTP failure.
type ReportHandler struct {
	statementService *service.StatementService
	budgetService    *service.BudgetService
	registerService  *service.RegisterService
	assetService     *service.AssetService
	reportService    *service.ReportService
	logger           *zap.Logger
}

func NewReportHandler(
	statementService *service.StatementService,
	budgetService *service.BudgetService,
	registerService *service.RegisterService,
	assetService *service.AssetService,
	reportService *service.ReportService,
	logger *zap.Logger,
) *ReportHandler {
	return &ReportHandler{
		statementService: statementService,
		budgetService:    budgetService,
		registerService:  registerService,
		assetService:     assetService,
		reportService:    reportService,
		logger:           logger,
	}
}

// IncomeStatement godoc
// @Summary Income statement
// @Description Income and expenses grouped by category for a period
// @Tags reports
// @Produce json
// @Param period query string false "Period type: monthly, quarterly, ytd, annual"
// @Param year query int false "Year"
// @Param value query int false "Month (1-12) or quarter (1-4)"
// @Success 200 {object} dto.IncomeStatement
// @Security BearerAuth
// @Router /api/v1/reports/income-statement [get]
func (h *ReportHandler) IncomeStatement(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	window := h.resolveWindow(c)
	stmt := h.statementService.GenerateIncomeStatement(c.Context(), window.Start, window.End, window.Label)

	h.reportService.Record(c.Context(), models.ReportTypeIncomeStatement, stmt.Period, userID)
	return c.JSON(stmt)
}

// BalanceSheet godoc
// @Summary Balance sheet
// @Description Cash, physical assets, liabilities and equity as of a date
// @Tags reports
// @Produce json
// @Param as_of query string false "As-of date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.BalanceSheet
// @Security BearerAuth
// @Router /api/v1/reports/balance-sheet [get]
func (h *ReportHandler) BalanceSheet(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	sheet := h.statementService.GenerateBalanceSheet(c.Context(), queryDate(c, "as_of"))

	h.reportService.Record(c.Context(), models.ReportTypeBalanceSheet, fiber.Map{"date": sheet.Date}, userID)
	return c.JSON(sheet)
}

// CashFlow godoc
// @Summary Cash flow statement
// @Description Cash movement grouped by operating, investing and financing activity
// @Tags reports
// @Produce json
// @Param period query string false "Period type: monthly, quarterly, ytd, annual"
// @Param year query int false "Year"
// @Param value query int false "Month (1-12) or quarter (1-4)"
// @Success 200 {object} dto.CashFlowStatement
// @Security BearerAuth
// @Router /api/v1/reports/cash-flow [get]
func (h *ReportHandler) CashFlow(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	window := h.resolveWindow(c)
	stmt := h.statementService.GenerateCashFlowStatement(c.Context(), window.Start, window.End)

	h.reportService.Record(c.Context(), models.ReportTypeCashFlow, stmt.Period, userID)
	return c.JSON(stmt)
}

// YTDStatement godoc
// @Summary Year-to-date statement
// @Description Monthly income statement rollup for a year
// @Tags reports
// @Produce json
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {object} dto.YTDStatement
// @Security BearerAuth
// @Router /api/v1/reports/ytd [get]
func (h *ReportHandler) YTDStatement(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	year := queryInt(c, "year", time.Now().Year())
	stmt := h.statementService.GenerateYTDStatement(c.Context(), year)

	h.reportService.Record(c.Context(), models.ReportTypeYTD, fiber.Map{"year": year}, userID)
	return c.JSON(stmt)
}

// BudgetVariance godoc
// @Summary Budget variance report
// @Description Plan-versus-actual comparison per account for a fiscal year
// @Tags reports
// @Produce json
// @Param year query int false "Fiscal year, defaults to the current year"
// @Success 200 {object} dto.BudgetVarianceReport
// @Security BearerAuth
// @Router /api/v1/reports/budget-variance [get]
func (h *ReportHandler) BudgetVariance(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	year := queryInt(c, "year", time.Now().Year())
	report := h.budgetService.VarianceReport(c.Context(), year)

	h.reportService.Record(c.Context(), models.ReportTypeBudgetVariance, fiber.Map{"fiscal_year": year}, userID)
	return c.JSON(report)
}

// Register godoc
// @Summary Ledger register
// @Description Merged chronological feed of transactions and journal lines
// @Tags reports
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param account_id query string false "Account ID"
// @Success 200 {array} dto.RegisterEntry
// @Security BearerAuth
// @Router /api/v1/reports/register [get]
func (h *ReportHandler) Register(c *fiber.Ctx) error {
	filter := models.RegisterFilter{
		Start:     queryDate(c, "start"),
		End:       queryDate(c, "end"),
		AccountID: queryUUID(c, "account_id"),
		Search:    c.Query("search"),
	}

	return c.JSON(h.registerService.FetchLedgerRegister(c.Context(), filter))
}

// AssetReport godoc
// @Summary Asset valuation report
// @Description Every asset with depreciated, replacement and insurance values
// @Tags reports
// @Produce json
// @Success 200 {object} dto.AssetReport
// @Security BearerAuth
// @Router /api/v1/reports/assets [get]
func (h *ReportHandler) AssetReport(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	report := h.assetService.Report(c.Context())

	h.reportService.Record(c.Context(), models.ReportTypeAssets, fiber.Map{"as_of": report.AsOf}, userID)
	return c.JSON(report)
}

// Dashboard godoc
// @Summary Dashboard summary
// @Description Current month totals, year-to-date, cash balance and top expenses
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardSummary
// @Security BearerAuth
// @Router /api/v1/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(h.statementService.DashboardSummary(c.Context()))
}

// ListRecords godoc
// @Summary List generated report records
// @Tags reports
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.Report
// @Security BearerAuth
// @Router /api/v1/reports [get]
func (h *ReportHandler) ListRecords(c *fiber.Ctx) error {
	limit := queryUint(c, "limit", 50)
	offset := queryUint(c, "offset", 0)

	records, err := h.reportService.List(c.Context(), limit, offset)
	if err != nil {
		h.logger.Error("Failed to list report records", zap.Error(err))
		return internalError(c, "Failed to list report records")
	}

	return c.JSON(records)
}

// DeleteRecord godoc
// @Summary Delete a report record
// @Tags reports
// @Param id path string true "Report ID"
// @Success 204
// @Security BearerAuth
// @Router /api/v1/reports/{id} [delete]
func (h *ReportHandler) DeleteRecord(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid report ID")
	}

	if err := h.reportService.Delete(c.Context(), id); err != nil {
		h.logger.Error("Failed to delete report record", zap.Error(err))
		return internalError(c, "Failed to delete report record")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// resolveWindow turns period/year/value query parameters into a concrete
// window, defaulting to the current month.
func (h *ReportHandler) resolveWindow(c *fiber.Ctx) service.PeriodWindow {
	now := time.Now()

	periodType := service.PeriodType(c.Query("period", string(service.PeriodMonthly)))
	year := queryInt(c, "year", now.Year())
	value := queryInt(c, "value", 0)
	if periodType == service.PeriodMonthly && value == 0 {
		value = int(now.Month())
	}

	return service.ResolvePeriod(periodType, year, value, now)
}
