package handlers

import (
	"time"

	"clubbooks/internal/dto"
	"clubbooks/internal/models"
	"clubbooks/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BudgetHandler struct {
	budgetService *service.BudgetService
	logger        *zap.Logger
}

func NewBudgetHandler(budgetService *service.BudgetService, logger *zap.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		logger:        logger,
	}
}

// CreatePlan godoc
// @Summary Create a budget plan
// @Tags budgets
// @Accept json
// @Produce json
// @Param request body dto.CreateBudgetPlanRequest true "Budget plan"
// @Success 201 {object} models.BudgetPlan
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/budgets [post]
func (h *BudgetHandler) CreatePlan(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateBudgetPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.FiscalYear == 0 {
		return badRequest(c, "Fiscal year is required")
	}

	now := time.Now()
	plan := &models.BudgetPlan{
		ID:         uuid.New(),
		Name:       req.Name,
		FiscalYear: req.FiscalYear,
		Notes:      req.Notes,
		CreatedBy:  userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := h.budgetService.CreatePlan(c.Context(), plan); err != nil {
		h.logger.Error("Failed to create budget plan", zap.Error(err))
		return internalError(c, "Failed to create budget plan")
	}

	return c.Status(fiber.StatusCreated).JSON(plan)
}

// GetPlan godoc
// @Summary Get the budget plan for a fiscal year
// @Tags budgets
// @Produce json
// @Param year query int false "Fiscal year, defaults to the current year"
// @Success 200 {object} models.BudgetPlan
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/budgets [get]
func (h *BudgetHandler) GetPlan(c *fiber.Ctx) error {
	year := queryInt(c, "year", time.Now().Year())

	plan, err := h.budgetService.GetPlanByYear(c.Context(), year)
	if err != nil {
		return notFound(c, "No budget plan for fiscal year")
	}

	return c.JSON(plan)
}

// UpsertLine godoc
// @Summary Create or update a budget plan line
// @Description Insert one account's annual allocation, replacing any existing line for that account
// @Tags budgets
// @Accept json
// @Produce json
// @Param year query int false "Fiscal year, defaults to the current year"
// @Param request body dto.UpsertBudgetLineRequest true "Budget line"
// @Success 200 {object} models.BudgetPlanLine
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/budgets/lines [put]
func (h *BudgetHandler) UpsertLine(c *fiber.Ctx) error {
	var req dto.UpsertBudgetLineRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return badRequest(c, "Invalid account ID")
	}
	if req.AnnualAmount.IsNegative() {
		return badRequest(c, "Annual amount must be non-negative")
	}

	year := queryInt(c, "year", time.Now().Year())
	plan, err := h.budgetService.GetPlanByYear(c.Context(), year)
	if err != nil {
		return notFound(c, "No budget plan for fiscal year")
	}

	now := time.Now()
	line := &models.BudgetPlanLine{
		ID:           uuid.New(),
		PlanID:       plan.ID,
		AccountID:    accountID,
		AnnualAmount: req.AnnualAmount,
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.budgetService.UpsertLine(c.Context(), line); err != nil {
		h.logger.Error("Failed to upsert budget line", zap.Error(err))
		return internalError(c, "Failed to upsert budget line")
	}

	return c.JSON(line)
}

// DeleteLine godoc
// @Summary Delete a budget plan line
// @Tags budgets
// @Param id path string true "Budget line ID"
// @Success 204
// @Security BearerAuth
// @Router /api/v1/budgets/lines/{id} [delete]
func (h *BudgetHandler) DeleteLine(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid budget line ID")
	}

	if err := h.budgetService.DeleteLine(c.Context(), id); err != nil {
		h.logger.Error("Failed to delete budget line", zap.Error(err))
		return internalError(c, "Failed to delete budget line")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// AccountVariance godoc
// @Summary Budget variance for one account
// @Tags budgets
// @Produce json
// @Param id path string true "Account ID"
// @Param year query int false "Fiscal year, defaults to the current year"
// @Success 200 {object} dto.BudgetLineVariance
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/budgets/variance/{id} [get]
func (h *BudgetHandler) AccountVariance(c *fiber.Ctx) error {
	accountID, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid account ID")
	}

	year := queryInt(c, "year", time.Now().Year())
	variance, err := h.budgetService.VarianceForAccount(c.Context(), accountID, year)
	if err != nil {
		if err == service.ErrPlanNotFound {
			return notFound(c, "No budget plan for fiscal year")
		}
		h.logger.Error("Failed to compute account variance", zap.Error(err))
		return internalError(c, "Failed to compute account variance")
	}

	return c.JSON(variance)
}
