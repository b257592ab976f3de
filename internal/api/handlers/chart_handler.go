package handlers

import (
	"time"

	"clubbooks/internal/ledger"
	"clubbooks/internal/models"
	"clubbooks/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChartHandler manages the chart of accounts and the category tree.
type ChartHandler struct {
	chartService *service.ChartService
	logger       *zap.Logger
}

func NewChartHandler(chartService *service.ChartService, logger *zap.Logger) *ChartHandler {
	return &ChartHandler{
		chartService: chartService,
		logger:       logger,
	}
}

type accountRequest struct {
	AccountNumber   string `json:"account_number"`
	Name            string `json:"name"`
	Type            string `json:"account_type"`
	ParentAccountID string `json:"parent_account_id,omitempty"`
	Description     string `json:"description,omitempty"`
	Active          *bool  `json:"active,omitempty"`
}

type categoryRequest struct {
	Name             string `json:"name"`
	Type             string `json:"category_type"`
	ActivityGroup    string `json:"activity_group,omitempty"`
	ParentCategoryID string `json:"parent_category_id,omitempty"`
	Active           *bool  `json:"active,omitempty"`
}

// CreateAccount godoc
// @Summary Create a ledger account
// @Tags chart
// @Accept json
// @Produce json
// @Success 201 {object} models.LedgerAccount
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/accounts [post]
func (h *ChartHandler) CreateAccount(c *fiber.Ctx) error {
	var req accountRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	accountType := ledger.AccountType(req.Type)
	if !accountType.Valid() {
		return badRequest(c, "Unknown account type")
	}

	now := time.Now()
	account := &models.LedgerAccount{
		ID:            uuid.New(),
		AccountNumber: req.AccountNumber,
		Name:          req.Name,
		Type:          accountType,
		Description:   req.Description,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.ParentAccountID != "" {
		parentID, err := uuid.Parse(req.ParentAccountID)
		if err != nil {
			return badRequest(c, "Invalid parent account ID")
		}
		account.ParentAccountID = &parentID
	}

	if err := h.chartService.CreateAccount(c.Context(), account); err != nil {
		h.logger.Error("Failed to create account", zap.Error(err))
		return internalError(c, "Failed to create account")
	}

	return c.Status(fiber.StatusCreated).JSON(account)
}

// ListAccounts godoc
// @Summary List ledger accounts
// @Tags chart
// @Produce json
// @Param active query bool false "Only active accounts"
// @Success 200 {array} models.LedgerAccount
// @Security BearerAuth
// @Router /api/v1/accounts [get]
func (h *ChartHandler) ListAccounts(c *fiber.Ctx) error {
	accounts, err := h.chartService.ListAccounts(c.Context(), c.QueryBool("active", false))
	if err != nil {
		h.logger.Error("Failed to list accounts", zap.Error(err))
		return internalError(c, "Failed to list accounts")
	}
	return c.JSON(accounts)
}

// UpdateAccount godoc
// @Summary Update a ledger account
// @Tags chart
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} models.LedgerAccount
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/accounts/{id} [put]
func (h *ChartHandler) UpdateAccount(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid account ID")
	}

	account, err := h.chartService.GetAccount(c.Context(), id)
	if err != nil {
		return notFound(c, "Account not found")
	}

	var req accountRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if req.Name != "" {
		account.Name = req.Name
	}
	if req.AccountNumber != "" {
		account.AccountNumber = req.AccountNumber
	}
	if req.Type != "" {
		accountType := ledger.AccountType(req.Type)
		if !accountType.Valid() {
			return badRequest(c, "Unknown account type")
		}
		account.Type = accountType
	}
	if req.Description != "" {
		account.Description = req.Description
	}
	if req.Active != nil {
		account.Active = *req.Active
	}
	account.UpdatedAt = time.Now()

	if err := h.chartService.UpdateAccount(c.Context(), account); err != nil {
		h.logger.Error("Failed to update account", zap.Error(err))
		return internalError(c, "Failed to update account")
	}

	return c.JSON(account)
}

// DeleteAccount godoc
// @Summary Delete a ledger account
// @Description Fails while the account still has transactions or child accounts
// @Tags chart
// @Param id path string true "Account ID"
// @Success 204
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/accounts/{id} [delete]
func (h *ChartHandler) DeleteAccount(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid account ID")
	}

	if err := h.chartService.DeleteAccount(c.Context(), id); err != nil {
		switch err {
		case service.ErrAccountHasTransactions, service.ErrAccountHasChildren:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to delete account", zap.Error(err))
		return internalError(c, "Failed to delete account")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ReassignTransactions godoc
// @Summary Reassign an account's transactions
// @Description Move every transaction from one account to another
// @Tags chart
// @Param id path string true "Source account ID"
// @Param to query string true "Target account ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/accounts/{id}/reassign [post]
func (h *ChartHandler) ReassignTransactions(c *fiber.Ctx) error {
	fromID, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid account ID")
	}

	toID := queryUUID(c, "to")
	if toID == nil {
		return badRequest(c, "Target account ID is required")
	}

	if err := h.chartService.ReassignTransactions(c.Context(), fromID, *toID); err != nil {
		if err == service.ErrNotFound {
			return notFound(c, "Target account not found")
		}
		h.logger.Error("Failed to reassign transactions", zap.Error(err))
		return internalError(c, "Failed to reassign transactions")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// CreateCategory godoc
// @Summary Create a category
// @Tags chart
// @Accept json
// @Produce json
// @Success 201 {object} models.Category
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/categories [post]
func (h *ChartHandler) CreateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	categoryType := ledger.AccountType(req.Type)
	if !categoryType.Valid() {
		return badRequest(c, "Unknown category type")
	}

	activityGroup := ledger.ActivityOperating
	if req.ActivityGroup != "" {
		activityGroup = ledger.ActivityGroup(req.ActivityGroup)
	}

	now := time.Now()
	category := &models.Category{
		ID:            uuid.New(),
		Name:          req.Name,
		Type:          categoryType,
		ActivityGroup: activityGroup,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.ParentCategoryID != "" {
		parentID, err := uuid.Parse(req.ParentCategoryID)
		if err != nil {
			return badRequest(c, "Invalid parent category ID")
		}
		category.ParentCategoryID = &parentID
	}

	if err := h.chartService.CreateCategory(c.Context(), category); err != nil {
		h.logger.Error("Failed to create category", zap.Error(err))
		return internalError(c, "Failed to create category")
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

// ListCategories godoc
// @Summary List categories
// @Tags chart
// @Produce json
// @Param active query bool false "Only active categories"
// @Success 200 {array} models.Category
// @Security BearerAuth
// @Router /api/v1/categories [get]
func (h *ChartHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.chartService.ListCategories(c.Context(), c.QueryBool("active", false))
	if err != nil {
		h.logger.Error("Failed to list categories", zap.Error(err))
		return internalError(c, "Failed to list categories")
	}
	return c.JSON(categories)
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags chart
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.Category
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/categories/{id} [put]
func (h *ChartHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid category ID")
	}

	category, err := h.chartService.GetCategory(c.Context(), id)
	if err != nil {
		return notFound(c, "Category not found")
	}

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Type != "" {
		categoryType := ledger.AccountType(req.Type)
		if !categoryType.Valid() {
			return badRequest(c, "Unknown category type")
		}
		category.Type = categoryType
	}
	if req.ActivityGroup != "" {
		category.ActivityGroup = ledger.ActivityGroup(req.ActivityGroup)
	}
	if req.Active != nil {
		category.Active = *req.Active
	}
	category.UpdatedAt = time.Now()

	if err := h.chartService.UpdateCategory(c.Context(), category); err != nil {
		h.logger.Error("Failed to update category", zap.Error(err))
		return internalError(c, "Failed to update category")
	}

	return c.JSON(category)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags chart
// @Param id path string true "Category ID"
// @Success 204
// @Security BearerAuth
// @Router /api/v1/categories/{id} [delete]
func (h *ChartHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid category ID")
	}

	if err := h.chartService.DeleteCategory(c.Context(), id); err != nil {
		h.logger.Error("Failed to delete category", zap.Error(err))
		return internalError(c, "Failed to delete category")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
