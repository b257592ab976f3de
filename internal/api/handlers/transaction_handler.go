package handlers

import (
	"clubbooks/internal/dto"
	"clubbooks/internal/ledger"
	"clubbooks/internal/models"
	"clubbooks/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	transactionService *service.TransactionService
	logger             *zap.Logger
}

func NewTransactionHandler(transactionService *service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
	}
}

// Create godoc
// @Summary Create a transaction
// @Description Record a flat financial event
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	tx, err := h.transactionService.Create(c.Context(), &req, userID)
	if err != nil {
		switch err {
		case service.ErrInvalidAmount, service.ErrInvalidClassification, service.ErrInvalidDate:
			return badRequest(c, err.Error())
		}
		h.logger.Error("Failed to create transaction", zap.Error(err))
		return internalError(c, "Failed to create transaction")
	}

	return c.Status(fiber.StatusCreated).JSON(transactionResponse(tx))
}

// List godoc
// @Summary List transactions
// @Description List transactions with optional filters
// @Tags transactions
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param classification query string false "Classification"
// @Param category_id query string false "Category ID"
// @Param account_id query string false "Account ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.TransactionResponse
// @Security BearerAuth
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	filter := models.TransactionFilter{
		Start:      queryDate(c, "start"),
		End:        queryDate(c, "end"),
		CategoryID: queryUUID(c, "category_id"),
		AccountID:  queryUUID(c, "account_id"),
		Search:     c.Query("search"),
	}
	if raw := c.Query("classification"); raw != "" {
		classification := ledger.Classification(raw)
		if !classification.Valid() {
			return badRequest(c, "Unknown classification")
		}
		filter.Classification = &classification
	}

	limit := queryUint(c, "limit", 50)
	offset := queryUint(c, "offset", 0)

	transactions, err := h.transactionService.List(c.Context(), filter, limit, offset)
	if err != nil {
		h.logger.Error("Failed to list transactions", zap.Error(err))
		return internalError(c, "Failed to list transactions")
	}

	resp := make([]dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		resp = append(resp, transactionResponse(tx))
	}
	return c.JSON(resp)
}

// Get godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/transactions/{id} [get]
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid transaction ID")
	}

	tx, err := h.transactionService.GetByID(c.Context(), id)
	if err != nil {
		return notFound(c, "Transaction not found")
	}

	return c.JSON(transactionResponse(tx))
}

// Update godoc
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/transactions/{id} [put]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid transaction ID")
	}

	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	tx, err := h.transactionService.Update(c.Context(), id, &req, userID)
	if err != nil {
		switch err {
		case service.ErrNotFound:
			return notFound(c, "Transaction not found")
		case service.ErrInvalidAmount, service.ErrInvalidClassification, service.ErrInvalidDate:
			return badRequest(c, err.Error())
		}
		h.logger.Error("Failed to update transaction", zap.Error(err))
		return internalError(c, "Failed to update transaction")
	}

	return c.JSON(transactionResponse(tx))
}

// Delete godoc
// @Summary Delete a transaction
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid transaction ID")
	}

	if err := h.transactionService.Delete(c.Context(), id); err != nil {
		if err == service.ErrNotFound {
			return notFound(c, "Transaction not found")
		}
		h.logger.Error("Failed to delete transaction", zap.Error(err))
		return internalError(c, "Failed to delete transaction")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func transactionResponse(tx *models.Transaction) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		ID:              tx.ID.String(),
		Amount:          tx.Amount,
		Date:            tx.Date.Format(dateLayout),
		Classification:  string(tx.Classification),
		Description:     tx.Description,
		ReferenceNumber: tx.ReferenceNumber,
		Notes:           tx.Notes,
		CreatedAt:       tx.CreatedAt.Format(dateLayout),
	}
	if tx.CategoryID != nil {
		resp.CategoryID = tx.CategoryID.String()
	}
	if tx.AccountID != nil {
		resp.AccountID = tx.AccountID.String()
	}
	if tx.VendorID != nil {
		resp.VendorID = tx.VendorID.String()
	}
	return resp
}
