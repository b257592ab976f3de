package handlers

import (
	"clubbooks/internal/dto"
	"clubbooks/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type JournalHandler struct {
	registerService *service.RegisterService
	logger          *zap.Logger
}

func NewJournalHandler(registerService *service.RegisterService, logger *zap.Logger) *JournalHandler {
	return &JournalHandler{
		registerService: registerService,
		logger:          logger,
	}
}

// Create godoc
// @Summary Create a journal entry
// @Description Record a balanced multi-line journal entry
// @Tags journals
// @Accept json
// @Produce json
// @Param request body dto.CreateJournalRequest true "Journal entry"
// @Success 201 {object} models.Journal
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/journals [post]
func (h *JournalHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateJournalRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	journal, err := h.registerService.CreateJournal(c.Context(), &req, userID)
	if err != nil {
		switch err {
		case service.ErrEmptyJournal, service.ErrUnbalancedJournal, service.ErrInvalidAmount, service.ErrInvalidDate:
			return badRequest(c, err.Error())
		}
		h.logger.Error("Failed to create journal", zap.Error(err))
		return internalError(c, "Failed to create journal")
	}

	return c.Status(fiber.StatusCreated).JSON(journal)
}
