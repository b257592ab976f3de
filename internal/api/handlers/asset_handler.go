package handlers

import (
	"time"

	"clubbooks/internal/dto"
	"clubbooks/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AssetHandler struct {
	assetService *service.AssetService
	logger       *zap.Logger
}

func NewAssetHandler(assetService *service.AssetService, logger *zap.Logger) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
		logger:       logger,
	}
}

// Create godoc
// @Summary Create an asset
// @Tags assets
// @Accept json
// @Produce json
// @Param request body dto.CreateAssetRequest true "Asset"
// @Success 201 {object} dto.AssetValuation
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	asset, err := h.assetService.Create(c.Context(), &req, userID)
	if err != nil {
		switch err {
		case service.ErrInvalidAmount, service.ErrInvalidDate:
			return badRequest(c, err.Error())
		}
		h.logger.Error("Failed to create asset", zap.Error(err))
		return internalError(c, "Failed to create asset")
	}

	return c.Status(fiber.StatusCreated).JSON(h.assetService.Valuation(asset, time.Now()))
}

// Get godoc
// @Summary Get an asset with derived values
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} dto.AssetValuation
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/assets/{id} [get]
func (h *AssetHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid asset ID")
	}

	asset, err := h.assetService.GetByID(c.Context(), id)
	if err != nil {
		return notFound(c, "Asset not found")
	}

	return c.JSON(h.assetService.Valuation(asset, time.Now()))
}

// Delete godoc
// @Summary Delete an asset
// @Tags assets
// @Param id path string true "Asset ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/assets/{id} [delete]
func (h *AssetHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid asset ID")
	}

	if err := h.assetService.Delete(c.Context(), id); err != nil {
		if err == service.ErrNotFound {
			return notFound(c, "Asset not found")
		}
		h.logger.Error("Failed to delete asset", zap.Error(err))
		return internalError(c, "Failed to delete asset")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
