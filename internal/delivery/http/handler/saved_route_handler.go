package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tollgate-service/internal/pkg/errors"
	"github.com/tollgate-service/internal/pkg/utils"
	"github.com/tollgate-service/internal/pkg/validator"
	"github.com/tollgate-service/internal/usecase"
	"github.com/tollgate-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// SavedRouteHandler serves the saved route registry.
type SavedRouteHandler struct {
	savedRouteUC *usecase.SavedRouteUseCase
	logger       *zap.Logger
}

func NewSavedRouteHandler(savedRouteUC *usecase.SavedRouteUseCase, logger *zap.Logger) *SavedRouteHandler {
	return &SavedRouteHandler{
		savedRouteUC: savedRouteUC,
		logger:       logger,
	}
}

// Create godoc
// @Summary Save a reusable route
// @Description Stores toll gate ids only; cost is recomputed on each use
// @Tags SavedRoutes
// @Accept json
// @Produce json
// @Param request body dto.CreateSavedRouteRequest true "Route fields"
// @Success 200 {object} utils.SuccessResponse{data=domain.SavedRoute}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/saved-routes [post]
func (h *SavedRouteHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSavedRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	route, err := h.savedRouteUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, route, nil)
}

// ListByUser godoc
// @Summary List a user's saved routes
// @Tags SavedRoutes
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.SavedRoute}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/saved-routes/{userId} [get]
func (h *SavedRouteHandler) ListByUser(c *fiber.Ctx) error {
	routes, err := h.savedRouteUC.ListByUser(c.Context(), c.Params("userId"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, routes, &utils.Meta{Total: len(routes)})
}

// Delete godoc
// @Summary Delete a saved route
// @Description Idempotent; deleting an unknown id still reports success
// @Tags SavedRoutes
// @Produce json
// @Param id path int true "Saved route id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/saved-routes/{id} [delete]
func (h *SavedRouteHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidSavedRouteID)
	}

	if err := h.savedRouteUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
