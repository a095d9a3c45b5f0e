package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tollgate-service/internal/pkg/errors"
	"github.com/tollgate-service/internal/pkg/utils"
	"github.com/tollgate-service/internal/usecase"
	"go.uber.org/zap"
)

// TollGateHandler serves the read-only toll gate catalogue.
type TollGateHandler struct {
	tollGateUC *usecase.TollGateUseCase
	logger     *zap.Logger
}

func NewTollGateHandler(tollGateUC *usecase.TollGateUseCase, logger *zap.Logger) *TollGateHandler {
	return &TollGateHandler{
		tollGateUC: tollGateUC,
		logger:     logger,
	}
}

// List godoc
// @Summary List all toll gates
// @Description Returns the full catalogue ordered by route and name
// @Tags TollGates
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.TollGate}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/tollgates [get]
func (h *TollGateHandler) List(c *fiber.Ctx) error {
	gates, err := h.tollGateUC.ListAll(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, gates, &utils.Meta{Total: len(gates)})
}

// GetByID godoc
// @Summary Get a toll gate by id
// @Tags TollGates
// @Produce json
// @Param id path int true "Toll gate id"
// @Success 200 {object} utils.SuccessResponse{data=domain.TollGate}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/tollgates/{id} [get]
func (h *TollGateHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidTollGateID)
	}

	gate, err := h.tollGateUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, gate, nil)
}

// Search godoc
// @Summary Search toll gates
// @Description Case-insensitive substring match over name, route and location
// @Tags TollGates
// @Produce json
// @Param query path string true "Search text"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.TollGate}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/tollgates/search/{query} [get]
func (h *TollGateHandler) Search(c *fiber.Ctx) error {
	query, err := unescapeParam(c.Params("query"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	gates, err := h.tollGateUC.Search(c.Context(), query)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, gates, &utils.Meta{Total: len(gates)})
}
