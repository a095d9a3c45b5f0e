package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tollgate-service/internal/pkg/errors"
	"github.com/tollgate-service/internal/pkg/utils"
	"github.com/tollgate-service/internal/pkg/validator"
	"github.com/tollgate-service/internal/usecase"
	"github.com/tollgate-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// CalculateHandler exposes the route cost calculator.
type CalculateHandler struct {
	calculatorUC *usecase.CalculatorUseCase
	logger       *zap.Logger
}

func NewCalculateHandler(calculatorUC *usecase.CalculatorUseCase, logger *zap.Logger) *CalculateHandler {
	return &CalculateHandler{
		calculatorUC: calculatorUC,
		logger:       logger,
	}
}

// Calculate godoc
// @Summary Calculate route cost
// @Description Resolves the given toll gates and sums the fee for the vehicle class. Unknown ids are dropped silently.
// @Tags Calculator
// @Accept json
// @Produce json
// @Param request body dto.CalculateRouteRequest true "Toll gate ids and vehicle class"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteCalculationResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/calculate-route [post]
func (h *CalculateHandler) Calculate(c *fiber.Ctx) error {
	var req dto.CalculateRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.calculatorUC.Calculate(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
