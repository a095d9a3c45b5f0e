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

// TripHandler serves the trip ledger and its statistics.
type TripHandler struct {
	tripUC *usecase.TripUseCase
	logger *zap.Logger
}

func NewTripHandler(tripUC *usecase.TripUseCase, logger *zap.Logger) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
		logger: logger,
	}
}

// Create godoc
// @Summary Record a completed trip
// @Description Persists a trip with the client's computed cost snapshot. The snapshot is stored as-is and never recomputed.
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body dto.CreateTripRequest true "Trip fields"
// @Success 200 {object} utils.SuccessResponse{data=domain.Trip}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/trips [post]
func (h *TripHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTripRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	trip, err := h.tripUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, trip, nil)
}

// ListByUser godoc
// @Summary List a user's trips
// @Tags Trips
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Trip}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/trips/{userId} [get]
func (h *TripHandler) ListByUser(c *fiber.Ctx) error {
	trips, err := h.tripUC.ListByUser(c.Context(), c.Params("userId"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, trips, &utils.Meta{Total: len(trips)})
}

// Stats godoc
// @Summary Trip statistics
// @Description Overall aggregates honor the optional year/month filter; the monthly block always shows the trailing 12 months.
// @Tags Trips
// @Produce json
// @Param userId path string true "User id"
// @Param year query string false "Filter year (YYYY)"
// @Param month query string false "Filter month (1-12), requires year"
// @Success 200 {object} utils.SuccessResponse{data=domain.TripStats}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/trips/{userId}/stats [get]
func (h *TripHandler) Stats(c *fiber.Ctx) error {
	req := dto.TripStatsRequest{
		UserID: c.Params("userId"),
		Year:   c.Query("year"),
		Month:  c.Query("month"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidStatsFilter)
	}

	stats, err := h.tripUC.Stats(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}

// Delete godoc
// @Summary Delete a trip
// @Description Idempotent; deleting an unknown id still reports success
// @Tags Trips
// @Produce json
// @Param id path int true "Trip id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/trips/{id} [delete]
func (h *TripHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidTripID)
	}

	if err := h.tripUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
