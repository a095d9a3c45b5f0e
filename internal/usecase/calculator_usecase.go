package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/tollgate-service/internal/domain"
	"github.com/tollgate-service/internal/domain/repository"
	"github.com/tollgate-service/internal/pkg/errors"
	"github.com/tollgate-service/internal/usecase/dto"
)

// CalculatorUseCase computes route costs. It is a pure function of the
// catalogue and its inputs; nothing is written.
type CalculatorUseCase struct {
	tollGateRepo repository.TollGateRepository
	logger       *zap.Logger
}

func NewCalculatorUseCase(
	tollGateRepo repository.TollGateRepository,
	logger *zap.Logger,
) *CalculatorUseCase {
	return &CalculatorUseCase{
		tollGateRepo: tollGateRepo,
		logger:       logger,
	}
}

// Calculate resolves the requested gates and sums the fee for the vehicle
// class. Unknown ids are dropped silently and duplicate ids collapse to one
// entry; entries come back in catalogue order (route, name).
func (uc *CalculatorUseCase) Calculate(ctx context.Context, req dto.CalculateRouteRequest) (*dto.RouteCalculationResponse, error) {
	class := domain.VehicleClass(req.VehicleClass)
	if !class.Valid() {
		return nil, errors.ErrInvalidVehicleClass
	}

	// Valid degenerate case, no catalogue lookup needed.
	if len(req.TollGateIDs) == 0 {
		return &dto.RouteCalculationResponse{
			RouteCalculation: domain.RouteCalculation{
				TollGates: []domain.TollGateFeeEntry{},
			},
			VehicleClass: req.VehicleClass,
		}, nil
	}

	gates, err := uc.tollGateRepo.GetByIDs(ctx, req.TollGateIDs)
	if err != nil {
		uc.logger.Error("Failed to resolve toll gates", zap.Error(err))
		return nil, err
	}

	entries := make([]domain.TollGateFeeEntry, 0, len(gates))
	var total float64
	for _, g := range gates {
		fee := g.Fees().ForClass(class)
		entries = append(entries, domain.TollGateFeeEntry{
			ID:       g.ID,
			Name:     g.Name,
			Route:    g.Route,
			Location: g.Location,
			Fee:      fee,
		})
		total += fee
	}

	return &dto.RouteCalculationResponse{
		RouteCalculation: domain.RouteCalculation{
			TollGates: entries,
			TotalCost: total,
			Count:     len(entries),
		},
		VehicleClass: req.VehicleClass,
	}, nil
}
