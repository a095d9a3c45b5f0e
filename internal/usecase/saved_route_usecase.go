package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/tollgate-service/internal/domain"
	"github.com/tollgate-service/internal/domain/repository"
	"github.com/tollgate-service/internal/pkg/errors"
	"github.com/tollgate-service/internal/usecase/dto"
)

// SavedRouteUseCase manages named toll gate id sets. Routes keep ids only;
// cost is recomputed through the calculator each time a route is used.
type SavedRouteUseCase struct {
	savedRouteRepo repository.SavedRouteRepository
	logger         *zap.Logger
}

func NewSavedRouteUseCase(
	savedRouteRepo repository.SavedRouteRepository,
	logger *zap.Logger,
) *SavedRouteUseCase {
	return &SavedRouteUseCase{
		savedRouteRepo: savedRouteRepo,
		logger:         logger,
	}
}

func (uc *SavedRouteUseCase) Create(ctx context.Context, req dto.CreateSavedRouteRequest) (*domain.SavedRoute, error) {
	route := &domain.SavedRoute{
		UserID:        req.UserID,
		Name:          req.Name,
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
		TollGates:     req.TollGates,
	}

	created, err := uc.savedRouteRepo.Create(ctx, route)
	if err != nil {
		uc.logger.Error("Failed to create saved route", zap.String("user_id", req.UserID), zap.Error(err))
		return nil, err
	}

	return created, nil
}

func (uc *SavedRouteUseCase) ListByUser(ctx context.Context, userID string) ([]domain.SavedRoute, error) {
	if userID == "" {
		return nil, errors.ErrInvalidRequest
	}
	return uc.savedRouteRepo.ListByUser(ctx, userID)
}

// Delete removes a saved route by id; unknown ids report success.
func (uc *SavedRouteUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return errors.ErrInvalidSavedRouteID
	}
	return uc.savedRouteRepo.Delete(ctx, id)
}
