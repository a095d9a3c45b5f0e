package repository

import (
	"context"

	"github.com/tollgate-service/internal/domain"
)

// SavedRouteRepository persists named, reusable toll gate id sets.
type SavedRouteRepository interface {
	// Create inserts the route and returns it with id and created_at set.
	Create(ctx context.Context, route *domain.SavedRoute) (*domain.SavedRoute, error)

	// ListByUser returns the user's routes ordered by created_at descending.
	ListByUser(ctx context.Context, userID string) ([]domain.SavedRoute, error)

	// Delete removes a route by id. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id int64) error
}
