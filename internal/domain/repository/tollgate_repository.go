package repository

import (
	"context"

	"github.com/tollgate-service/internal/domain"
)

// TollGateRepository provides read access to the toll gate catalogue.
// The catalogue is seeded once at store initialization and is read-only
// through the public API.
type TollGateRepository interface {
	// ListAll returns the full catalogue ordered by (route, name).
	ListAll(ctx context.Context) ([]domain.TollGate, error)

	// GetByID returns a single gate or ErrTollGateNotFound.
	GetByID(ctx context.Context, id int64) (*domain.TollGate, error)

	// Search returns gates whose name, route or location contains the query
	// as a case-insensitive substring, ordered by (route, name).
	Search(ctx context.Context, query string) ([]domain.TollGate, error)

	// GetByIDs resolves a set of ids, ordered by (route, name). Unknown ids
	// are absent from the result and duplicates collapse to one row.
	GetByIDs(ctx context.Context, ids []int64) ([]domain.TollGate, error)
}
