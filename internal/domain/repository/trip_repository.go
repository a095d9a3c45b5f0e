package repository

import (
	"context"

	"github.com/tollgate-service/internal/domain"
)

// TripRepository persists the append-only trip ledger.
type TripRepository interface {
	// Create inserts the trip and returns it with its assigned id.
	Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)

	// ListByUser returns the user's trips ordered by date descending.
	ListByUser(ctx context.Context, userID string) ([]domain.Trip, error)

	// Delete removes a trip by id and returns the owner's user id, or an
	// empty string when nothing matched. Deleting an unknown id is not an
	// error.
	Delete(ctx context.Context, id int64) (string, error)

	// OverallStats aggregates total_cost over the user's trips, optionally
	// filtered by year or exact year-month. Empty filters mean no filter.
	OverallStats(ctx context.Context, userID, monthKey, year string) (*domain.OverallStats, error)

	// MonthlyStats groups all of the user's trips by YYYY-MM, most recent
	// first, truncated to limit buckets.
	MonthlyStats(ctx context.Context, userID string, limit int) ([]domain.MonthlyStat, error)
}
