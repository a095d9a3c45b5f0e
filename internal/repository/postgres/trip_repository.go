package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"

	"github.com/tollgate-service/internal/domain"
	"github.com/tollgate-service/internal/domain/repository"
	"github.com/tollgate-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type tripRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewTripRepository(db *DB) repository.TripRepository {
	return &tripRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *tripRepository) Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	// The snapshot is stored as JSONB and decoded back at this boundary; the
	// rest of the service only ever sees []TollGateFeeEntry.
	if trip.TollGatesPassed == nil {
		trip.TollGatesPassed = []domain.TollGateFeeEntry{}
	}
	passed, err := json.Marshal(trip.TollGatesPassed)
	if err != nil {
		r.logger.Error("Failed to encode toll gate snapshot", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	query := `
		INSERT INTO trips
			(user_id, start_location, end_location, route_name, vehicle_class, total_cost, toll_gates_passed, date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err = r.db.QueryRowContext(ctx, query,
		trip.UserID, trip.StartLocation, trip.EndLocation, trip.RouteName,
		trip.VehicleClass, trip.TotalCost, passed, trip.Date, trip.Notes,
	).Scan(&trip.ID)
	if err != nil {
		r.logger.Error("Failed to create trip", zap.String("user_id", trip.UserID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return trip, nil
}

func (r *tripRepository) ListByUser(ctx context.Context, userID string) ([]domain.Trip, error) {
	query := `
		SELECT id, user_id, start_location, end_location, route_name,
		       vehicle_class, total_cost, toll_gates_passed, date, notes
		FROM trips
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list trips", zap.String("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		var t domain.Trip
		var passed []byte

		err := rows.Scan(
			&t.ID, &t.UserID, &t.StartLocation, &t.EndLocation, &t.RouteName,
			&t.VehicleClass, &t.TotalCost, &passed, &t.Date, &t.Notes,
		)
		if err != nil {
			r.logger.Error("Failed to scan trip", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}

		if err := json.Unmarshal(passed, &t.TollGatesPassed); err != nil {
			r.logger.Error("Failed to decode toll gate snapshot", zap.Int64("trip_id", t.ID), zap.Error(err))
			return nil, errors.ErrDatabaseError
		}

		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Trip rows error", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return trips, nil
}

func (r *tripRepository) Delete(ctx context.Context, id int64) (string, error) {
	query := `DELETE FROM trips WHERE id = $1 RETURNING user_id`

	var userID string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&userID)
	if stderrors.Is(err, sql.ErrNoRows) {
		// Nothing matched; deleting an unknown id is not an error.
		return "", nil
	}
	if err != nil {
		r.logger.Error("Failed to delete trip", zap.Int64("id", id), zap.Error(err))
		return "", errors.ErrDatabaseError
	}

	return userID, nil
}

func (r *tripRepository) OverallStats(ctx context.Context, userID, monthKey, year string) (*domain.OverallStats, error) {
	query := `
		SELECT COUNT(*)                      AS total_trips,
		       COALESCE(SUM(total_cost), 0) AS total_spent,
		       COALESCE(AVG(total_cost), 0) AS avg_cost,
		       COALESCE(MIN(total_cost), 0) AS min_cost,
		       COALESCE(MAX(total_cost), 0) AS max_cost
		FROM trips
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	// Dates are stored as YYYY-MM-DD, so the bucket filters are plain
	// prefix comparisons.
	switch {
	case monthKey != "":
		query += ` AND left(date, 7) = $2`
		args = append(args, monthKey)
	case year != "":
		query += ` AND left(date, 4) = $2`
		args = append(args, year)
	}

	var stats domain.OverallStats
	if err := r.db.GetContext(ctx, &stats, query, args...); err != nil {
		r.logger.Error("Failed to aggregate trip stats",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	return &stats, nil
}

func (r *tripRepository) MonthlyStats(ctx context.Context, userID string, limit int) ([]domain.MonthlyStat, error) {
	query := `
		SELECT left(date, 7)                AS month,
		       COUNT(*)                     AS trips,
		       COALESCE(SUM(total_cost), 0) AS spent
		FROM trips
		WHERE user_id = $1
		GROUP BY left(date, 7)
		ORDER BY month DESC
		LIMIT $2
	`

	stats := []domain.MonthlyStat{}
	if err := r.db.SelectContext(ctx, &stats, query, userID, limit); err != nil {
		r.logger.Error("Failed to aggregate monthly stats",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	return stats, nil
}
