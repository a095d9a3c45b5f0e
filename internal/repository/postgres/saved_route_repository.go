package postgres

import (
	"context"
	"encoding/json"

	"github.com/tollgate-service/internal/domain"
	"github.com/tollgate-service/internal/domain/repository"
	"github.com/tollgate-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type savedRouteRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewSavedRouteRepository(db *DB) repository.SavedRouteRepository {
	return &savedRouteRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *savedRouteRepository) Create(ctx context.Context, route *domain.SavedRoute) (*domain.SavedRoute, error) {
	if route.TollGates == nil {
		route.TollGates = []int64{}
	}
	gates, err := json.Marshal(route.TollGates)
	if err != nil {
		r.logger.Error("Failed to encode toll gate ids", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	query := `
		INSERT INTO saved_routes (user_id, name, start_location, end_location, toll_gates)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err = r.db.QueryRowContext(ctx, query,
		route.UserID, route.Name, route.StartLocation, route.EndLocation, gates,
	).Scan(&route.ID, &route.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create saved route", zap.String("user_id", route.UserID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return route, nil
}

func (r *savedRouteRepository) ListByUser(ctx context.Context, userID string) ([]domain.SavedRoute, error) {
	query := `
		SELECT id, user_id, name, start_location, end_location, toll_gates, created_at
		FROM saved_routes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list saved routes", zap.String("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	routes := []domain.SavedRoute{}
	for rows.Next() {
		var sr domain.SavedRoute
		var gates []byte

		err := rows.Scan(
			&sr.ID, &sr.UserID, &sr.Name, &sr.StartLocation, &sr.EndLocation,
			&gates, &sr.CreatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan saved route", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}

		if err := json.Unmarshal(gates, &sr.TollGates); err != nil {
			r.logger.Error("Failed to decode toll gate ids", zap.Int64("route_id", sr.ID), zap.Error(err))
			return nil, errors.ErrDatabaseError
		}

		routes = append(routes, sr)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Saved route rows error", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return routes, nil
}

func (r *savedRouteRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM saved_routes WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to delete saved route", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		r.logger.Debug("Delete matched no saved route", zap.Int64("id", id))
	}

	return nil
}
