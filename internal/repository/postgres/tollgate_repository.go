package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"

	"github.com/lib/pq"
	"github.com/tollgate-service/internal/domain"
	"github.com/tollgate-service/internal/domain/repository"
	"github.com/tollgate-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type tollGateRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewTollGateRepository(db *DB) repository.TollGateRepository {
	return &tollGateRepository{
		db:     db,
		logger: db.logger,
	}
}

const tollGateColumns = `
	id, name, route, location, latitude, longitude,
	class1_fee, class2_fee, class3_fee, class4_fee, direction
`

func (r *tollGateRepository) ListAll(ctx context.Context) ([]domain.TollGate, error) {
	query := `SELECT ` + tollGateColumns + ` FROM toll_gates ORDER BY route, name`

	gates := []domain.TollGate{}
	if err := r.db.SelectContext(ctx, &gates, query); err != nil {
		r.logger.Error("Failed to list toll gates", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return gates, nil
}

func (r *tollGateRepository) GetByID(ctx context.Context, id int64) (*domain.TollGate, error) {
	query := `SELECT ` + tollGateColumns + ` FROM toll_gates WHERE id = $1`

	var gate domain.TollGate
	err := r.db.GetContext(ctx, &gate, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrTollGateNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get toll gate", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &gate, nil
}

func (r *tollGateRepository) Search(ctx context.Context, query string) ([]domain.TollGate, error) {
	// Empty query means no filter, consistent with the stats endpoint.
	if strings.TrimSpace(query) == "" {
		return r.ListAll(ctx)
	}

	stmt := `
		SELECT ` + tollGateColumns + `
		FROM toll_gates
		WHERE name ILIKE $1 OR route ILIKE $1 OR location ILIKE $1
		ORDER BY route, name
	`
	pattern := "%" + query + "%"

	gates := []domain.TollGate{}
	if err := r.db.SelectContext(ctx, &gates, stmt, pattern); err != nil {
		r.logger.Error("Failed to search toll gates", zap.String("query", query), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return gates, nil
}

func (r *tollGateRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.TollGate, error) {
	if len(ids) == 0 {
		return []domain.TollGate{}, nil
	}

	// Duplicate ids collapse to one row here; unknown ids are simply absent.
	query := `
		SELECT id, name, route, location, class1_fee, class2_fee, class3_fee, class4_fee
		FROM toll_gates
		WHERE id = ANY($1)
		ORDER BY route, name
	`

	gates := []domain.TollGate{}
	if err := r.db.SelectContext(ctx, &gates, query, pq.Array(ids)); err != nil {
		r.logger.Error("Failed to get toll gates by ids", zap.Int("requested", len(ids)), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return gates, nil
}
