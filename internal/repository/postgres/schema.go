package postgres

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS toll_gates (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	route TEXT NOT NULL,
	location TEXT NOT NULL,
	latitude DOUBLE PRECISION,
	longitude DOUBLE PRECISION,
	class1_fee DOUBLE PRECISION NOT NULL,
	class2_fee DOUBLE PRECISION NOT NULL,
	class3_fee DOUBLE PRECISION NOT NULL,
	class4_fee DOUBLE PRECISION NOT NULL,
	direction TEXT
);

CREATE TABLE IF NOT EXISTS trips (
	id BIGSERIAL PRIMARY KEY,
	user_id TEXT NOT NULL,
	start_location TEXT NOT NULL,
	end_location TEXT NOT NULL,
	route_name TEXT,
	vehicle_class INTEGER NOT NULL,
	total_cost DOUBLE PRECISION NOT NULL,
	toll_gates_passed JSONB NOT NULL,
	date TEXT NOT NULL,
	notes TEXT
);

CREATE INDEX IF NOT EXISTS idx_trips_user_date ON trips (user_id, date DESC);

CREATE TABLE IF NOT EXISTS saved_routes (
	id BIGSERIAL PRIMARY KEY,
	user_id TEXT NOT NULL,
	name TEXT NOT NULL,
	start_location TEXT NOT NULL,
	end_location TEXT NOT NULL,
	toll_gates JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_saved_routes_user ON saved_routes (user_id, created_at DESC);
`

// Migrate creates the service tables when they do not exist yet. Safe to run
// on every startup.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	db.logger.Info("Database schema ready")
	return nil
}
