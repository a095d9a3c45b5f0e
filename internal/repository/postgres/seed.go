package postgres

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

//go:embed tollgates.json
var seedData []byte

// seedTollGate mirrors the seed dataset format: name, route, location,
// optional coordinates, the four class fees and an optional direction.
type seedTollGate struct {
	Name     string   `json:"name"`
	Route    string   `json:"route"`
	Location string   `json:"location"`
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
	C1       float64  `json:"c1"`
	C2       float64  `json:"c2"`
	C3       float64  `json:"c3"`
	C4       float64  `json:"c4"`
	Dir      *string  `json:"dir"`
}

// SeedTollGates loads the embedded catalogue into an empty toll_gates table.
// Re-running against a populated store is a no-op, so restarts never
// duplicate rows.
func (db *DB) SeedTollGates(ctx context.Context) error {
	var count int
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM toll_gates"); err != nil {
		return fmt.Errorf("count toll gates: %w", err)
	}
	if count > 0 {
		db.logger.Debug("Toll gate catalogue already seeded", zap.Int("count", count))
		return nil
	}

	var gates []seedTollGate
	if err := json.Unmarshal(seedData, &gates); err != nil {
		return fmt.Errorf("parse seed dataset: %w", err)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	const insert = `
		INSERT INTO toll_gates
			(name, route, location, latitude, longitude, class1_fee, class2_fee, class3_fee, class4_fee, direction)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	for _, tg := range gates {
		if _, err := tx.ExecContext(ctx, insert,
			tg.Name, tg.Route, tg.Location, tg.Lat, tg.Lng,
			tg.C1, tg.C2, tg.C3, tg.C4, tg.Dir,
		); err != nil {
			return fmt.Errorf("seed toll gate %q: %w", tg.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}

	db.logger.Info("Toll gate catalogue seeded", zap.Int("count", len(gates)))
	return nil
}
