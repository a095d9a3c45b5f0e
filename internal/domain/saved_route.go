package domain

import "time"

// SavedRoute is a named, reusable set of toll gate ids. Only ids are stored,
// never fees, so re-using a route always reflects current pricing.
type SavedRoute struct {
	ID            int64     `json:"id" db:"id"`
	UserID        string    `json:"user_id" db:"user_id"`
	Name          string    `json:"name" db:"name"`
	StartLocation string    `json:"start_location" db:"start_location"`
	EndLocation   string    `json:"end_location" db:"end_location"`
	TollGates     []int64   `json:"toll_gates" db:"-"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
