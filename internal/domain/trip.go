package domain

// Trip is a historical record of a completed journey. TotalCost and
// TollGatesPassed are frozen at creation time and never recomputed.
type Trip struct {
	ID              int64              `json:"id" db:"id"`
	UserID          string             `json:"user_id" db:"user_id"`
	StartLocation   string             `json:"start_location" db:"start_location"`
	EndLocation     string             `json:"end_location" db:"end_location"`
	RouteName       *string            `json:"route_name,omitempty" db:"route_name"`
	VehicleClass    VehicleClass       `json:"vehicle_class" db:"vehicle_class"`
	TotalCost       float64            `json:"total_cost" db:"total_cost"`
	TollGatesPassed []TollGateFeeEntry `json:"toll_gates_passed" db:"-"`
	Date            string             `json:"date" db:"date"` // YYYY-MM-DD
	Notes           *string            `json:"notes,omitempty" db:"notes"`
}
