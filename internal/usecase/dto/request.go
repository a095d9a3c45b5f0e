package dto

import "github.com/tollgate-service/internal/domain"

// CalculateRouteRequest asks for the cost of traversing a set of toll gates
// with one vehicle class. An empty id list is valid and yields a zero result.
type CalculateRouteRequest struct {
	TollGateIDs  []int64 `json:"tollGateIds" validate:"omitempty,dive,min=1"`
	VehicleClass int     `json:"vehicleClass" validate:"required,min=1,max=4"`
}

// CreateTripRequest carries a completed trip. TotalCost and TollGatesPassed
// are the client's previously computed calculation and are persisted as-is.
type CreateTripRequest struct {
	UserID          string                    `json:"user_id" validate:"required"`
	StartLocation   string                    `json:"start_location" validate:"required"`
	EndLocation     string                    `json:"end_location" validate:"required"`
	RouteName       *string                   `json:"route_name"`
	VehicleClass    int                       `json:"vehicle_class" validate:"required,min=1,max=4"`
	TotalCost       float64                   `json:"total_cost" validate:"min=0"`
	TollGatesPassed []domain.TollGateFeeEntry `json:"toll_gates_passed"`
	Date            string                    `json:"date" validate:"required,datetime=2006-01-02"`
	Notes           *string                   `json:"notes"`
}

// CreateSavedRouteRequest names a reusable set of toll gate ids.
type CreateSavedRouteRequest struct {
	UserID        string  `json:"user_id" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	StartLocation string  `json:"start_location" validate:"required"`
	EndLocation   string  `json:"end_location" validate:"required"`
	TollGates     []int64 `json:"toll_gates" validate:"required,min=1,dive,min=1"`
}

// TripStatsRequest filters the overall aggregates. Month is only applied
// together with a year; the monthly trend ignores both.
type TripStatsRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Year   string `json:"year" validate:"omitempty,len=4,numeric"`
	Month  string `json:"month" validate:"omitempty,numeric"`
}
