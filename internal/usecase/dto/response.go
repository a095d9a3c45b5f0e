package dto

import "github.com/tollgate-service/internal/domain"

// RouteCalculationResponse is the calculation breakdown plus the requested
// vehicle class echoed back for the caller's display.
type RouteCalculationResponse struct {
	domain.RouteCalculation
	VehicleClass int `json:"vehicleClass"`
}
