package errors

import "net/http"

var (
	ErrTollGateNotFound = New(
		"TOLL_GATE_NOT_FOUND",
		"Toll gate not found",
		http.StatusNotFound,
	)

	ErrInvalidVehicleClass = New(
		"INVALID_VEHICLE_CLASS",
		"Vehicle class must be between 1 and 4",
		http.StatusBadRequest,
	)

	ErrInvalidTollGateID = New(
		"INVALID_TOLL_GATE_ID",
		"Invalid toll gate ID",
		http.StatusBadRequest,
	)

	ErrInvalidTripID = New(
		"INVALID_TRIP_ID",
		"Invalid trip ID",
		http.StatusBadRequest,
	)

	ErrInvalidSavedRouteID = New(
		"INVALID_SAVED_ROUTE_ID",
		"Invalid saved route ID",
		http.StatusBadRequest,
	)

	ErrInvalidStatsFilter = New(
		"INVALID_STATS_FILTER",
		"Invalid year or month filter",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
