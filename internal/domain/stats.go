package domain

import "fmt"

// OverallStats aggregates total_cost over a (possibly filtered) trip set.
// All values are 0 when the set is empty.
type OverallStats struct {
	TotalTrips int64   `json:"total_trips" db:"total_trips"`
	TotalSpent float64 `json:"total_spent" db:"total_spent"`
	AvgCost    float64 `json:"avg_cost" db:"avg_cost"`
	MinCost    float64 `json:"min_cost" db:"min_cost"`
	MaxCost    float64 `json:"max_cost" db:"max_cost"`
}

// MonthlyStat is one YYYY-MM bucket of a user's trip history.
type MonthlyStat struct {
	Month string  `json:"month" db:"month"`
	Trips int64   `json:"trips" db:"trips"`
	Spent float64 `json:"spent" db:"spent"`
}

// TripStats is the derived read model returned by the statistics endpoint.
// Monthly always covers the trailing 12 buckets regardless of the filter
// applied to Overall.
type TripStats struct {
	Overall OverallStats  `json:"overall"`
	Monthly []MonthlyStat `json:"monthly"`
}

// MonthKey builds the YYYY-MM bucket key, zero-padding single digit months.
func MonthKey(year string, month int) string {
	return fmt.Sprintf("%s-%02d", year, month)
}
