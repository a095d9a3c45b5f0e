package domain

// TollGateFeeEntry is a toll gate enriched with the fee for one specific
// vehicle class. Trips persist these entries as a snapshot, so historical
// costs never change when the catalogue is re-priced.
type TollGateFeeEntry struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Route    string  `json:"route"`
	Location string  `json:"location"`
	Fee      float64 `json:"fee"`
}

// RouteCalculation is the derived cost breakdown for traversing a set of
// toll gates with a given vehicle class. Never persisted.
type RouteCalculation struct {
	TollGates []TollGateFeeEntry `json:"tollgates"`
	TotalCost float64            `json:"totalCost"`
	Count     int                `json:"count"`
}
