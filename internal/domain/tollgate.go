package domain

// VehicleClass categorizes vehicles by size and weight. Each class has its
// own fee at every toll gate.
type VehicleClass int

const (
	ClassLight        VehicleClass = 1 // motorcycles and light vehicles
	ClassLightTrailer VehicleClass = 2 // light vehicles with trailer
	ClassMedium       VehicleClass = 3 // medium commercial
	ClassHeavy        VehicleClass = 4 // heavy commercial
)

func (c VehicleClass) Valid() bool {
	return c >= ClassLight && c <= ClassHeavy
}

// FeeSchedule holds the fee for each vehicle class, indexed by class.
type FeeSchedule [4]float64

// ForClass returns the fee for the given class. Callers must validate the
// class first; an out-of-range class yields 0.
func (f FeeSchedule) ForClass(c VehicleClass) float64 {
	if !c.Valid() {
		return 0
	}
	return f[c-1]
}

type TollGate struct {
	ID        int64    `json:"id" db:"id"`
	Name      string   `json:"name" db:"name"`
	Route     string   `json:"route" db:"route"`
	Location  string   `json:"location" db:"location"`
	Latitude  *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude *float64 `json:"longitude,omitempty" db:"longitude"`
	Class1Fee float64  `json:"class1_fee" db:"class1_fee"`
	Class2Fee float64  `json:"class2_fee" db:"class2_fee"`
	Class3Fee float64  `json:"class3_fee" db:"class3_fee"`
	Class4Fee float64  `json:"class4_fee" db:"class4_fee"`
	Direction *string  `json:"direction,omitempty" db:"direction"`
}

// Fees returns the gate's fee schedule as a typed array so fee lookup is
// indexed by class instead of going through a column name.
func (t *TollGate) Fees() FeeSchedule {
	return FeeSchedule{t.Class1Fee, t.Class2Fee, t.Class3Fee, t.Class4Fee}
}
