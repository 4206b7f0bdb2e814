package entity

import "time"

// FuelRecord records a single refuelling for a vehicle, with the same
// transitive-ownership rule as OilChange.
type FuelRecord struct {
	ID            int64     // Server-assigned identifier.
	VehicleID     int64     // Parent vehicle.
	FillDate      time.Time // Calendar date of the fill-up.
	PricePerLiter float64   // Price per liter, strictly positive.
	LitersFilled  float64   // Volume filled, strictly positive.
	CreatedAt     time.Time // Timestamp of creation; tie-break for list ordering.
}

// TotalCost is the derived amount spent on the fill-up. It is computed on
// read and never stored.
func (f *FuelRecord) TotalCost() float64 {
	return f.PricePerLiter * f.LitersFilled
}
