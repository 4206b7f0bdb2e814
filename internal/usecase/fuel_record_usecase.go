package usecase

import (
	"context"
	"time"
)

// CreateFuelRecordInput defines the data required to record a refueling.
type CreateFuelRecordInput struct {
	UserID        int64
	VehicleID     int64
	FillDate      time.Time
	PricePerLiter float64
	LitersFilled  float64
}

// UpdateFuelRecordInput carries a partial update. Nil fields are left unchanged.
type UpdateFuelRecordInput struct {
	UserID        int64
	ID            int64
	FillDate      *time.Time
	PricePerLiter *float64
	LitersFilled  *float64
}

// ListFuelRecordsInput defines the paginated listing request for one vehicle.
type ListFuelRecordsInput struct {
	UserID    int64
	VehicleID int64
	Page      int
	Limit     int
}

// FuelRecordDTO is the public shape of a fuel record.
// TotalCost is derived from price and volume at read time.
type FuelRecordDTO struct {
	ID            int64     `json:"id"`
	VehicleID     int64     `json:"vehicle_id"`
	FillDate      string    `json:"fill_date"`
	PricePerLiter float64   `json:"price_per_liter"`
	LitersFilled  float64   `json:"liters_filled"`
	TotalCost     float64   `json:"total_cost"`
	CreatedAt     time.Time `json:"created_at"`
}

// FuelRecordListOutput returns one page of fuel records plus the page summary.
type FuelRecordListOutput struct {
	Items      []*FuelRecordDTO
	Pagination Pagination
}

// FuelRecordUsecase defines the interface for fuel tracking operations.
type FuelRecordUsecase interface {
	CreateFuelRecord(ctx context.Context, input *CreateFuelRecordInput) (*FuelRecordDTO, error)
	ListFuelRecords(ctx context.Context, input *ListFuelRecordsInput) (*FuelRecordListOutput, error)
	GetFuelRecord(ctx context.Context, userID, id int64) (*FuelRecordDTO, error)
	UpdateFuelRecord(ctx context.Context, input *UpdateFuelRecordInput) (*FuelRecordDTO, error)
	DeleteFuelRecord(ctx context.Context, userID, id int64) error
}
