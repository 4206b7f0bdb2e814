package usecase

import (
	"context"
	"time"
)

// CreateOilChangeInput defines the data required to record an oil change.
type CreateOilChangeInput struct {
	UserID     int64
	VehicleID  int64
	ChangeDate time.Time
	Mileage    int64
	Notes      string
}

// UpdateOilChangeInput carries a partial update. Nil fields are left unchanged.
type UpdateOilChangeInput struct {
	UserID     int64
	ID         int64
	ChangeDate *time.Time
	Mileage    *int64
	Notes      *string
}

// ListOilChangesInput defines the paginated listing request for one vehicle.
type ListOilChangesInput struct {
	UserID    int64
	VehicleID int64
	Page      int
	Limit     int
}

// OilChangeDTO is the public shape of an oil change record.
// ChangeDate is rendered as a calendar date without a time component.
type OilChangeDTO struct {
	ID         int64     `json:"id"`
	VehicleID  int64     `json:"vehicle_id"`
	ChangeDate string    `json:"change_date"`
	Mileage    int64     `json:"mileage"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// OilChangeListOutput returns one page of oil changes plus the page summary.
type OilChangeListOutput struct {
	Items      []*OilChangeDTO
	Pagination Pagination
}

// OilChangeUsecase defines the interface for oil change maintenance operations.
type OilChangeUsecase interface {
	CreateOilChange(ctx context.Context, input *CreateOilChangeInput) (*OilChangeDTO, error)
	ListOilChanges(ctx context.Context, input *ListOilChangesInput) (*OilChangeListOutput, error)
	GetOilChange(ctx context.Context, userID, id int64) (*OilChangeDTO, error)
	UpdateOilChange(ctx context.Context, input *UpdateOilChangeInput) (*OilChangeDTO, error)
	DeleteOilChange(ctx context.Context, userID, id int64) error
}
