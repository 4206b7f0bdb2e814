package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// CreateVehicleInput defines the data required to create a vehicle.
type CreateVehicleInput struct {
	UserID       int64
	Name         string
	LicensePlate string
}

// ListVehiclesInput defines the scoped, filtered, paginated vehicle listing request.
// Page and Limit arrive validated and defaulted by the delivery layer.
type ListVehiclesInput struct {
	UserID int64
	Search string
	Page   int
	Limit  int
}

// --- Output DTOs ---

// VehicleDTO is the public shape of a vehicle.
type VehicleDTO struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	LicensePlate string    `json:"license_plate,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// VehicleListOutput returns one page of vehicles plus the page summary.
type VehicleListOutput struct {
	Items      []*VehicleDTO
	Pagination Pagination
}

// VehicleUsecase defines the interface for vehicle-related business operations.
type VehicleUsecase interface {
	CreateVehicle(ctx context.Context, input *CreateVehicleInput) (*VehicleDTO, error)
	ListVehicles(ctx context.Context, input *ListVehiclesInput) (*VehicleListOutput, error)
	GetVehicle(ctx context.Context, userID, id int64) (*VehicleDTO, error)
	DeleteVehicle(ctx context.Context, userID, id int64) error
}
