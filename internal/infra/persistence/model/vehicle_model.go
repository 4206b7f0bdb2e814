package model

import "time"

// VehicleModel mirrors the 'vehicles' table. The cascade constraints on the
// child associations make orphaned oil changes and fuel records impossible:
// the store, not application logic, removes them with their vehicle.
type VehicleModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	UserID       int64  `gorm:"not null;index"`
	Name         string `gorm:"type:varchar(100);not null"`
	LicensePlate string `gorm:"type:varchar(20)"`
	CreatedAt    time.Time

	OilChanges  []OilChangeModel  `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
	FuelRecords []FuelRecordModel `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (VehicleModel) TableName() string {
	return "vehicles"
}

// OilChangeModel mirrors the 'oil_changes' table.
type OilChangeModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	VehicleID  int64     `gorm:"not null;index"`
	ChangeDate time.Time `gorm:"type:date;not null"`
	Mileage    int64     `gorm:"not null"`
	Notes      string    `gorm:"type:varchar(1000)"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OilChangeModel) TableName() string {
	return "oil_changes"
}

// FuelRecordModel mirrors the 'fuel_records' table.
type FuelRecordModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	VehicleID     int64     `gorm:"not null;index"`
	FillDate      time.Time `gorm:"type:date;not null"`
	PricePerLiter float64   `gorm:"type:numeric(10,3);not null"`
	LitersFilled  float64   `gorm:"type:numeric(10,3);not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (FuelRecordModel) TableName() string {
	return "fuel_records"
}
