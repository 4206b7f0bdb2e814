package postgres

import (
	"context"
	"testing"

	"garage/internal/domain/entity"
	"garage/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuelRecordRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewFuelRecordRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	vehicle := createTestVehicle(t, db, owner.ID, "Family Car", "")

	record := &entity.FuelRecord{
		VehicleID:     vehicle.ID,
		FillDate:      date("2026-04-05"),
		PricePerLiter: 1.859,
		LitersFilled:  42.5,
	}
	require.NoError(t, repo.Create(ctx, record))
	assert.Positive(t, record.ID)

	found, err := repo.FindByID(ctx, record.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, vehicle.ID, found.VehicleID)
	assert.InDelta(t, 1.859, found.PricePerLiter, 1e-9)
	assert.InDelta(t, 42.5, found.LitersFilled, 1e-9)
	assert.InDelta(t, 79.0075, found.TotalCost(), 1e-6)
}

func TestFuelRecordRepository_Create_MissingVehicle(t *testing.T) {
	db := newTestDB(t)
	repo := NewFuelRecordRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, &entity.FuelRecord{
		VehicleID:     9999,
		FillDate:      date("2026-04-05"),
		PricePerLiter: 1.8,
		LitersFilled:  10,
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFuelRecordRepository_ListByVehicle_NewestFillFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewFuelRecordRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	vehicle := createTestVehicle(t, db, owner.ID, "Family Car", "")

	older := &entity.FuelRecord{VehicleID: vehicle.ID, FillDate: date("2026-02-01"), PricePerLiter: 1.7, LitersFilled: 30}
	newer := &entity.FuelRecord{VehicleID: vehicle.ID, FillDate: date("2026-04-01"), PricePerLiter: 1.9, LitersFilled: 35}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	records, total, err := repo.ListByVehicle(ctx, vehicle.ID, owner.ID, repository.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, records, 2)
	assert.Equal(t, newer.ID, records[0].ID)
	assert.Equal(t, older.ID, records[1].ID)
}

func TestFuelRecordRepository_Update_OtherTenant(t *testing.T) {
	db := newTestDB(t)
	repo := NewFuelRecordRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	vehicle := createTestVehicle(t, db, owner.ID, "Family Car", "")

	record := &entity.FuelRecord{VehicleID: vehicle.ID, FillDate: date("2026-04-05"), PricePerLiter: 1.8, LitersFilled: 40}
	require.NoError(t, repo.Create(ctx, record))

	newPrice := 2.0
	_, err := repo.Update(ctx, record.ID, other.ID, repository.FuelRecordChanges{PricePerLiter: &newPrice})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFuelRecordRepository_Update_Partial(t *testing.T) {
	db := newTestDB(t)
	repo := NewFuelRecordRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	vehicle := createTestVehicle(t, db, owner.ID, "Family Car", "")

	record := &entity.FuelRecord{VehicleID: vehicle.ID, FillDate: date("2026-04-05"), PricePerLiter: 1.8, LitersFilled: 40}
	require.NoError(t, repo.Create(ctx, record))

	newLiters := 45.0
	updated, err := repo.Update(ctx, record.ID, owner.ID, repository.FuelRecordChanges{LitersFilled: &newLiters})
	require.NoError(t, err)
	assert.InDelta(t, 45.0, updated.LitersFilled, 1e-9)
	assert.InDelta(t, 1.8, updated.PricePerLiter, 1e-9)
	assert.Equal(t, "2026-04-05", updated.FillDate.Format("2006-01-02"))
}

func TestFuelRecordRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewFuelRecordRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	vehicle := createTestVehicle(t, db, owner.ID, "Family Car", "")

	record := &entity.FuelRecord{VehicleID: vehicle.ID, FillDate: date("2026-04-05"), PricePerLiter: 1.8, LitersFilled: 40}
	require.NoError(t, repo.Create(ctx, record))

	require.NoError(t, repo.Delete(ctx, record.ID, owner.ID))
	_, err := repo.FindByID(ctx, record.ID, owner.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
