package postgres

import (
	"context"
	"testing"

	"garage/internal/domain/entity"
	"garage/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOilChangeRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewOilChangeRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	vehicle := createTestVehicle(t, db, owner.ID, "Family Car", "")

	record := &entity.OilChange{
		VehicleID:  vehicle.ID,
		ChangeDate: date("2026-03-01"),
		Mileage:    42000,
		Notes:      "synthetic 5W-30",
	}
	require.NoError(t, repo.Create(ctx, record))
	assert.Positive(t, record.ID)

	found, err := repo.FindByID(ctx, record.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, vehicle.ID, found.VehicleID)
	assert.Equal(t, int64(42000), found.Mileage)
	assert.Equal(t, "synthetic 5W-30", found.Notes)
	assert.Equal(t, "2026-03-01", found.ChangeDate.Format("2006-01-02"))
}

func TestOilChangeRepository_Create_MissingVehicle(t *testing.T) {
	db := newTestDB(t)
	repo := NewOilChangeRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, &entity.OilChange{
		VehicleID:  9999,
		ChangeDate: date("2026-03-01"),
		Mileage:    1000,
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOilChangeRepository_FindByID_OtherTenant(t *testing.T) {
	db := newTestDB(t)
	repo := NewOilChangeRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	vehicle := createTestVehicle(t, db, owner.ID, "Family Car", "")

	record := &entity.OilChange{VehicleID: vehicle.ID, ChangeDate: date("2026-03-01"), Mileage: 42000}
	require.NoError(t, repo.Create(ctx, record))

	_, err := repo.FindByID(ctx, record.ID, other.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOilChangeRepository_ListByVehicle(t *testing.T) {
	db := newTestDB(t)
	repo := NewOilChangeRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	vehicle := createTestVehicle(t, db, owner.ID, "Family Car", "")
	otherVehicle := createTestVehicle(t, db, owner.ID, "Work Van", "")

	older := &entity.OilChange{VehicleID: vehicle.ID, ChangeDate: date("2026-01-10"), Mileage: 40000}
	newer := &entity.OilChange{VehicleID: vehicle.ID, ChangeDate: date("2026-03-10"), Mileage: 45000}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, &entity.OilChange{VehicleID: otherVehicle.ID, ChangeDate: date("2026-02-01"), Mileage: 100}))

	records, total, err := repo.ListByVehicle(ctx, vehicle.ID, owner.ID, repository.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, records, 2)
	assert.Equal(t, newer.ID, records[0].ID)
	assert.Equal(t, older.ID, records[1].ID)
}

func TestOilChangeRepository_ListByVehicle_OtherTenant(t *testing.T) {
	db := newTestDB(t)
	repo := NewOilChangeRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	vehicle := createTestVehicle(t, db, owner.ID, "Family Car", "")
	require.NoError(t, repo.Create(ctx, &entity.OilChange{VehicleID: vehicle.ID, ChangeDate: date("2026-03-01"), Mileage: 42000}))

	records, total, err := repo.ListByVehicle(ctx, vehicle.ID, other.ID, repository.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, records)
}

func TestOilChangeRepository_Update_Partial(t *testing.T) {
	db := newTestDB(t)
	repo := NewOilChangeRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	vehicle := createTestVehicle(t, db, owner.ID, "Family Car", "")

	record := &entity.OilChange{VehicleID: vehicle.ID, ChangeDate: date("2026-03-01"), Mileage: 42000, Notes: "before"}
	require.NoError(t, repo.Create(ctx, record))

	newMileage := int64(43000)
	updated, err := repo.Update(ctx, record.ID, owner.ID, repository.OilChangeChanges{Mileage: &newMileage})
	require.NoError(t, err)
	assert.Equal(t, int64(43000), updated.Mileage)
	assert.Equal(t, "before", updated.Notes)
	assert.Equal(t, "2026-03-01", updated.ChangeDate.Format("2006-01-02"))
}

func TestOilChangeRepository_Update_NoChanges(t *testing.T) {
	db := newTestDB(t)
	repo := NewOilChangeRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	vehicle := createTestVehicle(t, db, owner.ID, "Family Car", "")

	record := &entity.OilChange{VehicleID: vehicle.ID, ChangeDate: date("2026-03-01"), Mileage: 42000}
	require.NoError(t, repo.Create(ctx, record))

	unchanged, err := repo.Update(ctx, record.ID, owner.ID, repository.OilChangeChanges{})
	require.NoError(t, err)
	assert.Equal(t, int64(42000), unchanged.Mileage)
}

func TestOilChangeRepository_Update_OtherTenant(t *testing.T) {
	db := newTestDB(t)
	repo := NewOilChangeRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	vehicle := createTestVehicle(t, db, owner.ID, "Family Car", "")

	record := &entity.OilChange{VehicleID: vehicle.ID, ChangeDate: date("2026-03-01"), Mileage: 42000}
	require.NoError(t, repo.Create(ctx, record))

	newMileage := int64(50000)
	_, err := repo.Update(ctx, record.ID, other.ID, repository.OilChangeChanges{Mileage: &newMileage})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// The row is untouched.
	fresh, err := repo.FindByID(ctx, record.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(42000), fresh.Mileage)
}

func TestOilChangeRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewOilChangeRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	vehicle := createTestVehicle(t, db, owner.ID, "Family Car", "")

	record := &entity.OilChange{VehicleID: vehicle.ID, ChangeDate: date("2026-03-01"), Mileage: 42000}
	require.NoError(t, repo.Create(ctx, record))

	assert.ErrorIs(t, repo.Delete(ctx, record.ID, other.ID), repository.ErrNotFound)
	require.NoError(t, repo.Delete(ctx, record.ID, owner.ID))
	assert.ErrorIs(t, repo.Delete(ctx, record.ID, owner.ID), repository.ErrNotFound)
}
