package postgres

import (
	"context"
	"testing"
	"time"

	"garage/internal/domain/entity"
	"garage/internal/infra/persistence/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the full schema. A single
// connection keeps the in-memory database alive across queries, and foreign
// keys are switched on so the cascade and reference constraints behave like
// the production store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.VehicleModel{},
		&model.OilChangeModel{},
		&model.FuelRecordModel{},
		&model.RefreshTokenModel{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, PasswordHash: "hashed"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func createTestVehicle(t *testing.T, db *gorm.DB, userID int64, name, plate string) *entity.Vehicle {
	t.Helper()

	vehicle := &entity.Vehicle{UserID: userID, Name: name, LicensePlate: plate}
	require.NoError(t, NewVehicleRepository(db).Create(context.Background(), vehicle))

	return vehicle
}

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed
}
