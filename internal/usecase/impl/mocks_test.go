package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"garage/internal/domain/entity"
	"garage/internal/domain/repository"
	"garage/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

type mockVehicleRepo struct{ mock.Mock }

func (m *mockVehicleRepo) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *mockVehicleRepo) FindByID(ctx context.Context, id, userID int64) (*entity.Vehicle, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Vehicle), args.Error(1)
}

func (m *mockVehicleRepo) List(ctx context.Context, userID int64, filter repository.VehicleFilter, page repository.PageRequest) ([]*entity.Vehicle, int64, error) {
	args := m.Called(ctx, userID, filter, page)
	var vehicles []*entity.Vehicle
	if args.Get(0) != nil {
		vehicles = args.Get(0).([]*entity.Vehicle)
	}

	return vehicles, args.Get(1).(int64), args.Error(2)
}

func (m *mockVehicleRepo) Delete(ctx context.Context, id, userID int64) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *mockVehicleRepo) OwnedByUser(ctx context.Context, vehicleID, userID int64) (bool, error) {
	args := m.Called(ctx, vehicleID, userID)

	return args.Bool(0), args.Error(1)
}

type mockOilChangeRepo struct{ mock.Mock }

func (m *mockOilChangeRepo) Create(ctx context.Context, oilChange *entity.OilChange) error {
	return m.Called(ctx, oilChange).Error(0)
}

func (m *mockOilChangeRepo) FindByID(ctx context.Context, id, userID int64) (*entity.OilChange, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.OilChange), args.Error(1)
}

func (m *mockOilChangeRepo) ListByVehicle(ctx context.Context, vehicleID, userID int64, page repository.PageRequest) ([]*entity.OilChange, int64, error) {
	args := m.Called(ctx, vehicleID, userID, page)
	var records []*entity.OilChange
	if args.Get(0) != nil {
		records = args.Get(0).([]*entity.OilChange)
	}

	return records, args.Get(1).(int64), args.Error(2)
}

func (m *mockOilChangeRepo) Update(ctx context.Context, id, userID int64, changes repository.OilChangeChanges) (*entity.OilChange, error) {
	args := m.Called(ctx, id, userID, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.OilChange), args.Error(1)
}

func (m *mockOilChangeRepo) Delete(ctx context.Context, id, userID int64) error {
	return m.Called(ctx, id, userID).Error(0)
}

type mockFuelRecordRepo struct{ mock.Mock }

func (m *mockFuelRecordRepo) Create(ctx context.Context, record *entity.FuelRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *mockFuelRecordRepo) FindByID(ctx context.Context, id, userID int64) (*entity.FuelRecord, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.FuelRecord), args.Error(1)
}

func (m *mockFuelRecordRepo) ListByVehicle(ctx context.Context, vehicleID, userID int64, page repository.PageRequest) ([]*entity.FuelRecord, int64, error) {
	args := m.Called(ctx, vehicleID, userID, page)
	var records []*entity.FuelRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]*entity.FuelRecord)
	}

	return records, args.Get(1).(int64), args.Error(2)
}

func (m *mockFuelRecordRepo) Update(ctx context.Context, id, userID int64, changes repository.FuelRecordChanges) (*entity.FuelRecord, error) {
	args := m.Called(ctx, id, userID, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.FuelRecord), args.Error(1)
}

func (m *mockFuelRecordRepo) Delete(ctx context.Context, id, userID int64) error {
	return m.Called(ctx, id, userID).Error(0)
}

type mockRefreshTokenRepo struct{ mock.Mock }

func (m *mockRefreshTokenRepo) Create(ctx context.Context, token *entity.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockRefreshTokenRepo) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.RefreshToken), args.Error(1)
}

func (m *mockRefreshTokenRepo) FindByUserID(ctx context.Context, userID int64) ([]*entity.RefreshToken, error) {
	args := m.Called(ctx, userID)
	var tokens []*entity.RefreshToken
	if args.Get(0) != nil {
		tokens = args.Get(0).([]*entity.RefreshToken)
	}

	return tokens, args.Error(1)
}

func (m *mockRefreshTokenRepo) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRefreshTokenRepo) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	return m.Called(ctx, tokenHash).Error(0)
}

type mockHasher struct{ mock.Mock }

func (m *mockHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

func (m *mockHasher) ValidatePasswordStrength(password string) error {
	return m.Called(password).Error(0)
}

type mockTokenService struct{ mock.Mock }

func (m *mockTokenService) GenerateTokens(user *entity.User) (string, string, error) {
	args := m.Called(user)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockTokenService) ValidateAccessToken(tokenString string) (*service.Principal, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Principal), args.Error(1)
}

func (m *mockTokenService) ValidateRefreshToken(tokenString string) (int64, error) {
	args := m.Called(tokenString)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTokenService) RefreshTokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// mockTxManager runs the unit of work synchronously against a fixed factory,
// standing in for a real transaction.
type mockTxManager struct {
	factory repository.RepositoryFactory
	err     error
}

func (m *mockTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.err != nil {
		return m.err
	}

	return fn(m.factory)
}

type mockRepoFactory struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
}

func (f *mockRepoFactory) UserRepo() repository.UserRepository { return f.userRepo }

func (f *mockRepoFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	return f.refreshTokenRepo
}
