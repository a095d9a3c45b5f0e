package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/tollgate-service/internal/domain"
)

// MockTollGateRepository is a mock of TollGateRepository
type MockTollGateRepository struct {
	mock.Mock
}

func (m *MockTollGateRepository) ListAll(ctx context.Context) ([]domain.TollGate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TollGate), args.Error(1)
}

func (m *MockTollGateRepository) GetByID(ctx context.Context, id int64) (*domain.TollGate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TollGate), args.Error(1)
}

func (m *MockTollGateRepository) Search(ctx context.Context, query string) ([]domain.TollGate, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TollGate), args.Error(1)
}

func (m *MockTollGateRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.TollGate, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TollGate), args.Error(1)
}

// MockTripRepository is a mock of TripRepository
type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	args := m.Called(ctx, trip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripRepository) ListByUser(ctx context.Context, userID string) ([]domain.Trip, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trip), args.Error(1)
}

func (m *MockTripRepository) Delete(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockTripRepository) OverallStats(ctx context.Context, userID, monthKey, year string) (*domain.OverallStats, error) {
	args := m.Called(ctx, userID, monthKey, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OverallStats), args.Error(1)
}

func (m *MockTripRepository) MonthlyStats(ctx context.Context, userID string, limit int) ([]domain.MonthlyStat, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyStat), args.Error(1)
}

// MockSavedRouteRepository is a mock of SavedRouteRepository
type MockSavedRouteRepository struct {
	mock.Mock
}

func (m *MockSavedRouteRepository) Create(ctx context.Context, route *domain.SavedRoute) (*domain.SavedRoute, error) {
	args := m.Called(ctx, route)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedRoute), args.Error(1)
}

func (m *MockSavedRouteRepository) ListByUser(ctx context.Context, userID string) ([]domain.SavedRoute, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedRoute), args.Error(1)
}

func (m *MockSavedRouteRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
