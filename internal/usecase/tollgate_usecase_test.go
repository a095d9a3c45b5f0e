package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/tollgate-service/internal/domain"
	"github.com/tollgate-service/internal/pkg/errors"
	"github.com/tollgate-service/internal/usecase"
)

func TestTollGateUseCase_ListAll(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	ttl := 10 * time.Minute

	gates := []domain.TollGate{
		{ID: 1, Name: "Huguenot", Route: "N1", Location: "Paarl", Class1Fee: 25},
		{ID: 2, Name: "Mariannhill", Route: "N3", Location: "Pinetown", Class1Fee: 14.5},
	}

	t.Run("cache miss falls through to store and fills cache", func(t *testing.T) {
		mockRepo := &MockTollGateRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewTollGateUseCase(mockRepo, mockCache, logger, ttl)

		mockCache.On("Get", ctx, "tollgates:all").Return(nil, nil)
		mockRepo.On("ListAll", ctx).Return(gates, nil)
		mockCache.On("Set", ctx, "tollgates:all", mock.Anything, ttl).Return(nil)

		result, err := uc.ListAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "Huguenot", result[0].Name)

		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		mockRepo := &MockTollGateRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewTollGateUseCase(mockRepo, mockCache, logger, ttl)

		cached, _ := json.Marshal(gates)
		mockCache.On("Get", ctx, "tollgates:all").Return(cached, nil)

		result, err := uc.ListAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, int64(1), result[0].ID)

		mockRepo.AssertNotCalled(t, "ListAll")
	})

	t.Run("cache failure is treated as a miss", func(t *testing.T) {
		mockRepo := &MockTollGateRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewTollGateUseCase(mockRepo, mockCache, logger, ttl)

		mockCache.On("Get", ctx, "tollgates:all").Return(nil, errors.ErrCacheError)
		mockRepo.On("ListAll", ctx).Return(gates, nil)
		mockCache.On("Set", ctx, "tollgates:all", mock.Anything, ttl).Return(nil)

		result, err := uc.ListAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		mockRepo.AssertExpectations(t)
	})
}

func TestTollGateUseCase_GetByID(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("returns the gate", func(t *testing.T) {
		mockRepo := &MockTollGateRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewTollGateUseCase(mockRepo, mockCache, logger, time.Minute)

		gate := &domain.TollGate{ID: 7, Name: "Tugela", Route: "N3", Location: "KZN"}
		mockRepo.On("GetByID", ctx, int64(7)).Return(gate, nil)

		result, err := uc.GetByID(ctx, 7)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), result.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		mockRepo := &MockTollGateRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewTollGateUseCase(mockRepo, mockCache, logger, time.Minute)

		mockRepo.On("GetByID", ctx, int64(404)).Return(nil, errors.ErrTollGateNotFound)

		result, err := uc.GetByID(ctx, 404)

		assert.ErrorIs(t, err, errors.ErrTollGateNotFound)
		assert.Nil(t, result)
	})

	t.Run("rejects non-positive ids without store access", func(t *testing.T) {
		mockRepo := &MockTollGateRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewTollGateUseCase(mockRepo, mockCache, logger, time.Minute)

		result, err := uc.GetByID(ctx, 0)

		assert.ErrorIs(t, err, errors.ErrInvalidTollGateID)
		assert.Nil(t, result)
		mockRepo.AssertNotCalled(t, "GetByID")
	})
}

func TestTollGateUseCase_Search(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	ttl := 10 * time.Minute

	t.Run("searches the store on cache miss", func(t *testing.T) {
		mockRepo := &MockTollGateRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewTollGateUseCase(mockRepo, mockCache, logger, ttl)

		matches := []domain.TollGate{
			{ID: 3, Name: "Grasmere", Route: "N1", Location: "Gauteng"},
		}

		mockCache.On("Get", ctx, "tollgates:search:grasmere").Return(nil, nil)
		mockRepo.On("Search", ctx, "grasmere").Return(matches, nil)
		mockCache.On("Set", ctx, "tollgates:search:grasmere", mock.Anything, ttl).Return(nil)

		result, err := uc.Search(ctx, "grasmere")

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, "Grasmere", result[0].Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("no matches yields an empty slice", func(t *testing.T) {
		mockRepo := &MockTollGateRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewTollGateUseCase(mockRepo, mockCache, logger, ttl)

		mockCache.On("Get", ctx, "tollgates:search:nowhere").Return(nil, nil)
		mockRepo.On("Search", ctx, "nowhere").Return([]domain.TollGate{}, nil)
		mockCache.On("Set", ctx, "tollgates:search:nowhere", mock.Anything, ttl).Return(nil)

		result, err := uc.Search(ctx, "nowhere")

		assert.NoError(t, err)
		assert.Empty(t, result)
	})
}
