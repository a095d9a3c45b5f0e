package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/tollgate-service/internal/domain"
	"github.com/tollgate-service/internal/pkg/errors"
	"github.com/tollgate-service/internal/usecase"
	"github.com/tollgate-service/internal/usecase/dto"
)

func TestSavedRouteUseCase_Create(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	req := dto.CreateSavedRouteRequest{
		UserID:        "user-1",
		Name:          "Daily commute",
		StartLocation: "Pretoria",
		EndLocation:   "Johannesburg",
		TollGates:     []int64{3, 5},
	}

	t.Run("stores ids only", func(t *testing.T) {
		mockRepo := &MockSavedRouteRepository{}
		uc := usecase.NewSavedRouteUseCase(mockRepo, logger)

		created := &domain.SavedRoute{
			ID:            1,
			UserID:        "user-1",
			Name:          "Daily commute",
			StartLocation: "Pretoria",
			EndLocation:   "Johannesburg",
			TollGates:     []int64{3, 5},
			CreatedAt:     time.Now(),
		}

		mockRepo.On("Create", ctx, mock.MatchedBy(func(r *domain.SavedRoute) bool {
			return r.UserID == "user-1" && len(r.TollGates) == 2
		})).Return(created, nil)

		route, err := uc.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), route.ID)
		assert.Equal(t, []int64{3, 5}, route.TollGates)
		mockRepo.AssertExpectations(t)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		mockRepo := &MockSavedRouteRepository{}
		uc := usecase.NewSavedRouteUseCase(mockRepo, logger)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.SavedRoute")).
			Return(nil, errors.ErrDatabaseError)

		route, err := uc.Create(ctx, req)

		assert.ErrorIs(t, err, errors.ErrDatabaseError)
		assert.Nil(t, route)
	})
}

func TestSavedRouteUseCase_ListByUser(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("returns the user's routes", func(t *testing.T) {
		mockRepo := &MockSavedRouteRepository{}
		uc := usecase.NewSavedRouteUseCase(mockRepo, logger)

		routes := []domain.SavedRoute{
			{ID: 2, UserID: "user-1", Name: "Weekend trip", TollGates: []int64{1}},
			{ID: 1, UserID: "user-1", Name: "Daily commute", TollGates: []int64{3, 5}},
		}
		mockRepo.On("ListByUser", ctx, "user-1").Return(routes, nil)

		result, err := uc.ListByUser(ctx, "user-1")

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "Weekend trip", result[0].Name)
	})

	t.Run("rejects an empty user id", func(t *testing.T) {
		mockRepo := &MockSavedRouteRepository{}
		uc := usecase.NewSavedRouteUseCase(mockRepo, logger)

		result, err := uc.ListByUser(ctx, "")

		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
		assert.Nil(t, result)
		mockRepo.AssertNotCalled(t, "ListByUser")
	})
}

func TestSavedRouteUseCase_Delete(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("deletes by id", func(t *testing.T) {
		mockRepo := &MockSavedRouteRepository{}
		uc := usecase.NewSavedRouteUseCase(mockRepo, logger)

		mockRepo.On("Delete", ctx, int64(5)).Return(nil)

		err := uc.Delete(ctx, 5)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("deleting an unknown id still succeeds", func(t *testing.T) {
		mockRepo := &MockSavedRouteRepository{}
		uc := usecase.NewSavedRouteUseCase(mockRepo, logger)

		mockRepo.On("Delete", ctx, int64(999)).Return(nil)

		err := uc.Delete(ctx, 999)

		assert.NoError(t, err)
	})

	t.Run("rejects a non-positive id", func(t *testing.T) {
		mockRepo := &MockSavedRouteRepository{}
		uc := usecase.NewSavedRouteUseCase(mockRepo, logger)

		err := uc.Delete(ctx, -1)

		assert.ErrorIs(t, err, errors.ErrInvalidSavedRouteID)
		mockRepo.AssertNotCalled(t, "Delete")
	})
}
