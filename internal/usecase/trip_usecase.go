package usecase

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/tollgate-service/internal/domain"
	"github.com/tollgate-service/internal/domain/repository"
	"github.com/tollgate-service/internal/pkg/errors"
	"github.com/tollgate-service/internal/usecase/dto"
)

// monthlyTrendBuckets is the fixed depth of the monthly trend, independent
// of any year/month filter on the overall aggregates.
const monthlyTrendBuckets = 12

// TripUseCase owns the trip ledger and its statistics. The client-supplied
// total_cost and toll gate snapshot are persisted without revalidation
// against the current catalogue; historical trips must keep the fees that
// applied when they were taken.
type TripUseCase struct {
	tripRepo  repository.TripRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	statsTTL  time.Duration
}

func NewTripUseCase(
	tripRepo repository.TripRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	statsTTL time.Duration,
) *TripUseCase {
	return &TripUseCase{
		tripRepo:  tripRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		statsTTL:  statsTTL,
	}
}

func statsCacheKey(userID string) string {
	return "trips:stats:" + userID
}

func (uc *TripUseCase) Create(ctx context.Context, req dto.CreateTripRequest) (*domain.Trip, error) {
	class := domain.VehicleClass(req.VehicleClass)
	if !class.Valid() {
		return nil, errors.ErrInvalidVehicleClass
	}

	trip := &domain.Trip{
		UserID:          req.UserID,
		StartLocation:   req.StartLocation,
		EndLocation:     req.EndLocation,
		RouteName:       req.RouteName,
		VehicleClass:    class,
		TotalCost:       req.TotalCost,
		TollGatesPassed: req.TollGatesPassed,
		Date:            req.Date,
		Notes:           req.Notes,
	}

	created, err := uc.tripRepo.Create(ctx, trip)
	if err != nil {
		uc.logger.Error("Failed to create trip", zap.String("user_id", req.UserID), zap.Error(err))
		return nil, err
	}

	uc.invalidateStats(ctx, req.UserID)
	return created, nil
}

func (uc *TripUseCase) ListByUser(ctx context.Context, userID string) ([]domain.Trip, error) {
	if userID == "" {
		return nil, errors.ErrInvalidRequest
	}
	return uc.tripRepo.ListByUser(ctx, userID)
}

// Delete removes a trip by id. Deleting an id that no longer exists reports
// success, matching the idempotent delete contract.
func (uc *TripUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return errors.ErrInvalidTripID
	}

	userID, err := uc.tripRepo.Delete(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to delete trip", zap.Int64("id", id), zap.Error(err))
		return err
	}

	if userID != "" {
		uc.invalidateStats(ctx, userID)
	}
	return nil
}

// Stats aggregates the user's ledger. The overall block honors the year and
// year-month filters; the monthly block always shows the trailing 12-month
// trend. Only the unfiltered result is cached since trips mutate per user.
func (uc *TripUseCase) Stats(ctx context.Context, req dto.TripStatsRequest) (*domain.TripStats, error) {
	monthKey := ""
	if req.Year != "" && req.Month != "" {
		m, err := strconv.Atoi(req.Month)
		if err != nil || m < 1 || m > 12 {
			return nil, errors.ErrInvalidStatsFilter
		}
		monthKey = domain.MonthKey(req.Year, m)
	}

	unfiltered := req.Year == "" && req.Month == ""
	if unfiltered {
		if stats := uc.statsFromCache(ctx, req.UserID); stats != nil {
			return stats, nil
		}
	}

	overall, err := uc.tripRepo.OverallStats(ctx, req.UserID, monthKey, req.Year)
	if err != nil {
		uc.logger.Error("Failed to aggregate trip stats", zap.String("user_id", req.UserID), zap.Error(err))
		return nil, err
	}

	monthly, err := uc.tripRepo.MonthlyStats(ctx, req.UserID, monthlyTrendBuckets)
	if err != nil {
		uc.logger.Error("Failed to aggregate monthly trend", zap.String("user_id", req.UserID), zap.Error(err))
		return nil, err
	}

	stats := &domain.TripStats{
		Overall: *overall,
		Monthly: monthly,
	}

	if unfiltered {
		uc.statsToCache(ctx, req.UserID, stats)
	}
	return stats, nil
}

func (uc *TripUseCase) statsFromCache(ctx context.Context, userID string) *domain.TripStats {
	data, err := uc.cacheRepo.Get(ctx, statsCacheKey(userID))
	if err != nil {
		uc.logger.Warn("Stats cache read failed", zap.String("user_id", userID), zap.Error(err))
		return nil
	}
	if data == nil {
		return nil
	}

	var stats domain.TripStats
	if err := json.Unmarshal(data, &stats); err != nil {
		uc.logger.Warn("Corrupt stats cache entry", zap.String("user_id", userID), zap.Error(err))
		return nil
	}
	return &stats
}

func (uc *TripUseCase) statsToCache(ctx context.Context, userID string, stats *domain.TripStats) {
	data, err := json.Marshal(stats)
	if err != nil {
		uc.logger.Warn("Failed to encode stats for cache", zap.Error(err))
		return
	}
	if err := uc.cacheRepo.Set(ctx, statsCacheKey(userID), data, uc.statsTTL); err != nil {
		uc.logger.Warn("Stats cache write failed", zap.String("user_id", userID), zap.Error(err))
	}
}

func (uc *TripUseCase) invalidateStats(ctx context.Context, userID string) {
	if err := uc.cacheRepo.Delete(ctx, statsCacheKey(userID)); err != nil {
		uc.logger.Warn("Stats cache invalidation failed", zap.String("user_id", userID), zap.Error(err))
	}
}
