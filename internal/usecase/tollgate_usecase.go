package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/tollgate-service/internal/domain"
	"github.com/tollgate-service/internal/domain/repository"
	"github.com/tollgate-service/internal/pkg/errors"
)

const (
	catalogueCacheKey    = "tollgates:all"
	searchCacheKeyPrefix = "tollgates:search:"
)

// TollGateUseCase serves the read-only toll gate catalogue. Because the
// catalogue never changes after seeding, list and search results are cached
// in Redis with a TTL; cache failures fall through to the store.
type TollGateUseCase struct {
	tollGateRepo repository.TollGateRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	cacheTTL     time.Duration
}

func NewTollGateUseCase(
	tollGateRepo repository.TollGateRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *TollGateUseCase {
	return &TollGateUseCase{
		tollGateRepo: tollGateRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		cacheTTL:     cacheTTL,
	}
}

func (uc *TollGateUseCase) ListAll(ctx context.Context) ([]domain.TollGate, error) {
	if gates := uc.fromCache(ctx, catalogueCacheKey); gates != nil {
		return gates, nil
	}

	gates, err := uc.tollGateRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to list toll gates", zap.Error(err))
		return nil, err
	}

	uc.toCache(ctx, catalogueCacheKey, gates)
	return gates, nil
}

func (uc *TollGateUseCase) GetByID(ctx context.Context, id int64) (*domain.TollGate, error) {
	if id <= 0 {
		return nil, errors.ErrInvalidTollGateID
	}

	gate, err := uc.tollGateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return gate, nil
}

func (uc *TollGateUseCase) Search(ctx context.Context, query string) ([]domain.TollGate, error) {
	key := searchCacheKeyPrefix + query
	if gates := uc.fromCache(ctx, key); gates != nil {
		return gates, nil
	}

	gates, err := uc.tollGateRepo.Search(ctx, query)
	if err != nil {
		uc.logger.Error("Failed to search toll gates", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	uc.toCache(ctx, key, gates)
	return gates, nil
}

// fromCache returns cached gates or nil on a miss. Cache errors are logged
// and treated as misses so the catalogue stays available without Redis.
func (uc *TollGateUseCase) fromCache(ctx context.Context, key string) []domain.TollGate {
	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("Catalogue cache read failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	if data == nil {
		return nil
	}

	var gates []domain.TollGate
	if err := json.Unmarshal(data, &gates); err != nil {
		uc.logger.Warn("Corrupt catalogue cache entry", zap.String("key", key), zap.Error(err))
		return nil
	}
	return gates
}

func (uc *TollGateUseCase) toCache(ctx context.Context, key string, gates []domain.TollGate) {
	data, err := json.Marshal(gates)
	if err != nil {
		uc.logger.Warn("Failed to encode catalogue for cache", zap.Error(err))
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Catalogue cache write failed", zap.String("key", key), zap.Error(err))
	}
}
