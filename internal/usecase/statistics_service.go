package usecase

import (
	"context"
	"fmt"

	"github.com/matchdayhq/matchday-api/internal/domain/player"
	"github.com/matchdayhq/matchday-api/internal/domain/rating"
	"github.com/matchdayhq/matchday-api/internal/platform/cache"
)

const statisticsCacheKey = "statistics"

type StatisticsService struct {
	playerRepo player.Repository
	cache      *cache.Store
}

func NewStatisticsService(playerRepo player.Repository, store *cache.Store) *StatisticsService {
	return &StatisticsService{
		playerRepo: playerRepo,
		cache:      store,
	}
}

// GetStatistics aggregates the player population. Results are cached and
// concurrent recomputations collapse into one load; player writes
// invalidate the cached value.
func (s *StatisticsService) GetStatistics(ctx context.Context) (rating.Statistics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.GetStatistics")
	defer span.End()

	if s.cache == nil {
		return s.computeStatistics(ctx)
	}

	value, err := s.cache.GetOrLoad(ctx, statisticsCacheKey, func(ctx context.Context) (any, error) {
		return s.computeStatistics(ctx)
	})
	if err != nil {
		return rating.Statistics{}, err
	}

	stats, ok := value.(rating.Statistics)
	if !ok {
		return rating.Statistics{}, fmt.Errorf("unexpected cached statistics type %T", value)
	}

	return stats, nil
}

func (s *StatisticsService) computeStatistics(ctx context.Context) (rating.Statistics, error) {
	players, err := s.playerRepo.ListAll(ctx)
	if err != nil {
		return rating.Statistics{}, fmt.Errorf("list players: %w", err)
	}

	return rating.ComputeStatistics(players), nil
}
