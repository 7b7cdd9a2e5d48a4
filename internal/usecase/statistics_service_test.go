package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/matchdayhq/matchday-api/internal/domain/player"
	"github.com/matchdayhq/matchday-api/internal/infrastructure/repository/memory"
	"github.com/matchdayhq/matchday-api/internal/platform/cache"
	"github.com/matchdayhq/matchday-api/internal/platform/id"
)

func TestGetStatisticsEmptyPopulation(t *testing.T) {
	svc := NewStatisticsService(memory.NewPlayerRepository(nil), nil)

	stats, err := svc.GetStatistics(context.Background())
	if err != nil {
		t.Fatalf("GetStatistics returned error: %v", err)
	}

	if stats.TotalPlayers != 0 {
		t.Fatalf("TotalPlayers = %d, want 0", stats.TotalPlayers)
	}
	for role, count := range stats.PlayersByRole {
		if count != 0 {
			t.Fatalf("count for role %s = %d, want 0", role, count)
		}
	}
	if stats.SkillAverages.Speed != 0 {
		t.Fatalf("Speed average = %f, want 0", stats.SkillAverages.Speed)
	}
}

func TestGetStatisticsCountsAndAverages(t *testing.T) {
	svc := NewStatisticsService(memory.NewPlayerRepository(memory.SeedPlayers()), nil)

	stats, err := svc.GetStatistics(context.Background())
	if err != nil {
		t.Fatalf("GetStatistics returned error: %v", err)
	}

	if stats.TotalPlayers != 4 {
		t.Fatalf("TotalPlayers = %d, want 4", stats.TotalPlayers)
	}
	if stats.PlayersByRole[player.RoleGoalkeeper] != 1 {
		t.Fatalf("goalkeepers = %d, want 1", stats.PlayersByRole[player.RoleGoalkeeper])
	}
	if stats.SkillAverages.Speed != 5 {
		t.Fatalf("Speed average = %f, want 5", stats.SkillAverages.Speed)
	}
}

func TestGetStatisticsInvalidatedByPlayerWrites(t *testing.T) {
	ctx := context.Background()
	store := cache.NewStore(time.Minute)
	repo := memory.NewPlayerRepository(nil)

	statsSvc := NewStatisticsService(repo, store)
	playerSvc := NewPlayerService(repo, id.NewRandomGenerator(), nil, store)

	before, err := statsSvc.GetStatistics(ctx)
	if err != nil {
		t.Fatalf("GetStatistics returned error: %v", err)
	}
	if before.TotalPlayers != 0 {
		t.Fatalf("TotalPlayers = %d, want 0", before.TotalPlayers)
	}

	if _, err := playerSvc.CreatePlayer(ctx, CreatePlayerInput{
		FullName: "New Signing",
		Role:     "MIDFIELDER",
	}); err != nil {
		t.Fatalf("CreatePlayer returned error: %v", err)
	}

	after, err := statsSvc.GetStatistics(ctx)
	if err != nil {
		t.Fatalf("GetStatistics returned error: %v", err)
	}
	if after.TotalPlayers != 1 {
		t.Fatalf("TotalPlayers = %d after create, want 1 (stale cache?)", after.TotalPlayers)
	}
}

func TestGetStatisticsServesFromCache(t *testing.T) {
	ctx := context.Background()
	store := cache.NewStore(time.Minute)
	repo := memory.NewPlayerRepository(memory.SeedPlayers())
	svc := NewStatisticsService(repo, store)

	first, err := svc.GetStatistics(ctx)
	if err != nil {
		t.Fatalf("GetStatistics returned error: %v", err)
	}

	// Mutate the repo behind the cache's back: the cached value must win.
	if _, err := repo.Delete(ctx, "seed-gk-1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	second, err := svc.GetStatistics(ctx)
	if err != nil {
		t.Fatalf("GetStatistics returned error: %v", err)
	}
	if second.TotalPlayers != first.TotalPlayers {
		t.Fatalf("TotalPlayers = %d, want cached %d", second.TotalPlayers, first.TotalPlayers)
	}
}
