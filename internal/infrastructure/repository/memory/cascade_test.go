package memory

import (
	"context"
	"testing"

	"github.com/matchdayhq/matchday-api/internal/domain/formation"
	"github.com/matchdayhq/matchday-api/internal/domain/goal"
	"github.com/matchdayhq/matchday-api/internal/domain/match"
)

func newLinkedRepos() (*PlayerRepository, *MatchRepository, *FormationRepository, *GoalRepository) {
	players := NewPlayerRepository(SeedPlayers())
	matches := NewMatchRepository(SeedMatches())
	formations := NewFormationRepository(nil)
	goals := NewGoalRepository(nil)
	LinkCascades(players, matches, formations, goals)
	return players, matches, formations, goals
}

func TestDeleteMatchCascadesToFormationsAndGoals(t *testing.T) {
	ctx := context.Background()
	_, matches, formations, goals := newLinkedRepos()

	if _, err := formations.Create(ctx, formation.Entry{MatchID: 1, PlayerID: "seed-gk-1", Side: match.SideA}); err != nil {
		t.Fatalf("create formation: %v", err)
	}
	if _, err := goals.Create(ctx, goal.Goal{MatchID: 1, PlayerID: "seed-fwd-1", Minute: 10, Side: match.SideA, Type: goal.TypeNormal}); err != nil {
		t.Fatalf("create goal: %v", err)
	}

	found, err := matches.Delete(ctx, 1)
	if err != nil || !found {
		t.Fatalf("delete match = (%t, %v), want (true, nil)", found, err)
	}

	entries, err := formations.ListByMatch(ctx, 1)
	if err != nil {
		t.Fatalf("list formations: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("%d formation entries still reference deleted match 1", len(entries))
	}

	scored, err := goals.ListByMatch(ctx, 1)
	if err != nil {
		t.Fatalf("list goals: %v", err)
	}
	if len(scored) != 0 {
		t.Fatalf("%d goals still reference deleted match 1", len(scored))
	}
}

func TestDeletePlayerCascadesToFormationsAndGoals(t *testing.T) {
	ctx := context.Background()
	players, _, formations, goals := newLinkedRepos()

	if _, err := formations.Create(ctx, formation.Entry{MatchID: 1, PlayerID: "seed-gk-1", Side: match.SideA}); err != nil {
		t.Fatalf("create formation: %v", err)
	}
	if _, err := goals.Create(ctx, goal.Goal{MatchID: 1, PlayerID: "seed-gk-1", Minute: 5, Side: match.SideA, Type: goal.TypeNormal}); err != nil {
		t.Fatalf("create scored goal: %v", err)
	}
	assist := "seed-gk-1"
	assisted, err := goals.Create(ctx, goal.Goal{MatchID: 1, PlayerID: "seed-fwd-1", Minute: 20, Side: match.SideA, Type: goal.TypeNormal, AssistPlayerID: &assist})
	if err != nil {
		t.Fatalf("create assisted goal: %v", err)
	}

	found, err := players.Delete(ctx, "seed-gk-1")
	if err != nil || !found {
		t.Fatalf("delete player = (%t, %v), want (true, nil)", found, err)
	}

	playerID := "seed-gk-1"
	entries, err := formations.List(ctx, formation.ListFilter{PlayerID: &playerID})
	if err != nil {
		t.Fatalf("list formations: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("%d formation entries still reference deleted player", len(entries))
	}

	scored, err := goals.List(ctx, goal.ListFilter{PlayerID: &playerID})
	if err != nil {
		t.Fatalf("list goals: %v", err)
	}
	if len(scored) != 0 {
		t.Fatalf("%d goals still credit deleted player as scorer", len(scored))
	}

	remaining, _, err := goals.GetByID(ctx, assisted.ID)
	if err != nil {
		t.Fatalf("get assisted goal: %v", err)
	}
	if remaining.AssistPlayerID != nil {
		t.Fatalf("assist reference = %q, want cleared", *remaining.AssistPlayerID)
	}
}
