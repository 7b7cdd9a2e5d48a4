package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/matchdayhq/matchday-api/internal/domain/goal"
	"github.com/matchdayhq/matchday-api/internal/infrastructure/repository/memory"
)

func newGoalService() *GoalService {
	return NewGoalService(
		memory.NewGoalRepository(nil),
		memory.NewMatchRepository(memory.SeedMatches()),
		memory.NewPlayerRepository(memory.SeedPlayers()),
	)
}

func TestCreateGoal(t *testing.T) {
	svc := newGoalService()

	assist := "seed-mid-1"
	created, err := svc.CreateGoal(context.Background(), CreateGoalInput{
		MatchID:        1,
		PlayerID:       "seed-fwd-1",
		Minute:         67,
		Side:           "a",
		Type:           "penalty",
		AssistPlayerID: &assist,
	})
	if err != nil {
		t.Fatalf("CreateGoal returned error: %v", err)
	}

	if created.ID == 0 {
		t.Fatal("expected assigned goal id")
	}
	if created.Type != goal.TypePenalty {
		t.Fatalf("Type = %s, want PENALTY", created.Type)
	}
	if created.AssistPlayerID == nil || *created.AssistPlayerID != assist {
		t.Fatalf("AssistPlayerID = %v, want %s", created.AssistPlayerID, assist)
	}
}

func TestCreateGoalDefaultsToNormalType(t *testing.T) {
	svc := newGoalService()

	created, err := svc.CreateGoal(context.Background(), CreateGoalInput{
		MatchID:  1,
		PlayerID: "seed-fwd-1",
		Minute:   12,
		Side:     "B",
	})
	if err != nil {
		t.Fatalf("CreateGoal returned error: %v", err)
	}
	if created.Type != goal.TypeNormal {
		t.Fatalf("Type = %s, want NORMAL", created.Type)
	}
}

func TestCreateGoalRejectsUnknownReferences(t *testing.T) {
	svc := newGoalService()

	if _, err := svc.CreateGoal(context.Background(), CreateGoalInput{
		MatchID:  99,
		PlayerID: "seed-fwd-1",
		Minute:   10,
		Side:     "A",
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want %v", err, ErrNotFound)
	}

	ghost := "ghost"
	if _, err := svc.CreateGoal(context.Background(), CreateGoalInput{
		MatchID:        1,
		PlayerID:       "seed-fwd-1",
		Minute:         10,
		Side:           "A",
		AssistPlayerID: &ghost,
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want %v", err, ErrNotFound)
	}
}

func TestCreateGoalRejectsInvalidMinute(t *testing.T) {
	svc := newGoalService()

	if _, err := svc.CreateGoal(context.Background(), CreateGoalInput{
		MatchID:  1,
		PlayerID: "seed-fwd-1",
		Minute:   0,
		Side:     "A",
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidInput)
	}
}

func TestListMatchGoalsOrderedByMinute(t *testing.T) {
	svc := newGoalService()

	for _, minute := range []int{70, 15, 44} {
		if _, err := svc.CreateGoal(context.Background(), CreateGoalInput{
			MatchID:  1,
			PlayerID: "seed-fwd-1",
			Minute:   minute,
			Side:     "A",
		}); err != nil {
			t.Fatalf("CreateGoal returned error: %v", err)
		}
	}

	goals, err := svc.ListMatchGoals(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListMatchGoals returned error: %v", err)
	}
	if len(goals) != 3 {
		t.Fatalf("got %d goals, want 3", len(goals))
	}
	if goals[0].Minute != 15 || goals[2].Minute != 70 {
		t.Fatalf("goals not ordered by minute: %v", goals)
	}
}

func TestDeleteGoal(t *testing.T) {
	svc := newGoalService()

	created, err := svc.CreateGoal(context.Background(), CreateGoalInput{
		MatchID:  1,
		PlayerID: "seed-fwd-1",
		Minute:   30,
		Side:     "A",
	})
	if err != nil {
		t.Fatalf("CreateGoal returned error: %v", err)
	}

	if err := svc.DeleteGoal(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteGoal returned error: %v", err)
	}
	if _, err := svc.GetGoal(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want %v", err, ErrNotFound)
	}
}
