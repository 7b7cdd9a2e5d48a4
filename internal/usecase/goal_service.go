package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/matchdayhq/matchday-api/internal/domain/goal"
	"github.com/matchdayhq/matchday-api/internal/domain/match"
	"github.com/matchdayhq/matchday-api/internal/domain/player"
)

type GoalService struct {
	goalRepo   goal.Repository
	matchRepo  match.Repository
	playerRepo player.Repository
	now        func() time.Time
}

func NewGoalService(goalRepo goal.Repository, matchRepo match.Repository, playerRepo player.Repository) *GoalService {
	return &GoalService{
		goalRepo:   goalRepo,
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		now:        time.Now,
	}
}

type CreateGoalInput struct {
	MatchID        int64
	PlayerID       string
	Minute         int
	Side           string
	Type           string
	AssistPlayerID *string
}

func (s *GoalService) CreateGoal(ctx context.Context, input CreateGoalInput) (goal.Goal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalService.CreateGoal")
	defer span.End()

	side, err := match.ParseSide(input.Side)
	if err != nil {
		return goal.Goal{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	goalType, err := goal.ParseType(input.Type)
	if err != nil {
		return goal.Goal{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	g := goal.Goal{
		MatchID:        input.MatchID,
		PlayerID:       strings.TrimSpace(input.PlayerID),
		Minute:         input.Minute,
		Side:           side,
		Type:           goalType,
		AssistPlayerID: input.AssistPlayerID,
		CreatedAt:      s.now().UTC(),
	}
	if err := g.Validate(); err != nil {
		return goal.Goal{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, found, err := s.matchRepo.GetByID(ctx, g.MatchID); err != nil {
		return goal.Goal{}, fmt.Errorf("get match: %w", err)
	} else if !found {
		return goal.Goal{}, fmt.Errorf("%w: match=%d", ErrNotFound, g.MatchID)
	}
	if _, found, err := s.playerRepo.GetByID(ctx, g.PlayerID); err != nil {
		return goal.Goal{}, fmt.Errorf("get player: %w", err)
	} else if !found {
		return goal.Goal{}, fmt.Errorf("%w: player=%s", ErrNotFound, g.PlayerID)
	}
	if g.AssistPlayerID != nil {
		if _, found, err := s.playerRepo.GetByID(ctx, *g.AssistPlayerID); err != nil {
			return goal.Goal{}, fmt.Errorf("get assist player: %w", err)
		} else if !found {
			return goal.Goal{}, fmt.Errorf("%w: assist player=%s", ErrNotFound, *g.AssistPlayerID)
		}
	}

	created, err := s.goalRepo.Create(ctx, g)
	if err != nil {
		return goal.Goal{}, fmt.Errorf("create goal: %w", err)
	}

	return created, nil
}

func (s *GoalService) GetGoal(ctx context.Context, goalID int64) (goal.Goal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalService.GetGoal")
	defer span.End()

	if goalID <= 0 {
		return goal.Goal{}, fmt.Errorf("%w: goal id is required", ErrInvalidInput)
	}

	g, found, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		return goal.Goal{}, fmt.Errorf("get goal: %w", err)
	}
	if !found {
		return goal.Goal{}, fmt.Errorf("%w: goal=%d", ErrNotFound, goalID)
	}

	return g, nil
}

type ListGoalsInput struct {
	MatchID  *int64
	PlayerID *string
	Skip     int
	Limit    int
}

func (s *GoalService) ListGoals(ctx context.Context, input ListGoalsInput) ([]goal.Goal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalService.ListGoals")
	defer span.End()

	if input.Skip < 0 || input.Limit < 0 {
		return nil, fmt.Errorf("%w: skip and limit must not be negative", ErrInvalidInput)
	}

	goals, err := s.goalRepo.List(ctx, goal.ListFilter{
		MatchID:  input.MatchID,
		PlayerID: input.PlayerID,
		Skip:     input.Skip,
		Limit:    input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	return goals, nil
}

func (s *GoalService) ListMatchGoals(ctx context.Context, matchID int64) ([]goal.Goal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalService.ListMatchGoals")
	defer span.End()

	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	_, found, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	goals, err := s.goalRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	return goals, nil
}

func (s *GoalService) DeleteGoal(ctx context.Context, goalID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalService.DeleteGoal")
	defer span.End()

	if goalID <= 0 {
		return fmt.Errorf("%w: goal id is required", ErrInvalidInput)
	}

	found, err := s.goalRepo.Delete(ctx, goalID)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: goal=%d", ErrNotFound, goalID)
	}

	return nil
}
