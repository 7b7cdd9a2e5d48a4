package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/matchdayhq/matchday-api/internal/domain/goal"
)

type GoalRepository struct {
	mu     sync.RWMutex
	goals  map[int64]goal.Goal
	nextID int64
}

func NewGoalRepository(goals []goal.Goal) *GoalRepository {
	index := make(map[int64]goal.Goal, len(goals))
	var maxID int64
	for _, g := range goals {
		index[g.ID] = g
		if g.ID > maxID {
			maxID = g.ID
		}
	}

	return &GoalRepository{goals: index, nextID: maxID + 1}
}

func (r *GoalRepository) Create(_ context.Context, g goal.Goal) (goal.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g.ID = r.nextID
	r.nextID++
	r.goals[g.ID] = g

	return g, nil
}

func (r *GoalRepository) GetByID(_ context.Context, id int64) (goal.Goal, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.goals[id]
	return g, ok, nil
}

func (r *GoalRepository) List(_ context.Context, filter goal.ListFilter) ([]goal.Goal, error) {
	r.mu.RLock()
	out := make([]goal.Goal, 0, len(r.goals))
	for _, g := range r.goals {
		if filter.MatchID != nil && g.MatchID != *filter.MatchID {
			continue
		}
		if filter.PlayerID != nil && g.PlayerID != *filter.PlayerID {
			continue
		}
		out = append(out, g)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Minute == out[j].Minute {
			return out[i].ID < out[j].ID
		}
		return out[i].Minute < out[j].Minute
	})

	if filter.Skip > 0 {
		if filter.Skip >= len(out) {
			return []goal.Goal{}, nil
		}
		out = out[filter.Skip:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}

	return out, nil
}

func (r *GoalRepository) ListByMatch(ctx context.Context, matchID int64) ([]goal.Goal, error) {
	return r.List(ctx, goal.ListFilter{MatchID: &matchID})
}

func (r *GoalRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.goals[id]; !exists {
		return false, nil
	}
	delete(r.goals, id)

	return true, nil
}

// DeleteByMatch mirrors the FK cascade applied by the SQL schema.
func (r *GoalRepository) DeleteByMatch(_ context.Context, matchID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, g := range r.goals {
		if g.MatchID == matchID {
			delete(r.goals, id)
		}
	}
}

// DeleteByPlayer mirrors the SQL schema's referential actions: the player's
// own goals cascade away and assist references are set to null.
func (r *GoalRepository) DeleteByPlayer(_ context.Context, playerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, g := range r.goals {
		if g.PlayerID == playerID {
			delete(r.goals, id)
			continue
		}
		if g.AssistPlayerID != nil && *g.AssistPlayerID == playerID {
			g.AssistPlayerID = nil
			r.goals[id] = g
		}
	}
}
