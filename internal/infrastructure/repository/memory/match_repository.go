package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/matchdayhq/matchday-api/internal/domain/match"
)

type MatchRepository struct {
	mu       sync.RWMutex
	matches  map[int64]match.Match
	nextID   int64
	cascades []func(ctx context.Context, matchID int64)
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	index := make(map[int64]match.Match, len(matches))
	var maxID int64
	for _, m := range matches {
		index[m.ID] = m
		if m.ID > maxID {
			maxID = m.ID
		}
	}

	return &MatchRepository{matches: index, nextID: maxID + 1}
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = r.nextID
	r.nextID++
	r.matches[m.ID] = m

	return m, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.matches[id]
	return m, ok, nil
}

func (r *MatchRepository) List(_ context.Context, filter match.ListFilter) ([]match.Match, error) {
	r.mu.RLock()
	out := make([]match.Match, 0, len(r.matches))
	for _, m := range r.matches {
		out = append(out, m)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchDate.Equal(out[j].MatchDate) {
			return out[i].ID > out[j].ID
		}
		return out[i].MatchDate.After(out[j].MatchDate)
	})

	if filter.Skip > 0 {
		if filter.Skip >= len(out) {
			return []match.Match{}, nil
		}
		out = out[filter.Skip:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}

	return out, nil
}

func (r *MatchRepository) Update(_ context.Context, m match.Match) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.matches[m.ID]; !exists {
		return false, nil
	}
	r.matches[m.ID] = m

	return true, nil
}

func (r *MatchRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	if _, exists := r.matches[id]; !exists {
		r.mu.Unlock()
		return false, nil
	}
	delete(r.matches, id)
	cascades := r.cascades
	r.mu.Unlock()

	for _, cascade := range cascades {
		cascade(ctx, id)
	}

	return true, nil
}

// OnDelete registers a hook that runs after a match is removed. LinkCascades
// uses it to mirror the SQL schema's ON DELETE rules.
func (r *MatchRepository) OnDelete(fn func(ctx context.Context, matchID int64)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cascades = append(r.cascades, fn)
}
