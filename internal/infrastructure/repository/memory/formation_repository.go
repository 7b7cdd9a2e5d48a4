package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/matchdayhq/matchday-api/internal/domain/formation"
)

type FormationRepository struct {
	mu      sync.RWMutex
	entries map[int64]formation.Entry
	nextID  int64
}

func NewFormationRepository(entries []formation.Entry) *FormationRepository {
	index := make(map[int64]formation.Entry, len(entries))
	var maxID int64
	for _, e := range entries {
		index[e.ID] = e
		if e.ID > maxID {
			maxID = e.ID
		}
	}

	return &FormationRepository{entries: index, nextID: maxID + 1}
}

func (r *FormationRepository) Create(_ context.Context, e formation.Entry) (formation.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.ID = r.nextID
	r.nextID++
	r.entries[e.ID] = e

	return e, nil
}

func (r *FormationRepository) GetByID(_ context.Context, id int64) (formation.Entry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	return e, ok, nil
}

func (r *FormationRepository) List(_ context.Context, filter formation.ListFilter) ([]formation.Entry, error) {
	r.mu.RLock()
	out := make([]formation.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if filter.MatchID != nil && e.MatchID != *filter.MatchID {
			continue
		}
		if filter.PlayerID != nil && e.PlayerID != *filter.PlayerID {
			continue
		}
		out = append(out, e)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	if filter.Skip > 0 {
		if filter.Skip >= len(out) {
			return []formation.Entry{}, nil
		}
		out = out[filter.Skip:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}

	return out, nil
}

func (r *FormationRepository) ListByMatch(ctx context.Context, matchID int64) ([]formation.Entry, error) {
	return r.List(ctx, formation.ListFilter{MatchID: &matchID})
}

func (r *FormationRepository) ReplaceByMatch(_ context.Context, matchID int64, entries []formation.Entry) ([]formation.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.entries {
		if e.MatchID == matchID {
			delete(r.entries, id)
		}
	}

	out := make([]formation.Entry, 0, len(entries))
	for _, e := range entries {
		e.ID = r.nextID
		r.nextID++
		r.entries[e.ID] = e
		out = append(out, e)
	}

	return out, nil
}

func (r *FormationRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; !exists {
		return false, nil
	}
	delete(r.entries, id)

	return true, nil
}

// DeleteByMatch mirrors the FK cascade applied by the SQL schema.
func (r *FormationRepository) DeleteByMatch(_ context.Context, matchID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.entries {
		if e.MatchID == matchID {
			delete(r.entries, id)
		}
	}
}

// DeleteByPlayer mirrors the FK cascade applied by the SQL schema.
func (r *FormationRepository) DeleteByPlayer(_ context.Context, playerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.entries {
		if e.PlayerID == playerID {
			delete(r.entries, id)
		}
	}
}
