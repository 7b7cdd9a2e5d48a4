package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/matchdayhq/matchday-api/internal/domain/player"
)

type PlayerRepository struct {
	mu       sync.RWMutex
	players  map[string]player.Player
	cascades []func(ctx context.Context, playerID string)
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	index := make(map[string]player.Player, len(players))
	for _, p := range players {
		index[p.ID] = p
	}

	return &PlayerRepository{players: index}
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[p.ID]; exists {
		return fmt.Errorf("player %s already exists", p.ID)
	}
	r.players[p.ID] = p

	return nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[id]
	return p, ok, nil
}

func (r *PlayerRepository) List(_ context.Context, filter player.ListFilter) ([]player.Player, error) {
	r.mu.RLock()
	out := make([]player.Player, 0, len(r.players))
	for _, p := range r.players {
		if filter.Role != nil && p.Role != *filter.Role {
			continue
		}
		out = append(out, p)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })

	if filter.Skip > 0 {
		if filter.Skip >= len(out) {
			return []player.Player{}, nil
		}
		out = out[filter.Skip:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}

	return out, nil
}

func (r *PlayerRepository) ListAll(ctx context.Context) ([]player.Player, error) {
	return r.List(ctx, player.ListFilter{})
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[p.ID]; !exists {
		return false, nil
	}
	r.players[p.ID] = p

	return true, nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	if _, exists := r.players[id]; !exists {
		r.mu.Unlock()
		return false, nil
	}
	delete(r.players, id)
	cascades := r.cascades
	r.mu.Unlock()

	for _, cascade := range cascades {
		cascade(ctx, id)
	}

	return true, nil
}

// OnDelete registers a hook that runs after a player is removed. LinkCascades
// uses it to mirror the SQL schema's ON DELETE rules.
func (r *PlayerRepository) OnDelete(fn func(ctx context.Context, playerID string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cascades = append(r.cascades, fn)
}
