package memory

import "context"

// LinkCascades mirrors the SQL schema's referential actions across the
// in-memory repositories: deleting a match or player removes the dependent
// formation entries and goals, and orphaned assist references are cleared.
func LinkCascades(players *PlayerRepository, matches *MatchRepository, formations *FormationRepository, goals *GoalRepository) {
	matches.OnDelete(func(ctx context.Context, matchID int64) {
		formations.DeleteByMatch(ctx, matchID)
		goals.DeleteByMatch(ctx, matchID)
	})
	players.OnDelete(func(ctx context.Context, playerID string) {
		formations.DeleteByPlayer(ctx, playerID)
		goals.DeleteByPlayer(ctx, playerID)
	})
}
