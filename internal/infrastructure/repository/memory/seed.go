package memory

import (
	"time"

	"github.com/matchdayhq/matchday-api/internal/domain/match"
	"github.com/matchdayhq/matchday-api/internal/domain/player"
)

// SeedPlayers returns a small roster covering every role, handy for
// local runs and tests.
func SeedPlayers() []player.Player {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	build := func(id, name string, role player.Role, mutate func(*player.Skills)) player.Player {
		skills := player.DefaultSkills()
		if mutate != nil {
			mutate(&skills)
		}
		return player.Player{
			ID:        id,
			FullName:  name,
			Role:      role,
			Skills:    skills,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	return []player.Player{
		build("seed-gk-1", "Walter Zenga", player.RoleGoalkeeper, func(s *player.Skills) {
			s.Goalkeeping = 9
			s.Leadership = 7
		}),
		build("seed-def-1", "Giuseppe Bergomi", player.RoleDefender, func(s *player.Skills) {
			s.Defense = 9
			s.Heading = 8
		}),
		build("seed-mid-1", "Nicola Berti", player.RoleMidfielder, func(s *player.Skills) {
			s.Passing = 8
			s.Stamina = 9
		}),
		build("seed-fwd-1", "Aldo Serena", player.RoleForward, func(s *player.Skills) {
			s.Attack = 9
			s.Heading = 8
		}),
	}
}

// SeedMatches returns one played match referencing the seed roster's squads.
func SeedMatches() []match.Match {
	created := time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC)

	return []match.Match{
		{
			ID:             1,
			MatchDate:      time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
			Kickoff:        "20:45:00",
			TeamAName:      "Red",
			TeamBName:      "Blue",
			TeamAScore:     2,
			TeamBScore:     1,
			Venue:          "Campo Comunale",
			Referee:        "P. Collina",
			PlayersPerSide: match.DefaultPlayersPerSide,
			CreatedAt:      created,
			UpdatedAt:      created,
		},
	}
}
