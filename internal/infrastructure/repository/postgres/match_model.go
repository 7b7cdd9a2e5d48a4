package postgres

import (
	"time"

	"github.com/matchdayhq/matchday-api/internal/domain/match"
)

type matchTableModel struct {
	ID             int64     `db:"id"`
	MatchDate      time.Time `db:"match_date"`
	Kickoff        string    `db:"kickoff"`
	TeamAName      string    `db:"team_a_name"`
	TeamBName      string    `db:"team_b_name"`
	TeamAScore     int       `db:"team_a_score"`
	TeamBScore     int       `db:"team_b_score"`
	Venue          string    `db:"venue"`
	Referee        string    `db:"referee"`
	Notes          string    `db:"notes"`
	PlayersPerSide int       `db:"players_per_side"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:             row.ID,
		MatchDate:      row.MatchDate,
		Kickoff:        row.Kickoff,
		TeamAName:      row.TeamAName,
		TeamBName:      row.TeamBName,
		TeamAScore:     row.TeamAScore,
		TeamBScore:     row.TeamBScore,
		Venue:          row.Venue,
		Referee:        row.Referee,
		Notes:          row.Notes,
		PlayersPerSide: row.PlayersPerSide,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
