package postgres

import (
	"database/sql"
	"time"

	"github.com/matchdayhq/matchday-api/internal/domain/formation"
	"github.com/matchdayhq/matchday-api/internal/domain/match"
)

type formationTableModel struct {
	ID          int64         `db:"id"`
	MatchID     int64         `db:"match_id"`
	PlayerID    string        `db:"player_id"`
	Side        string        `db:"side"`
	ShirtNumber sql.NullInt64 `db:"shirt_number"`
	Captain     bool          `db:"captain"`
	CreatedAt   time.Time     `db:"created_at"`
}

func formationFromRow(row formationTableModel) formation.Entry {
	return formation.Entry{
		ID:          row.ID,
		MatchID:     row.MatchID,
		PlayerID:    row.PlayerID,
		Side:        match.Side(row.Side),
		ShirtNumber: nullInt64ToIntPtr(row.ShirtNumber),
		Captain:     row.Captain,
		CreatedAt:   row.CreatedAt,
	}
}
