package postgres

import (
	"database/sql"
	"time"

	"github.com/matchdayhq/matchday-api/internal/domain/goal"
	"github.com/matchdayhq/matchday-api/internal/domain/match"
)

type goalTableModel struct {
	ID             int64          `db:"id"`
	MatchID        int64          `db:"match_id"`
	PlayerID       string         `db:"player_id"`
	Minute         int            `db:"minute"`
	Side           string         `db:"side"`
	GoalType       string         `db:"goal_type"`
	AssistPlayerID sql.NullString `db:"assist_player_id"`
	CreatedAt      time.Time      `db:"created_at"`
}

func goalFromRow(row goalTableModel) goal.Goal {
	return goal.Goal{
		ID:             row.ID,
		MatchID:        row.MatchID,
		PlayerID:       row.PlayerID,
		Minute:         row.Minute,
		Side:           match.Side(row.Side),
		Type:           goal.Type(row.GoalType),
		AssistPlayerID: nullStringToPtr(row.AssistPlayerID),
		CreatedAt:      row.CreatedAt,
	}
}
