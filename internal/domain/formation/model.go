package formation

import (
	"fmt"
	"time"

	"github.com/matchdayhq/matchday-api/internal/domain/match"
)

const (
	ShirtNumberMin = 1
	ShirtNumberMax = 99
)

// Entry assigns one player to a side of a match lineup.
type Entry struct {
	ID          int64
	MatchID     int64
	PlayerID    string
	Side        match.Side
	ShirtNumber *int
	Captain     bool
	CreatedAt   time.Time
}

func (e Entry) Validate() error {
	if e.MatchID <= 0 {
		return fmt.Errorf("formation match id is required")
	}
	if e.PlayerID == "" {
		return fmt.Errorf("formation player id is required")
	}
	if _, err := match.ParseSide(string(e.Side)); err != nil {
		return err
	}
	if e.ShirtNumber != nil && (*e.ShirtNumber < ShirtNumberMin || *e.ShirtNumber > ShirtNumberMax) {
		return fmt.Errorf("shirt number must be between %d and %d, got %d", ShirtNumberMin, ShirtNumberMax, *e.ShirtNumber)
	}

	return nil
}

// ValidateBatch checks a wholesale lineup: every entry must be valid and
// no player may appear twice in the same match.
func ValidateBatch(matchID int64, entries []Entry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.MatchID != matchID {
			return fmt.Errorf("formation entry targets match %d, expected %d", e.MatchID, matchID)
		}
		if err := e.Validate(); err != nil {
			return err
		}
		if _, dup := seen[e.PlayerID]; dup {
			return fmt.Errorf("player %s appears more than once in the lineup", e.PlayerID)
		}
		seen[e.PlayerID] = struct{}{}
	}

	return nil
}
