package goal

import (
	"fmt"
	"strings"
	"time"

	"github.com/matchdayhq/matchday-api/internal/domain/match"
)

// Type classifies how a goal was scored.
type Type string

const (
	TypeNormal   Type = "NORMAL"
	TypePenalty  Type = "PENALTY"
	TypeOwnGoal  Type = "OWN_GOAL"
	TypeFreeKick Type = "FREE_KICK"
)

var AllTypes = map[Type]struct{}{
	TypeNormal:   {},
	TypePenalty:  {},
	TypeOwnGoal:  {},
	TypeFreeKick: {},
}

func ParseType(value string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(value)))
	if t == "" {
		return TypeNormal, nil
	}
	if _, ok := AllTypes[t]; !ok {
		return "", fmt.Errorf("invalid goal type: %s", value)
	}
	return t, nil
}

const (
	MinuteMin = 1
	MinuteMax = 130
)

// Goal records one scored goal within a match.
type Goal struct {
	ID             int64
	MatchID        int64
	PlayerID       string
	Minute         int
	Side           match.Side
	Type           Type
	AssistPlayerID *string
	CreatedAt      time.Time
}

func (g Goal) Validate() error {
	if g.MatchID <= 0 {
		return fmt.Errorf("goal match id is required")
	}
	if g.PlayerID == "" {
		return fmt.Errorf("goal player id is required")
	}
	if g.Minute < MinuteMin || g.Minute > MinuteMax {
		return fmt.Errorf("goal minute must be between %d and %d, got %d", MinuteMin, MinuteMax, g.Minute)
	}
	if _, err := match.ParseSide(string(g.Side)); err != nil {
		return err
	}
	if _, ok := AllTypes[g.Type]; !ok {
		return fmt.Errorf("invalid goal type: %s", g.Type)
	}
	if g.AssistPlayerID != nil && *g.AssistPlayerID == "" {
		return fmt.Errorf("assist player id must not be empty when set")
	}

	return nil
}
