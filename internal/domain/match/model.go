package match

import (
	"fmt"
	"strings"
	"time"
)

// Side designates one of the two ad-hoc squads of a match day.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

func ParseSide(value string) (Side, error) {
	side := Side(strings.ToUpper(strings.TrimSpace(value)))
	switch side {
	case SideA, SideB:
		return side, nil
	default:
		return "", fmt.Errorf("invalid side: %s", value)
	}
}

const (
	DefaultPlayersPerSide = 11
	kickoffLayout         = "15:04:05"
)

// Match is one recorded game between the two squads.
type Match struct {
	ID             int64
	MatchDate      time.Time
	Kickoff        string
	TeamAName      string
	TeamBName      string
	TeamAScore     int
	TeamBScore     int
	Venue          string
	Referee        string
	Notes          string
	PlayersPerSide int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NormalizeKickoff validates a kickoff time and returns it in HH:MM:SS form.
// "HH:MM" input is accepted and padded with zero seconds. Kickoff is
// optional; empty input normalizes to empty.
func NormalizeKickoff(value string) (string, error) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return "", nil
	}

	if t, err := time.Parse(kickoffLayout, raw); err == nil {
		return t.Format(kickoffLayout), nil
	}
	if t, err := time.Parse("15:04", raw); err == nil {
		return t.Format(kickoffLayout), nil
	}

	return "", fmt.Errorf("invalid kickoff time: %s", value)
}

func (m Match) Validate() error {
	if m.MatchDate.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if _, err := NormalizeKickoff(m.Kickoff); err != nil {
		return err
	}
	if m.TeamAScore < 0 || m.TeamBScore < 0 {
		return fmt.Errorf("match scores must not be negative")
	}
	if m.PlayersPerSide < 1 {
		return fmt.Errorf("players per side must be at least 1")
	}

	return nil
}
