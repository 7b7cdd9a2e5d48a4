package player

import (
	"fmt"
	"strings"
	"time"
)

// Role represents the position a player covers on the pitch.
type Role string

const (
	RoleGoalkeeper Role = "GOALKEEPER"
	RoleDefender   Role = "DEFENDER"
	RoleMidfielder Role = "MIDFIELDER"
	RoleForward    Role = "FORWARD"
)

var AllRoles = map[Role]struct{}{
	RoleGoalkeeper: {},
	RoleDefender:   {},
	RoleMidfielder: {},
	RoleForward:    {},
}

func ParseRole(value string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(value)))
	if _, ok := AllRoles[role]; !ok {
		return "", fmt.Errorf("invalid player role: %s", value)
	}
	return role, nil
}

const (
	SkillMin = 1
	SkillMax = 10
)

// Skills holds the nine rated attributes of a player, each on a 1-10 scale.
type Skills struct {
	Speed       int
	Passing     int
	Attack      int
	Defense     int
	Technique   int
	Goalkeeping int
	Heading     int
	Stamina     int
	Leadership  int
}

// DefaultSkills is the neutral profile assigned when a skill is omitted.
func DefaultSkills() Skills {
	return Skills{
		Speed:       5,
		Passing:     5,
		Attack:      5,
		Defense:     5,
		Technique:   5,
		Goalkeeping: 5,
		Heading:     5,
		Stamina:     5,
		Leadership:  5,
	}
}

func (s Skills) Validate() error {
	for name, value := range s.Named() {
		if value < SkillMin || value > SkillMax {
			return fmt.Errorf("skill %s must be between %d and %d, got %d", name, SkillMin, SkillMax, value)
		}
	}
	return nil
}

// Named returns the skills keyed by their wire names, in no particular order.
func (s Skills) Named() map[string]int {
	return map[string]int{
		"speed":       s.Speed,
		"passing":     s.Passing,
		"attack":      s.Attack,
		"defense":     s.Defense,
		"technique":   s.Technique,
		"goalkeeping": s.Goalkeeping,
		"heading":     s.Heading,
		"stamina":     s.Stamina,
		"leadership":  s.Leadership,
	}
}

// Player is a registered league member with rated skills and career counters.
type Player struct {
	ID           string
	FullName     string
	Role         Role
	PhotoURL     string
	Skills       Skills
	GoalsScored  int
	Assists      int
	GoldMedals   int
	SilverMedals int
	BronzeMedals int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.FullName) == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllRoles[p.Role]; !ok {
		return fmt.Errorf("invalid player role: %s", p.Role)
	}
	if err := p.Skills.Validate(); err != nil {
		return err
	}
	if p.GoalsScored < 0 || p.Assists < 0 {
		return fmt.Errorf("player career counters must not be negative")
	}
	if p.GoldMedals < 0 || p.SilverMedals < 0 || p.BronzeMedals < 0 {
		return fmt.Errorf("player medal counters must not be negative")
	}

	return nil
}
