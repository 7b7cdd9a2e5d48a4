package rating

import (
	"math"

	"github.com/matchdayhq/matchday-api/internal/domain/player"
)

// Weights maps each skill to its contribution for one role. The weights
// of a role sum to 1, so a weighted skill sum lands on the 1-10 scale
// and scales to 10-100 overall.
type Weights struct {
	Speed       float64
	Passing     float64
	Attack      float64
	Defense     float64
	Technique   float64
	Goalkeeping float64
	Heading     float64
	Stamina     float64
	Leadership  float64
}

var roleWeights = map[player.Role]Weights{
	player.RoleGoalkeeper: {
		Speed:       0.05,
		Passing:     0.05,
		Attack:      0.00,
		Defense:     0.15,
		Technique:   0.10,
		Goalkeeping: 0.40,
		Heading:     0.15,
		Stamina:     0.05,
		Leadership:  0.05,
	},
	player.RoleDefender: {
		Speed:       0.10,
		Passing:     0.10,
		Attack:      0.05,
		Defense:     0.30,
		Technique:   0.05,
		Goalkeeping: 0.00,
		Heading:     0.20,
		Stamina:     0.10,
		Leadership:  0.10,
	},
	player.RoleMidfielder: {
		Speed:       0.10,
		Passing:     0.25,
		Attack:      0.10,
		Defense:     0.10,
		Technique:   0.20,
		Goalkeeping: 0.00,
		Heading:     0.05,
		Stamina:     0.15,
		Leadership:  0.05,
	},
	player.RoleForward: {
		Speed:       0.20,
		Passing:     0.10,
		Attack:      0.35,
		Defense:     0.00,
		Technique:   0.15,
		Goalkeeping: 0.00,
		Heading:     0.10,
		Stamina:     0.10,
		Leadership:  0.00,
	},
}

// WeightsFor returns the weighting row applied to players of the role.
func WeightsFor(role player.Role) (Weights, bool) {
	w, ok := roleWeights[role]
	return w, ok
}

// OverallRating condenses the nine skills into a single 0-100 score
// using the role's weighting row. Unknown roles rate zero.
func OverallRating(role player.Role, skills player.Skills) int {
	w, ok := roleWeights[role]
	if !ok {
		return 0
	}

	sum := w.Speed*float64(skills.Speed) +
		w.Passing*float64(skills.Passing) +
		w.Attack*float64(skills.Attack) +
		w.Defense*float64(skills.Defense) +
		w.Technique*float64(skills.Technique) +
		w.Goalkeeping*float64(skills.Goalkeeping) +
		w.Heading*float64(skills.Heading) +
		w.Stamina*float64(skills.Stamina) +
		w.Leadership*float64(skills.Leadership)

	return int(math.Round(sum * 10))
}

// SkillAverages holds the population mean of each skill.
type SkillAverages struct {
	Speed       float64
	Passing     float64
	Attack      float64
	Defense     float64
	Technique   float64
	Goalkeeping float64
	Heading     float64
	Stamina     float64
	Leadership  float64
}

// Statistics summarizes the registered player population.
type Statistics struct {
	TotalPlayers  int
	PlayersByRole map[player.Role]int
	SkillAverages SkillAverages
}

// ComputeStatistics aggregates role counts and skill averages over the
// given players. An empty population yields zero counts for every role
// and zero for every average.
func ComputeStatistics(players []player.Player) Statistics {
	byRole := make(map[player.Role]int, len(player.AllRoles))
	for role := range player.AllRoles {
		byRole[role] = 0
	}

	stats := Statistics{
		TotalPlayers:  len(players),
		PlayersByRole: byRole,
	}
	if len(players) == 0 {
		return stats
	}

	var sums SkillAverages
	for _, p := range players {
		byRole[p.Role]++
		sums.Speed += float64(p.Skills.Speed)
		sums.Passing += float64(p.Skills.Passing)
		sums.Attack += float64(p.Skills.Attack)
		sums.Defense += float64(p.Skills.Defense)
		sums.Technique += float64(p.Skills.Technique)
		sums.Goalkeeping += float64(p.Skills.Goalkeeping)
		sums.Heading += float64(p.Skills.Heading)
		sums.Stamina += float64(p.Skills.Stamina)
		sums.Leadership += float64(p.Skills.Leadership)
	}

	n := float64(len(players))
	stats.SkillAverages = SkillAverages{
		Speed:       roundAverage(sums.Speed / n),
		Passing:     roundAverage(sums.Passing / n),
		Attack:      roundAverage(sums.Attack / n),
		Defense:     roundAverage(sums.Defense / n),
		Technique:   roundAverage(sums.Technique / n),
		Goalkeeping: roundAverage(sums.Goalkeeping / n),
		Heading:     roundAverage(sums.Heading / n),
		Stamina:     roundAverage(sums.Stamina / n),
		Leadership:  roundAverage(sums.Leadership / n),
	}

	return stats
}

// roundAverage keeps averages at two decimal places for stable output.
func roundAverage(v float64) float64 {
	return math.Round(v*100) / 100
}
