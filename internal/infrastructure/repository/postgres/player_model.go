package postgres

import (
	"time"

	"github.com/matchdayhq/matchday-api/internal/domain/player"
)

type playerTableModel struct {
	ID           string    `db:"id"`
	FullName     string    `db:"full_name"`
	Role         string    `db:"role"`
	PhotoURL     string    `db:"photo_url"`
	Speed        int       `db:"speed"`
	Passing      int       `db:"passing"`
	Attack       int       `db:"attack"`
	Defense      int       `db:"defense"`
	Technique    int       `db:"technique"`
	Goalkeeping  int       `db:"goalkeeping"`
	Heading      int       `db:"heading"`
	Stamina      int       `db:"stamina"`
	Leadership   int       `db:"leadership"`
	GoalsScored  int       `db:"goals_scored"`
	Assists      int       `db:"assists"`
	GoldMedals   int       `db:"gold_medals"`
	SilverMedals int       `db:"silver_medals"`
	BronzeMedals int       `db:"bronze_medals"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func playerToRow(p player.Player) playerTableModel {
	return playerTableModel{
		ID:           p.ID,
		FullName:     p.FullName,
		Role:         string(p.Role),
		PhotoURL:     p.PhotoURL,
		Speed:        p.Skills.Speed,
		Passing:      p.Skills.Passing,
		Attack:       p.Skills.Attack,
		Defense:      p.Skills.Defense,
		Technique:    p.Skills.Technique,
		Goalkeeping:  p.Skills.Goalkeeping,
		Heading:      p.Skills.Heading,
		Stamina:      p.Skills.Stamina,
		Leadership:   p.Skills.Leadership,
		GoalsScored:  p.GoalsScored,
		Assists:      p.Assists,
		GoldMedals:   p.GoldMedals,
		SilverMedals: p.SilverMedals,
		BronzeMedals: p.BronzeMedals,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:       row.ID,
		FullName: row.FullName,
		Role:     player.Role(row.Role),
		PhotoURL: row.PhotoURL,
		Skills: player.Skills{
			Speed:       row.Speed,
			Passing:     row.Passing,
			Attack:      row.Attack,
			Defense:     row.Defense,
			Technique:   row.Technique,
			Goalkeeping: row.Goalkeeping,
			Heading:     row.Heading,
			Stamina:     row.Stamina,
			Leadership:  row.Leadership,
		},
		GoalsScored:  row.GoalsScored,
		Assists:      row.Assists,
		GoldMedals:   row.GoldMedals,
		SilverMedals: row.SilverMedals,
		BronzeMedals: row.BronzeMedals,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
