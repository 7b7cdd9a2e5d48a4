package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/matchdayhq/matchday-api/internal/domain/player"
	qb "github.com/matchdayhq/matchday-api/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id",
	"full_name",
	"role",
	"photo_url",
	"speed",
	"passing",
	"attack",
	"defense",
	"technique",
	"goalkeeping",
	"heading",
	"stamina",
	"leadership",
	"goals_scored",
	"assists",
	"gold_medals",
	"silver_medals",
	"bronze_medals",
	"created_at",
	"updated_at",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	query, args, err := qb.InsertModel("players", playerToRow(p), "")
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) List(ctx context.Context, filter player.ListFilter) ([]player.Player, error) {
	builder := qb.Select(playerSelectColumns...).From("players")
	if filter.Role != nil {
		builder = builder.Where(qb.Eq("role", string(*filter.Role)))
	}
	query, args, err := builder.
		OrderBy("full_name ASC", "id ASC").
		Limit(filter.Limit).
		Offset(filter.Skip).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}

	return out, nil
}

func (r *PlayerRepository) ListAll(ctx context.Context) ([]player.Player, error) {
	return r.List(ctx, player.ListFilter{})
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) (bool, error) {
	query, args, err := qb.Update("players").
		Set("full_name", p.FullName).
		Set("role", string(p.Role)).
		Set("photo_url", p.PhotoURL).
		Set("speed", p.Skills.Speed).
		Set("passing", p.Skills.Passing).
		Set("attack", p.Skills.Attack).
		Set("defense", p.Skills.Defense).
		Set("technique", p.Skills.Technique).
		Set("goalkeeping", p.Skills.Goalkeeping).
		Set("heading", p.Skills.Heading).
		Set("stamina", p.Skills.Stamina).
		Set("leadership", p.Skills.Leadership).
		Set("goals_scored", p.GoalsScored).
		Set("assists", p.Assists).
		Set("gold_medals", p.GoldMedals).
		Set("silver_medals", p.SilverMedals).
		Set("bronze_medals", p.BronzeMedals).
		Set("updated_at", p.UpdatedAt).
		Where(qb.Eq("id", p.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update player query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update player rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := qb.DeleteFrom("players").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete player query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete player rows affected: %w", err)
	}

	return affected > 0, nil
}
