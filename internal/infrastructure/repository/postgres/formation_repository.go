package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/matchdayhq/matchday-api/internal/domain/formation"
	qb "github.com/matchdayhq/matchday-api/internal/platform/querybuilder"
)

type FormationRepository struct {
	db *sqlx.DB
}

var formationSelectColumns = []string{
	"id",
	"match_id",
	"player_id",
	"side",
	"shirt_number",
	"captain",
	"created_at",
}

var formationInsertColumns = []string{
	"match_id",
	"player_id",
	"side",
	"shirt_number",
	"captain",
	"created_at",
}

func NewFormationRepository(db *sqlx.DB) *FormationRepository {
	return &FormationRepository{db: db}
}

func (r *FormationRepository) Create(ctx context.Context, e formation.Entry) (formation.Entry, error) {
	query, args, err := qb.InsertInto("formations").
		Columns(formationInsertColumns...).
		Values(e.MatchID, e.PlayerID, string(e.Side), intPtrToNullInt64(e.ShirtNumber), e.Captain, e.CreatedAt).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return formation.Entry{}, fmt.Errorf("build insert formation query: %w", err)
	}

	if err := r.db.GetContext(ctx, &e.ID, query, args...); err != nil {
		return formation.Entry{}, fmt.Errorf("insert formation: %w", err)
	}

	return e, nil
}

func (r *FormationRepository) GetByID(ctx context.Context, id int64) (formation.Entry, bool, error) {
	query, args, err := qb.Select(formationSelectColumns...).From("formations").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return formation.Entry{}, false, fmt.Errorf("build get formation query: %w", err)
	}

	var row formationTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return formation.Entry{}, false, nil
		}
		return formation.Entry{}, false, fmt.Errorf("get formation: %w", err)
	}

	return formationFromRow(row), true, nil
}

func (r *FormationRepository) List(ctx context.Context, filter formation.ListFilter) ([]formation.Entry, error) {
	builder := qb.Select(formationSelectColumns...).From("formations")
	if filter.MatchID != nil {
		builder = builder.Where(qb.Eq("match_id", *filter.MatchID))
	}
	if filter.PlayerID != nil {
		builder = builder.Where(qb.Eq("player_id", *filter.PlayerID))
	}
	query, args, err := builder.
		OrderBy("id ASC").
		Limit(filter.Limit).
		Offset(filter.Skip).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list formations query: %w", err)
	}

	var rows []formationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list formations: %w", err)
	}

	out := make([]formation.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, formationFromRow(row))
	}

	return out, nil
}

func (r *FormationRepository) ListByMatch(ctx context.Context, matchID int64) ([]formation.Entry, error) {
	return r.List(ctx, formation.ListFilter{MatchID: &matchID})
}

// ReplaceByMatch deletes the current lineup and inserts the new one inside
// a single transaction, so a failed insert leaves the old lineup in place.
func (r *FormationRepository) ReplaceByMatch(ctx context.Context, matchID int64, entries []formation.Entry) ([]formation.Entry, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin replace lineup tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	deleteQuery, deleteArgs, err := qb.DeleteFrom("formations").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build delete lineup query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("delete lineup: %w", err)
	}

	out := make([]formation.Entry, 0, len(entries))
	for _, e := range entries {
		query, args, err := qb.InsertInto("formations").
			Columns(formationInsertColumns...).
			Values(e.MatchID, e.PlayerID, string(e.Side), intPtrToNullInt64(e.ShirtNumber), e.Captain, e.CreatedAt).
			Suffix("RETURNING id").
			ToSQL()
		if err != nil {
			return nil, fmt.Errorf("build insert lineup entry query: %w", err)
		}
		if err := tx.GetContext(ctx, &e.ID, query, args...); err != nil {
			return nil, fmt.Errorf("insert lineup entry: %w", err)
		}
		out = append(out, e)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit replace lineup tx: %w", err)
	}

	return out, nil
}

func (r *FormationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("formations").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete formation query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete formation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete formation rows affected: %w", err)
	}

	return affected > 0, nil
}
