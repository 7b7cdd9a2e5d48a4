package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/matchdayhq/matchday-api/internal/domain/goal"
	qb "github.com/matchdayhq/matchday-api/internal/platform/querybuilder"
)

type GoalRepository struct {
	db *sqlx.DB
}

var goalSelectColumns = []string{
	"id",
	"match_id",
	"player_id",
	"minute",
	"side",
	"goal_type",
	"assist_player_id",
	"created_at",
}

func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Create(ctx context.Context, g goal.Goal) (goal.Goal, error) {
	query, args, err := qb.InsertInto("goals").
		Columns("match_id", "player_id", "minute", "side", "goal_type", "assist_player_id", "created_at").
		Values(g.MatchID, g.PlayerID, g.Minute, string(g.Side), string(g.Type), ptrToNullString(g.AssistPlayerID), g.CreatedAt).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return goal.Goal{}, fmt.Errorf("build insert goal query: %w", err)
	}

	if err := r.db.GetContext(ctx, &g.ID, query, args...); err != nil {
		return goal.Goal{}, fmt.Errorf("insert goal: %w", err)
	}

	return g, nil
}

func (r *GoalRepository) GetByID(ctx context.Context, id int64) (goal.Goal, bool, error) {
	query, args, err := qb.Select(goalSelectColumns...).From("goals").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return goal.Goal{}, false, fmt.Errorf("build get goal query: %w", err)
	}

	var row goalTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return goal.Goal{}, false, nil
		}
		return goal.Goal{}, false, fmt.Errorf("get goal: %w", err)
	}

	return goalFromRow(row), true, nil
}

func (r *GoalRepository) List(ctx context.Context, filter goal.ListFilter) ([]goal.Goal, error) {
	builder := qb.Select(goalSelectColumns...).From("goals")
	if filter.MatchID != nil {
		builder = builder.Where(qb.Eq("match_id", *filter.MatchID))
	}
	if filter.PlayerID != nil {
		builder = builder.Where(qb.Eq("player_id", *filter.PlayerID))
	}
	query, args, err := builder.
		OrderBy("minute ASC", "id ASC").
		Limit(filter.Limit).
		Offset(filter.Skip).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list goals query: %w", err)
	}

	var rows []goalTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	out := make([]goal.Goal, 0, len(rows))
	for _, row := range rows {
		out = append(out, goalFromRow(row))
	}

	return out, nil
}

func (r *GoalRepository) ListByMatch(ctx context.Context, matchID int64) ([]goal.Goal, error) {
	return r.List(ctx, goal.ListFilter{MatchID: &matchID})
}

func (r *GoalRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("goals").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete goal query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete goal: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete goal rows affected: %w", err)
	}

	return affected > 0, nil
}
