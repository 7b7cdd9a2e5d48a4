package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "full_name", "role").
		From("players").
		Where(Eq("role", "MIDFIELDER"), Expr("overall_rating >= ?", 70)).
		OrderBy("full_name ASC").
		Limit(25).
		Offset(50).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL returned error: %v", err)
	}

	wantQuery := "SELECT id, full_name, role FROM players WHERE role = $1 AND overall_rating >= $2 ORDER BY full_name ASC LIMIT 25 OFFSET 50"
	if query != wantQuery {
		t.Fatalf("query = %q, want %q", query, wantQuery)
	}

	wantArgs := []any{"MIDFIELDER", 70}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Fatalf("args = %v, want %v", args, wantArgs)
	}
}

func TestSelectBuilderInCondition(t *testing.T) {
	query, args, err := Select("id").
		From("goals").
		Where(Eq("match_id", 7), In("goal_type", []any{"PENALTY", "FREE_KICK"})).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL returned error: %v", err)
	}

	wantQuery := "SELECT id FROM goals WHERE match_id = $1 AND goal_type IN ($2, $3)"
	if query != wantQuery {
		t.Fatalf("query = %q, want %q", query, wantQuery)
	}

	wantArgs := []any{7, "PENALTY", "FREE_KICK"}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Fatalf("args = %v, want %v", args, wantArgs)
	}
}

func TestSelectBuilderEmptyInMatchesNothing(t *testing.T) {
	query, args, err := Select("id").
		From("goals").
		Where(In("goal_type", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL returned error: %v", err)
	}

	wantQuery := "SELECT id FROM goals WHERE 1=0"
	if query != wantQuery {
		t.Fatalf("query = %q, want %q", query, wantQuery)
	}
	if len(args) != 0 {
		t.Fatalf("args = %v, want empty", args)
	}
}

func TestSelectBuilderRequiresTable(t *testing.T) {
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatal("expected error for missing table")
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("formations").
		Columns("match_id", "player_id", "side").
		Values(3, "p-1", "A").
		Values(3, "p-2", "B").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL returned error: %v", err)
	}

	wantQuery := "INSERT INTO formations (match_id, player_id, side) VALUES ($1, $2, $3), ($4, $5, $6) RETURNING id"
	if query != wantQuery {
		t.Fatalf("query = %q, want %q", query, wantQuery)
	}

	wantArgs := []any{3, "p-1", "A", 3, "p-2", "B"}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Fatalf("args = %v, want %v", args, wantArgs)
	}
}

func TestInsertBuilderRejectsRowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("formations").
		Columns("match_id", "player_id").
		Values(3).
		ToSQL()
	if err == nil {
		t.Fatal("expected error for mismatched row width")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("players").
		Set("full_name", "Gigi Buffon").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", "player-1")).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL returned error: %v", err)
	}

	wantQuery := "UPDATE players SET full_name = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("query = %q, want %q", query, wantQuery)
	}

	wantArgs := []any{"Gigi Buffon", "player-1"}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Fatalf("args = %v, want %v", args, wantArgs)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("formations").
		Where(Eq("match_id", 9)).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL returned error: %v", err)
	}

	wantQuery := "DELETE FROM formations WHERE match_id = $1"
	if query != wantQuery {
		t.Fatalf("query = %q, want %q", query, wantQuery)
	}

	wantArgs := []any{9}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Fatalf("args = %v, want %v", args, wantArgs)
	}
}

func TestDeleteBuilderRequiresWhere(t *testing.T) {
	if _, _, err := DeleteFrom("formations").ToSQL(); err == nil {
		t.Fatal("expected error for delete without where clause")
	}
}

func TestInsertModel(t *testing.T) {
	type goalRow struct {
		MatchID  int    `db:"match_id"`
		PlayerID string `db:"player_id"`
		Minute   int    `db:"minute"`
		Skipped  string `db:"-"`
	}

	query, args, err := InsertModel("goals", goalRow{MatchID: 4, PlayerID: "p-9", Minute: 71, Skipped: "x"}, "RETURNING id")
	if err != nil {
		t.Fatalf("InsertModel returned error: %v", err)
	}

	wantQuery := "INSERT INTO goals (match_id, player_id, minute) VALUES ($1, $2, $3) RETURNING id"
	if query != wantQuery {
		t.Fatalf("query = %q, want %q", query, wantQuery)
	}

	wantArgs := []any{4, "p-9", 71}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Fatalf("args = %v, want %v", args, wantArgs)
	}
}

func TestInsertModelRejectsNonStruct(t *testing.T) {
	if _, _, err := InsertModel("goals", 42, ""); err == nil {
		t.Fatal("expected error for non-struct model")
	}
}
