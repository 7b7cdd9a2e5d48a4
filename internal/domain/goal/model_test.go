package goal

import (
	"testing"

	"github.com/matchdayhq/matchday-api/internal/domain/match"
)

func TestParseType(t *testing.T) {
	if got, err := ParseType(" penalty "); err != nil || got != TypePenalty {
		t.Fatalf("ParseType = (%s, %v), want (PENALTY, nil)", got, err)
	}
	if got, err := ParseType(""); err != nil || got != TypeNormal {
		t.Fatalf("ParseType empty = (%s, %v), want (NORMAL, nil)", got, err)
	}
	if _, err := ParseType("BICYCLE"); err == nil {
		t.Fatal("expected error for unknown goal type")
	}
}

func TestGoalValidate(t *testing.T) {
	g := Goal{MatchID: 1, PlayerID: "p-1", Minute: 45, Side: match.SideA, Type: TypeNormal}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate returned error for valid goal: %v", err)
	}

	bad := g
	bad.Minute = 0
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for minute below range")
	}

	bad = g
	bad.Minute = 131
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for minute above range")
	}

	bad = g
	bad.Type = "BICYCLE"
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for invalid goal type")
	}

	empty := ""
	bad = g
	bad.AssistPlayerID = &empty
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for empty assist player id")
	}
}
