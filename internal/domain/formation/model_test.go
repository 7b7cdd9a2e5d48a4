package formation

import (
	"testing"

	"github.com/matchdayhq/matchday-api/internal/domain/match"
)

func TestEntryValidate(t *testing.T) {
	shirt := 10
	e := Entry{MatchID: 1, PlayerID: "p-1", Side: match.SideA, ShirtNumber: &shirt}
	if err := e.Validate(); err != nil {
		t.Fatalf("Validate returned error for valid entry: %v", err)
	}

	bad := e
	bad.Side = "C"
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for invalid side")
	}

	zero := 0
	bad = e
	bad.ShirtNumber = &zero
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for out-of-range shirt number")
	}
}

func TestValidateBatchRejectsDuplicatePlayer(t *testing.T) {
	entries := []Entry{
		{MatchID: 1, PlayerID: "p-1", Side: match.SideA},
		{MatchID: 1, PlayerID: "p-1", Side: match.SideB},
	}
	if err := ValidateBatch(1, entries); err == nil {
		t.Fatal("expected error for duplicated player in lineup")
	}
}

func TestValidateBatchRejectsForeignMatch(t *testing.T) {
	entries := []Entry{{MatchID: 2, PlayerID: "p-1", Side: match.SideA}}
	if err := ValidateBatch(1, entries); err == nil {
		t.Fatal("expected error for entry targeting another match")
	}
}

func TestValidateBatchAcceptsEmptyLineup(t *testing.T) {
	if err := ValidateBatch(1, nil); err != nil {
		t.Fatalf("empty lineup must validate, got: %v", err)
	}
}
