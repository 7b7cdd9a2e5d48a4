package match

import (
	"testing"
	"time"
)

func validMatch() Match {
	return Match{
		MatchDate:      time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		Kickoff:        "20:45:00",
		TeamAName:      "Red",
		TeamBName:      "Blue",
		PlayersPerSide: DefaultPlayersPerSide,
	}
}

func TestNormalizeKickoff(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"20:45:00", "20:45:00", false},
		{"20:45", "20:45:00", false},
		{" 09:00 ", "09:00:00", false},
		{"", "", false},
		{"   ", "", false},
		{"25:00", "", true},
		{"evening", "", true},
	}

	for _, tt := range tests {
		got, err := NormalizeKickoff(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("NormalizeKickoff(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NormalizeKickoff(%q) returned error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("NormalizeKickoff(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseSide(t *testing.T) {
	if side, err := ParseSide(" a "); err != nil || side != SideA {
		t.Fatalf("ParseSide = (%s, %v), want (A, nil)", side, err)
	}
	if _, err := ParseSide("C"); err == nil {
		t.Fatal("expected error for unknown side")
	}
}

func TestMatchValidate(t *testing.T) {
	if err := validMatch().Validate(); err != nil {
		t.Fatalf("Validate returned error for valid match: %v", err)
	}

	m := validMatch()
	m.MatchDate = time.Time{}
	if err := m.Validate(); err == nil {
		t.Fatal("expected error for missing date")
	}

	m = validMatch()
	m.Kickoff = ""
	m.TeamAName = ""
	m.TeamBName = ""
	if err := m.Validate(); err != nil {
		t.Fatalf("kickoff and team names are optional, got error: %v", err)
	}

	m = validMatch()
	m.TeamAScore = -1
	if err := m.Validate(); err == nil {
		t.Fatal("expected error for negative score")
	}

	m = validMatch()
	m.PlayersPerSide = 0
	if err := m.Validate(); err == nil {
		t.Fatal("expected error for zero players per side")
	}
}
