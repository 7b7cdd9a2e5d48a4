package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/matchdayhq/matchday-api/internal/domain/match"
	"github.com/matchdayhq/matchday-api/internal/infrastructure/repository/memory"
)

func newFormationService() (*FormationService, *memory.FormationRepository) {
	formationRepo := memory.NewFormationRepository(nil)
	svc := NewFormationService(
		formationRepo,
		memory.NewMatchRepository(memory.SeedMatches()),
		memory.NewPlayerRepository(memory.SeedPlayers()),
	)
	return svc, formationRepo
}

func TestCreateFormation(t *testing.T) {
	svc, _ := newFormationService()

	shirt := 10
	created, err := svc.CreateFormation(context.Background(), 1, FormationEntryInput{
		PlayerID:    "seed-mid-1",
		Side:        "a",
		ShirtNumber: &shirt,
		Captain:     true,
	})
	if err != nil {
		t.Fatalf("CreateFormation returned error: %v", err)
	}

	if created.ID == 0 {
		t.Fatal("expected assigned formation id")
	}
	if created.Side != match.SideA {
		t.Fatalf("Side = %s, want A", created.Side)
	}
	if !created.Captain {
		t.Fatal("expected captain flag to persist")
	}
}

func TestCreateFormationRejectsDuplicatePlayer(t *testing.T) {
	svc, _ := newFormationService()

	input := FormationEntryInput{PlayerID: "seed-mid-1", Side: "A"}
	if _, err := svc.CreateFormation(context.Background(), 1, input); err != nil {
		t.Fatalf("CreateFormation returned error: %v", err)
	}
	if _, err := svc.CreateFormation(context.Background(), 1, input); !errors.Is(err, ErrConflict) {
		t.Fatalf("error = %v, want %v", err, ErrConflict)
	}
}

func TestCreateFormationRejectsUnknownReferences(t *testing.T) {
	svc, _ := newFormationService()

	if _, err := svc.CreateFormation(context.Background(), 99, FormationEntryInput{
		PlayerID: "seed-mid-1",
		Side:     "A",
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want %v", err, ErrNotFound)
	}

	if _, err := svc.CreateFormation(context.Background(), 1, FormationEntryInput{
		PlayerID: "ghost",
		Side:     "A",
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want %v", err, ErrNotFound)
	}
}

func TestReplaceMatchLineup(t *testing.T) {
	svc, _ := newFormationService()

	if _, err := svc.CreateFormation(context.Background(), 1, FormationEntryInput{
		PlayerID: "seed-gk-1",
		Side:     "A",
	}); err != nil {
		t.Fatalf("CreateFormation returned error: %v", err)
	}

	replaced, err := svc.ReplaceMatchLineup(context.Background(), 1, []FormationEntryInput{
		{PlayerID: "seed-def-1", Side: "A"},
		{PlayerID: "seed-fwd-1", Side: "B"},
	})
	if err != nil {
		t.Fatalf("ReplaceMatchLineup returned error: %v", err)
	}
	if len(replaced) != 2 {
		t.Fatalf("got %d entries, want 2", len(replaced))
	}

	lineup, err := svc.ListMatchLineup(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListMatchLineup returned error: %v", err)
	}
	if len(lineup) != 2 {
		t.Fatalf("lineup has %d entries, want 2 after replace", len(lineup))
	}
	for _, e := range lineup {
		if e.Entry.PlayerID == "seed-gk-1" {
			t.Fatal("replaced lineup still contains the old entry")
		}
		if e.Player.ID != e.Entry.PlayerID {
			t.Fatalf("lineup player %q does not match entry %q", e.Player.ID, e.Entry.PlayerID)
		}
	}
}

func TestReplaceMatchLineupRejectsBatchOnBadReference(t *testing.T) {
	svc, _ := newFormationService()

	if _, err := svc.CreateFormation(context.Background(), 1, FormationEntryInput{
		PlayerID: "seed-gk-1",
		Side:     "A",
	}); err != nil {
		t.Fatalf("CreateFormation returned error: %v", err)
	}

	if _, err := svc.ReplaceMatchLineup(context.Background(), 1, []FormationEntryInput{
		{PlayerID: "seed-def-1", Side: "A"},
		{PlayerID: "ghost", Side: "B"},
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want %v", err, ErrNotFound)
	}

	lineup, err := svc.ListMatchLineup(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListMatchLineup returned error: %v", err)
	}
	if len(lineup) != 1 || lineup[0].Entry.PlayerID != "seed-gk-1" {
		t.Fatalf("lineup = %v, want the original entry untouched", lineup)
	}
}

func TestReplaceMatchLineupRejectsDuplicates(t *testing.T) {
	svc, _ := newFormationService()

	if _, err := svc.ReplaceMatchLineup(context.Background(), 1, []FormationEntryInput{
		{PlayerID: "seed-def-1", Side: "A"},
		{PlayerID: "seed-def-1", Side: "B"},
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidInput)
	}
}

func TestReplaceMatchLineupWithEmptyBatchClearsLineup(t *testing.T) {
	svc, _ := newFormationService()

	if _, err := svc.CreateFormation(context.Background(), 1, FormationEntryInput{
		PlayerID: "seed-gk-1",
		Side:     "A",
	}); err != nil {
		t.Fatalf("CreateFormation returned error: %v", err)
	}

	replaced, err := svc.ReplaceMatchLineup(context.Background(), 1, nil)
	if err != nil {
		t.Fatalf("ReplaceMatchLineup returned error: %v", err)
	}
	if len(replaced) != 0 {
		t.Fatalf("got %d entries, want 0", len(replaced))
	}

	lineup, err := svc.ListMatchLineup(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListMatchLineup returned error: %v", err)
	}
	if len(lineup) != 0 {
		t.Fatalf("lineup has %d entries, want 0", len(lineup))
	}
}

func TestDeleteFormation(t *testing.T) {
	svc, _ := newFormationService()

	created, err := svc.CreateFormation(context.Background(), 1, FormationEntryInput{
		PlayerID: "seed-gk-1",
		Side:     "A",
	})
	if err != nil {
		t.Fatalf("CreateFormation returned error: %v", err)
	}

	if err := svc.DeleteFormation(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteFormation returned error: %v", err)
	}
	if err := svc.DeleteFormation(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete error = %v, want %v", err, ErrNotFound)
	}
}
