package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/matchdayhq/matchday-api/internal/domain/formation"
	"github.com/matchdayhq/matchday-api/internal/domain/match"
	"github.com/matchdayhq/matchday-api/internal/domain/player"
)

type FormationService struct {
	formationRepo formation.Repository
	matchRepo     match.Repository
	playerRepo    player.Repository
	now           func() time.Time
}

func NewFormationService(formationRepo formation.Repository, matchRepo match.Repository, playerRepo player.Repository) *FormationService {
	return &FormationService{
		formationRepo: formationRepo,
		matchRepo:     matchRepo,
		playerRepo:    playerRepo,
		now:           time.Now,
	}
}

type FormationEntryInput struct {
	PlayerID    string
	Side        string
	ShirtNumber *int
	Captain     bool
}

func (s *FormationService) buildEntry(matchID int64, input FormationEntryInput) (formation.Entry, error) {
	side, err := match.ParseSide(input.Side)
	if err != nil {
		return formation.Entry{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	e := formation.Entry{
		MatchID:     matchID,
		PlayerID:    strings.TrimSpace(input.PlayerID),
		Side:        side,
		ShirtNumber: input.ShirtNumber,
		Captain:     input.Captain,
		CreatedAt:   s.now().UTC(),
	}
	if err := e.Validate(); err != nil {
		return formation.Entry{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return e, nil
}

// requireReferences checks that the match and every referenced player exist.
func (s *FormationService) requireReferences(ctx context.Context, matchID int64, playerIDs []string) error {
	_, found, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	for _, playerID := range playerIDs {
		_, found, err := s.playerRepo.GetByID(ctx, playerID)
		if err != nil {
			return fmt.Errorf("get player: %w", err)
		}
		if !found {
			return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}
	}

	return nil
}

func (s *FormationService) CreateFormation(ctx context.Context, matchID int64, input FormationEntryInput) (formation.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FormationService.CreateFormation")
	defer span.End()

	if matchID <= 0 {
		return formation.Entry{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	e, err := s.buildEntry(matchID, input)
	if err != nil {
		return formation.Entry{}, err
	}
	if err := s.requireReferences(ctx, matchID, []string{e.PlayerID}); err != nil {
		return formation.Entry{}, err
	}

	existing, err := s.formationRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return formation.Entry{}, fmt.Errorf("list formations: %w", err)
	}
	for _, other := range existing {
		if other.PlayerID == e.PlayerID {
			return formation.Entry{}, fmt.Errorf("%w: player %s is already in the lineup of match %d", ErrConflict, e.PlayerID, matchID)
		}
	}

	created, err := s.formationRepo.Create(ctx, e)
	if err != nil {
		return formation.Entry{}, fmt.Errorf("create formation: %w", err)
	}

	return created, nil
}

func (s *FormationService) GetFormation(ctx context.Context, formationID int64) (formation.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FormationService.GetFormation")
	defer span.End()

	if formationID <= 0 {
		return formation.Entry{}, fmt.Errorf("%w: formation id is required", ErrInvalidInput)
	}

	e, found, err := s.formationRepo.GetByID(ctx, formationID)
	if err != nil {
		return formation.Entry{}, fmt.Errorf("get formation: %w", err)
	}
	if !found {
		return formation.Entry{}, fmt.Errorf("%w: formation=%d", ErrNotFound, formationID)
	}

	return e, nil
}

type ListFormationsInput struct {
	MatchID  *int64
	PlayerID *string
	Skip     int
	Limit    int
}

func (s *FormationService) ListFormations(ctx context.Context, input ListFormationsInput) ([]formation.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FormationService.ListFormations")
	defer span.End()

	if input.Skip < 0 || input.Limit < 0 {
		return nil, fmt.Errorf("%w: skip and limit must not be negative", ErrInvalidInput)
	}

	entries, err := s.formationRepo.List(ctx, formation.ListFilter{
		MatchID:  input.MatchID,
		PlayerID: input.PlayerID,
		Skip:     input.Skip,
		Limit:    input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list formations: %w", err)
	}

	return entries, nil
}

// LineupEntry pairs a formation entry with the referenced player so the
// lineup view does not force clients into N+1 player lookups.
type LineupEntry struct {
	Entry  formation.Entry
	Player player.Player
}

func (s *FormationService) ListMatchLineup(ctx context.Context, matchID int64) ([]LineupEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FormationService.ListMatchLineup")
	defer span.End()

	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	_, found, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	entries, err := s.formationRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list formations: %w", err)
	}

	lineup := make([]LineupEntry, 0, len(entries))
	for _, e := range entries {
		p, found, err := s.playerRepo.GetByID(ctx, e.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("get player: %w", err)
		}
		if !found {
			return nil, fmt.Errorf("%w: player=%s", ErrNotFound, e.PlayerID)
		}
		lineup = append(lineup, LineupEntry{Entry: e, Player: p})
	}

	return lineup, nil
}

// ReplaceMatchLineup swaps the whole lineup of a match. The batch is
// validated up front and stored atomically; a bad entry rejects all of it.
func (s *FormationService) ReplaceMatchLineup(ctx context.Context, matchID int64, inputs []FormationEntryInput) ([]formation.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FormationService.ReplaceMatchLineup")
	defer span.End()

	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	entries := make([]formation.Entry, 0, len(inputs))
	playerIDs := make([]string, 0, len(inputs))
	for _, input := range inputs {
		e, err := s.buildEntry(matchID, input)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
		playerIDs = append(playerIDs, e.PlayerID)
	}

	if err := formation.ValidateBatch(matchID, entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.requireReferences(ctx, matchID, playerIDs); err != nil {
		return nil, err
	}

	replaced, err := s.formationRepo.ReplaceByMatch(ctx, matchID, entries)
	if err != nil {
		return nil, fmt.Errorf("replace lineup: %w", err)
	}

	return replaced, nil
}

func (s *FormationService) DeleteFormation(ctx context.Context, formationID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FormationService.DeleteFormation")
	defer span.End()

	if formationID <= 0 {
		return fmt.Errorf("%w: formation id is required", ErrInvalidInput)
	}

	found, err := s.formationRepo.Delete(ctx, formationID)
	if err != nil {
		return fmt.Errorf("delete formation: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: formation=%d", ErrNotFound, formationID)
	}

	return nil
}
