package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/matchdayhq/matchday-api/internal/domain/match"
)

type MatchService struct {
	matchRepo match.Repository
	now       func() time.Time
}

func NewMatchService(matchRepo match.Repository) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		now:       time.Now,
	}
}

type CreateMatchInput struct {
	MatchDate      time.Time
	Kickoff        string
	TeamAName      string
	TeamBName      string
	TeamAScore     int
	TeamBScore     int
	Venue          string
	Referee        string
	Notes          string
	PlayersPerSide int
}

func (s *MatchService) CreateMatch(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateMatch")
	defer span.End()

	kickoff, err := match.NormalizeKickoff(input.Kickoff)
	if err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	playersPerSide := input.PlayersPerSide
	if playersPerSide == 0 {
		playersPerSide = match.DefaultPlayersPerSide
	}

	now := s.now().UTC()
	m := match.Match{
		MatchDate:      input.MatchDate,
		Kickoff:        kickoff,
		TeamAName:      strings.TrimSpace(input.TeamAName),
		TeamBName:      strings.TrimSpace(input.TeamBName),
		TeamAScore:     input.TeamAScore,
		TeamBScore:     input.TeamBScore,
		Venue:          strings.TrimSpace(input.Venue),
		Referee:        strings.TrimSpace(input.Referee),
		Notes:          strings.TrimSpace(input.Notes),
		PlayersPerSide: playersPerSide,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := m.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.matchRepo.Create(ctx, m)
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	return created, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID int64) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch")
	defer span.End()

	if matchID <= 0 {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, found, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !found {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	return m, nil
}

type ListMatchesInput struct {
	Skip  int
	Limit int
}

func (s *MatchService) ListMatches(ctx context.Context, input ListMatchesInput) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	if input.Skip < 0 || input.Limit < 0 {
		return nil, fmt.Errorf("%w: skip and limit must not be negative", ErrInvalidInput)
	}

	matches, err := s.matchRepo.List(ctx, match.ListFilter{Skip: input.Skip, Limit: input.Limit})
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return matches, nil
}

type UpdateMatchInput struct {
	MatchDate      *time.Time
	Kickoff        *string
	TeamAName      *string
	TeamBName      *string
	TeamAScore     *int
	TeamBScore     *int
	Venue          *string
	Referee        *string
	Notes          *string
	PlayersPerSide *int
}

func (s *MatchService) UpdateMatch(ctx context.Context, matchID int64, input UpdateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateMatch")
	defer span.End()

	m, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}

	if input.MatchDate != nil {
		m.MatchDate = *input.MatchDate
	}
	if input.Kickoff != nil {
		kickoff, err := match.NormalizeKickoff(*input.Kickoff)
		if err != nil {
			return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		m.Kickoff = kickoff
	}
	if input.TeamAName != nil {
		m.TeamAName = strings.TrimSpace(*input.TeamAName)
	}
	if input.TeamBName != nil {
		m.TeamBName = strings.TrimSpace(*input.TeamBName)
	}
	if input.TeamAScore != nil {
		m.TeamAScore = *input.TeamAScore
	}
	if input.TeamBScore != nil {
		m.TeamBScore = *input.TeamBScore
	}
	if input.Venue != nil {
		m.Venue = strings.TrimSpace(*input.Venue)
	}
	if input.Referee != nil {
		m.Referee = strings.TrimSpace(*input.Referee)
	}
	if input.Notes != nil {
		m.Notes = strings.TrimSpace(*input.Notes)
	}
	if input.PlayersPerSide != nil {
		m.PlayersPerSide = *input.PlayersPerSide
	}

	m.UpdatedAt = s.now().UTC()
	if err := m.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	found, err := s.matchRepo.Update(ctx, m)
	if err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	if !found {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	return m, nil
}

func (s *MatchService) DeleteMatch(ctx context.Context, matchID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.DeleteMatch")
	defer span.End()

	if matchID <= 0 {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	found, err := s.matchRepo.Delete(ctx, matchID)
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	return nil
}
