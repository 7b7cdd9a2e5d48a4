package httpapi

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/matchdayhq/matchday-api/internal/domain/match"
	"github.com/matchdayhq/matchday-api/internal/usecase"
)

const matchDateLayout = "2006-01-02"

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	skip, limit, err := parseListParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.matchService.ListMatches(ctx, usecase.ListMatchesInput{Skip: skip, Limit: limit})
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matchDate, err := time.Parse(matchDateLayout, req.MatchDate)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid match_date: %v", usecase.ErrInvalidInput, err))
		return
	}

	created, err := h.matchService.CreateMatch(ctx, usecase.CreateMatchInput{
		MatchDate:      matchDate,
		Kickoff:        req.Kickoff,
		TeamAName:      req.TeamAName,
		TeamBName:      req.TeamBName,
		TeamAScore:     req.TeamAScore,
		TeamBScore:     req.TeamBScore,
		Venue:          req.Venue,
		Referee:        req.Referee,
		Notes:          req.Notes,
		PlayersPerSide: req.PlayersPerSide,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(created))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateMatchRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.UpdateMatchInput{
		Kickoff:        req.Kickoff,
		TeamAName:      req.TeamAName,
		TeamBName:      req.TeamBName,
		TeamAScore:     req.TeamAScore,
		TeamBScore:     req.TeamBScore,
		Venue:          req.Venue,
		Referee:        req.Referee,
		Notes:          req.Notes,
		PlayersPerSide: req.PlayersPerSide,
	}
	if req.MatchDate != nil {
		matchDate, err := time.Parse(matchDateLayout, *req.MatchDate)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: invalid match_date: %v", usecase.ErrInvalidInput, err))
			return
		}
		input.MatchDate = &matchDate
	}

	updated, err := h.matchService.UpdateMatch(ctx, matchID, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchService.DeleteMatch(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int64{"deleted": matchID})
}

type createMatchRequest struct {
	MatchDate      string `json:"match_date" validate:"required"`
	Kickoff        string `json:"kickoff" validate:"omitempty"`
	TeamAName      string `json:"team_a_name" validate:"omitempty,max=120"`
	TeamBName      string `json:"team_b_name" validate:"omitempty,max=120"`
	TeamAScore     int    `json:"team_a_score" validate:"gte=0"`
	TeamBScore     int    `json:"team_b_score" validate:"gte=0"`
	Venue          string `json:"venue" validate:"omitempty,max=200"`
	Referee        string `json:"referee" validate:"omitempty,max=120"`
	Notes          string `json:"notes" validate:"omitempty,max=2000"`
	PlayersPerSide int    `json:"players_per_side" validate:"gte=0"`
}

type updateMatchRequest struct {
	MatchDate      *string `json:"match_date"`
	Kickoff        *string `json:"kickoff"`
	TeamAName      *string `json:"team_a_name" validate:"omitempty,max=120"`
	TeamBName      *string `json:"team_b_name" validate:"omitempty,max=120"`
	TeamAScore     *int    `json:"team_a_score" validate:"omitempty,gte=0"`
	TeamBScore     *int    `json:"team_b_score" validate:"omitempty,gte=0"`
	Venue          *string `json:"venue" validate:"omitempty,max=200"`
	Referee        *string `json:"referee" validate:"omitempty,max=120"`
	Notes          *string `json:"notes" validate:"omitempty,max=2000"`
	PlayersPerSide *int    `json:"players_per_side" validate:"omitempty,gte=1"`
}

type matchDTO struct {
	ID             int64  `json:"id"`
	MatchDate      string `json:"match_date"`
	Kickoff        string `json:"kickoff"`
	TeamAName      string `json:"team_a_name"`
	TeamBName      string `json:"team_b_name"`
	TeamAScore     int    `json:"team_a_score"`
	TeamBScore     int    `json:"team_b_score"`
	Venue          string `json:"venue,omitempty"`
	Referee        string `json:"referee,omitempty"`
	Notes          string `json:"notes,omitempty"`
	PlayersPerSide int    `json:"players_per_side"`
	CreatedAtUTC   string `json:"created_at_utc"`
	UpdatedAtUTC   string `json:"updated_at_utc"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:             m.ID,
		MatchDate:      m.MatchDate.Format(matchDateLayout),
		Kickoff:        m.Kickoff,
		TeamAName:      m.TeamAName,
		TeamBName:      m.TeamBName,
		TeamAScore:     m.TeamAScore,
		TeamBScore:     m.TeamBScore,
		Venue:          m.Venue,
		Referee:        m.Referee,
		Notes:          m.Notes,
		PlayersPerSide: m.PlayersPerSide,
		CreatedAtUTC:   m.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAtUTC:   m.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
