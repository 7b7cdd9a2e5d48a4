package httpapi

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/matchdayhq/matchday-api/internal/domain/formation"
	"github.com/matchdayhq/matchday-api/internal/domain/rating"
	"github.com/matchdayhq/matchday-api/internal/usecase"
)

func (h *Handler) ListFormations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFormations")
	defer span.End()

	skip, limit, err := parseListParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	matchID, err := queryInt64(r, "match_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.formationService.ListFormations(ctx, usecase.ListFormationsInput{
		MatchID:  matchID,
		PlayerID: queryString(r, "player_id"),
		Skip:     skip,
		Limit:    limit,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list formations failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, formationsToDTO(entries))
}

func (h *Handler) CreateFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateFormation")
	defer span.End()

	var req createFormationRequest
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

	created, err := h.formationService.CreateFormation(ctx, req.MatchID, usecase.FormationEntryInput{
		PlayerID:    req.PlayerID,
		Side:        req.Side,
		ShirtNumber: req.ShirtNumber,
		Captain:     req.Captain,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create formation failed", "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, formationToDTO(created))
}

func (h *Handler) GetFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFormation")
	defer span.End()

	formationID, err := pathID(r, "formationID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entry, err := h.formationService.GetFormation(ctx, formationID)
	if err != nil {
		h.logger.WarnContext(ctx, "get formation failed", "formation_id", formationID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, formationToDTO(entry))
}

func (h *Handler) DeleteFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteFormation")
	defer span.End()

	formationID, err := pathID(r, "formationID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.formationService.DeleteFormation(ctx, formationID); err != nil {
		h.logger.WarnContext(ctx, "delete formation failed", "formation_id", formationID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int64{"deleted": formationID})
}

func (h *Handler) ListMatchLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchLineup")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	lineup, err := h.formationService.ListMatchLineup(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list match lineup failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]lineupEntryDTO, 0, len(lineup))
	for _, entry := range lineup {
		items = append(items, lineupEntryDTO{
			formationDTO: formationToDTO(entry.Entry),
			Player: lineupPlayerDTO{
				ID:            entry.Player.ID,
				FullName:      entry.Player.FullName,
				Role:          string(entry.Player.Role),
				PhotoURL:      entry.Player.PhotoURL,
				OverallRating: rating.OverallRating(entry.Player.Role, entry.Player.Skills),
			},
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ReplaceMatchLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReplaceMatchLineup")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req replaceLineupRequest
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

	inputs := make([]usecase.FormationEntryInput, 0, len(req.Entries))
	for _, entry := range req.Entries {
		inputs = append(inputs, usecase.FormationEntryInput{
			PlayerID:    entry.PlayerID,
			Side:        entry.Side,
			ShirtNumber: entry.ShirtNumber,
			Captain:     entry.Captain,
		})
	}

	replaced, err := h.formationService.ReplaceMatchLineup(ctx, matchID, inputs)
	if err != nil {
		h.logger.WarnContext(ctx, "replace match lineup failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, formationsToDTO(replaced))
}

type formationEntryPayload struct {
	PlayerID    string `json:"player_id" validate:"required"`
	Side        string `json:"side" validate:"required"`
	ShirtNumber *int   `json:"shirt_number" validate:"omitempty,min=1,max=99"`
	Captain     bool   `json:"captain"`
}

type createFormationRequest struct {
	MatchID     int64  `json:"match_id" validate:"required,gt=0"`
	PlayerID    string `json:"player_id" validate:"required"`
	Side        string `json:"side" validate:"required"`
	ShirtNumber *int   `json:"shirt_number" validate:"omitempty,min=1,max=99"`
	Captain     bool   `json:"captain"`
}

type replaceLineupRequest struct {
	Entries []formationEntryPayload `json:"entries" validate:"dive"`
}

type lineupPlayerDTO struct {
	ID            string `json:"id"`
	FullName      string `json:"full_name"`
	Role          string `json:"role"`
	PhotoURL      string `json:"photo_url,omitempty"`
	OverallRating int    `json:"overall_rating"`
}

type lineupEntryDTO struct {
	formationDTO
	Player lineupPlayerDTO `json:"player"`
}

type formationDTO struct {
	ID           int64  `json:"id"`
	MatchID      int64  `json:"match_id"`
	PlayerID     string `json:"player_id"`
	Side         string `json:"side"`
	ShirtNumber  *int   `json:"shirt_number,omitempty"`
	Captain      bool   `json:"captain"`
	CreatedAtUTC string `json:"created_at_utc"`
}

func formationToDTO(e formation.Entry) formationDTO {
	return formationDTO{
		ID:           e.ID,
		MatchID:      e.MatchID,
		PlayerID:     e.PlayerID,
		Side:         string(e.Side),
		ShirtNumber:  e.ShirtNumber,
		Captain:      e.Captain,
		CreatedAtUTC: e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func formationsToDTO(entries []formation.Entry) []formationDTO {
	items := make([]formationDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, formationToDTO(e))
	}
	return items
}
