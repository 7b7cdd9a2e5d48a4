package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/matchdayhq/matchday-api/internal/domain/player"
	"github.com/matchdayhq/matchday-api/internal/domain/rating"
	"github.com/matchdayhq/matchday-api/internal/usecase"
)

// maxPhotoBytes bounds multipart photo uploads.
const maxPhotoBytes = 5 << 20

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	skip, limit, err := parseListParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.playerService.ListPlayers(ctx, usecase.ListPlayersInput{
		Role:  r.URL.Query().Get("role"),
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
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

	created, err := h.playerService.CreatePlayer(ctx, usecase.CreatePlayerInput{
		FullName:     req.FullName,
		Role:         req.Role,
		PhotoURL:     req.PhotoURL,
		Skills:       req.Skills.toPatch(),
		GoalsScored:  req.GoalsScored,
		Assists:      req.Assists,
		GoldMedals:   req.GoldMedals,
		SilverMedals: req.SilverMedals,
		BronzeMedals: req.BronzeMedals,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	p, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	var req updatePlayerRequest
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

	updated, err := h.playerService.UpdatePlayer(ctx, playerID, usecase.UpdatePlayerInput{
		FullName:     req.FullName,
		Role:         req.Role,
		PhotoURL:     req.PhotoURL,
		Skills:       req.Skills.toPatch(),
		GoalsScored:  req.GoalsScored,
		Assists:      req.Assists,
		GoldMedals:   req.GoldMedals,
		SilverMedals: req.SilverMedals,
		BronzeMedals: req.BronzeMedals,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	if err := h.playerService.DeletePlayer(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"deleted": playerID})
}

func (h *Handler) UploadPlayerPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadPlayerPhoto")
	defer span.End()

	playerID := r.PathValue("playerID")
	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid multipart payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: photo file part is required: %v", usecase.ErrInvalidInput, err))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("read photo upload: %w", err))
		return
	}
	if len(content) > maxPhotoBytes {
		writeError(ctx, w, fmt.Errorf("%w: photo exceeds %d bytes", usecase.ErrInvalidInput, maxPhotoBytes))
		return
	}

	updated, err := h.playerService.UploadPhoto(ctx, playerID, header.Filename, content)
	if err != nil {
		h.logger.WarnContext(ctx, "upload player photo failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

type skillsPayload struct {
	Speed       *int `json:"speed" validate:"omitempty,min=1,max=10"`
	Passing     *int `json:"passing" validate:"omitempty,min=1,max=10"`
	Attack      *int `json:"attack" validate:"omitempty,min=1,max=10"`
	Defense     *int `json:"defense" validate:"omitempty,min=1,max=10"`
	Technique   *int `json:"technique" validate:"omitempty,min=1,max=10"`
	Goalkeeping *int `json:"goalkeeping" validate:"omitempty,min=1,max=10"`
	Heading     *int `json:"heading" validate:"omitempty,min=1,max=10"`
	Stamina     *int `json:"stamina" validate:"omitempty,min=1,max=10"`
	Leadership  *int `json:"leadership" validate:"omitempty,min=1,max=10"`
}

func (p *skillsPayload) toPatch() *usecase.SkillsPatch {
	if p == nil {
		return nil
	}
	return &usecase.SkillsPatch{
		Speed:       p.Speed,
		Passing:     p.Passing,
		Attack:      p.Attack,
		Defense:     p.Defense,
		Technique:   p.Technique,
		Goalkeeping: p.Goalkeeping,
		Heading:     p.Heading,
		Stamina:     p.Stamina,
		Leadership:  p.Leadership,
	}
}

type createPlayerRequest struct {
	FullName     string         `json:"full_name" validate:"required,max=120"`
	Role         string         `json:"role" validate:"required"`
	PhotoURL     string         `json:"photo_url" validate:"omitempty,max=500"`
	Skills       *skillsPayload `json:"skills"`
	GoalsScored  int            `json:"goals_scored" validate:"gte=0"`
	Assists      int            `json:"assists" validate:"gte=0"`
	GoldMedals   int            `json:"gold_medals" validate:"gte=0"`
	SilverMedals int            `json:"silver_medals" validate:"gte=0"`
	BronzeMedals int            `json:"bronze_medals" validate:"gte=0"`
}

type updatePlayerRequest struct {
	FullName     *string        `json:"full_name" validate:"omitempty,max=120"`
	Role         *string        `json:"role"`
	PhotoURL     *string        `json:"photo_url" validate:"omitempty,max=500"`
	Skills       *skillsPayload `json:"skills"`
	GoalsScored  *int           `json:"goals_scored" validate:"omitempty,gte=0"`
	Assists      *int           `json:"assists" validate:"omitempty,gte=0"`
	GoldMedals   *int           `json:"gold_medals" validate:"omitempty,gte=0"`
	SilverMedals *int           `json:"silver_medals" validate:"omitempty,gte=0"`
	BronzeMedals *int           `json:"bronze_medals" validate:"omitempty,gte=0"`
}

type skillsDTO struct {
	Speed       int `json:"speed"`
	Passing     int `json:"passing"`
	Attack      int `json:"attack"`
	Defense     int `json:"defense"`
	Technique   int `json:"technique"`
	Goalkeeping int `json:"goalkeeping"`
	Heading     int `json:"heading"`
	Stamina     int `json:"stamina"`
	Leadership  int `json:"leadership"`
}

type playerDTO struct {
	ID            string    `json:"id"`
	FullName      string    `json:"full_name"`
	Role          string    `json:"role"`
	PhotoURL      string    `json:"photo_url,omitempty"`
	Skills        skillsDTO `json:"skills"`
	OverallRating int       `json:"overall_rating"`
	GoalsScored   int       `json:"goals_scored"`
	Assists       int       `json:"assists"`
	GoldMedals    int       `json:"gold_medals"`
	SilverMedals  int       `json:"silver_medals"`
	BronzeMedals  int       `json:"bronze_medals"`
	CreatedAtUTC  string    `json:"created_at_utc"`
	UpdatedAtUTC  string    `json:"updated_at_utc"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:       p.ID,
		FullName: p.FullName,
		Role:     string(p.Role),
		PhotoURL: p.PhotoURL,
		Skills: skillsDTO{
			Speed:       p.Skills.Speed,
			Passing:     p.Skills.Passing,
			Attack:      p.Skills.Attack,
			Defense:     p.Skills.Defense,
			Technique:   p.Skills.Technique,
			Goalkeeping: p.Skills.Goalkeeping,
			Heading:     p.Skills.Heading,
			Stamina:     p.Skills.Stamina,
			Leadership:  p.Skills.Leadership,
		},
		OverallRating: rating.OverallRating(p.Role, p.Skills),
		GoalsScored:   p.GoalsScored,
		Assists:       p.Assists,
		GoldMedals:    p.GoldMedals,
		SilverMedals:  p.SilverMedals,
		BronzeMedals:  p.BronzeMedals,
		CreatedAtUTC:  p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAtUTC:  p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
