package httpapi

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/matchdayhq/matchday-api/internal/domain/goal"
	"github.com/matchdayhq/matchday-api/internal/usecase"
)

func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGoals")
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

	goals, err := h.goalService.ListGoals(ctx, usecase.ListGoalsInput{
		MatchID:  matchID,
		PlayerID: queryString(r, "player_id"),
		Skip:     skip,
		Limit:    limit,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list goals failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, goalsToDTO(goals))
}

func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGoal")
	defer span.End()

	var req createGoalRequest
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

	created, err := h.goalService.CreateGoal(ctx, usecase.CreateGoalInput{
		MatchID:        req.MatchID,
		PlayerID:       req.PlayerID,
		Minute:         req.Minute,
		Side:           req.Side,
		Type:           req.GoalType,
		AssistPlayerID: req.AssistPlayerID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create goal failed", "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, goalToDTO(created))
}

func (h *Handler) GetGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGoal")
	defer span.End()

	goalID, err := pathID(r, "goalID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	g, err := h.goalService.GetGoal(ctx, goalID)
	if err != nil {
		h.logger.WarnContext(ctx, "get goal failed", "goal_id", goalID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, goalToDTO(g))
}

func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteGoal")
	defer span.End()

	goalID, err := pathID(r, "goalID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.goalService.DeleteGoal(ctx, goalID); err != nil {
		h.logger.WarnContext(ctx, "delete goal failed", "goal_id", goalID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int64{"deleted": goalID})
}

func (h *Handler) ListMatchGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchGoals")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	goals, err := h.goalService.ListMatchGoals(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list match goals failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, goalsToDTO(goals))
}

type createGoalRequest struct {
	MatchID        int64   `json:"match_id" validate:"required,gt=0"`
	PlayerID       string  `json:"player_id" validate:"required"`
	Minute         int     `json:"minute" validate:"required,min=1,max=130"`
	Side           string  `json:"side" validate:"required"`
	GoalType       string  `json:"goal_type"`
	AssistPlayerID *string `json:"assist_player_id"`
}

type goalDTO struct {
	ID             int64   `json:"id"`
	MatchID        int64   `json:"match_id"`
	PlayerID       string  `json:"player_id"`
	Minute         int     `json:"minute"`
	Side           string  `json:"side"`
	GoalType       string  `json:"goal_type"`
	AssistPlayerID *string `json:"assist_player_id,omitempty"`
	CreatedAtUTC   string  `json:"created_at_utc"`
}

func goalToDTO(g goal.Goal) goalDTO {
	return goalDTO{
		ID:             g.ID,
		MatchID:        g.MatchID,
		PlayerID:       g.PlayerID,
		Minute:         g.Minute,
		Side:           string(g.Side),
		GoalType:       string(g.Type),
		AssistPlayerID: g.AssistPlayerID,
		CreatedAtUTC:   g.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func goalsToDTO(goals []goal.Goal) []goalDTO {
	items := make([]goalDTO, 0, len(goals))
	for _, g := range goals {
		items = append(items, goalToDTO(g))
	}
	return items
}
