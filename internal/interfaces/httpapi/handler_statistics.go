package httpapi

import (
	"net/http"

	"github.com/matchdayhq/matchday-api/internal/domain/player"
	"github.com/matchdayhq/matchday-api/internal/domain/rating"
)

func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStatistics")
	defer span.End()

	stats, err := h.statisticsService.GetStatistics(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get statistics failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statisticsToDTO(stats))
}

type statisticsDTO struct {
	TotalPlayers  int              `json:"total_players"`
	PlayersByRole map[string]int   `json:"players_by_role"`
	SkillAverages skillAveragesDTO `json:"average_skills"`
}

type skillAveragesDTO struct {
	Speed       float64 `json:"speed"`
	Passing     float64 `json:"passing"`
	Attack      float64 `json:"attack"`
	Defense     float64 `json:"defense"`
	Technique   float64 `json:"technique"`
	Goalkeeping float64 `json:"goalkeeping"`
	Heading     float64 `json:"heading"`
	Stamina     float64 `json:"stamina"`
	Leadership  float64 `json:"leadership"`
}

func statisticsToDTO(stats rating.Statistics) statisticsDTO {
	byRole := make(map[string]int, len(stats.PlayersByRole))
	for role, count := range stats.PlayersByRole {
		byRole[string(role)] = count
	}
	for role := range player.AllRoles {
		if _, ok := byRole[string(role)]; !ok {
			byRole[string(role)] = 0
		}
	}

	return statisticsDTO{
		TotalPlayers:  stats.TotalPlayers,
		PlayersByRole: byRole,
		SkillAverages: skillAveragesDTO{
			Speed:       stats.SkillAverages.Speed,
			Passing:     stats.SkillAverages.Passing,
			Attack:      stats.SkillAverages.Attack,
			Defense:     stats.SkillAverages.Defense,
			Technique:   stats.SkillAverages.Technique,
			Goalkeeping: stats.SkillAverages.Goalkeeping,
			Heading:     stats.SkillAverages.Heading,
			Stamina:     stats.SkillAverages.Stamina,
			Leadership:  stats.SkillAverages.Leadership,
		},
	}
}
