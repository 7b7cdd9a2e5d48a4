package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, uploadsDir string) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if uploadsDir == "" {
		return
	}

	// Photos stored by the local media store are served straight from disk.
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("POST /v1/players", handler.CreatePlayer)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("PUT /v1/players/{playerID}", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /v1/players/{playerID}", handler.DeletePlayer)
	mux.HandleFunc("POST /v1/players/{playerID}/photo", handler.UploadPlayerPhoto)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("POST /v1/matches", handler.CreateMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("PUT /v1/matches/{matchID}", handler.UpdateMatch)
	mux.HandleFunc("DELETE /v1/matches/{matchID}", handler.DeleteMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}/formations", handler.ListMatchLineup)
	mux.HandleFunc("PUT /v1/matches/{matchID}/formations", handler.ReplaceMatchLineup)
	mux.HandleFunc("GET /v1/matches/{matchID}/goals", handler.ListMatchGoals)
}

func registerFormationRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/formations", handler.ListFormations)
	mux.HandleFunc("POST /v1/formations", handler.CreateFormation)
	mux.HandleFunc("GET /v1/formations/{formationID}", handler.GetFormation)
	mux.HandleFunc("DELETE /v1/formations/{formationID}", handler.DeleteFormation)
}

func registerGoalRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/goals", handler.ListGoals)
	mux.HandleFunc("POST /v1/goals", handler.CreateGoal)
	mux.HandleFunc("GET /v1/goals/{goalID}", handler.GetGoal)
	mux.HandleFunc("DELETE /v1/goals/{goalID}", handler.DeleteGoal)
}

func registerStatisticsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/statistics", handler.GetStatistics)
}
