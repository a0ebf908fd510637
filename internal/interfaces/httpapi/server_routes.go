package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/competitions", handler.ListCompetitions)
	mux.HandleFunc("GET /v1/competitions/{competitionID}", handler.GetCompetition)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/teams", handler.ListTeamsByCompetition)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/teams/{teamID}/stats", handler.GetTeamStats)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/standings/export", handler.ExportStandings)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/rankings", handler.GetRankings)
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/ingestion/matches", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestMatches)))
	mux.Handle("POST /v1/internal/ingestion/teams", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestTeams)))
	mux.Handle("POST /v1/internal/ingestion/player-stats", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestPlayerSeasonStats)))
	mux.Handle("POST /v1/internal/jobs/recompute-standings", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRecomputeStandingsJob)))
}
