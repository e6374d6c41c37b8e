package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchName}/teams", handler.ListMatchTeams)
	mux.HandleFunc("GET /v1/matches/{matchName}/teams/{teamName}/players", handler.ListTeamPlayers)
	mux.HandleFunc("GET /v1/matches/{matchName}/lock", handler.GetMatchLock)
	mux.HandleFunc("GET /v1/users/{userID}/profile", handler.GetProfile)
	mux.HandleFunc("GET /v1/users/{userID}/matches/{matchName}/roster", handler.GetRoster)
	mux.HandleFunc("POST /v1/users/{userID}/matches/{matchName}/roster/players", handler.AddRosterPlayer)
	mux.HandleFunc("DELETE /v1/users/{userID}/matches/{matchName}/roster/players/{playerName}", handler.RemoveRosterPlayer)
	mux.HandleFunc("DELETE /v1/users/{userID}/matches/{matchName}/roster", handler.ClearRoster)
	mux.HandleFunc("GET /v1/users/{userID}/matches/{matchName}/stake", handler.GetStake)
	mux.HandleFunc("PUT /v1/users/{userID}/matches/{matchName}/stake", handler.PutStake)
	mux.HandleFunc("GET /v1/rankings", handler.GetRankings)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.Handle("POST /v1/admin/matches", RequireAdminToken(adminToken, http.HandlerFunc(handler.CreateMatch)))
	mux.Handle("POST /v1/admin/matches/{matchName}/teams", RequireAdminToken(adminToken, http.HandlerFunc(handler.AddMatchTeam)))
	mux.Handle("POST /v1/admin/matches/{matchName}/teams/{teamName}/players", RequireAdminToken(adminToken, http.HandlerFunc(handler.AddTeamPlayers)))
	mux.Handle("POST /v1/admin/matches/{matchName}/lock", RequireAdminToken(adminToken, http.HandlerFunc(handler.LockMatch)))
	mux.Handle("PUT /v1/admin/players/{playerName}/points", RequireAdminToken(adminToken, http.HandlerFunc(handler.SetPlayerPoints)))
	mux.Handle("POST /v1/admin/reset", RequireAdminToken(adminToken, http.HandlerFunc(handler.ResetState)))
	mux.Handle("GET /v1/admin/backup", RequireAdminToken(adminToken, http.HandlerFunc(handler.ExportBackup)))
}
