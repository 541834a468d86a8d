package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/ashithhgowda/treasure/internal/hunt"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Treasure Hunt API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the treasure hunt competition.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/login
	postLogin, _ := r.NewOperationContext(http.MethodPost, "/api/login")
	postLogin.SetSummary("Team login")
	postLogin.SetDescription("Authenticate with team name and password. Returns a Bearer session token.")
	postLogin.AddReqStructure(LoginRequest{})
	postLogin.AddRespStructure(LoginResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	postLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusForbidden))
	_ = r.AddOperation(postLogin)

	// GET /api/team
	getTeam, _ := r.NewOperationContext(http.MethodGet, "/api/team")
	getTeam.SetSummary("Get team state")
	getTeam.SetDescription("Returns the team's progress, attempts and round-2 pool. Requires Bearer token.")
	getTeam.AddRespStructure(hunt.TeamView{}, openapi.WithHTTPStatus(http.StatusOK))
	getTeam.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getTeam)

	// POST /api/game/select
	postSelect, _ := r.NewOperationContext(http.MethodPost, "/api/game/select")
	postSelect.SetSummary("Select round-2 slot")
	postSelect.SetDescription("Picks a slot from the team's available pool as the active selection. Requires Bearer token.")
	postSelect.AddReqStructure(SelectRequest{})
	postSelect.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	postSelect.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	postSelect.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postSelect)

	// POST /api/game/submit
	postSubmit, _ := r.NewOperationContext(http.MethodPost, "/api/game/submit")
	postSubmit.SetSummary("Submit clue code")
	postSubmit.SetDescription("Submit a clue code to claim it. Wrong guesses are charged against the active slot. Requires Bearer token.")
	postSubmit.AddReqStructure(SubmitRequest{})
	postSubmit.AddRespStructure(hunt.SubmitResult{}, openapi.WithHTTPStatus(http.StatusOK))
	postSubmit.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	postSubmit.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postSubmit)

	// POST /api/game/verify
	postVerify, _ := r.NewOperationContext(http.MethodPost, "/api/game/verify")
	postVerify.SetSummary("Verify clue")
	postVerify.SetDescription("Enter the on-site verification code to complete a clue. First completion scores. Requires Bearer token.")
	postVerify.AddReqStructure(VerifyRequest{})
	postVerify.AddRespStructure(hunt.VerifyResult{}, openapi.WithHTTPStatus(http.StatusOK))
	postVerify.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postVerify.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postVerify)

	// GET /api/game/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/game/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream for real-time game updates. Pass token as query parameter.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// POST /api/admin/login
	postAdminLogin, _ := r.NewOperationContext(http.MethodPost, "/api/admin/login")
	postAdminLogin.SetSummary("Admin login")
	postAdminLogin.SetDescription("Authenticate with the organizer password. Sets admin_session cookie.")
	postAdminLogin.AddReqStructure(AdminLoginRequest{})
	postAdminLogin.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	postAdminLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postAdminLogin)

	// POST /api/admin/logout
	postAdminLogout, _ := r.NewOperationContext(http.MethodPost, "/api/admin/logout")
	postAdminLogout.SetSummary("Admin logout")
	postAdminLogout.SetDescription("Clears admin session and cookie.")
	postAdminLogout.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postAdminLogout)

	// GET /api/admin/me
	getMe, _ := r.NewOperationContext(http.MethodGet, "/api/admin/me")
	getMe.SetSummary("Current admin")
	getMe.SetDescription("Confirms the admin session is valid. Requires admin_session cookie.")
	getMe.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	getMe.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getMe)

	// GET /api/admin/state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/admin/state")
	getState.SetSummary("Full game state")
	getState.SetDescription("Returns every team and clue as one consistent snapshot. Requires admin_session cookie.")
	getState.AddRespStructure(hunt.AdminView{}, openapi.WithHTTPStatus(http.StatusOK))
	getState.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getState)

	// POST /api/admin/teams
	postTeams, _ := r.NewOperationContext(http.MethodPost, "/api/admin/teams")
	postTeams.SetSummary("Create team")
	postTeams.SetDescription("Registers a new team with zero progress. Requires admin_session cookie.")
	postTeams.AddReqStructure(CreateTeamRequest{})
	postTeams.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusCreated))
	postTeams.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	postTeams.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postTeams)

	// POST /api/admin/teams/{team}/reset
	postReset, _ := r.NewOperationContext(http.MethodPost, "/api/admin/teams/{team}/reset")
	postReset.SetSummary("Reset team")
	postReset.SetDescription("Wipes one team's progress and releases its clue completions. Requires admin_session cookie.")
	postReset.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	postReset.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postReset.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postReset)

	// POST /api/admin/teams/{team}/disqualify
	postDQ, _ := r.NewOperationContext(http.MethodPost, "/api/admin/teams/{team}/disqualify")
	postDQ.SetSummary("Disqualify team")
	postDQ.SetDescription("Sets or clears a team's disqualification flag. Progress is untouched. Requires admin_session cookie.")
	postDQ.AddReqStructure(DisqualifyRequest{})
	postDQ.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	postDQ.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postDQ.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postDQ)

	// POST /api/admin/reset
	postResetAll, _ := r.NewOperationContext(http.MethodPost, "/api/admin/reset")
	postResetAll.SetSummary("Reset all teams")
	postResetAll.SetDescription("Wipes every team's progress and clears all clue completions. Requires admin_session cookie.")
	postResetAll.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	postResetAll.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postResetAll)

	// POST /api/admin/reset/points
	postResetPoints, _ := r.NewOperationContext(http.MethodPost, "/api/admin/reset/points")
	postResetPoints.SetSummary("Reset points")
	postResetPoints.SetDescription("Zeroes every team's points, keeping all other progress. Requires admin_session cookie.")
	postResetPoints.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	postResetPoints.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postResetPoints)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
