package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ashithhgowda/treasure/internal/hunt"
)

// LoginRequest is the request body for POST /api/login.
type LoginRequest struct {
	Team     string `json:"team"`
	Password string `json:"password"`
}

// LoginResponse carries the session token and the team's current view.
type LoginResponse struct {
	Token string        `json:"token"`
	Team  hunt.TeamView `json:"team"`
}

func handleLogin(svc *hunt.Service, tokens *tokenAuth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.Team = strings.TrimSpace(req.Team)
		if req.Team == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "team and password are required")
			return
		}

		id, err := svc.Authenticate(r.Context(), req.Team, req.Password)
		if errors.Is(err, hunt.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if id.Disqualified {
			writeError(w, http.StatusForbidden, "team is disqualified")
			return
		}

		token, err := tokens.Issue(id.Name)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		view, err := svc.TeamView(r.Context(), id.Name)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token, Team: view})
	}
}
