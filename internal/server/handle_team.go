package server

import (
	"errors"
	"net/http"

	"github.com/ashithhgowda/treasure/internal/hunt"
)

func handleTeamView(svc *hunt.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.TeamView(r.Context(), teamFrom(r))
		if errors.Is(err, hunt.ErrTeamNotFound) {
			writeError(w, http.StatusNotFound, "team not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}
