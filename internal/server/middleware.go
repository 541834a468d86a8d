package server

import (
	"context"
	"net/http"

	"github.com/ashithhgowda/treasure/internal/hunt"
)

type ctxKey int

const ctxKeyTeam ctxKey = iota

// teamAuthMiddleware verifies the bearer token and blocks disqualified
// teams. The hunt service itself never enforces disqualification; this
// is the layer that does.
func teamAuthMiddleware(tokens *tokenAuth, svc *hunt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			team, err := teamFromToken(r, tokens)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid or missing session token")
				return
			}

			dq, err := svc.Disqualified(r.Context(), team)
			if err != nil {
				// Token for a team that no longer exists (e.g. data reset).
				writeError(w, http.StatusUnauthorized, "invalid or missing session token")
				return
			}
			if dq {
				writeError(w, http.StatusForbidden, "team is disqualified")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyTeam, team)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func adminAuthMiddleware(admins *adminSessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(adminCookieName)
			if err != nil || cookie.Value == "" || !admins.Valid(cookie.Value) {
				writeError(w, http.StatusUnauthorized, "not authenticated")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func teamFrom(r *http.Request) string {
	return r.Context().Value(ctxKeyTeam).(string)
}
