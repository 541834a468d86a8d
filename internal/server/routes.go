package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/ashithhgowda/treasure/internal/hunt"
)

func addRoutes(r chi.Router, logger *slog.Logger, svc *hunt.Service, tokens *tokenAuth, admins *adminSessions, dataDir, spaDir string) {
	broker := NewBroker()
	slots := newSlotSelections()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Treasure Hunt API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, dataDir))

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", handleLogin(svc, tokens))
		r.Get("/game/events", handleEvents(broker, tokens))

		// Team routes — token verified and disqualification enforced
		// by teamAuthMiddleware.
		r.Group(func(r chi.Router) {
			r.Use(teamAuthMiddleware(tokens, svc))
			r.Get("/team", handleTeamView(svc))
			r.Post("/game/select", handleSelectCode(svc, slots))
			r.Post("/game/submit", handleSubmitCode(svc, slots))
			r.Post("/game/verify", handleVerifyClue(svc, broker))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", handleAdminLogin(admins))
			r.Post("/logout", handleAdminLogout(admins))

			r.Group(func(r chi.Router) {
				r.Use(adminAuthMiddleware(admins))
				r.Get("/me", handleAdminMe())
				r.Get("/state", handleAdminState(svc))
				r.Post("/teams", handleAdminCreateTeam(svc))
				r.Post("/teams/{team}/reset", handleAdminResetTeam(svc, broker))
				r.Post("/teams/{team}/disqualify", handleAdminDisqualify(svc))
				r.Post("/reset", handleAdminResetAll(svc, broker))
				r.Post("/reset/points", handleAdminResetPoints(svc, broker))
			})
		})
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
