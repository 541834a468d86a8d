package hunt

import (
	"fmt"
	"log/slog"

	"github.com/ashithhgowda/treasure/internal/docstore"
)

// Service owns the two game collections and exposes every game
// operation. Collections are never handed out; callers go through the
// operation methods, which do their read-decide-write inside the store's
// single-writer window. Operations that touch both collections always
// lock teams before clues.
type Service struct {
	teams  *docstore.Collection[Teams]
	clues  *docstore.Collection[Clues]
	logger *slog.Logger
}

// NewService opens (or creates) the teams and clues collections in dir.
func NewService(dir string, logger *slog.Logger) (*Service, error) {
	teams, err := docstore.Open(dir, "teams", Teams{})
	if err != nil {
		return nil, fmt.Errorf("opening teams collection: %w", err)
	}
	clues, err := docstore.Open(dir, "clues", Clues{})
	if err != nil {
		return nil, fmt.Errorf("opening clues collection: %w", err)
	}
	return &Service{teams: teams, clues: clues, logger: logger}, nil
}

// updateBoth commits one transition across both collections, taking the
// locks in the fixed global order: teams before clues.
func updateBoth(s *Service, fn func(*Teams, *Clues) error) error {
	return docstore.Update2(s.teams, s.clues, fn)
}
