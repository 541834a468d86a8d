package hunt

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// Identity is the result of a successful credential check. Enforcement
// of the Disqualified flag is the caller's job.
type Identity struct {
	Name         string `json:"name"`
	Disqualified bool   `json:"disqualified"`
}

// TeamView is a team record as shown to that team: everything except the
// password hash, with the round-2 pool already initialized.
type TeamView struct {
	Name         string         `json:"name"`
	Points       int            `json:"points"`
	CurrentClue  string         `json:"currentClue,omitempty"`
	Attempts     map[string]int `json:"attempts"`
	Disqualified bool           `json:"disqualified"`
	Round2       Round2         `json:"round2"`
}

// CreateTeam registers a new team with zero progress. The password is
// stored as a bcrypt hash.
func (s *Service) CreateTeam(ctx context.Context, name, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	err = s.teams.Update(func(teams *Teams) error {
		if _, ok := (*teams)[name]; ok {
			return ErrTeamExists
		}
		(*teams)[name] = &Team{
			Password: string(hash),
			Attempts: map[string]int{},
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("team created", "team", name)
	return nil
}

// Authenticate checks a team's credentials. It does not issue sessions
// and does not reject disqualified teams; it reports the flag for the
// auth layer to act on.
func (s *Service) Authenticate(ctx context.Context, name, password string) (Identity, error) {
	var id Identity
	err := s.teams.View(func(teams Teams) error {
		t, ok := teams[name]
		if !ok {
			return ErrInvalidCredentials
		}
		if bcrypt.CompareHashAndPassword([]byte(t.Password), []byte(password)) != nil {
			return ErrInvalidCredentials
		}
		id = Identity{Name: name, Disqualified: t.Disqualified}
		return nil
	})
	return id, err
}

// Disqualified reports the team's disqualification flag.
func (s *Service) Disqualified(ctx context.Context, name string) (bool, error) {
	var dq bool
	err := s.teams.View(func(teams Teams) error {
		t, ok := teams[name]
		if !ok {
			return ErrTeamNotFound
		}
		dq = t.Disqualified
		return nil
	})
	return dq, err
}

// SetDisqualified flips a team's disqualification flag. Progress fields
// are untouched.
func (s *Service) SetDisqualified(ctx context.Context, name string, disqualified bool) error {
	err := s.teams.Update(func(teams *Teams) error {
		t, ok := (*teams)[name]
		if !ok {
			return ErrTeamNotFound
		}
		t.Disqualified = disqualified
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("team disqualification changed", "team", name, "disqualified", disqualified)
	return nil
}

// TeamView returns a team's own view of its record. Fetching the view
// counts as a first touch of round 2, so the slot pool is lazily created
// here if absent.
func (s *Service) TeamView(ctx context.Context, name string) (TeamView, error) {
	var view TeamView
	err := s.teams.Update(func(teams *Teams) error {
		t, ok := (*teams)[name]
		if !ok {
			return ErrTeamNotFound
		}
		r2 := t.ensureRound2()
		view = TeamView{
			Name:         name,
			Points:       t.Points,
			CurrentClue:  t.CurrentClue,
			Attempts:     t.Attempts,
			Disqualified: t.Disqualified,
			Round2:       *r2,
		}
		return nil
	})
	return view, err
}
