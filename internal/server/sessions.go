package server

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var errNoAdminSession = errors.New("no valid admin session")

const (
	adminCookieName = "admin_session"
	adminSessionTTL = 7 * 24 * time.Hour
)

// adminSessions holds the organizer password hash and the set of live
// admin session IDs. Sessions are in-memory; a restart logs admins out.
type adminSessions struct {
	hash []byte

	mu  sync.Mutex
	ids map[string]time.Time // session id -> creation time
}

func newAdminSessions(password string) (*adminSessions, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &adminSessions{hash: hash, ids: map[string]time.Time{}}, nil
}

// Login checks the password and mints a new session ID.
func (a *adminSessions) Login(password string) (string, error) {
	if bcrypt.CompareHashAndPassword(a.hash, []byte(password)) != nil {
		return "", errNoAdminSession
	}
	id := uuid.NewString()
	a.mu.Lock()
	a.ids[id] = time.Now()
	a.mu.Unlock()
	return id, nil
}

func (a *adminSessions) Valid(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	created, ok := a.ids[id]
	if !ok {
		return false
	}
	if time.Since(created) > adminSessionTTL {
		delete(a.ids, id)
		return false
	}
	return true
}

func (a *adminSessions) Logout(id string) {
	a.mu.Lock()
	delete(a.ids, id)
	a.mu.Unlock()
}

// slotSelections tracks each team's active round-2 code slot. The
// selection is session state, deliberately not part of the persisted
// team record; it feeds SubmitCode as the activeSlot argument.
type slotSelections struct {
	mu     sync.Mutex
	active map[string]string // team name -> slot
}

func newSlotSelections() *slotSelections {
	return &slotSelections{active: map[string]string{}}
}

func (s *slotSelections) set(team, slot string) {
	s.mu.Lock()
	s.active[team] = slot
	s.mu.Unlock()
}

func (s *slotSelections) get(team string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active[team]
}

func (s *slotSelections) clear(team string) {
	s.mu.Lock()
	delete(s.active, team)
	s.mu.Unlock()
}
