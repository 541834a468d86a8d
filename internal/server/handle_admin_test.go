package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ashithhgowda/treasure/internal/hunt"
)

func adminLogin(t *testing.T, r *chi.Mux, password string) *http.Cookie {
	t.Helper()

	body, _ := json.Marshal(AdminLoginRequest{Password: password})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("admin login: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	for _, c := range w.Result().Cookies() {
		if c.Name == adminCookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("admin login: expected a session cookie")
	return nil
}

func adminPost(t *testing.T, r *chi.Mux, cookie *http.Cookie, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var data []byte
	if body != nil {
		data, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminLoginAndLogout(t *testing.T) {
	r := testRouter(t)

	// Wrong password.
	body, _ := json.Marshal(AdminLoginRequest{Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login: expected 401, got %d", w.Code)
	}

	// No cookie.
	req = httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("me without cookie: expected 401, got %d", w.Code)
	}

	cookie := adminLogin(t, r, "hunter2")

	req = httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", w.Code)
	}

	// Logout invalidates the session.
	adminPost(t, r, cookie, "/api/admin/logout", nil)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("me after logout: expected 401, got %d", w.Code)
	}
}

func TestAdminCreateTeam(t *testing.T) {
	r := testRouter(t)
	cookie := adminLogin(t, r, "hunter2")

	w := adminPost(t, r, cookie, "/api/admin/teams", CreateTeamRequest{Name: "gamma", Password: "pw-gamma"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// Duplicate name.
	w = adminPost(t, r, cookie, "/api/admin/teams", CreateTeamRequest{Name: "gamma", Password: "other"})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate: expected 409, got %d", w.Code)
	}

	// The new team can log in.
	loginTeam(t, r, "gamma", "pw-gamma")
}

func TestAdminStateSnapshot(t *testing.T) {
	r := testRouter(t)
	token := loginTeam(t, r, "alpha", "pw-alpha")
	cookie := adminLogin(t, r, "hunter2")

	postJSON(t, r, token, "/api/game/submit", SubmitRequest{Code: "code1"})
	postJSON(t, r, token, "/api/game/verify", VerifyRequest{Clue: "code1", Code: "ABC123"})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/state", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("state: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var state hunt.AdminView
	json.NewDecoder(w.Body).Decode(&state)

	alpha, ok := state.Teams["alpha"]
	if !ok {
		t.Fatal("state: expected team alpha")
	}
	if alpha.Points != hunt.CluePoints {
		t.Errorf("state: expected %d points, got %d", hunt.CluePoints, alpha.Points)
	}
	if len(state.Clues) != 2 {
		t.Fatalf("state: expected 2 clues, got %d", len(state.Clues))
	}
	clue := state.Clues.Find("code1")
	if clue == nil || !clue.Locked {
		t.Error("state: expected code1 locked")
	}
}

func TestAdminResetTeam(t *testing.T) {
	r := testRouter(t)
	token := loginTeam(t, r, "alpha", "pw-alpha")
	cookie := adminLogin(t, r, "hunter2")

	postJSON(t, r, token, "/api/game/submit", SubmitRequest{Code: "code1"})
	postJSON(t, r, token, "/api/game/verify", VerifyRequest{Clue: "code1", Code: "ABC123"})

	w := adminPost(t, r, cookie, "/api/admin/teams/alpha/reset", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("reset: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Unknown team.
	w = adminPost(t, r, cookie, "/api/admin/teams/nobody/reset", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("reset unknown: expected 404, got %d", w.Code)
	}

	// Progress is gone, clue released, password kept.
	token = loginTeam(t, r, "alpha", "pw-alpha")
	req := httptest.NewRequest(http.MethodGet, "/api/team", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)

	var view hunt.TeamView
	json.NewDecoder(w2.Body).Decode(&view)
	if view.Points != 0 {
		t.Errorf("after reset: expected 0 points, got %d", view.Points)
	}

	sub := postJSON(t, r, token, "/api/game/submit", SubmitRequest{Code: "code1"})
	if sub.Code != http.StatusOK {
		t.Errorf("re-claim after reset: expected 200, got %d", sub.Code)
	}
}

func TestAdminResetPointsKeepsProgress(t *testing.T) {
	r := testRouter(t)
	token := loginTeam(t, r, "alpha", "pw-alpha")
	cookie := adminLogin(t, r, "hunter2")

	postJSON(t, r, token, "/api/game/submit", SubmitRequest{Code: "code1"})
	postJSON(t, r, token, "/api/game/verify", VerifyRequest{Clue: "code1", Code: "ABC123"})

	w := adminPost(t, r, cookie, "/api/admin/reset/points", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("reset points: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/team", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)

	var view hunt.TeamView
	json.NewDecoder(w2.Body).Decode(&view)
	if view.Points != 0 {
		t.Errorf("expected 0 points, got %d", view.Points)
	}

	// The clue stays locked; only points were wiped.
	req = httptest.NewRequest(http.MethodGet, "/api/admin/state", nil)
	req.AddCookie(cookie)
	w2 = httptest.NewRecorder()
	r.ServeHTTP(w2, req)

	var state hunt.AdminView
	json.NewDecoder(w2.Body).Decode(&state)
	if clue := state.Clues.Find("code1"); clue == nil || !clue.Locked {
		t.Error("expected code1 to stay locked")
	}
}

func TestAdminResetAll(t *testing.T) {
	r := testRouter(t)
	alpha := loginTeam(t, r, "alpha", "pw-alpha")
	beta := loginTeam(t, r, "beta", "pw-beta")
	cookie := adminLogin(t, r, "hunter2")

	postJSON(t, r, alpha, "/api/game/submit", SubmitRequest{Code: "code1"})
	postJSON(t, r, alpha, "/api/game/verify", VerifyRequest{Clue: "code1", Code: "ABC123"})
	postJSON(t, r, beta, "/api/game/submit", SubmitRequest{Code: "code2"})

	w := adminPost(t, r, cookie, "/api/admin/reset", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("reset all: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/state", nil)
	req.AddCookie(cookie)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)

	var state hunt.AdminView
	json.NewDecoder(w2.Body).Decode(&state)
	for name, team := range state.Teams {
		if team.Points != 0 {
			t.Errorf("team %s: expected 0 points, got %d", name, team.Points)
		}
	}
	for _, clue := range state.Clues {
		if clue.Locked || len(clue.CompletedBy) != 0 || len(clue.Teams) != 0 {
			t.Errorf("clue %s: expected cleared state", clue.Code)
		}
	}
}
