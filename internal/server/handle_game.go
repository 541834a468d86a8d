package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ashithhgowda/treasure/internal/hunt"
)

// SelectRequest is the request body for POST /api/game/select.
type SelectRequest struct {
	Slot string `json:"slot"`
}

func handleSelectCode(svc *hunt.Service, slots *slotSelections) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Slot = strings.TrimSpace(req.Slot)
		if req.Slot == "" {
			writeError(w, http.StatusBadRequest, "slot is required")
			return
		}

		team := teamFrom(r)
		err := svc.SelectCode(r.Context(), team, req.Slot)
		if errors.Is(err, hunt.ErrTeamNotFound) {
			writeError(w, http.StatusNotFound, "team not found")
			return
		}
		if errors.Is(err, hunt.ErrSlotNotAvailable) {
			writeError(w, http.StatusConflict, "slot is frozen or unknown")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		slots.set(team, req.Slot)
		writeJSON(w, http.StatusOK, map[string]string{"slot": req.Slot})
	}
}

// SubmitRequest is the request body for POST /api/game/submit.
type SubmitRequest struct {
	Code string `json:"code"`
}

func handleSubmitCode(svc *hunt.Service, slots *slotSelections) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Code = strings.TrimSpace(req.Code)
		if req.Code == "" {
			writeError(w, http.StatusBadRequest, "code is required")
			return
		}

		team := teamFrom(r)
		res, err := svc.SubmitCode(r.Context(), team, req.Code, slots.get(team))
		if errors.Is(err, hunt.ErrTeamNotFound) {
			writeError(w, http.StatusNotFound, "team not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		switch res.Outcome {
		case hunt.SubmitLockout:
			// The frozen slot is no longer selectable.
			slots.clear(team)
			writeJSON(w, http.StatusOK, res)
		case hunt.SubmitAlreadyCompleted:
			writeError(w, http.StatusConflict, "clue already completed by your team")
		case hunt.SubmitClueLocked:
			writeError(w, http.StatusConflict, "clue is locked by another team")
		default:
			writeJSON(w, http.StatusOK, res)
		}
	}
}

// VerifyRequest is the request body for POST /api/game/verify.
type VerifyRequest struct {
	Clue string `json:"clue"`
	Code string `json:"code"`
}

func handleVerifyClue(svc *hunt.Service, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Clue = strings.TrimSpace(req.Clue)
		req.Code = strings.TrimSpace(req.Code)
		if req.Clue == "" || req.Code == "" {
			writeError(w, http.StatusBadRequest, "clue and code are required")
			return
		}

		team := teamFrom(r)
		res, err := svc.VerifyClue(r.Context(), team, req.Clue, req.Code)
		if errors.Is(err, hunt.ErrTeamNotFound) {
			writeError(w, http.StatusNotFound, "team not found")
			return
		}
		if errors.Is(err, hunt.ErrClueNotFound) {
			writeError(w, http.StatusNotFound, "clue not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if res.FirstCompletion {
			broker.Publish(Event{
				Type:   "clueCompleted",
				Clue:   req.Clue,
				Team:   team,
				Points: res.Points,
			})
		}

		writeJSON(w, http.StatusOK, res)
	}
}
