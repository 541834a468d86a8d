package hunt

import (
	"context"
	"strings"
)

// SubmitOutcome classifies the result of a code submission.
type SubmitOutcome string

const (
	// SubmitAccepted: the code matched a claimable clue; the team now
	// works it.
	SubmitAccepted SubmitOutcome = "accepted"
	// SubmitIncorrect: unknown code, attempt charged.
	SubmitIncorrect SubmitOutcome = "incorrect"
	// SubmitLockout: the failed attempt exhausted the active slot's
	// budget; the slot is now frozen for this team.
	SubmitLockout SubmitOutcome = "lockout"
	// SubmitAlreadyCompleted: this team already verified the clue.
	SubmitAlreadyCompleted SubmitOutcome = "alreadyCompleted"
	// SubmitClueLocked: another team holds the clue's completion credit.
	SubmitClueLocked SubmitOutcome = "clueLocked"
)

// SubmitResult is the typed outcome of SubmitCode.
type SubmitResult struct {
	Outcome      SubmitOutcome `json:"outcome"`
	Location     *Location     `json:"location,omitempty"`     // accepted
	AttemptsLeft int           `json:"attemptsLeft,omitempty"` // incorrect
	FrozenSlot   string        `json:"frozenSlot,omitempty"`   // lockout
}

// SubmitCode runs the claim transition for a submitted clue code.
// activeSlot is the team's round-2 selection ("" in the round-1 flow);
// wrong guesses are charged against it, and the third failure freezes
// it. A correct code claims the clue, resets the slot's attempt count,
// and records the clue as the team's current one.
//
// The lock check happens only here, at claim time. A team that claimed a
// clue before it locked may still verify it afterwards.
func (s *Service) SubmitCode(ctx context.Context, team, code, activeSlot string) (SubmitResult, error) {
	var res SubmitResult
	err := updateBoth(s, func(teams *Teams, clues *Clues) error {
		t, ok := (*teams)[team]
		if !ok {
			return ErrTeamNotFound
		}

		clue := clues.Find(code)
		if clue == nil {
			res = chargeAttempt(t, code, activeSlot)
			return nil
		}

		if clue.HasCompleted(team) {
			res = SubmitResult{Outcome: SubmitAlreadyCompleted}
			return nil
		}
		if clue.Locked {
			res = SubmitResult{Outcome: SubmitClueLocked}
			return nil
		}

		if !containsString(clue.Teams, team) {
			clue.Teams = append(clue.Teams, team)
		}
		if activeSlot != "" {
			t.ensureRound2().Attempts[activeSlot] = 0
		}
		t.CurrentClue = code

		loc := clue.Location
		res = SubmitResult{Outcome: SubmitAccepted, Location: &loc}
		return nil
	})
	return res, err
}

// chargeAttempt books one failed submission against the team's active
// slot (round 2) or the generic per-code counter (round 1). Only round-2
// slots can freeze.
func chargeAttempt(t *Team, code, activeSlot string) SubmitResult {
	if activeSlot != "" {
		r2 := t.ensureRound2()
		r2.Attempts[activeSlot]++
		if r2.Attempts[activeSlot] >= MaxAttempts {
			r2.freeze(activeSlot)
			return SubmitResult{Outcome: SubmitLockout, FrozenSlot: activeSlot}
		}
		return SubmitResult{
			Outcome:      SubmitIncorrect,
			AttemptsLeft: MaxAttempts - r2.Attempts[activeSlot],
		}
	}

	if t.Attempts == nil {
		t.Attempts = map[string]int{}
	}
	t.Attempts[code]++
	left := MaxAttempts - t.Attempts[code]
	if left < 0 {
		left = 0
	}
	return SubmitResult{Outcome: SubmitIncorrect, AttemptsLeft: left}
}

// VerifyResult is the typed outcome of VerifyClue.
type VerifyResult struct {
	Correct bool `json:"correct"`
	Points  int  `json:"points,omitempty"`

	// FirstCompletion is true when this call took the clue from zero
	// completions to one, i.e. when the award happened.
	FirstCompletion bool `json:"-"`
}

// VerifyClue runs the completion transition. A wrong code mutates
// nothing and is safely repeatable. A correct code appends the team to
// completedBy; the call that makes completedBy non-empty for the first
// time awards the points and locks the clue. Repeat calls by a completed
// team succeed without touching points.
//
// Locked is deliberately not re-checked here: completion credit is
// decided by the first-completion check alone, so late verifiers join
// completedBy but never score.
func (s *Service) VerifyClue(ctx context.Context, team, clueCode, enteredCode string) (VerifyResult, error) {
	var res VerifyResult
	err := updateBoth(s, func(teams *Teams, clues *Clues) error {
		t, ok := (*teams)[team]
		if !ok {
			return ErrTeamNotFound
		}
		clue := clues.Find(clueCode)
		if clue == nil {
			return ErrClueNotFound
		}

		if !strings.EqualFold(enteredCode, clue.VerificationCode) {
			res = VerifyResult{Correct: false}
			return nil
		}

		if !clue.HasCompleted(team) {
			clue.CompletedBy = append(clue.CompletedBy, team)
			if !containsString(clue.Teams, team) {
				clue.Teams = append(clue.Teams, team)
			}
			if len(clue.CompletedBy) == 1 {
				award(t)
				clue.Locked = true
				res.FirstCompletion = true
			}
			t.CurrentClue = ""
		}

		res.Correct = true
		res.Points = t.Points
		return nil
	})
	if err != nil {
		return res, err
	}

	if res.FirstCompletion {
		s.logger.Info("clue completed first", "team", team, "clue", clueCode, "points", res.Points)
	}
	return res, nil
}
