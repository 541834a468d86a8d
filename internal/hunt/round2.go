package hunt

import (
	"context"
	"fmt"
)

// defaultSlots builds a fresh round-2 pool: code1 through code12.
func defaultSlots() []string {
	slots := make([]string, SlotCount)
	for i := range slots {
		slots[i] = fmt.Sprintf("code%d", i+1)
	}
	return slots
}

// ensureRound2 lazily creates the team's round-2 pool on first touch.
// All call sites go through here, so the initial pool shape has a single
// source.
func (t *Team) ensureRound2() *Round2 {
	if t.Round2 == nil {
		t.Round2 = &Round2{
			AvailableCodes: defaultSlots(),
			FrozenCodes:    []string{},
			Attempts:       map[string]int{},
		}
	}
	if t.Round2.Attempts == nil {
		t.Round2.Attempts = map[string]int{}
	}
	return t.Round2
}

// freeze moves a slot out of the available pool. Per-team only.
func (r *Round2) freeze(slot string) {
	r.AvailableCodes = removeString(r.AvailableCodes, slot)
	if !containsString(r.FrozenCodes, slot) {
		r.FrozenCodes = append(r.FrozenCodes, slot)
	}
}

// SelectCode validates that slot is still in the team's available pool.
// The selection itself is held by the session layer, not persisted here;
// this call only guards availability and triggers the lazy pool init.
func (s *Service) SelectCode(ctx context.Context, team, slot string) error {
	return s.teams.Update(func(teams *Teams) error {
		t, ok := (*teams)[team]
		if !ok {
			return ErrTeamNotFound
		}
		r2 := t.ensureRound2()
		if !containsString(r2.AvailableCodes, slot) {
			return ErrSlotNotAvailable
		}
		return nil
	})
}
