package hunt

import "context"

// resetRecord returns a team record with default progress, keeping only
// the password.
func resetRecord(t *Team) *Team {
	return &Team{
		Password: t.Password,
		Attempts: map[string]int{},
	}
}

// scrubTeam removes every trace of a team from a clue. Emptying
// completedBy releases the lock.
func scrubTeam(c *Clue, name string) {
	c.Teams = removeString(c.Teams, name)
	c.CompletedBy = removeString(c.CompletedBy, name)
	if len(c.CompletedBy) == 0 {
		c.Locked = false
	}
}

// ResetTeam wipes one team's progress and removes it from every clue.
// Both collections commit together; a team is never left present in a
// clue's completedBy while its own record shows no progress.
func (s *Service) ResetTeam(ctx context.Context, name string) error {
	err := updateBoth(s, func(teams *Teams, clues *Clues) error {
		t, ok := (*teams)[name]
		if !ok {
			return ErrTeamNotFound
		}
		for _, c := range *clues {
			scrubTeam(c, name)
		}
		(*teams)[name] = resetRecord(t)
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("team reset", "team", name)
	return nil
}

// ResetAll wipes every team's progress (passwords kept) and clears
// completion state on every clue.
func (s *Service) ResetAll(ctx context.Context) error {
	err := updateBoth(s, func(teams *Teams, clues *Clues) error {
		for name, t := range *teams {
			(*teams)[name] = resetRecord(t)
		}
		for _, c := range *clues {
			c.CompletedBy = []string{}
			c.Teams = []string{}
			c.Locked = false
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("all teams reset")
	return nil
}

// ResetPoints zeroes every team's points and nothing else: current
// clues, attempt counters and round-2 pools all survive. Intentionally
// narrower than ResetAll.
func (s *Service) ResetPoints(ctx context.Context) error {
	err := s.teams.Update(func(teams *Teams) error {
		for _, t := range *teams {
			t.Points = 0
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("points reset")
	return nil
}
