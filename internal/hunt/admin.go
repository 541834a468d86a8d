package hunt

import "context"

// TeamSummary is a team record as shown on the admin board: everything
// except the password hash.
type TeamSummary struct {
	Points       int            `json:"points"`
	CurrentClue  string         `json:"currentClue,omitempty"`
	Attempts     map[string]int `json:"attempts"`
	Disqualified bool           `json:"disqualified"`
	Round2       *Round2        `json:"round2,omitempty"`
}

// AdminView is a consistent snapshot of both collections.
type AdminView struct {
	Teams map[string]TeamSummary `json:"teams"`
	Clues Clues                  `json:"clues"`
}

// AdminView reads both collections under their locks (teams first, the
// fixed order) so the two halves of the snapshot agree with each other.
func (s *Service) AdminView(ctx context.Context) (AdminView, error) {
	view := AdminView{Teams: map[string]TeamSummary{}}
	err := s.teams.View(func(teams Teams) error {
		for name, t := range teams {
			view.Teams[name] = TeamSummary{
				Points:       t.Points,
				CurrentClue:  t.CurrentClue,
				Attempts:     t.Attempts,
				Disqualified: t.Disqualified,
				Round2:       t.Round2,
			}
		}
		return s.clues.View(func(clues Clues) error {
			view.Clues = clues
			return nil
		})
	})
	return view, err
}
