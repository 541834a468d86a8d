// Package hunt implements the treasure hunt game state: team records,
// clue records, the code submission state machine, the round-2 code
// allocator, and scoring. All state lives in two docstore collections
// (teams, clues); every operation is a single load-mutate-commit pass.
package hunt

// Location is a clue's physical position.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Clue is one discoverable task. Code, VerificationCode and Location are
// fixed at data-load time; the remaining fields track progress.
type Clue struct {
	Code             string   `json:"code"`
	VerificationCode string   `json:"verificationCode"`
	Location         Location `json:"location"`

	// CompletedBy lists teams that verified this clue, in completion
	// order. Locked is true exactly when it is non-empty.
	CompletedBy []string `json:"completedBy"`
	Teams       []string `json:"teams"`
	Locked      bool     `json:"locked"`
}

// HasCompleted reports whether name appears in CompletedBy.
func (c *Clue) HasCompleted(name string) bool {
	return containsString(c.CompletedBy, name)
}

// Round2 is a team's private pool of code slots. Pools are fully
// independent across teams: freezing a slot for one team never affects
// another team's slot of the same name.
type Round2 struct {
	AvailableCodes []string       `json:"availableCodes"`
	FrozenCodes    []string       `json:"frozenCodes"`
	Attempts       map[string]int `json:"attempts"`
}

// Team is one team's persisted record, keyed by team name in the teams
// collection.
type Team struct {
	Password     string         `json:"password"` // bcrypt hash
	Points       int            `json:"points"`
	CurrentClue  string         `json:"currentClue,omitempty"`
	Attempts     map[string]int `json:"attempts"`
	Disqualified bool           `json:"disqualified"`
	Round2       *Round2        `json:"round2,omitempty"`
}

// Teams is the teams collection document.
type Teams map[string]*Team

// Clues is the clues collection document. Order is the hunt-data order.
type Clues []*Clue

// Find returns the clue with the given code, or nil.
func (cs Clues) Find(code string) *Clue {
	for _, c := range cs {
		if c.Code == code {
			return c
		}
	}
	return nil
}

const (
	// CluePoints is the fixed award for a clue's first completion.
	CluePoints = 100

	// SlotCount is the size of each team's round-2 code pool.
	SlotCount = 12

	// MaxAttempts failed submissions freeze a round-2 slot.
	MaxAttempts = 3
)

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func removeString(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
