package hunt

import "errors"

// Validation failures. Modeled game outcomes (wrong code, lockout, clue
// already taken) are not errors; they come back as result values.
var (
	ErrTeamExists         = errors.New("team already exists")
	ErrTeamNotFound       = errors.New("team not found")
	ErrClueNotFound       = errors.New("clue not found")
	ErrSlotNotAvailable   = errors.New("code slot not available")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
