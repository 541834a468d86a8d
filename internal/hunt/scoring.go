package hunt

// award credits a clue's fixed point value to a team. This is the only
// place in the codebase that increases points; it runs exclusively from
// the VerifyClue transition that observes completedBy going from empty
// to non-empty, which is what makes the award at-most-once per clue.
func award(t *Team) {
	t.Points += CluePoints
}
