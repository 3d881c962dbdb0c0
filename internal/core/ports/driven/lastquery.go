package driven

// LastQueryStore remembers the most recent result-yielding query per
// user, so an empty inline query can repeat it.
type LastQueryStore interface {
	// Remember unconditionally overwrites the stored query for userID.
	Remember(userID int64, query string)

	// Recall returns the stored query for userID, if any.
	Recall(userID int64) (string, bool)
}
