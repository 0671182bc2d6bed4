package domain

import "time"

// SavedPhrase records that a user kept a phrase from the feed.
// UserKey is the opaque app-token subject ("<provider>:<sub>").
type SavedPhrase struct {
	UserKey string
	Phrase  Phrase
	SavedAt time.Time
}
