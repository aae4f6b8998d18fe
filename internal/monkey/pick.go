package monkey

import "time"

// Pick is the canonical record of one random selection, shared by the menu and
// the session journal.
type Pick struct {
	Id        int64
	SessionId string
	Species   string
	PickedAt  time.Time
}

// PickCount is how often a species was picked in a session.
type PickCount struct {
	Species string
	Count   int
}
