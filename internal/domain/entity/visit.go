package entity

import "time"

// Visit records that a user has been to a location. At most one visit exists
// per (UserID, LocationID) pair.
type Visit struct {
	ID         int64
	UserID     int64
	LocationID int64
	CreatedAt  time.Time
}

// VisitedLocation joins a visit with the location it points at.
type VisitedLocation struct {
	VisitID  int64
	Location *Location
}

// ToggleOutcome reports which way a toggle flipped the visit.
type ToggleOutcome string

const (
	ToggleAdded   ToggleOutcome = "added"
	ToggleRemoved ToggleOutcome = "removed"
)

// Visited reports whether the pair is visited after the toggle.
func (o ToggleOutcome) Visited() bool {
	return o == ToggleAdded
}
