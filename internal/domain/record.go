package domain

import "time"

// ShiftRecord is a Shift as held by durable storage. Position is the
// shift's index in the saved list.
type ShiftRecord struct {
	ID        string
	Position  int
	Shift     Shift
	CreatedAt time.Time
	UpdatedAt time.Time
}
