package domain

import "time"

// Route is a driver's daily run sheet: where the van starts and ends, and
// the job descriptions covered along the way.
type Route struct {
	ID            int64     `json:"id"`
	Date          string    `json:"date"` // YYYY-MM-DD
	StartLocation string    `json:"startLocation"`
	EndLocation   string    `json:"endLocation"`
	AssignedTo    int64     `json:"assignedTo"`
	Assignments   []string  `json:"assignments"`
	CreatedAt     time.Time `json:"createdAt"`
	Version       int32     `json:"-"`
}
