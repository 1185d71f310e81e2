package domain

import (
	"slices"
	"time"
)

type AvailabilityStatus string

const (
	AvailabilityStatusAvailable   AvailabilityStatus = "available"
	AvailabilityStatusUnavailable AvailabilityStatus = "unavailable"
	AvailabilityStatusLeave       AvailabilityStatus = "leave"
)

// AvailabilityRecord is a staff member's self-declared calendar, saved
// wholesale on every submission. One record per user regardless of role.
type AvailabilityRecord struct {
	ID            int64              `json:"id"`
	UserID        int64              `json:"userID"`
	Status        AvailabilityStatus `json:"status"`
	JobPreference JobType            `json:"jobPreference,omitempty"`
	Dates         []string           `json:"dates"` // YYYY-MM-DD
	CreatedAt     time.Time          `json:"createdAt"`
	Version       int32              `json:"-"`
}

// HasDate reports whether the declared date set contains the given
// YYYY-MM-DD date.
func (rec *AvailabilityRecord) HasDate(date string) bool {
	return slices.Contains(rec.Dates, date)
}
