package dispatch

import (
	"errors"
	"fmt"
	"time"

	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/calendar"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/domain"
)

// Assignment rejection reasons, surfaced to the manager verbatim.
var (
	ErrNotAssignable    = errors.New("job is not open for assignment")
	ErrSlotFilled       = errors.New("this role is already filled on the job")
	ErrRoleMismatch     = errors.New("staff member cannot fill this role")
	ErrBrandMismatch    = errors.New("staff member is not certified for this brand")
	ErrRestrictedDay    = errors.New("job falls on a weekend or public holiday")
	ErrCapacityExceeded = errors.New("daily assignment capacity reached")
	ErrNoAvailability   = errors.New("staff member has not declared availability")
	ErrUnavailable      = errors.New("staff member is not available on this date")
)

// Assignment is a proposed (job, staff) pairing together with the context
// the eligibility checks need.
type Assignment struct {
	Job   *domain.Job
	Staff *domain.User
	Role  domain.AssignmentRole

	// Availability is the staff member's declared record; nil when they have
	// never saved one, which rejects the assignment.
	Availability *domain.AvailabilityRecord

	// AssignedSameDay counts jobs already in status Assigned on the job's
	// date, excluding the job itself. The authoritative recheck happens
	// inside the assignment transaction; this copy exists so the manager
	// gets the rejection reason without a round trip to the database lock.
	AssignedSameDay int
}

// ValidateAssignment runs the eligibility checks in order and returns the
// first violation: slot/role sanity, brand certification (technicians only),
// weekend/holiday exclusion, per-day capacity cap, declared availability.
func ValidateAssignment(a Assignment, cal *calendar.Calendar, capacity int) error {
	job, staff := a.Job, a.Staff

	if job.Status != domain.JobStatusUnassigned && job.Status != domain.JobStatusAssigned {
		return ErrNotAssignable
	}
	if job.AssigneeID(a.Role) != nil {
		return ErrSlotFilled
	}

	switch a.Role {
	case domain.AssignmentRoleDriver:
		if staff.Role != domain.RoleDriver {
			return ErrRoleMismatch
		}
	case domain.AssignmentRoleTechnician:
		if staff.Role != domain.RoleTechnician {
			return ErrRoleMismatch
		}
	default:
		return ErrRoleMismatch
	}

	if a.Role == domain.AssignmentRoleTechnician && !staff.Brand.Covers(job.Brand) {
		return ErrBrandMismatch
	}

	date, err := time.Parse(calendar.DateLayout, job.ScheduledDate)
	if err != nil {
		return fmt.Errorf("invalid scheduled date %q: %w", job.ScheduledDate, err)
	}
	if cal.IsRestrictedDay(date) {
		return ErrRestrictedDay
	}

	if a.AssignedSameDay >= capacity {
		return ErrCapacityExceeded
	}

	if a.Availability == nil {
		return ErrNoAvailability
	}
	if a.Availability.Status != domain.AvailabilityStatusAvailable || !a.Availability.HasDate(job.ScheduledDate) {
		return ErrUnavailable
	}

	return nil
}
