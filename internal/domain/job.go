package domain

import "time"

type JobStatus string

const (
	JobStatusUnassigned JobStatus = "Unassigned"
	JobStatusAssigned   JobStatus = "Assigned"
	JobStatusConfirmed  JobStatus = "Confirmed"
	JobStatusCompleted  JobStatus = "Completed"
)

type JobType string

const (
	JobTypeInstallation             JobType = "installation"
	JobTypeServicing                JobType = "servicing"
	JobTypeInstallationAndServicing JobType = "installation-and-servicing"
)

// AssignmentRole is the capacity in which a staff member is attached to a job.
type AssignmentRole string

const (
	AssignmentRoleDriver     AssignmentRole = "driver"
	AssignmentRoleTechnician AssignmentRole = "technician"
)

type Job struct {
	ID             int64     `json:"id"`
	ScheduledDate  string    `json:"scheduledDate"` // YYYY-MM-DD, no time component
	Type           JobType   `json:"type"`
	Brand          Brand     `json:"brand"`
	Location       string    `json:"location"`
	DriverID       *int64    `json:"driverID"`
	DriverName     *string   `json:"driverName"`
	TechnicianID   *int64    `json:"technicianID"`
	TechnicianName *string   `json:"technicianName"`
	AllocatedHours int32     `json:"allocatedHours"`
	Status         JobStatus `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	Version        int32     `json:"-"`
}

// AssigneeID returns the user attached to the job in the given role, or nil.
func (j *Job) AssigneeID(role AssignmentRole) *int64 {
	if role == AssignmentRoleDriver {
		return j.DriverID
	}
	return j.TechnicianID
}

// IsAssignedTo reports whether the user fills either role on the job.
func (j *Job) IsAssignedTo(userID int64) bool {
	if j.DriverID != nil && *j.DriverID == userID {
		return true
	}
	if j.TechnicianID != nil && *j.TechnicianID == userID {
		return true
	}
	return false
}

// CanAccept reports whether the assignee may confirm the job.
func (j *Job) CanAccept() bool {
	return j.Status == JobStatusAssigned
}

// CanReject reports whether the assignee may roll the job back to Unassigned.
func (j *Job) CanReject() bool {
	return j.Status == JobStatusAssigned || j.Status == JobStatusConfirmed
}

// CanComplete reports whether the assignee may mark the job done.
func (j *Job) CanComplete() bool {
	return j.Status == JobStatusConfirmed
}
