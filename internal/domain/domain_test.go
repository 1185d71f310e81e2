package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrandCovers(t *testing.T) {
	assert.True(t, BrandDicon.Covers(BrandDicon))
	assert.True(t, BrandBoth.Covers(BrandDicon))
	assert.True(t, BrandBoth.Covers(BrandMElectric))
	assert.False(t, BrandDicon.Covers(BrandMElectric))
	assert.False(t, BrandMElectric.Covers(BrandDicon))
}

func TestRoleDashboardPath(t *testing.T) {
	assert.Equal(t, "/manager", RoleManager.DashboardPath())
	assert.Equal(t, "/technician", RoleTechnician.DashboardPath())
	assert.Equal(t, "/staff", RoleDriver.DashboardPath())
	assert.Empty(t, Role("intern").DashboardPath())
}

func TestJobStatusTransitions(t *testing.T) {
	job := &Job{Status: JobStatusAssigned}
	assert.True(t, job.CanAccept())
	assert.True(t, job.CanReject())
	assert.False(t, job.CanComplete())

	job.Status = JobStatusConfirmed
	assert.False(t, job.CanAccept())
	assert.True(t, job.CanReject())
	assert.True(t, job.CanComplete())

	job.Status = JobStatusCompleted
	assert.False(t, job.CanAccept())
	assert.False(t, job.CanReject())
	assert.False(t, job.CanComplete())

	job.Status = JobStatusUnassigned
	assert.False(t, job.CanAccept())
}

func TestJobIsAssignedTo(t *testing.T) {
	driver := int64(3)
	technician := int64(7)
	job := &Job{DriverID: &driver, TechnicianID: &technician}

	assert.True(t, job.IsAssignedTo(3))
	assert.True(t, job.IsAssignedTo(7))
	assert.False(t, job.IsAssignedTo(5))

	empty := &Job{}
	assert.False(t, empty.IsAssignedTo(3))
}

func TestAvailabilityRecordHasDate(t *testing.T) {
	record := &AvailabilityRecord{Dates: []string{"2023-06-01", "2023-06-02"}}

	assert.True(t, record.HasDate("2023-06-01"))
	assert.False(t, record.HasDate("2023-06-03"))
}
