package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/calendar"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/domain"
)

const maxAssignedPerDay = 3

func validAssignment() Assignment {
	return Assignment{
		Job: &domain.Job{
			ID:            1,
			ScheduledDate: "2023-06-01", // Thursday, not a holiday
			Type:          domain.JobTypeInstallation,
			Brand:         domain.BrandMElectric,
			Status:        domain.JobStatusUnassigned,
		},
		Staff: &domain.User{
			ID:    10,
			Role:  domain.RoleTechnician,
			Brand: domain.BrandMElectric,
		},
		Role: domain.AssignmentRoleTechnician,
		Availability: &domain.AvailabilityRecord{
			UserID: 10,
			Status: domain.AvailabilityStatusAvailable,
			Dates:  []string{"2023-06-01", "2023-06-02"},
		},
		AssignedSameDay: 0,
	}
}

func TestValidateAssignmentAccepts(t *testing.T) {
	assert.NoError(t, ValidateAssignment(validAssignment(), calendar.New(), maxAssignedPerDay))
}

func TestValidateAssignmentBrandMismatch(t *testing.T) {
	a := validAssignment()
	a.Staff.Brand = domain.BrandDicon

	err := ValidateAssignment(a, calendar.New(), maxAssignedPerDay)

	assert.ErrorIs(t, err, ErrBrandMismatch)
}

func TestValidateAssignmentBrandBothPasses(t *testing.T) {
	a := validAssignment()
	a.Staff.Brand = domain.BrandBoth

	assert.NoError(t, ValidateAssignment(a, calendar.New(), maxAssignedPerDay))
}

func TestValidateAssignmentDriverSkipsBrandCheck(t *testing.T) {
	a := validAssignment()
	a.Role = domain.AssignmentRoleDriver
	a.Staff.Role = domain.RoleDriver
	a.Staff.Brand = ""

	assert.NoError(t, ValidateAssignment(a, calendar.New(), maxAssignedPerDay))
}

func TestValidateAssignmentWeekendRejectsRegardlessOfQualifications(t *testing.T) {
	a := validAssignment()
	a.Job.ScheduledDate = "2023-06-03" // Saturday
	a.Availability.Dates = []string{"2023-06-03"}

	err := ValidateAssignment(a, calendar.New(), maxAssignedPerDay)

	assert.ErrorIs(t, err, ErrRestrictedDay)
}

func TestValidateAssignmentPublicHoliday(t *testing.T) {
	a := validAssignment()
	a.Job.ScheduledDate = "2023-12-25" // Monday, Christmas Day
	a.Availability.Dates = []string{"2023-12-25"}

	err := ValidateAssignment(a, calendar.New(), maxAssignedPerDay)

	assert.ErrorIs(t, err, ErrRestrictedDay)
}

func TestValidateAssignmentCapacity(t *testing.T) {
	a := validAssignment()
	a.AssignedSameDay = 3

	err := ValidateAssignment(a, calendar.New(), maxAssignedPerDay)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	a.AssignedSameDay = 2
	assert.NoError(t, ValidateAssignment(a, calendar.New(), maxAssignedPerDay))
}

func TestValidateAssignmentNoAvailabilityRecord(t *testing.T) {
	a := validAssignment()
	a.Availability = nil

	err := ValidateAssignment(a, calendar.New(), maxAssignedPerDay)

	assert.ErrorIs(t, err, ErrNoAvailability)
}

func TestValidateAssignmentDateNotDeclared(t *testing.T) {
	a := validAssignment()
	a.Availability.Dates = []string{"2023-06-02"}

	err := ValidateAssignment(a, calendar.New(), maxAssignedPerDay)

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestValidateAssignmentStaffOnLeave(t *testing.T) {
	a := validAssignment()
	a.Availability.Status = domain.AvailabilityStatusLeave

	err := ValidateAssignment(a, calendar.New(), maxAssignedPerDay)

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestValidateAssignmentRoleMismatch(t *testing.T) {
	a := validAssignment()
	a.Role = domain.AssignmentRoleDriver // staff member is a technician

	err := ValidateAssignment(a, calendar.New(), maxAssignedPerDay)

	assert.ErrorIs(t, err, ErrRoleMismatch)
}

func TestValidateAssignmentSlotFilled(t *testing.T) {
	a := validAssignment()
	other := int64(99)
	a.Job.TechnicianID = &other
	a.Job.Status = domain.JobStatusAssigned

	err := ValidateAssignment(a, calendar.New(), maxAssignedPerDay)

	assert.ErrorIs(t, err, ErrSlotFilled)
}

func TestValidateAssignmentCompletedJob(t *testing.T) {
	a := validAssignment()
	a.Job.Status = domain.JobStatusCompleted

	err := ValidateAssignment(a, calendar.New(), maxAssignedPerDay)

	assert.ErrorIs(t, err, ErrNotAssignable)
}

func TestValidateAssignmentSecondRoleOnAssignedJob(t *testing.T) {
	// assigning the technician after the driver is already on the job
	a := validAssignment()
	driver := int64(7)
	a.Job.DriverID = &driver
	a.Job.Status = domain.JobStatusAssigned

	assert.NoError(t, ValidateAssignment(a, calendar.New(), maxAssignedPerDay))
}
