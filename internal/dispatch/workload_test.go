package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/domain"
)

func ptr(id int64) *int64 { return &id }

func TestAggregateWorkload(t *testing.T) {
	jobs := []*domain.Job{
		{ID: 1, DriverID: ptr(10), AllocatedHours: 4},
		{ID: 2, TechnicianID: ptr(10), AllocatedHours: 6},
		{ID: 3, DriverID: ptr(20), TechnicianID: ptr(30), AllocatedHours: 8},
		{ID: 4, Status: domain.JobStatusUnassigned}, // no assignees, contributes nothing
	}

	totals := AggregateWorkload(jobs, 4)

	assert.Equal(t, int32(10), totals[10], "driver on job1 (4h) and technician on job2 (6h)")
	assert.Equal(t, int32(8), totals[20])
	assert.Equal(t, int32(8), totals[30], "shared job counts in full for both assignees")
	assert.NotContains(t, totals, int64(40))
}

func TestAggregateWorkloadDefaultHours(t *testing.T) {
	jobs := []*domain.Job{
		{ID: 1, DriverID: ptr(10)}, // allocated hours never set
		{ID: 2, DriverID: ptr(10), AllocatedHours: 2},
	}

	totals := AggregateWorkload(jobs, 4)

	assert.Equal(t, int32(6), totals[10])
}

func TestRankByWorkload(t *testing.T) {
	staff := []*domain.User{
		{ID: 1, FullName: "Wei Jun Tan"},
		{ID: 2, FullName: "Siti Rahman"},
		{ID: 3, FullName: "Marcus Lee"},
		{ID: 4, FullName: "Priya Nair"},
	}
	totals := map[int64]int32{1: 44, 2: 12, 3: 12, 4: 0}

	ranked := RankByWorkload(staff, totals, 40)

	assert.Equal(t, int64(4), ranked[0].Staff.ID)
	// stable: equal totals keep input order
	assert.Equal(t, int64(2), ranked[1].Staff.ID)
	assert.Equal(t, int64(3), ranked[2].Staff.ID)
	assert.Equal(t, int64(1), ranked[3].Staff.ID)

	assert.True(t, ranked[3].Overworked)
	assert.False(t, ranked[1].Overworked)
}

func TestRankByWorkloadThresholdIsExclusive(t *testing.T) {
	staff := []*domain.User{{ID: 1}}

	ranked := RankByWorkload(staff, map[int64]int32{1: 40}, 40)

	assert.False(t, ranked[0].Overworked, "exactly 40 hours is not overworked")
}
