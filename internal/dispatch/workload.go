package dispatch

import (
	"sort"

	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/domain"
)

// AggregateWorkload sums allocated hours per staff member over the whole job
// set. A job with both a driver and a technician contributes its hours to
// each of them in full, not split between them. Jobs with no allocated hours
// count as defaultHours.
func AggregateWorkload(jobs []*domain.Job, defaultHours int32) map[int64]int32 {
	totals := make(map[int64]int32)
	for _, job := range jobs {
		hours := job.AllocatedHours
		if hours <= 0 {
			hours = defaultHours
		}
		if job.DriverID != nil {
			totals[*job.DriverID] += hours
		}
		if job.TechnicianID != nil {
			totals[*job.TechnicianID] += hours
		}
	}
	return totals
}

type StaffWorkload struct {
	Staff      *domain.User `json:"staff"`
	TotalHours int32        `json:"totalHours"`
	Overworked bool         `json:"overworked"`
}

// RankByWorkload orders staff ascending by total hours so the least-loaded
// come first. The sort is stable: staff with equal totals keep their input
// order. Anyone above the threshold is flagged overworked.
func RankByWorkload(staff []*domain.User, totals map[int64]int32, threshold int32) []StaffWorkload {
	ranked := make([]StaffWorkload, 0, len(staff))
	for _, s := range staff {
		total := totals[s.ID]
		ranked = append(ranked, StaffWorkload{
			Staff:      s,
			TotalHours: total,
			Overworked: total > threshold,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalHours < ranked[j].TotalHours
	})

	return ranked
}
