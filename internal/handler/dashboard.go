package handler

import (
	"net/http"

	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/dispatch"
)

// GetWorkloadOverview recomputes workload totals from the full job set and
// ranks staff least-loaded first, flagging anyone over the overwork
// threshold. Totals are derived, never stored.
func (h *Handler) GetWorkloadOverview(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.repository.GetAllJobs()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	staff, err := h.repository.GetAllStaff()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	totals := dispatch.AggregateWorkload(jobs, int32(h.config.Dispatch.DefaultJobHours))
	ranked := dispatch.RankByWorkload(staff, totals, int32(h.config.Dispatch.OverworkThreshold))

	h.successResponse(w, r, "workload computed", ranked)
}
