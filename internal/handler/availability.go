package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/domain"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/repository"
)

// SaveMyAvailability overwrites the caller's availability record wholesale,
// deducting annual leave for leave submissions in the same transaction.
func (h *Handler) SaveMyAvailability(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Status        string   `json:"status" validate:"required,oneof=available unavailable leave"`
		JobPreference string   `json:"jobPreference" validate:"omitempty,oneof=installation servicing installation-and-servicing"`
		Dates         []string `json:"dates" validate:"required,min=1,dive,datetime=2006-01-02"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	record := &domain.AvailabilityRecord{
		UserID:        myInfo.ID,
		Status:        domain.AvailabilityStatus(req.Status),
		JobPreference: domain.JobType(req.JobPreference),
		Dates:         req.Dates,
	}

	var leaveDays int32
	if record.Status == domain.AvailabilityStatusLeave {
		leaveDays = int32(len(record.Dates))
	}

	if err := h.repository.ReplaceAvailability(record, leaveDays); err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientLeave):
			h.errorResponse(w, r, "not enough annual leave remaining")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "availability saved", record)
}

func (h *Handler) GetMyAvailability(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	record, err := h.repository.GetAvailabilityByUserID(myInfo.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.successResponse(w, r, "no availability declared", nil)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "availability fetched", record)
}

func (h *Handler) GetUserAvailability(w http.ResponseWriter, r *http.Request) {
	userIDParam := chi.URLParam(r, "userID")
	userID, err := strconv.ParseInt(userIDParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid user ID")
		return
	}

	record, err := h.repository.GetAvailabilityByUserID(userID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.successResponse(w, r, "no availability declared", nil)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "availability fetched", record)
}
