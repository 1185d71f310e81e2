package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/calendar"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/domain"
)

func (h *Handler) CreateRoute(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date          string   `json:"date" validate:"required,datetime=2006-01-02"`
		StartLocation string   `json:"startLocation" validate:"required"`
		EndLocation   string   `json:"endLocation" validate:"required"`
		AssignedTo    int64    `json:"assignedTo" validate:"required"`
		Assignments   []string `json:"assignments" validate:"omitempty,dive,required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff, err := h.repository.GetUserByID(req.AssignedTo)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "staff member not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	if staff.Role != domain.RoleDriver {
		h.errorResponse(w, r, "routes can only be assigned to drivers")
		return
	}

	route := &domain.Route{
		Date:          req.Date,
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
		AssignedTo:    req.AssignedTo,
		Assignments:   req.Assignments,
	}

	if err := h.repository.CreateRoute(route); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "routes_assigned_to_fkey":
				h.errorResponse(w, r, "staff member not found")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "route created", route)
}

func (h *Handler) GetMyRoutes(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	today := time.Now().Format(calendar.DateLayout)
	routes, err := h.repository.GetUpcomingRoutesByAssignee(myInfo.ID, today)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "routes fetched", routes)
}
