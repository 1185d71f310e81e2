package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/dispatch"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/domain"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/events"
	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/repository"
)

func (h *Handler) actorID(r *http.Request) int64 {
	sub, _ := strconv.ParseInt(r.Context().Value(SubCtxKey).(string), 10, 64)
	return sub
}

func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ScheduledDate  string `json:"scheduledDate" validate:"required,datetime=2006-01-02"`
		Type           string `json:"type" validate:"required,oneof=installation servicing installation-and-servicing"`
		Brand          string `json:"brand" validate:"required,oneof=Dicon 'M Electric'"`
		Location       string `json:"location" validate:"required"`
		AllocatedHours int32  `json:"allocatedHours" validate:"omitempty,min=1,max=24"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.AllocatedHours == 0 {
		req.AllocatedHours = int32(h.config.Dispatch.DefaultJobHours)
	}

	job := &domain.Job{
		ScheduledDate:  req.ScheduledDate,
		Type:           domain.JobType(req.Type),
		Brand:          domain.Brand(req.Brand),
		Location:       req.Location,
		AllocatedHours: req.AllocatedHours,
	}

	if err := h.repository.CreateJob(job); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.events.Publish(events.JobEvent{
		Type:    events.TypeJobCreated,
		JobID:   job.ID,
		Date:    job.ScheduledDate,
		Status:  string(job.Status),
		ActorID: h.actorID(r),
	})

	h.successResponse(w, r, "job created", job)
}

func (h *Handler) GetAllJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.repository.GetAllJobs()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "jobs fetched", jobs)
}

func (h *Handler) GetMyJobs(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	jobs, err := h.repository.GetJobsByAssignee(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "jobs fetched", jobs)
}

func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtx).(*domain.Job)
	h.successResponse(w, r, "job fetched", job)
}

func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtx).(*domain.Job)

	if err := h.repository.DeleteJob(job.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.events.Publish(events.JobEvent{
		Type:    events.TypeJobDeleted,
		JobID:   job.ID,
		Date:    job.ScheduledDate,
		ActorID: h.actorID(r),
	})

	h.successResponse(w, r, "job deleted", nil)
}

func (h *Handler) AssignStaff(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtx).(*domain.Job)

	var req struct {
		StaffID        int64  `json:"staffID" validate:"required"`
		Role           string `json:"role" validate:"required,oneof=driver technician"`
		AllocatedHours int32  `json:"allocatedHours" validate:"omitempty,min=1,max=24"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff, err := h.repository.GetUserByID(req.StaffID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "staff member not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if !staff.IsActive {
		h.errorResponse(w, r, "staff member is no longer active")
		return
	}

	availability, err := h.repository.GetAvailabilityByUserID(staff.ID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		h.internalServerError(w, r, err)
		return
	}

	assignedSameDay, err := h.repository.CountAssignedOnDate(job.ScheduledDate, job.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	assignment := dispatch.Assignment{
		Job:             job,
		Staff:           staff,
		Role:            domain.AssignmentRole(req.Role),
		Availability:    availability, // nil when no record exists
		AssignedSameDay: assignedSameDay,
	}
	if err := dispatch.ValidateAssignment(assignment, h.calendar, h.config.Dispatch.MaxAssignedPerDay); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	allocatedHours := req.AllocatedHours
	if allocatedHours == 0 {
		allocatedHours = int32(h.config.Dispatch.DefaultJobHours)
	}

	if err := h.repository.AssignStaff(job, staff, assignment.Role, allocatedHours, h.config.Dispatch.MaxAssignedPerDay); err != nil {
		switch {
		case errors.Is(err, repository.ErrCapacityConflict):
			h.errorResponse(w, r, dispatch.ErrCapacityExceeded.Error())
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "job changed underneath you, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.events.Publish(events.JobEvent{
		Type:    events.TypeJobAssigned,
		JobID:   job.ID,
		Date:    job.ScheduledDate,
		Status:  string(job.Status),
		ActorID: h.actorID(r),
	})

	// tell the staff member about the assignment; the write has committed,
	// so a publish failure must not fail the request
	h.queueAssignmentMail(r, job, staff, string(assignment.Role))

	h.successResponse(w, r, "staff assigned", job)
}

func (h *Handler) queueAssignmentMail(r *http.Request, job *domain.Job, staff *domain.User, role string) {
	mailMessage := domain.MailMessage{
		Type: "job_assigned",
		To:   staff.Email,
		Data: domain.JobAssignedMailData{
			FullName: staff.FullName,
			Role:     role,
			Date:     job.ScheduledDate,
			JobType:  string(job.Type),
			Brand:    string(job.Brand),
			Location: job.Location,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.logInternalServerError(r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		h.logInternalServerError(r, err)
	}
}

func (h *Handler) AcceptJob(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtx).(*domain.Job)
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	if !job.IsAssignedTo(myInfo.ID) {
		h.errorResponse(w, r, "you are not assigned to this job")
		return
	}
	if !job.CanAccept() {
		h.errorResponse(w, r, "job cannot be accepted in its current state")
		return
	}

	job.Status = domain.JobStatusConfirmed
	h.writeStatusTransition(w, r, job)
}

func (h *Handler) RejectJob(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtx).(*domain.Job)
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	if !job.IsAssignedTo(myInfo.ID) {
		h.errorResponse(w, r, "you are not assigned to this job")
		return
	}
	if !job.CanReject() {
		h.errorResponse(w, r, "job cannot be rejected in its current state")
		return
	}

	// rejection rolls the job back to Unassigned and frees the slot
	if job.DriverID != nil && *job.DriverID == myInfo.ID {
		job.DriverID = nil
		job.DriverName = nil
	}
	if job.TechnicianID != nil && *job.TechnicianID == myInfo.ID {
		job.TechnicianID = nil
		job.TechnicianName = nil
	}
	job.Status = domain.JobStatusUnassigned

	h.writeStatusTransition(w, r, job)
}

func (h *Handler) CompleteJob(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtx).(*domain.Job)
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	if !job.IsAssignedTo(myInfo.ID) {
		h.errorResponse(w, r, "you are not assigned to this job")
		return
	}
	if !job.CanComplete() {
		h.errorResponse(w, r, "job cannot be completed in its current state")
		return
	}

	job.Status = domain.JobStatusCompleted
	h.writeStatusTransition(w, r, job)
}

func (h *Handler) writeStatusTransition(w http.ResponseWriter, r *http.Request, job *domain.Job) {
	if err := h.repository.UpdateJobStatus(job); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "job changed underneath you, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.events.Publish(events.JobEvent{
		Type:    events.TypeJobStatusChanged,
		JobID:   job.ID,
		Date:    job.ScheduledDate,
		Status:  string(job.Status),
		ActorID: h.actorID(r),
	})

	h.successResponse(w, r, "job updated", job)
}
