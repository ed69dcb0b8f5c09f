package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/omrozmn/x-ear-sub003/internal/service/appointment"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrAppointmentNotFound), errors.Is(err, appointment.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrPastSchedule), errors.Is(err, appointment.ErrInvalidKind):
		return badRequest(c, err.Error())
	case errors.Is(err, appointment.ErrOverlap), errors.Is(err, appointment.ErrNotScheduled):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /appointments?day=2026-09-01&patient_id=&staff_id=&status=
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	var q struct {
		Day       string `query:"day"`
		PatientID string `query:"patient_id"`
		StaffID   string `query:"staff_id"`
		Status    string `query:"status"`
	}
	_ = c.Bind().Query(&q)

	req := appointment.ListRequest{}
	if q.Day != "" {
		day, err := time.Parse("2006-01-02", q.Day)
		if err != nil {
			return badRequest(c, "invalid day, expected YYYY-MM-DD")
		}
		req.Day = &day
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if q.StaffID != "" {
		id, err := uuid.Parse(q.StaffID)
		if err != nil {
			return badRequest(c, "invalid staff_id")
		}
		req.StaffID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}

	appts, err := h.svc.List(c.Context(), branchID, req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appts)
}

// GET /appointments/:id
func (h *AppointmentHandler) Get(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), branchID, apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// POST /appointments
func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	var body struct {
		PatientID       uuid.UUID  `json:"patient_id"`
		StaffID         *uuid.UUID `json:"staff_id"`
		ScheduledAt     time.Time  `json:"scheduled_at"`
		DurationMinutes int        `json:"duration_minutes"`
		Kind            string     `json:"kind"`
		Notes           *string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.Book(c.Context(), branchID, appointment.BookRequest{
		PatientID:       body.PatientID,
		StaffID:         body.StaffID,
		ScheduledAt:     body.ScheduledAt,
		DurationMinutes: body.DurationMinutes,
		Kind:            body.Kind,
		Notes:           body.Notes,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, appt)
}

// PUT /appointments/:id/reschedule
func (h *AppointmentHandler) Reschedule(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		ScheduledAt     time.Time  `json:"scheduled_at"`
		DurationMinutes *int       `json:"duration_minutes"`
		StaffID         *uuid.UUID `json:"staff_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.Reschedule(c.Context(), branchID, apptID, appointment.RescheduleRequest{
		ScheduledAt:     body.ScheduledAt,
		DurationMinutes: body.DurationMinutes,
		StaffID:         body.StaffID,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// POST /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	return h.transition(c, h.svc.Cancel)
}

// POST /appointments/:id/complete
func (h *AppointmentHandler) Complete(c fiber.Ctx) error {
	return h.transition(c, h.svc.Complete)
}

// POST /appointments/:id/no-show
func (h *AppointmentHandler) MarkNoShow(c fiber.Ctx) error {
	return h.transition(c, h.svc.MarkNoShow)
}

func (h *AppointmentHandler) transition(c fiber.Ctx, fn func(ctx context.Context, branchID, apptID uuid.UUID) error) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := fn(c.Context(), branchID, apptID); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}
