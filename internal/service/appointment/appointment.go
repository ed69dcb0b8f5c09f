package appointment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/omrozmn/x-ear-sub003/internal/repo"
	entappt "github.com/omrozmn/x-ear-sub003/internal/repo/appointment"
	entpatient "github.com/omrozmn/x-ear-sub003/internal/repo/patient"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	// Day limits results to appointments on that calendar date.
	Day       *time.Time
	PatientID *uuid.UUID
	StaffID   *uuid.UUID
	Status    *string
}

type BookRequest struct {
	PatientID       uuid.UUID
	StaffID         *uuid.UUID
	ScheduledAt     time.Time
	DurationMinutes int
	Kind            string
	Notes           *string
}

type RescheduleRequest struct {
	ScheduledAt     time.Time
	DurationMinutes *int
	StaffID         *uuid.UUID
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, branchID uuid.UUID, req ListRequest) ([]*repo.Appointment, error)
	GetByID(ctx context.Context, branchID, apptID uuid.UUID) (*repo.Appointment, error)
	Book(ctx context.Context, branchID uuid.UUID, req BookRequest) (*repo.Appointment, error)
	Reschedule(ctx context.Context, branchID, apptID uuid.UUID, req RescheduleRequest) (*repo.Appointment, error)
	Cancel(ctx context.Context, branchID, apptID uuid.UUID) error
	Complete(ctx context.Context, branchID, apptID uuid.UUID) error
	MarkNoShow(ctx context.Context, branchID, apptID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &appointmentService{db: db, nc: nc}
}

func (s *appointmentService) List(ctx context.Context, branchID uuid.UUID, req ListRequest) ([]*repo.Appointment, error) {
	q := s.db.Appointment.Query().
		Where(entappt.BranchID(branchID))

	if req.Day != nil {
		dayStart := time.Date(req.Day.Year(), req.Day.Month(), req.Day.Day(), 0, 0, 0, 0, req.Day.Location())
		q = q.Where(entappt.ScheduledAtGTE(dayStart), entappt.ScheduledAtLT(dayStart.AddDate(0, 0, 1)))
	}
	if req.PatientID != nil {
		q = q.Where(entappt.PatientID(*req.PatientID))
	}
	if req.StaffID != nil {
		q = q.Where(entappt.StaffID(*req.StaffID))
	}
	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}

	return q.Order(entappt.ByScheduledAt(sql.OrderAsc())).All(ctx)
}

func (s *appointmentService) GetByID(ctx context.Context, branchID, apptID uuid.UUID) (*repo.Appointment, error) {
	a, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID), entappt.BranchID(branchID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return a, nil
}

// overlapExists reports whether the staff member already has a scheduled
// appointment intersecting [start, start+duration).
func (s *appointmentService) overlapExists(ctx context.Context, staffID uuid.UUID, start time.Time, minutes int, exclude *uuid.UUID) (bool, error) {
	end := start.Add(time.Duration(minutes) * time.Minute)

	q := s.db.Appointment.Query().
		Where(
			entappt.StaffID(staffID),
			entappt.StatusEQ(entappt.StatusScheduled),
			entappt.ScheduledAtLT(end),
		)
	if exclude != nil {
		q = q.Where(entappt.IDNEQ(*exclude))
	}

	candidates, err := q.All(ctx)
	if err != nil {
		return false, err
	}
	for _, c := range candidates {
		cEnd := c.ScheduledAt.Add(time.Duration(c.DurationMinutes) * time.Minute)
		if cEnd.After(start) {
			return true, nil
		}
	}
	return false, nil
}

func (s *appointmentService) Book(ctx context.Context, branchID uuid.UUID, req BookRequest) (*repo.Appointment, error) {
	kind := entappt.Kind(req.Kind)
	switch kind {
	case entappt.KindFirstVisit, entappt.KindFitting, entappt.KindControl, entappt.KindRepair, entappt.KindOther:
	case "":
		kind = entappt.KindOther
	default:
		return nil, ErrInvalidKind
	}
	if req.ScheduledAt.Before(time.Now()) {
		return nil, ErrPastSchedule
	}
	if req.DurationMinutes <= 0 {
		req.DurationMinutes = 30
	}

	exists, err := s.db.Patient.Query().
		Where(entpatient.ID(req.PatientID), entpatient.BranchID(branchID), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return nil, ErrPatientNotFound
	}

	if req.StaffID != nil {
		overlap, err := s.overlapExists(ctx, *req.StaffID, req.ScheduledAt, req.DurationMinutes, nil)
		if err != nil {
			return nil, fmt.Errorf("check overlap: %w", err)
		}
		if overlap {
			return nil, ErrOverlap
		}
	}

	c := s.db.Appointment.Create().
		SetBranchID(branchID).
		SetPatientID(req.PatientID).
		SetScheduledAt(req.ScheduledAt).
		SetDurationMinutes(req.DurationMinutes).
		SetKind(kind)
	if req.StaffID != nil {
		c = c.SetNillableStaffID(req.StaffID)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	a, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("book appointment: %w", err)
	}

	if s.nc != nil {
		subject := fmt.Sprintf("xear.appointment.created.%s", a.ID.String())
		_ = s.nc.Publish(subject, []byte(a.ID.String()))
	}
	return a, nil
}

func (s *appointmentService) Reschedule(ctx context.Context, branchID, apptID uuid.UUID, req RescheduleRequest) (*repo.Appointment, error) {
	a, err := s.GetByID(ctx, branchID, apptID)
	if err != nil {
		return nil, err
	}
	if a.Status != entappt.StatusScheduled {
		return nil, ErrNotScheduled
	}
	if req.ScheduledAt.Before(time.Now()) {
		return nil, ErrPastSchedule
	}

	minutes := a.DurationMinutes
	if req.DurationMinutes != nil {
		minutes = *req.DurationMinutes
	}
	staffID := a.StaffID
	if req.StaffID != nil {
		staffID = req.StaffID
	}

	if staffID != nil {
		overlap, err := s.overlapExists(ctx, *staffID, req.ScheduledAt, minutes, &apptID)
		if err != nil {
			return nil, fmt.Errorf("check overlap: %w", err)
		}
		if overlap {
			return nil, ErrOverlap
		}
	}

	upd := s.db.Appointment.UpdateOne(a).
		SetScheduledAt(req.ScheduledAt).
		SetDurationMinutes(minutes)
	if staffID != nil {
		upd = upd.SetNillableStaffID(staffID)
	}
	return upd.Save(ctx)
}

func (s *appointmentService) setStatus(ctx context.Context, branchID, apptID uuid.UUID, status entappt.Status, event string) error {
	a, err := s.GetByID(ctx, branchID, apptID)
	if err != nil {
		return err
	}
	if a.Status != entappt.StatusScheduled {
		return ErrNotScheduled
	}
	if err := s.db.Appointment.UpdateOne(a).SetStatus(status).Exec(ctx); err != nil {
		return err
	}
	if s.nc != nil && event != "" {
		subject := fmt.Sprintf("xear.appointment.%s.%s", event, a.ID.String())
		_ = s.nc.Publish(subject, []byte(a.ID.String()))
	}
	return nil
}

func (s *appointmentService) Cancel(ctx context.Context, branchID, apptID uuid.UUID) error {
	return s.setStatus(ctx, branchID, apptID, entappt.StatusCancelled, "cancelled")
}

func (s *appointmentService) Complete(ctx context.Context, branchID, apptID uuid.UUID) error {
	return s.setStatus(ctx, branchID, apptID, entappt.StatusCompleted, "completed")
}

func (s *appointmentService) MarkNoShow(ctx context.Context, branchID, apptID uuid.UUID) error {
	return s.setStatus(ctx, branchID, apptID, entappt.StatusNoShow, "no_show")
}
