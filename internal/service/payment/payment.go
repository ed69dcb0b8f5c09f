package payment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/samber/lo"

	"github.com/omrozmn/x-ear-sub003/internal/pricing"
	"github.com/omrozmn/x-ear-sub003/internal/repo"
	entpayment "github.com/omrozmn/x-ear-sub003/internal/repo/paymentrecord"
	entpromissory "github.com/omrozmn/x-ear-sub003/internal/repo/promissorynote"
	"github.com/omrozmn/x-ear-sub003/internal/service/assignment"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RecordPaymentRequest struct {
	Amount    float64
	Method    string // cash, card or transfer
	PaidAt    *time.Time
	Reference *string
}

type CreateNotesRequest struct {
	// Amounts and due dates for each note, parallel slices are avoided by
	// giving each note its own entry.
	Notes []NoteInput
}

type NoteInput struct {
	Amount  float64
	DueDate time.Time
}

// SchedulePreview is a generated promissory note schedule before creation.
type SchedulePreview struct {
	Count   int         `json:"count"`
	Monthly float64     `json:"monthly"`
	Notes   []NoteInput `json:"notes"`
}

// Balance summarizes an assignment's money state.
type Balance struct {
	PatientPayment float64 `json:"patient_payment"`
	DownPayment    float64 `json:"down_payment"`
	TotalPaid      float64 `json:"total_paid"`
	Remaining      float64 `json:"remaining"`
	PendingNotes   float64 `json:"pending_notes"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Record(ctx context.Context, branchID, assignmentID uuid.UUID, recordedBy *uuid.UUID, req RecordPaymentRequest) (*repo.PaymentRecord, error)
	List(ctx context.Context, branchID, assignmentID uuid.UUID) ([]*repo.PaymentRecord, error)
	Delete(ctx context.Context, branchID, paymentID uuid.UUID) error
	AssignmentBalance(ctx context.Context, branchID, assignmentID uuid.UUID) (*Balance, error)

	// Promissory notes
	PreviewSchedule(ctx context.Context, branchID, assignmentID uuid.UUID, count int, firstDue time.Time) (*SchedulePreview, error)
	CreateNotes(ctx context.Context, branchID, assignmentID uuid.UUID, req CreateNotesRequest) ([]*repo.PromissoryNote, error)
	ListNotes(ctx context.Context, branchID, assignmentID uuid.UUID) ([]*repo.PromissoryNote, error)
	MarkNotePaid(ctx context.Context, branchID, noteID uuid.UUID) (*repo.PromissoryNote, error)
	CancelNote(ctx context.Context, branchID, noteID uuid.UUID) (*repo.PromissoryNote, error)
	MarkOverdueNotes(ctx context.Context, now time.Time) (int, error)
}

type paymentService struct {
	db        *repo.Client
	assignSvc assignment.Service
	nc        *nats.Conn
}

func New(db *repo.Client, assignSvc assignment.Service, nc *nats.Conn) Service {
	return &paymentService{db: db, assignSvc: assignSvc, nc: nc}
}

func (s *paymentService) Record(ctx context.Context, branchID, assignmentID uuid.UUID, recordedBy *uuid.UUID, req RecordPaymentRequest) (*repo.PaymentRecord, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !lo.Contains([]string{"cash", "card", "transfer"}, req.Method) {
		return nil, ErrInvalidMethod
	}

	a, err := s.assignSvc.GetByID(ctx, branchID, assignmentID)
	if err != nil {
		return nil, err
	}

	balance, err := s.balanceFor(ctx, a)
	if err != nil {
		return nil, err
	}
	if req.Amount > balance.Remaining+0.01 {
		return nil, ErrOverpayment
	}

	paidAt := time.Now()
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	c := s.db.PaymentRecord.Create().
		SetAssignmentID(assignmentID).
		SetAmount(req.Amount).
		SetMethod(entpayment.Method(req.Method)).
		SetPaidAt(paidAt)
	if req.Reference != nil {
		c = c.SetNillableReference(req.Reference)
	}
	if recordedBy != nil {
		c = c.SetNillableRecordedBy(recordedBy)
	}

	p, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	if s.nc != nil {
		subject := fmt.Sprintf("xear.payment.received.%s", p.ID.String())
		_ = s.nc.Publish(subject, []byte(p.ID.String()))
	}
	return p, nil
}

func (s *paymentService) List(ctx context.Context, branchID, assignmentID uuid.UUID) ([]*repo.PaymentRecord, error) {
	if _, err := s.assignSvc.GetByID(ctx, branchID, assignmentID); err != nil {
		return nil, err
	}
	return s.db.PaymentRecord.Query().
		Where(entpayment.AssignmentID(assignmentID)).
		Order(entpayment.ByPaidAt(sql.OrderDesc())).
		All(ctx)
}

func (s *paymentService) Delete(ctx context.Context, branchID, paymentID uuid.UUID) error {
	p, err := s.db.PaymentRecord.Query().
		Where(entpayment.ID(paymentID)).
		WithAssignment().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrPaymentNotFound
		}
		return fmt.Errorf("get payment: %w", err)
	}
	// Branch scoping via the owning assignment.
	if _, err := s.assignSvc.GetByID(ctx, branchID, p.AssignmentID); err != nil {
		return ErrPaymentNotFound
	}
	return s.db.PaymentRecord.DeleteOne(p).Exec(ctx)
}

func (s *paymentService) AssignmentBalance(ctx context.Context, branchID, assignmentID uuid.UUID) (*Balance, error) {
	a, err := s.assignSvc.GetByID(ctx, branchID, assignmentID)
	if err != nil {
		return nil, err
	}
	return s.balanceFor(ctx, a)
}

func (s *paymentService) balanceFor(ctx context.Context, a *repo.DeviceAssignment) (*Balance, error) {
	payments, err := s.db.PaymentRecord.Query().
		Where(entpayment.AssignmentID(a.ID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	totalPaid := lo.SumBy(payments, func(p *repo.PaymentRecord) float64 { return p.Amount })

	pendingNotes, err := s.db.PromissoryNote.Query().
		Where(entpromissory.AssignmentID(a.ID), entpromissory.StatusIn(entpromissory.StatusPending, entpromissory.StatusOverdue)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	pendingSum := lo.SumBy(pendingNotes, func(n *repo.PromissoryNote) float64 { return n.Amount })

	remaining := a.PatientPayment - a.DownPayment - totalPaid
	if remaining < 0 {
		remaining = 0
	}

	return &Balance{
		PatientPayment: a.PatientPayment,
		DownPayment:    a.DownPayment,
		TotalPaid:      totalPaid,
		Remaining:      remaining,
		PendingNotes:   pendingSum,
	}, nil
}

// ---------------------------------------------------------------------------
// Promissory notes
// ---------------------------------------------------------------------------

func (s *paymentService) PreviewSchedule(ctx context.Context, branchID, assignmentID uuid.UUID, count int, firstDue time.Time) (*SchedulePreview, error) {
	if !pricing.IsAllowedInstallmentCount(count) {
		return nil, ErrInvalidInstallment
	}
	a, err := s.assignSvc.GetByID(ctx, branchID, assignmentID)
	if err != nil {
		return nil, err
	}

	monthly := pricing.MonthlyInstallment(a.RemainingAmount, count)
	notes := make([]NoteInput, 0, count)
	for i := 0; i < count; i++ {
		notes = append(notes, NoteInput{
			Amount:  monthly,
			DueDate: firstDue.AddDate(0, i, 0),
		})
	}
	return &SchedulePreview{Count: count, Monthly: monthly, Notes: notes}, nil
}

func (s *paymentService) CreateNotes(ctx context.Context, branchID, assignmentID uuid.UUID, req CreateNotesRequest) ([]*repo.PromissoryNote, error) {
	if len(req.Notes) == 0 {
		return nil, ErrInvalidAmount
	}
	for _, n := range req.Notes {
		if n.Amount <= 0 {
			return nil, ErrInvalidAmount
		}
	}
	if _, err := s.assignSvc.GetByID(ctx, branchID, assignmentID); err != nil {
		return nil, err
	}

	builders := make([]*repo.PromissoryNoteCreate, 0, len(req.Notes))
	for _, n := range req.Notes {
		builders = append(builders, s.db.PromissoryNote.Create().
			SetAssignmentID(assignmentID).
			SetAmount(n.Amount).
			SetDueDate(n.DueDate))
	}
	created, err := s.db.PromissoryNote.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create notes: %w", err)
	}

	if s.nc != nil {
		subject := fmt.Sprintf("xear.promissory.created.%s", assignmentID.String())
		_ = s.nc.Publish(subject, []byte(assignmentID.String()))
	}
	return created, nil
}

func (s *paymentService) ListNotes(ctx context.Context, branchID, assignmentID uuid.UUID) ([]*repo.PromissoryNote, error) {
	if _, err := s.assignSvc.GetByID(ctx, branchID, assignmentID); err != nil {
		return nil, err
	}
	return s.db.PromissoryNote.Query().
		Where(entpromissory.AssignmentID(assignmentID)).
		Order(entpromissory.ByDueDate(sql.OrderAsc())).
		All(ctx)
}

func (s *paymentService) noteByID(ctx context.Context, branchID, noteID uuid.UUID) (*repo.PromissoryNote, error) {
	n, err := s.db.PromissoryNote.Query().
		Where(entpromissory.ID(noteID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("get note: %w", err)
	}
	if _, err := s.assignSvc.GetByID(ctx, branchID, n.AssignmentID); err != nil {
		return nil, ErrNoteNotFound
	}
	return n, nil
}

func (s *paymentService) MarkNotePaid(ctx context.Context, branchID, noteID uuid.UUID) (*repo.PromissoryNote, error) {
	n, err := s.noteByID(ctx, branchID, noteID)
	if err != nil {
		return nil, err
	}
	if n.Status != entpromissory.StatusPending && n.Status != entpromissory.StatusOverdue {
		return nil, ErrNoteNotPending
	}
	return s.db.PromissoryNote.UpdateOne(n).
		SetStatus(entpromissory.StatusPaid).
		SetPaidAt(time.Now()).
		Save(ctx)
}

func (s *paymentService) CancelNote(ctx context.Context, branchID, noteID uuid.UUID) (*repo.PromissoryNote, error) {
	n, err := s.noteByID(ctx, branchID, noteID)
	if err != nil {
		return nil, err
	}
	if n.Status != entpromissory.StatusPending && n.Status != entpromissory.StatusOverdue {
		return nil, ErrNoteNotPending
	}
	return s.db.PromissoryNote.UpdateOne(n).
		SetStatus(entpromissory.StatusCancelled).
		Save(ctx)
}

// MarkOverdueNotes flips pending notes past their due date to overdue.
// Called from the maintenance worker.
func (s *paymentService) MarkOverdueNotes(ctx context.Context, now time.Time) (int, error) {
	return s.db.PromissoryNote.Update().
		Where(entpromissory.StatusEQ(entpromissory.StatusPending), entpromissory.DueDateLT(now)).
		SetStatus(entpromissory.StatusOverdue).
		Save(ctx)
}
