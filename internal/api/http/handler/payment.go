package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/omrozmn/x-ear-sub003/internal/service/assignment"
	"github.com/omrozmn/x-ear-sub003/internal/service/payment"
)

type PaymentHandler struct {
	svc payment.Service
}

func NewPaymentHandler(svc payment.Service) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func mapPaymentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, payment.ErrPaymentNotFound), errors.Is(err, payment.ErrNoteNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, payment.ErrInvalidAmount),
		errors.Is(err, payment.ErrInvalidMethod),
		errors.Is(err, payment.ErrInvalidInstallment):
		return badRequest(c, err.Error())
	case errors.Is(err, payment.ErrOverpayment), errors.Is(err, payment.ErrNoteNotPending):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /assignments/:id/payments
func (h *PaymentHandler) Record(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid assignment id")
	}

	var body struct {
		Amount    float64    `json:"amount"`
		Method    string     `json:"method"`
		PaidAt    *time.Time `json:"paid_at"`
		Reference *string    `json:"reference"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	var recordedBy *uuid.UUID
	if id, hasUser := userIDFromLocals(c); hasUser {
		recordedBy = &id
	}

	p, err := h.svc.Record(c.Context(), branchID, assignmentID, recordedBy, payment.RecordPaymentRequest{
		Amount:    body.Amount,
		Method:    body.Method,
		PaidAt:    body.PaidAt,
		Reference: body.Reference,
	})
	if err != nil {
		return mapPaymentError(c, err)
	}

	return created(c, p)
}

// GET /assignments/:id/payments
func (h *PaymentHandler) List(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid assignment id")
	}

	payments, err := h.svc.List(c.Context(), branchID, assignmentID)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return ok(c, payments)
}

// DELETE /payments/:id
func (h *PaymentHandler) Delete(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid payment id")
	}

	if err := h.svc.Delete(c.Context(), branchID, paymentID); err != nil {
		return mapPaymentError(c, err)
	}

	return noContent(c)
}

// GET /assignments/:id/balance
func (h *PaymentHandler) Balance(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid assignment id")
	}

	balance, err := h.svc.AssignmentBalance(c.Context(), branchID, assignmentID)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return ok(c, balance)
}

// ---------------------------------------------------------------------------
// Promissory notes
// ---------------------------------------------------------------------------

// GET /assignments/:id/notes/preview?count=12&first_due=2026-10-01
func (h *PaymentHandler) PreviewSchedule(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid assignment id")
	}

	var q struct {
		Count    int    `query:"count"`
		FirstDue string `query:"first_due"`
	}
	_ = c.Bind().Query(&q)

	firstDue := time.Now().AddDate(0, 1, 0)
	if q.FirstDue != "" {
		ts, err := time.Parse("2006-01-02", q.FirstDue)
		if err != nil {
			return badRequest(c, "invalid first_due, expected YYYY-MM-DD")
		}
		firstDue = ts
	}

	preview, err := h.svc.PreviewSchedule(c.Context(), branchID, assignmentID, q.Count, firstDue)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return ok(c, preview)
}

// POST /assignments/:id/notes
func (h *PaymentHandler) CreateNotes(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid assignment id")
	}

	var body struct {
		Notes []struct {
			Amount  float64   `json:"amount"`
			DueDate time.Time `json:"due_date"`
		} `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := payment.CreateNotesRequest{}
	for _, n := range body.Notes {
		req.Notes = append(req.Notes, payment.NoteInput{Amount: n.Amount, DueDate: n.DueDate})
	}

	notes, err := h.svc.CreateNotes(c.Context(), branchID, assignmentID, req)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return created(c, notes)
}

// GET /assignments/:id/notes
func (h *PaymentHandler) ListNotes(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid assignment id")
	}

	notes, err := h.svc.ListNotes(c.Context(), branchID, assignmentID)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return ok(c, notes)
}

// POST /promissory-notes/:id/pay
func (h *PaymentHandler) MarkNotePaid(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	noteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid note id")
	}

	n, err := h.svc.MarkNotePaid(c.Context(), branchID, noteID)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return ok(c, n)
}

// POST /promissory-notes/:id/cancel
func (h *PaymentHandler) CancelNote(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	noteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid note id")
	}

	n, err := h.svc.CancelNote(c.Context(), branchID, noteID)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return ok(c, n)
}
