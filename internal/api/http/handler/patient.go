package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/omrozmn/x-ear-sub003/internal/api/http/middleware"
	"github.com/omrozmn/x-ear-sub003/internal/service/patient"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func branchIDFromLocals(c fiber.Ctx) (uuid.UUID, bool) {
	s, hasKey := c.Locals(middleware.LocalsBranchID).(string)
	if !hasKey || s == "" {
		return uuid.UUID{}, false
	}
	id, err := uuid.Parse(s)
	return id, err == nil
}

func userIDFromLocals(c fiber.Ctx) (uuid.UUID, bool) {
	s, hasKey := c.Locals(middleware.LocalsUserID).(string)
	if !hasKey || s == "" {
		return uuid.UUID{}, false
	}
	id, err := uuid.Parse(s)
	return id, err == nil
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrPatientAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, patient.ErrNoteNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrInvalidPhone):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// ---------------------------------------------------------------------------
// Patient CRUD
// ---------------------------------------------------------------------------

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	var q struct {
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
		Status  string `query:"status"`
		Tag     string `query:"tag"`
		Query   string `query:"q"`
		Sort    string `query:"sort"`
		Order   string `query:"order"`
	}
	_ = c.Bind().Query(&q)

	req := patient.ListPatientsRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
		Query:   q.Query,
		Sort:    q.Sort,
		Order:   q.Order,
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.Tag != "" {
		req.Tag = &q.Tag
	}

	result, err := h.svc.List(c.Context(), branchID, req)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, fiber.Map{
		"patients":    result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	var body struct {
		FirstName string     `json:"first_name"`
		LastName  string     `json:"last_name"`
		Phone     string     `json:"phone"`
		Email     *string    `json:"email"`
		TaxID     *string    `json:"tax_id"`
		BirthDate *time.Time `json:"birth_date"`
		Address   *string    `json:"address"`
		SGKStatus *string    `json:"sgk_status"`
		Tags      []string   `json:"tags"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.FirstName == "" || body.Phone == "" {
		return badRequest(c, "first_name and phone are required")
	}

	p, err := h.svc.Create(c.Context(), branchID, patient.CreatePatientRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
		Email:     body.Email,
		TaxID:     body.TaxID,
		BirthDate: body.BirthDate,
		Address:   body.Address,
		SGKStatus: body.SGKStatus,
		Tags:      body.Tags,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return created(c, p)
}

// GET /patients/:id
func (h *PatientHandler) Get(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.GetByID(c.Context(), branchID, patientID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

// PATCH /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		FirstName *string    `json:"first_name"`
		LastName  *string    `json:"last_name"`
		Phone     *string    `json:"phone"`
		Email     *string    `json:"email"`
		TaxID     *string    `json:"tax_id"`
		BirthDate *time.Time `json:"birth_date"`
		Address   *string    `json:"address"`
		Status    *string    `json:"status"`
		SGKStatus *string    `json:"sgk_status"`
		Tags      []string   `json:"tags"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Update(c.Context(), branchID, patientID, patient.UpdatePatientRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
		Email:     body.Email,
		TaxID:     body.TaxID,
		BirthDate: body.BirthDate,
		Address:   body.Address,
		Status:    body.Status,
		SGKStatus: body.SGKStatus,
		Tags:      body.Tags,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

// DELETE /patients/:id
func (h *PatientHandler) Delete(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.svc.Delete(c.Context(), branchID, patientID); err != nil {
		return mapPatientError(c, err)
	}

	return noContent(c)
}

// ---------------------------------------------------------------------------
// Notes
// ---------------------------------------------------------------------------

// GET /patients/:id/notes
func (h *PatientHandler) ListNotes(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	notes, err := h.svc.ListNotes(c.Context(), branchID, patientID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, notes)
}

// POST /patients/:id/notes
func (h *PatientHandler) CreateNote(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		Content string `json:"content"`
		Pinned  bool   `json:"pinned"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Content == "" {
		return badRequest(c, "content is required")
	}

	var authorID *uuid.UUID
	if id, hasUser := userIDFromLocals(c); hasUser {
		authorID = &id
	}

	n, err := h.svc.CreateNote(c.Context(), branchID, patientID, authorID, patient.CreateNoteRequest{
		Content: body.Content,
		Pinned:  body.Pinned,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return created(c, n)
}

// DELETE /patients/:id/notes/:nid
func (h *PatientHandler) DeleteNote(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	noteID, err := uuid.Parse(c.Params("nid"))
	if err != nil {
		return badRequest(c, "invalid note id")
	}

	if err := h.svc.DeleteNote(c.Context(), branchID, patientID, noteID); err != nil {
		return mapPatientError(c, err)
	}

	return noContent(c)
}

// ---------------------------------------------------------------------------
// Timeline
// ---------------------------------------------------------------------------

// GET /patients/:id/timeline
func (h *PatientHandler) Timeline(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var q struct {
		Limit int `query:"limit"`
	}
	_ = c.Bind().Query(&q)

	events, err := h.svc.Timeline(c.Context(), branchID, patientID, q.Limit)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, events)
}
