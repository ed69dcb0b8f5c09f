package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/omrozmn/x-ear-sub003/internal/service/party"
)

type PartyHandler struct {
	svc party.Service
}

func NewPartyHandler(svc party.Service) *PartyHandler {
	return &PartyHandler{svc: svc}
}

func mapPartyError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, party.ErrImportNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, party.ErrUnsupportedFile),
		errors.Is(err, party.ErrEmptyMessage),
		errors.Is(err, party.ErrNothingToSend):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// ---------------------------------------------------------------------------
// Import flow
// ---------------------------------------------------------------------------

// POST /patients/import (multipart)
func (h *PartyHandler) StartImport(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}

	view, err := h.svc.StartImport(c.Context(), branchID, fh)
	if err != nil {
		return mapPartyError(c, err)
	}

	return created(c, view)
}

// GET /patients/import/:id
func (h *PartyHandler) GetImport(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	view, err := h.svc.GetImport(c.Context(), branchID, c.Params("id"))
	if err != nil {
		return mapPartyError(c, err)
	}

	return ok(c, view)
}

// PUT /patients/import/:id/mapping
func (h *PartyHandler) OverrideMapping(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	var body struct {
		Field  string `json:"field"`
		Column int    `json:"column"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Field == "" {
		return badRequest(c, "field is required")
	}

	view, err := h.svc.OverrideMapping(c.Context(), branchID, c.Params("id"), body.Field, body.Column)
	if err != nil {
		return mapPartyError(c, err)
	}

	return ok(c, view)
}

// POST /patients/import/:id/advance
func (h *PartyHandler) Advance(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	view, err := h.svc.Advance(c.Context(), branchID, c.Params("id"))
	if err != nil {
		return mapPartyError(c, err)
	}

	return ok(c, view)
}

// POST /patients/import/:id/back
func (h *PartyHandler) Back(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	view, err := h.svc.Back(c.Context(), branchID, c.Params("id"))
	if err != nil {
		return mapPartyError(c, err)
	}

	return ok(c, view)
}

// POST /patients/import/:id/commit
func (h *PartyHandler) Commit(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	result, err := h.svc.Commit(c.Context(), branchID, c.Params("id"))
	if err != nil {
		return mapPartyError(c, err)
	}

	return ok(c, result)
}

// ---------------------------------------------------------------------------
// Bulk operations
// ---------------------------------------------------------------------------

// GET /patients/export
func (h *PartyHandler) ExportCSV(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	filename := fmt.Sprintf("patients-%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.svc.ExportCSV(c.Context(), branchID, c.Response().BodyWriter()); err != nil {
		return mapPartyError(c, err)
	}

	return nil
}

// POST /patients/bulk-tag
func (h *PartyHandler) BulkTag(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	var body struct {
		Tag        string      `json:"tag"`
		Remove     bool        `json:"remove"`
		PatientIDs []uuid.UUID `json:"patient_ids"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Tag == "" {
		return badRequest(c, "tag is required")
	}
	if len(body.PatientIDs) == 0 {
		return badRequest(c, "patient_ids is required")
	}

	affected, err := h.svc.BulkTag(c.Context(), branchID, party.BulkTagRequest{
		Tag:        body.Tag,
		Remove:     body.Remove,
		PatientIDs: body.PatientIDs,
	})
	if err != nil {
		return mapPartyError(c, err)
	}

	return ok(c, fiber.Map{"affected": affected})
}

// POST /patients/bulk-sms
func (h *PartyHandler) BulkSMS(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	var body struct {
		Body       string      `json:"body"`
		Tag        *string     `json:"tag"`
		Status     *string     `json:"status"`
		PatientIDs []uuid.UUID `json:"patient_ids"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	batchID, queued, err := h.svc.BulkSMS(c.Context(), branchID, party.BulkSMSRequest{
		Body:       body.Body,
		Tag:        body.Tag,
		Status:     body.Status,
		PatientIDs: body.PatientIDs,
	})
	if err != nil {
		return mapPartyError(c, err)
	}

	return ok(c, fiber.Map{"batch_id": batchID, "queued": queued})
}
