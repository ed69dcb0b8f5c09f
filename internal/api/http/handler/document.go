package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/omrozmn/x-ear-sub003/internal/service/document"
)

type DocumentHandler struct {
	svc document.Service
}

func NewDocumentHandler(svc document.Service) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

func mapDocumentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, document.ErrDocumentNotFound), errors.Is(err, document.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, document.ErrInvalidKind), errors.Is(err, document.ErrNoPatientEmail):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /patients/:id/documents (multipart)
func (h *DocumentHandler) Upload(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}

	result, err := h.svc.Upload(c.Context(), branchID, fh)
	if err != nil {
		return mapDocumentError(c, err)
	}

	var uploadedBy *uuid.UUID
	if id, hasUser := userIDFromLocals(c); hasUser {
		uploadedBy = &id
	}

	kind := c.FormValue("kind")
	var description *string
	if d := c.FormValue("description"); d != "" {
		description = &d
	}

	doc, err := h.svc.Create(c.Context(), branchID, patientID, uploadedBy, document.CreateDocumentRequest{
		Key:         result.Key,
		FileName:    result.FileName,
		Size:        result.Size,
		MimeType:    result.MimeType,
		Kind:        kind,
		Description: description,
	})
	if err != nil {
		return mapDocumentError(c, err)
	}

	return created(c, doc)
}

// GET /patients/:id/documents
func (h *DocumentHandler) List(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var kind *string
	if k := c.Query("kind"); k != "" {
		kind = &k
	}

	docs, err := h.svc.List(c.Context(), branchID, patientID, kind)
	if err != nil {
		return mapDocumentError(c, err)
	}

	return ok(c, docs)
}

// GET /patients/:id/documents/:did/url
func (h *DocumentHandler) DownloadURL(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	documentID, err := uuid.Parse(c.Params("did"))
	if err != nil {
		return badRequest(c, "invalid document id")
	}

	url, err := h.svc.DownloadURL(c.Context(), branchID, patientID, documentID)
	if err != nil {
		return mapDocumentError(c, err)
	}

	return ok(c, fiber.Map{"url": url})
}

// POST /patients/:id/documents/:did/share
func (h *DocumentHandler) Share(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	documentID, err := uuid.Parse(c.Params("did"))
	if err != nil {
		return badRequest(c, "invalid document id")
	}

	if err := h.svc.Share(c.Context(), branchID, patientID, documentID); err != nil {
		return mapDocumentError(c, err)
	}

	return noContent(c)
}

// DELETE /patients/:id/documents/:did
func (h *DocumentHandler) Delete(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	documentID, err := uuid.Parse(c.Params("did"))
	if err != nil {
		return badRequest(c, "invalid document id")
	}

	if err := h.svc.Delete(c.Context(), branchID, patientID, documentID); err != nil {
		return mapDocumentError(c, err)
	}

	return noContent(c)
}
