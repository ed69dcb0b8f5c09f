package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/omrozmn/x-ear-sub003/internal/service/assignment"
	"github.com/omrozmn/x-ear-sub003/internal/service/inventory"
)

type AssignmentHandler struct {
	svc assignment.Service
}

func NewAssignmentHandler(svc assignment.Service) *AssignmentHandler {
	return &AssignmentHandler{svc: svc}
}

func mapAssignmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, assignment.ErrAssignmentNotFound), errors.Is(err, assignment.ErrLoanerNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, assignment.ErrInvalidEar),
		errors.Is(err, assignment.ErrInvalidDiscount),
		errors.Is(err, assignment.ErrInvalidInstallment),
		errors.Is(err, assignment.ErrInvalidPaymentMethod):
		return badRequest(c, err.Error())
	case errors.Is(err, assignment.ErrAssignmentNotActive), errors.Is(err, assignment.ErrLoanerAlreadyReturned):
		return conflict(c, err.Error())
	case errors.Is(err, inventory.ErrItemNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, inventory.ErrOutOfStock), errors.Is(err, inventory.ErrSerialNotInStock):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

type pricingBody struct {
	SGKSchemeKey     string  `json:"sgk_scheme_key"`
	DiscountType     string  `json:"discount_type"`
	DiscountValue    float64 `json:"discount_value"`
	DownPayment      float64 `json:"down_payment"`
	PaymentMethod    string  `json:"payment_method"`
	InstallmentCount int     `json:"installment_count"`
}

func (b pricingBody) toRequest() assignment.PricingRequest {
	req := assignment.PricingRequest{
		SGKSchemeKey:     b.SGKSchemeKey,
		DiscountType:     b.DiscountType,
		DiscountValue:    b.DiscountValue,
		DownPayment:      b.DownPayment,
		PaymentMethod:    b.PaymentMethod,
		InstallmentCount: b.InstallmentCount,
	}
	if req.SGKSchemeKey == "" {
		req.SGKSchemeKey = "no_coverage"
	}
	if req.DiscountType == "" {
		req.DiscountType = "none"
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "cash"
	}
	return req
}

// POST /assignments/preview
func (h *AssignmentHandler) Preview(c fiber.Ctx) error {
	var body struct {
		ListPrice float64 `json:"list_price"`
		Ear       string  `json:"ear"`
		pricingBody
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	quote, err := h.svc.Preview(c.Context(), body.ListPrice, body.Ear, body.toRequest())
	if err != nil {
		return mapAssignmentError(c, err)
	}

	return ok(c, quote)
}

// POST /patients/:id/assignments
func (h *AssignmentHandler) Create(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		InventoryItemID string  `json:"inventory_item_id"`
		SerialNumber    *string `json:"serial_number"`
		Ear             string  `json:"ear"`
		Notes           *string `json:"notes"`
		pricingBody
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	itemID, err := uuid.Parse(body.InventoryItemID)
	if err != nil {
		return badRequest(c, "invalid inventory_item_id")
	}

	a, err := h.svc.Create(c.Context(), branchID, patientID, assignment.CreateAssignmentRequest{
		InventoryItemID: itemID,
		SerialNumber:    body.SerialNumber,
		Ear:             body.Ear,
		Notes:           body.Notes,
		Pricing:         body.toRequest(),
	})
	if err != nil {
		return mapAssignmentError(c, err)
	}

	return created(c, a)
}

// GET /patients/:id/assignments
func (h *AssignmentHandler) ListByPatient(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	assignments, err := h.svc.ListByPatient(c.Context(), branchID, patientID)
	if err != nil {
		return mapAssignmentError(c, err)
	}

	return ok(c, assignments)
}

// GET /assignments/:id
func (h *AssignmentHandler) Get(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid assignment id")
	}

	a, err := h.svc.GetByID(c.Context(), branchID, assignmentID)
	if err != nil {
		return mapAssignmentError(c, err)
	}

	return ok(c, a)
}

// PATCH /assignments/:id/pricing
func (h *AssignmentHandler) UpdatePricing(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid assignment id")
	}

	var body struct {
		SGKSchemeKey     *string  `json:"sgk_scheme_key"`
		DiscountType     *string  `json:"discount_type"`
		DiscountValue    *float64 `json:"discount_value"`
		DownPayment      *float64 `json:"down_payment"`
		PaymentMethod    *string  `json:"payment_method"`
		InstallmentCount *int     `json:"installment_count"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	a, err := h.svc.UpdatePricing(c.Context(), branchID, assignmentID, assignment.UpdatePricingRequest{
		SGKSchemeKey:     body.SGKSchemeKey,
		DiscountType:     body.DiscountType,
		DiscountValue:    body.DiscountValue,
		DownPayment:      body.DownPayment,
		PaymentMethod:    body.PaymentMethod,
		InstallmentCount: body.InstallmentCount,
	})
	if err != nil {
		return mapAssignmentError(c, err)
	}

	return ok(c, a)
}

// POST /assignments/:id/replace
func (h *AssignmentHandler) Replace(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid assignment id")
	}

	var body struct {
		InventoryItemID string  `json:"inventory_item_id"`
		SerialNumber    *string `json:"serial_number"`
		Notes           *string `json:"notes"`
		pricingBody
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	itemID, err := uuid.Parse(body.InventoryItemID)
	if err != nil {
		return badRequest(c, "invalid inventory_item_id")
	}

	replacement, err := h.svc.Replace(c.Context(), branchID, assignmentID, assignment.ReplaceRequest{
		InventoryItemID: itemID,
		SerialNumber:    body.SerialNumber,
		Notes:           body.Notes,
		Pricing:         body.toRequest(),
	})
	if err != nil {
		return mapAssignmentError(c, err)
	}

	return created(c, replacement)
}

// POST /assignments/:id/return
func (h *AssignmentHandler) Return(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid assignment id")
	}

	a, err := h.svc.Return(c.Context(), branchID, assignmentID)
	if err != nil {
		return mapAssignmentError(c, err)
	}

	return ok(c, a)
}

// ---------------------------------------------------------------------------
// Loaners
// ---------------------------------------------------------------------------

// POST /patients/:id/loaners
func (h *AssignmentHandler) IssueLoaner(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		InventoryItemID string  `json:"inventory_item_id"`
		SerialNumber    *string `json:"serial_number"`
		Ear             string  `json:"ear"`
		Notes           *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	itemID, err := uuid.Parse(body.InventoryItemID)
	if err != nil {
		return badRequest(c, "invalid inventory_item_id")
	}

	l, err := h.svc.IssueLoaner(c.Context(), branchID, patientID, assignment.IssueLoanerRequest{
		InventoryItemID: itemID,
		SerialNumber:    body.SerialNumber,
		Ear:             body.Ear,
		Notes:           body.Notes,
	})
	if err != nil {
		return mapAssignmentError(c, err)
	}

	return created(c, l)
}

// GET /patients/:id/loaners
func (h *AssignmentHandler) ListLoaners(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	loaners, err := h.svc.ListLoaners(c.Context(), branchID, patientID)
	if err != nil {
		return mapAssignmentError(c, err)
	}

	return ok(c, loaners)
}

// POST /loaners/:id/return
func (h *AssignmentHandler) ReturnLoaner(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	loanerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid loaner id")
	}

	l, err := h.svc.ReturnLoaner(c.Context(), branchID, loanerID)
	if err != nil {
		return mapAssignmentError(c, err)
	}

	return ok(c, l)
}
