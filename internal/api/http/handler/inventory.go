package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/omrozmn/x-ear-sub003/internal/service/inventory"
)

type InventoryHandler struct {
	svc inventory.Service
}

func NewInventoryHandler(svc inventory.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

func mapInventoryError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, inventory.ErrItemNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, inventory.ErrDuplicateBarcode), errors.Is(err, inventory.ErrSerialAlreadyHeld):
		return conflict(c, err.Error())
	case errors.Is(err, inventory.ErrOutOfStock), errors.Is(err, inventory.ErrSerialNotInStock):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /inventory
func (h *InventoryHandler) Search(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	var q struct {
		Query    string `query:"q"`
		Category string `query:"category"`
		Page     int    `query:"page"`
		PerPage  int    `query:"per_page"`
		Seq      int64  `query:"seq"`
	}
	_ = c.Bind().Query(&q)

	req := inventory.SearchRequest{
		Query:   q.Query,
		Page:    q.Page,
		PerPage: q.PerPage,
		Seq:     q.Seq,
	}
	if q.Category != "" {
		req.Category = &q.Category
	}

	result, err := h.svc.Search(c.Context(), branchID, req)
	if err != nil {
		return mapInventoryError(c, err)
	}

	return ok(c, fiber.Map{
		"items":       result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
		"seq":         result.Seq,
	})
}

// POST /inventory
func (h *InventoryHandler) Create(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	var body struct {
		Brand             string   `json:"brand"`
		Model             string   `json:"model"`
		Category          string   `json:"category"`
		Ear               *string  `json:"ear"`
		Price             float64  `json:"price"`
		Barcode           *string  `json:"barcode"`
		AvailableQuantity int      `json:"available_quantity"`
		AvailableSerials  []string `json:"available_serials"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Brand == "" || body.Model == "" || body.Category == "" {
		return badRequest(c, "brand, model and category are required")
	}

	item, err := h.svc.Create(c.Context(), branchID, inventory.CreateItemRequest{
		Brand:             body.Brand,
		Model:             body.Model,
		Category:          body.Category,
		Ear:               body.Ear,
		Price:             body.Price,
		Barcode:           body.Barcode,
		AvailableQuantity: body.AvailableQuantity,
		AvailableSerials:  body.AvailableSerials,
	})
	if err != nil {
		return mapInventoryError(c, err)
	}

	return created(c, item)
}

// GET /inventory/:id
func (h *InventoryHandler) Get(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid item id")
	}

	item, err := h.svc.GetByID(c.Context(), branchID, itemID)
	if err != nil {
		return mapInventoryError(c, err)
	}

	return ok(c, item)
}

// PATCH /inventory/:id
func (h *InventoryHandler) Update(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid item id")
	}

	var body struct {
		Brand             *string  `json:"brand"`
		Model             *string  `json:"model"`
		Category          *string  `json:"category"`
		Ear               *string  `json:"ear"`
		Price             *float64 `json:"price"`
		Barcode           *string  `json:"barcode"`
		AvailableQuantity *int     `json:"available_quantity"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	item, err := h.svc.Update(c.Context(), branchID, itemID, inventory.UpdateItemRequest{
		Brand:             body.Brand,
		Model:             body.Model,
		Category:          body.Category,
		Ear:               body.Ear,
		Price:             body.Price,
		Barcode:           body.Barcode,
		AvailableQuantity: body.AvailableQuantity,
	})
	if err != nil {
		return mapInventoryError(c, err)
	}

	return ok(c, item)
}

// DELETE /inventory/:id
func (h *InventoryHandler) Delete(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid item id")
	}

	if err := h.svc.Delete(c.Context(), branchID, itemID); err != nil {
		return mapInventoryError(c, err)
	}

	return noContent(c)
}

// POST /inventory/:id/serials
func (h *InventoryHandler) AddSerials(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid item id")
	}

	var body struct {
		Serials []string `json:"serials"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(body.Serials) == 0 {
		return badRequest(c, "serials is required")
	}

	item, err := h.svc.AddSerials(c.Context(), branchID, itemID, body.Serials)
	if err != nil {
		return mapInventoryError(c, err)
	}

	return ok(c, item)
}
