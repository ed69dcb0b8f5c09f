package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/omrozmn/x-ear-sub003/internal/service/user"
	pasetotoken "github.com/omrozmn/x-ear-sub003/pkg/paseto"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrInvalidPhone), errors.Is(err, user.ErrInvalidRole):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrPhoneAlreadyExists), errors.Is(err, user.ErrEmailAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, user.ErrLastAdmin):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/v1/me
func (h *UserHandler) Me(c fiber.Ctx) error {
	claims, okClaims := pasetotoken.ClaimsFromFiber(c)
	if !okClaims {
		return unauthorized(c)
	}

	u, err := h.svc.GetByID(c.Context(), claims.UserID)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}

// GET /api/v1/staff
func (h *UserHandler) List(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	users, err := h.svc.ListByBranch(c.Context(), branchID)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, users)
}

// POST /api/v1/staff
func (h *UserHandler) Create(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	var body struct {
		FirstName string  `json:"first_name"`
		LastName  string  `json:"last_name"`
		Phone     string  `json:"phone"`
		Email     *string `json:"email"`
		Role      string  `json:"role"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Phone == "" || body.FirstName == "" {
		return badRequest(c, "first_name and phone are required")
	}

	u, err := h.svc.Create(c.Context(), branchID, user.CreateStaffRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
		Email:     body.Email,
		Role:      body.Role,
	})
	if err != nil {
		return mapUserError(c, err)
	}
	return created(c, u)
}

// PATCH /api/v1/staff/:id
func (h *UserHandler) Update(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Email     *string `json:"email"`
		Role      *string `json:"role"`
		IsActive  *bool   `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.Update(c.Context(), branchID, userID, user.UpdateStaffRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Role:      body.Role,
		IsActive:  body.IsActive,
	})
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}

// DELETE /api/v1/staff/:id
func (h *UserHandler) Deactivate(c fiber.Ctx) error {
	branchID, valid := branchIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing branch context")
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	if err := h.svc.Deactivate(c.Context(), branchID, userID); err != nil {
		return mapUserError(c, err)
	}
	return noContent(c)
}
