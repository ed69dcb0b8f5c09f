package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/omrozmn/x-ear-sub003/internal/pricing"
	"github.com/omrozmn/x-ear-sub003/internal/service/settings"
)

type SettingsHandler struct {
	svc settings.Service
}

func NewSettingsHandler(svc settings.Service) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// GET /settings/sgk-schemes
func (h *SettingsHandler) GetSGKSchemes(c fiber.Ctx) error {
	result, err := h.svc.SGKSchemes(c.Context())
	if err != nil {
		return internalError(c)
	}

	return ok(c, result)
}

// PUT /settings/sgk-schemes
func (h *SettingsHandler) SetSGKSchemes(c fiber.Ctx) error {
	var table pricing.SchemeTable
	if err := c.Bind().JSON(&table); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(table) == 0 {
		return badRequest(c, "scheme table is empty")
	}

	if err := h.svc.SetSGKSchemes(c.Context(), table); err != nil {
		return internalError(c)
	}

	return noContent(c)
}

// GET /settings/:key
func (h *SettingsHandler) Get(c fiber.Ctx) error {
	value, err := h.svc.Get(c.Context(), c.Params("key"))
	if err != nil {
		if errors.Is(err, settings.ErrSettingNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	return ok(c, value)
}

// PUT /settings/:key
func (h *SettingsHandler) Set(c fiber.Ctx) error {
	var value map[string]any
	if err := c.Bind().JSON(&value); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.Set(c.Context(), c.Params("key"), value); err != nil {
		return internalError(c)
	}

	return noContent(c)
}
