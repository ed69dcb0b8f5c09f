package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/omrozmn/x-ear-sub003/internal/api/http/handler"
	"github.com/omrozmn/x-ear-sub003/pkg/authorize"
)

func (r *Router) registerSettingsRoutes(
	api fiber.Router,
	h *handler.SettingsHandler,
	authRequired fiber.Handler,
	branchCtx fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	s := api.Group("/settings", authRequired, branchCtx)

	s.Get("/sgk-schemes", requirePerm(authorize.ResourceBranchSettings, authorize.ActionRead), h.GetSGKSchemes)
	s.Put("/sgk-schemes", requirePerm(authorize.ResourceBranchSettings, authorize.ActionUpdate), h.SetSGKSchemes)

	s.Get("/:key", requirePerm(authorize.ResourceBranchSettings, authorize.ActionRead), h.Get)
	s.Put("/:key", requirePerm(authorize.ResourceBranchSettings, authorize.ActionUpdate), h.Set)
}
