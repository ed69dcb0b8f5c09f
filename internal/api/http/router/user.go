package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/omrozmn/x-ear-sub003/internal/api/http/handler"
	"github.com/omrozmn/x-ear-sub003/pkg/authorize"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	h *handler.UserHandler,
	authRequired fiber.Handler,
	branchCtx fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	api.Get("/users/me", authRequired, h.Me)

	staff := api.Group("/staff", authRequired, branchCtx)
	staff.Get("/", requirePerm(authorize.ResourceUser, authorize.ActionList), h.List)
	staff.Post("/", requirePerm(authorize.ResourceUser, authorize.ActionCreate), h.Create)
	staff.Patch("/:id", requirePerm(authorize.ResourceUser, authorize.ActionUpdate), h.Update)
	staff.Delete("/:id", requirePerm(authorize.ResourceUser, authorize.ActionDelete), h.Deactivate)
}
