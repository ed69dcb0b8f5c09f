package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/omrozmn/x-ear-sub003/internal/api/http/handler"
	"github.com/omrozmn/x-ear-sub003/pkg/authorize"
)

func (r *Router) registerInventoryRoutes(
	api fiber.Router,
	h *handler.InventoryHandler,
	authRequired fiber.Handler,
	branchCtx fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	inv := api.Group("/inventory", authRequired, branchCtx)

	inv.Get("/", requirePerm(authorize.ResourceInventoryItem, authorize.ActionList), h.Search)
	inv.Post("/", requirePerm(authorize.ResourceInventoryItem, authorize.ActionCreate), h.Create)

	item := inv.Group("/:id")
	item.Get("/", requirePerm(authorize.ResourceInventoryItem, authorize.ActionRead), h.Get)
	item.Patch("/", requirePerm(authorize.ResourceInventoryItem, authorize.ActionUpdate), h.Update)
	item.Delete("/", requirePerm(authorize.ResourceInventoryItem, authorize.ActionDelete), h.Delete)
	item.Post("/serials", requirePerm(authorize.ResourceInventoryItem, authorize.ActionUpdate), h.AddSerials)
}
