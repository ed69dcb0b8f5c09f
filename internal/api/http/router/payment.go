package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/omrozmn/x-ear-sub003/internal/api/http/handler"
	"github.com/omrozmn/x-ear-sub003/pkg/authorize"
)

func (r *Router) registerPaymentRoutes(
	api fiber.Router,
	ph *handler.PaymentHandler,
	authRequired fiber.Handler,
	branchCtx fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	api.Delete("/payments/:id", authRequired, branchCtx,
		requirePerm(authorize.ResourcePayment, authorize.ActionDelete), ph.Delete)

	notes := api.Group("/promissory-notes", authRequired, branchCtx)
	notes.Post("/:id/pay", requirePerm(authorize.ResourcePromissoryNote, authorize.ActionUpdate), ph.MarkNotePaid)
	notes.Post("/:id/cancel", requirePerm(authorize.ResourcePromissoryNote, authorize.ActionUpdate), ph.CancelNote)
}
