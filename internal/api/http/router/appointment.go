package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/omrozmn/x-ear-sub003/internal/api/http/handler"
	"github.com/omrozmn/x-ear-sub003/pkg/authorize"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
	branchCtx fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired, branchCtx)

	appts.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionList), ah.List)
	appts.Post("/", requirePerm(authorize.ResourceAppointment, authorize.ActionCreate), ah.Book)

	a := appts.Group("/:id")
	a.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), ah.Get)
	a.Put("/reschedule", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.Reschedule)
	a.Post("/cancel", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.Cancel)
	a.Post("/complete", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.Complete)
	a.Post("/no-show", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.MarkNoShow)
}
