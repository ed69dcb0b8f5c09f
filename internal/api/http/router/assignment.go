package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/omrozmn/x-ear-sub003/internal/api/http/handler"
	"github.com/omrozmn/x-ear-sub003/pkg/authorize"
)

func (r *Router) registerAssignmentRoutes(
	api fiber.Router,
	ah *handler.AssignmentHandler,
	ph *handler.PaymentHandler,
	authRequired fiber.Handler,
	branchCtx fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Pricing preview has no side effects, read permission is enough.
	api.Post("/assignments/preview", authRequired, branchCtx,
		requirePerm(authorize.ResourceDeviceAssignment, authorize.ActionRead), ah.Preview)

	patients := api.Group("/patients/:id", authRequired, branchCtx)
	patients.Get("/assignments", requirePerm(authorize.ResourceDeviceAssignment, authorize.ActionList), ah.ListByPatient)
	patients.Post("/assignments", requirePerm(authorize.ResourceDeviceAssignment, authorize.ActionCreate), ah.Create)
	patients.Post("/loaners", requirePerm(authorize.ResourceLoanerDevice, authorize.ActionCreate), ah.IssueLoaner)
	patients.Get("/loaners", requirePerm(authorize.ResourceLoanerDevice, authorize.ActionList), ah.ListLoaners)

	assignments := api.Group("/assignments", authRequired, branchCtx)
	a := assignments.Group("/:id")
	a.Get("/", requirePerm(authorize.ResourceDeviceAssignment, authorize.ActionRead), ah.Get)
	a.Patch("/pricing", requirePerm(authorize.ResourceDeviceAssignment, authorize.ActionUpdate), ah.UpdatePricing)
	a.Post("/replace", requirePerm(authorize.ResourceDeviceAssignment, authorize.ActionUpdate), ah.Replace)
	a.Post("/return", requirePerm(authorize.ResourceDeviceAssignment, authorize.ActionUpdate), ah.Return)

	// Payments scoped to an assignment
	a.Get("/payments", requirePerm(authorize.ResourcePayment, authorize.ActionList), ph.List)
	a.Post("/payments", requirePerm(authorize.ResourcePayment, authorize.ActionCreate), ph.Record)
	a.Get("/balance", requirePerm(authorize.ResourcePayment, authorize.ActionRead), ph.Balance)

	// Promissory note schedule
	a.Get("/notes/preview", requirePerm(authorize.ResourcePromissoryNote, authorize.ActionRead), ph.PreviewSchedule)
	a.Get("/notes", requirePerm(authorize.ResourcePromissoryNote, authorize.ActionList), ph.ListNotes)
	a.Post("/notes", requirePerm(authorize.ResourcePromissoryNote, authorize.ActionCreate), ph.CreateNotes)

	loaners := api.Group("/loaners", authRequired, branchCtx)
	loaners.Post("/:id/return", requirePerm(authorize.ResourceLoanerDevice, authorize.ActionUpdate), ah.ReturnLoaner)
}
