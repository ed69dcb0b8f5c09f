package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/omrozmn/x-ear-sub003/internal/api/http/handler"
	"github.com/omrozmn/x-ear-sub003/pkg/authorize"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	ph *handler.PatientHandler,
	dh *handler.DocumentHandler,
	bh *handler.PartyHandler,
	authRequired fiber.Handler,
	branchCtx fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	patients := api.Group("/patients", authRequired, branchCtx)

	// Bulk operations come before /:id so the literal segments win.
	patients.Post("/import", requirePerm(authorize.ResourceImport, authorize.ActionExecute), bh.StartImport)
	patients.Get("/import/:id", requirePerm(authorize.ResourceImport, authorize.ActionExecute), bh.GetImport)
	patients.Put("/import/:id/mapping", requirePerm(authorize.ResourceImport, authorize.ActionExecute), bh.OverrideMapping)
	patients.Post("/import/:id/advance", requirePerm(authorize.ResourceImport, authorize.ActionExecute), bh.Advance)
	patients.Post("/import/:id/back", requirePerm(authorize.ResourceImport, authorize.ActionExecute), bh.Back)
	patients.Post("/import/:id/commit", requirePerm(authorize.ResourceImport, authorize.ActionExecute), bh.Commit)
	patients.Get("/export", requirePerm(authorize.ResourcePatient, authorize.ActionExport), bh.ExportCSV)
	patients.Post("/bulk-tag", requirePerm(authorize.ResourcePatient, authorize.ActionUpdate), bh.BulkTag)
	patients.Post("/bulk-sms", requirePerm(authorize.ResourceSms, authorize.ActionExecute), bh.BulkSMS)

	// Patient CRUD
	patients.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionList), ph.List)
	patients.Post("/", requirePerm(authorize.ResourcePatient, authorize.ActionCreate), ph.Create)

	p := patients.Group("/:id")
	p.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionRead), ph.Get)
	p.Patch("/", requirePerm(authorize.ResourcePatient, authorize.ActionUpdate), ph.Update)
	p.Delete("/", requirePerm(authorize.ResourcePatient, authorize.ActionDelete), ph.Delete)

	// Notes
	p.Get("/notes", requirePerm(authorize.ResourcePatientNote, authorize.ActionList), ph.ListNotes)
	p.Post("/notes", requirePerm(authorize.ResourcePatientNote, authorize.ActionCreate), ph.CreateNote)
	p.Delete("/notes/:nid", requirePerm(authorize.ResourcePatientNote, authorize.ActionDelete), ph.DeleteNote)

	// Timeline
	p.Get("/timeline", requirePerm(authorize.ResourceTimeline, authorize.ActionRead), ph.Timeline)

	// Documents
	p.Get("/documents", requirePerm(authorize.ResourcePatientDocument, authorize.ActionList), dh.List)
	p.Post("/documents", requirePerm(authorize.ResourcePatientDocument, authorize.ActionCreate), dh.Upload)
	p.Get("/documents/:did/url", requirePerm(authorize.ResourcePatientDocument, authorize.ActionRead), dh.DownloadURL)
	p.Post("/documents/:did/share", requirePerm(authorize.ResourcePatientDocument, authorize.ActionRead), dh.Share)
	p.Delete("/documents/:did", requirePerm(authorize.ResourcePatientDocument, authorize.ActionDelete), dh.Delete)
}
