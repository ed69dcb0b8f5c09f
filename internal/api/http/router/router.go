package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/omrozmn/x-ear-sub003/config"
	"github.com/omrozmn/x-ear-sub003/internal/api/http/handler"
	"github.com/omrozmn/x-ear-sub003/internal/api/http/middleware"
	"github.com/omrozmn/x-ear-sub003/internal/repo"
	"github.com/omrozmn/x-ear-sub003/internal/service/appointment"
	"github.com/omrozmn/x-ear-sub003/internal/service/assignment"
	"github.com/omrozmn/x-ear-sub003/internal/service/auth"
	"github.com/omrozmn/x-ear-sub003/internal/service/document"
	"github.com/omrozmn/x-ear-sub003/internal/service/inventory"
	"github.com/omrozmn/x-ear-sub003/internal/service/party"
	"github.com/omrozmn/x-ear-sub003/internal/service/patient"
	"github.com/omrozmn/x-ear-sub003/internal/service/payment"
	"github.com/omrozmn/x-ear-sub003/internal/service/settings"
	"github.com/omrozmn/x-ear-sub003/internal/service/user"
	"github.com/omrozmn/x-ear-sub003/pkg/authorize"
	pasetotoken "github.com/omrozmn/x-ear-sub003/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg            *config.Config
	Redis          *redis.Client
	Auth           authorize.IAuthorization
	DB             *repo.Client
	AuthSvc        auth.Service
	UserSvc        user.Service
	PatientSvc     patient.Service
	InventorySvc   inventory.Service
	AssignmentSvc  assignment.Service
	PaymentSvc     payment.Service
	DocumentSvc    document.Service
	AppointmentSvc appointment.Service
	PartySvc       party.Service
	SettingsSvc    settings.Service
	PasetoMgr      *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	branchCtx := middleware.BranchContext(r.p.DB)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	inventoryH := handler.NewInventoryHandler(r.p.InventorySvc)
	assignmentH := handler.NewAssignmentHandler(r.p.AssignmentSvc)
	paymentH := handler.NewPaymentHandler(r.p.PaymentSvc)
	documentH := handler.NewDocumentHandler(r.p.DocumentSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)
	partyH := handler.NewPartyHandler(r.p.PartySvc)
	settingsH := handler.NewSettingsHandler(r.p.SettingsSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired, branchCtx, requirePerm)
	r.registerPatientRoutes(api, patientH, documentH, partyH, authRequired, branchCtx, requirePerm)
	r.registerInventoryRoutes(api, inventoryH, authRequired, branchCtx, requirePerm)
	r.registerAssignmentRoutes(api, assignmentH, paymentH, authRequired, branchCtx, requirePerm)
	r.registerPaymentRoutes(api, paymentH, authRequired, branchCtx, requirePerm)
	r.registerAppointmentRoutes(api, appointmentH, authRequired, branchCtx, requirePerm)
	r.registerSettingsRoutes(api, settingsH, authRequired, branchCtx, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
