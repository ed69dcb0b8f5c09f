package app

import (
	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/omrozmn/x-ear-sub003/config"
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
	"github.com/omrozmn/x-ear-sub003/pkg/crypto"
	"github.com/omrozmn/x-ear-sub003/pkg/email"
	pasetotoken "github.com/omrozmn/x-ear-sub003/pkg/paseto"
	s3pkg "github.com/omrozmn/x-ear-sub003/pkg/s3"
	"github.com/omrozmn/x-ear-sub003/pkg/sms"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideUserService,
		ProvideSettingsService,
		ProvidePatientService,
		ProvideInventoryService,
		ProvideAssignmentService,
		ProvidePaymentService,
		ProvideDocumentService,
		ProvideAppointmentService,
		ProvidePartyService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	smsCli *sms.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) (auth.Service, error) {
	return auth.New(db, rdb, smsCli, paseto, cfg)
}

func ProvideUserService(db *repo.Client, emailClient *email.Client, cfg *config.Config, authz authorize.IAuthorization) user.Service {
	return user.New(db, emailClient, cfg, authz, slog.Default())
}

func ProvideSettingsService(db *repo.Client) settings.Service {
	return settings.New(db)
}

func ProvidePatientService(db *repo.Client, cfg *config.Config) (patient.Service, error) {
	key, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, err
	}
	return patient.New(db, key), nil
}

func ProvideInventoryService(db *repo.Client) inventory.Service {
	return inventory.New(db)
}

func ProvideAssignmentService(db *repo.Client, invSvc inventory.Service, setSvc settings.Service, nc *nats.Conn) assignment.Service {
	return assignment.New(db, invSvc, setSvc, nc)
}

func ProvidePaymentService(db *repo.Client, assignSvc assignment.Service, nc *nats.Conn) payment.Service {
	return payment.New(db, assignSvc, nc)
}

func ProvideDocumentService(db *repo.Client, s3 *s3pkg.Client, emailClient *email.Client) document.Service {
	return document.New(db, s3, emailClient)
}

func ProvideAppointmentService(db *repo.Client, nc *nats.Conn) appointment.Service {
	return appointment.New(db, nc)
}

func ProvidePartyService(db *repo.Client, rdb *redis.Client, nc *nats.Conn, cfg *config.Config) (party.Service, error) {
	key, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, err
	}
	return party.New(db, rdb, nc, key, slog.Default()), nil
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
