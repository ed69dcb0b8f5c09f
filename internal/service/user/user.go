package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/omrozmn/x-ear-sub003/config"
	"github.com/omrozmn/x-ear-sub003/internal/repo"
	entuser "github.com/omrozmn/x-ear-sub003/internal/repo/user"
	"github.com/omrozmn/x-ear-sub003/internal/tabular"
	"github.com/omrozmn/x-ear-sub003/pkg/authorize"
	"github.com/omrozmn/x-ear-sub003/pkg/email"
	"github.com/omrozmn/x-ear-sub003/pkg/util/codes"
	"github.com/omrozmn/x-ear-sub003/pkg/util/password"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateStaffRequest struct {
	FirstName string
	LastName  string
	Phone     string
	Email     *string
	Role      string
}

type UpdateStaffRequest struct {
	FirstName *string
	LastName  *string
	Email     *string
	Role      *string
	IsActive  *bool
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error)
	ListByBranch(ctx context.Context, branchID uuid.UUID) ([]*repo.User, error)
	Create(ctx context.Context, branchID uuid.UUID, req CreateStaffRequest) (*repo.User, error)
	Update(ctx context.Context, branchID, userID uuid.UUID, req UpdateStaffRequest) (*repo.User, error)
	Deactivate(ctx context.Context, branchID, userID uuid.UUID) error
}

type userService struct {
	db          *repo.Client
	emailClient *email.Client
	cfg         *config.Config
	auth        authorize.IAuthorization
	logger      *slog.Logger
}

func New(db *repo.Client, emailClient *email.Client, cfg *config.Config, auth authorize.IAuthorization, logger *slog.Logger) Service {
	return &userService{
		db:          db,
		emailClient: emailClient,
		cfg:         cfg,
		auth:        auth,
		logger:      logger,
	}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(id), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *userService) ListByBranch(ctx context.Context, branchID uuid.UUID) ([]*repo.User, error) {
	return s.db.User.Query().
		Where(entuser.BranchID(branchID), entuser.DeletedAtIsNil()).
		Order(entuser.ByLastName(sql.OrderAsc()), entuser.ByFirstName(sql.OrderAsc())).
		All(ctx)
}

func (s *userService) Create(ctx context.Context, branchID uuid.UUID, req CreateStaffRequest) (*repo.User, error) {
	role := entuser.Role(req.Role)
	switch role {
	case entuser.RoleAdmin, entuser.RoleAudiologist, entuser.RoleFrontdesk:
	default:
		return nil, ErrInvalidRole
	}

	phone, err := tabular.NormalizePhone(req.Phone)
	if err != nil {
		return nil, ErrInvalidPhone
	}

	exists, err := s.db.User.Query().
		Where(entuser.Phone(phone), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check phone: %w", err)
	}
	if exists {
		return nil, ErrPhoneAlreadyExists
	}
	if req.Email != nil && *req.Email != "" {
		exists, err := s.db.User.Query().
			Where(entuser.Email(*req.Email), entuser.DeletedAtIsNil()).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if exists {
			return nil, ErrEmailAlreadyExists
		}
	}

	tempPassword, err := codes.GenerateSecureToken(12)
	if err != nil {
		return nil, fmt.Errorf("generate password: %w", err)
	}
	hash, err := password.Hash(tempPassword)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	c := s.db.User.Create().
		SetBranchID(branchID).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetPhone(phone).
		SetPasswordHash(hash).
		SetRole(role)
	if req.Email != nil {
		c = c.SetNillableEmail(req.Email)
	}

	u, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if rbacRole, ok := authorize.StaffRoleToRBACRole[string(role)]; ok {
		if err := authorize.AssignBranchRole(ctx, s.auth, u.ID.String(), branchID.String(), rbacRole); err != nil {
			s.logger.Error("assign branch role failed",
				slog.String("user_id", u.ID.String()),
				slog.Any("error", err),
			)
		}
	}
	if err := authorize.AssignUserSelfRole(ctx, s.auth, u.ID.String()); err != nil {
		s.logger.Error("assign self role failed",
			slog.String("user_id", u.ID.String()),
			slog.Any("error", err),
		)
	}

	if s.emailClient != nil && req.Email != nil && *req.Email != "" {
		msg := email.BuildStaffWelcomeEmail(email.StaffWelcomeData{
			FirstName:    req.FirstName,
			Email:        *req.Email,
			TempPassword: tempPassword,
			LoginURL:     s.cfg.Server.Domain,
		})
		if err := s.emailClient.Send(ctx, msg); err != nil {
			s.logger.Warn("welcome email failed",
				slog.String("user_id", u.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	return u, nil
}

func (s *userService) Update(ctx context.Context, branchID, userID uuid.UUID, req UpdateStaffRequest) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.BranchID(branchID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	upd := s.db.User.UpdateOne(u)
	if req.FirstName != nil {
		upd = upd.SetFirstName(*req.FirstName)
	}
	if req.LastName != nil {
		upd = upd.SetLastName(*req.LastName)
	}
	if req.Email != nil {
		upd = upd.SetNillableEmail(req.Email)
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	if req.Role != nil && entuser.Role(*req.Role) != u.Role {
		newRole := entuser.Role(*req.Role)
		switch newRole {
		case entuser.RoleAdmin, entuser.RoleAudiologist, entuser.RoleFrontdesk:
		default:
			return nil, ErrInvalidRole
		}
		if u.Role == entuser.RoleAdmin {
			if err := s.ensureNotLastAdmin(ctx, branchID, userID); err != nil {
				return nil, err
			}
		}

		if old, ok := authorize.StaffRoleToRBACRole[string(u.Role)]; ok {
			_ = authorize.RemoveBranchRole(ctx, s.auth, userID.String(), branchID.String(), old)
		}
		if next, ok := authorize.StaffRoleToRBACRole[string(newRole)]; ok {
			if err := authorize.AssignBranchRole(ctx, s.auth, userID.String(), branchID.String(), next); err != nil {
				return nil, fmt.Errorf("assign role: %w", err)
			}
		}
		upd = upd.SetRole(newRole)
	}

	return upd.Save(ctx)
}

func (s *userService) ensureNotLastAdmin(ctx context.Context, branchID, userID uuid.UUID) error {
	admins, err := s.db.User.Query().
		Where(
			entuser.BranchID(branchID),
			entuser.RoleEQ(entuser.RoleAdmin),
			entuser.IsActive(true),
			entuser.IDNEQ(userID),
			entuser.DeletedAtIsNil(),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if admins == 0 {
		return ErrLastAdmin
	}
	return nil
}

func (s *userService) Deactivate(ctx context.Context, branchID, userID uuid.UUID) error {
	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.BranchID(branchID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user: %w", err)
	}
	if u.Role == entuser.RoleAdmin {
		if err := s.ensureNotLastAdmin(ctx, branchID, userID); err != nil {
			return err
		}
	}

	_, err = s.db.User.UpdateOne(u).
		SetIsActive(false).
		SetDeletedAt(time.Now()).
		Save(ctx)
	return err
}
