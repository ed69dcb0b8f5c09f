package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/omrozmn/x-ear-sub003/internal/repo"
	entbranch "github.com/omrozmn/x-ear-sub003/internal/repo/branch"
	entuser "github.com/omrozmn/x-ear-sub003/internal/repo/user"
	pasetotoken "github.com/omrozmn/x-ear-sub003/pkg/paseto"
)

const (
	LocalsUserRole = "user_role"
	LocalsUserID   = "user_id"
)

// BranchContext reads the branch ID from the X-Branch-ID header, validates
// the branch is active and that the authenticated user is active staff of
// that branch, and stores branch_id, user_id and user_role in Locals for
// downstream handlers and RBAC.
func BranchContext(db *repo.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		idStr := c.Get("X-Branch-ID")
		if idStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "X-Branch-ID header is required")
		}

		branchID, err := uuid.Parse(idStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid X-Branch-ID value")
		}

		// Verify branch exists and is active
		exists, err := db.Branch.Query().
			Where(entbranch.ID(branchID), entbranch.IsActive(true)).
			Exist(c.Context())
		if err != nil {
			return err
		}
		if !exists {
			return fiber.ErrNotFound
		}

		// Require the authenticated user to be active staff of the branch
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		u, err := db.User.Query().
			Where(
				entuser.ID(claims.UserID),
				entuser.BranchID(branchID),
				entuser.IsActive(true),
				entuser.DeletedAtIsNil(),
			).
			Only(c.Context())
		if err != nil {
			if repo.IsNotFound(err) {
				return fiber.ErrForbidden
			}
			return err
		}

		c.Locals(LocalsBranchID, branchID.String())
		c.Locals(LocalsUserRole, string(u.Role))
		c.Locals(LocalsUserID, u.ID.String())

		return c.Next()
	}
}
