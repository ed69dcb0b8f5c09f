package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RolePlatformSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Branch-level policies (domain: branch:*)
	branchPolicies := []PermissionPolicy{
		// BranchAdmin: full control within the branch
		{RoleBranchAdmin, WildcardDomain, WildcardResource, ActionManage, EffectAllow},
		{RoleBranchAdmin, WildcardDomain, ResourcePatient, ActionExport, EffectAllow},
		{RoleBranchAdmin, WildcardDomain, ResourceImport, ActionExecute, EffectAllow},
		{RoleBranchAdmin, WildcardDomain, ResourceSms, ActionExecute, EffectAllow},
		{RoleBranchAdmin, WildcardDomain, ResourceRBAC, ActionGrant, EffectAllow},
		{RoleBranchAdmin, WildcardDomain, ResourceRBAC, ActionRevoke, EffectAllow},

		// Audiologist: clinical records, devices and pricing, but no staff or
		// settings management
		{RoleBranchAudiologist, WildcardDomain, ResourcePatient, ActionManage, EffectAllow},
		{RoleBranchAudiologist, WildcardDomain, ResourcePatientNote, ActionManage, EffectAllow},
		{RoleBranchAudiologist, WildcardDomain, ResourcePatientDocument, ActionManage, EffectAllow},
		{RoleBranchAudiologist, WildcardDomain, ResourceTimeline, ActionRead, EffectAllow},
		{RoleBranchAudiologist, WildcardDomain, ResourceInventoryItem, ActionManage, EffectAllow},
		{RoleBranchAudiologist, WildcardDomain, ResourceDeviceAssignment, ActionManage, EffectAllow},
		{RoleBranchAudiologist, WildcardDomain, ResourceLoanerDevice, ActionManage, EffectAllow},
		{RoleBranchAudiologist, WildcardDomain, ResourcePayment, ActionManage, EffectAllow},
		{RoleBranchAudiologist, WildcardDomain, ResourcePromissoryNote, ActionManage, EffectAllow},
		{RoleBranchAudiologist, WildcardDomain, ResourceAppointment, ActionManage, EffectAllow},

		// Frontdesk: patients, appointments and payments entry, read-only on
		// devices and pricing
		{RoleBranchFrontdesk, WildcardDomain, ResourcePatient, ActionCreate, EffectAllow},
		{RoleBranchFrontdesk, WildcardDomain, ResourcePatient, ActionRead, EffectAllow},
		{RoleBranchFrontdesk, WildcardDomain, ResourcePatient, ActionUpdate, EffectAllow},
		{RoleBranchFrontdesk, WildcardDomain, ResourcePatient, ActionList, EffectAllow},
		{RoleBranchFrontdesk, WildcardDomain, ResourcePatientNote, ActionManage, EffectAllow},
		{RoleBranchFrontdesk, WildcardDomain, ResourcePatientDocument, ActionRead, EffectAllow},
		{RoleBranchFrontdesk, WildcardDomain, ResourcePatientDocument, ActionList, EffectAllow},
		{RoleBranchFrontdesk, WildcardDomain, ResourceTimeline, ActionRead, EffectAllow},
		{RoleBranchFrontdesk, WildcardDomain, ResourceInventoryItem, ActionRead, EffectAllow},
		{RoleBranchFrontdesk, WildcardDomain, ResourceInventoryItem, ActionList, EffectAllow},
		{RoleBranchFrontdesk, WildcardDomain, ResourceDeviceAssignment, ActionRead, EffectAllow},
		{RoleBranchFrontdesk, WildcardDomain, ResourceDeviceAssignment, ActionList, EffectAllow},
		{RoleBranchFrontdesk, WildcardDomain, ResourcePayment, ActionCreate, EffectAllow},
		{RoleBranchFrontdesk, WildcardDomain, ResourcePayment, ActionRead, EffectAllow},
		{RoleBranchFrontdesk, WildcardDomain, ResourcePayment, ActionList, EffectAllow},
		{RoleBranchFrontdesk, WildcardDomain, ResourceAppointment, ActionManage, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: control over own sessions and credentials
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceRefreshToken, ActionManage, EffectAllow},
	}

	allPolicies := append(append(sysPolicies, branchPolicies...), userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignBranchRole assigns a branch role to a user for a specific branch.
// Valid roles: RoleBranchAdmin, RoleBranchAudiologist, RoleBranchFrontdesk
func AssignBranchRole(ctx context.Context, auth IAuthorization, userID, branchID string, role Role) error {
	switch role {
	case RoleBranchAdmin, RoleBranchAudiologist, RoleBranchFrontdesk:
		// valid branch roles
	default:
		return ErrInvalidArgs
	}

	domain := BranchDomain(branchID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// RemoveBranchRole removes a branch role from a user for a specific branch.
func RemoveBranchRole(ctx context.Context, auth IAuthorization, userID, branchID string, role Role) error {
	domain := BranchDomain(branchID)
	subject := GroupSubject(userID)

	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// GetBranchRoles returns all roles a user has in a specific branch.
func GetBranchRoles(ctx context.Context, auth IAuthorization, userID, branchID string) ([]Role, error) {
	domain := BranchDomain(branchID)
	subject := GroupSubject(userID)

	return auth.GetRolesForUserInDomain(ctx, subject, domain)
}
