package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage  Action = "manage"  // CRUD + list
	ActionExecute Action = "execute" // run, trigger, start, stop, etc.

	// Data actions
	ActionExport Action = "export"
	ActionImport Action = "import"

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionExecute: {},
	ActionExport: {}, ActionImport: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser         Resource = "user"
	ResourceAuthSession  Resource = "auth_session"
	ResourceRefreshToken Resource = "refresh_token"
	ResourceOTP          Resource = "otp"

	// Branch (tenant management)
	ResourceBranch         Resource = "branch"
	ResourceBranchSettings Resource = "branch_settings"

	// Patient records
	ResourcePatient         Resource = "patient"
	ResourcePatientNote     Resource = "patient_note"
	ResourcePatientDocument Resource = "patient_document"
	ResourceTimeline        Resource = "timeline"

	// Devices
	ResourceInventoryItem    Resource = "inventory_item"
	ResourceDeviceAssignment Resource = "device_assignment"
	ResourceLoanerDevice     Resource = "loaner_device"

	// Financial
	ResourcePayment        Resource = "payment"
	ResourcePromissoryNote Resource = "promissory_note"

	// Scheduling
	ResourceAppointment Resource = "appointment"

	// Bulk operations
	ResourceImport Resource = "import"
	ResourceSms    Resource = "sms"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {}, ResourceRefreshToken: {}, ResourceOTP: {},
	ResourceBranch: {}, ResourceBranchSettings: {},
	ResourcePatient: {}, ResourcePatientNote: {}, ResourcePatientDocument: {}, ResourceTimeline: {},
	ResourceInventoryItem: {}, ResourceDeviceAssignment: {}, ResourceLoanerDevice: {},
	ResourcePayment: {}, ResourcePromissoryNote: {},
	ResourceAppointment: {},
	ResourceImport:      {}, ResourceSms: {},
	ResourceSystem: {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RolePlatformSuperAdmin Role = "role:platform:superadmin"

	// Branch roles (domain = branch:<uuid>)
	RoleBranchAdmin       Role = "role:branch:admin"
	RoleBranchAudiologist Role = "role:branch:audiologist"
	RoleBranchFrontdesk   Role = "role:branch:frontdesk"

	// Private user scope (domain = user:<uuid>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RolePlatformSuperAdmin: {},
	RoleBranchAdmin:        {},
	RoleBranchAudiologist:  {},
	RoleBranchFrontdesk:    {},
	RoleUserSelf:           {},
}

// Turkish display names
var RoleDisplayNamesTR = map[Role]string{
	RolePlatformSuperAdmin: "Platform Yöneticisi",
	RoleBranchAdmin:        "Şube Yöneticisi",
	RoleBranchAudiologist:  "Odyolog",
	RoleBranchFrontdesk:    "Ön Büro",
	RoleUserSelf:           "Kullanıcının Kendisi",
}

// Staff role strings (stored in the users.role column)
const (
	StaffRoleAdmin       = "admin"
	StaffRoleAudiologist = "audiologist"
	StaffRoleFrontdesk   = "frontdesk"
)

// StaffRoleToRBACRole maps DB role values to Casbin roles
var StaffRoleToRBACRole = map[string]Role{
	StaffRoleAdmin:       RoleBranchAdmin,
	StaffRoleAudiologist: RoleBranchAudiologist,
	StaffRoleFrontdesk:   RoleBranchFrontdesk,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixBranch Domain = "branch:"
	DomainPrefixUser   Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// Domain builders (typed, safe)
func BranchDomain(branchID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixBranch, branchID))
}

func UserDomain(userID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == WildcardDomain {
		return true
	}

	s := string(d)
	switch {
	case len(s) > len(DomainPrefixBranch) && s[:len(DomainPrefixBranch)] == string(DomainPrefixBranch):
		return reUUID.MatchString(s[len(DomainPrefixBranch):])
	case len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser):
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	default:
		return false
	}
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
