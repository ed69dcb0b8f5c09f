package authorize

import (
	"testing"
)

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name     string
		domain   Domain
		expected bool
	}{
		// Valid domains
		{"sys domain", DomainSys, true},
		{"wildcard domain", WildcardDomain, true},
		{"valid branch domain", Domain("branch:550e8400-e29b-41d4-a716-446655440000"), true},
		{"valid user domain", Domain("user:550e8400-e29b-41d4-a716-446655440000"), true},

		// Invalid domains
		{"empty domain", Domain(""), false},
		{"random string", Domain("random"), false},
		{"branch without uuid", Domain("branch:"), false},
		{"branch with invalid uuid", Domain("branch:invalid-uuid"), false},
		{"user without uuid", Domain("user:"), false},
		{"user with invalid uuid", Domain("user:not-a-uuid"), false},
		{"unknown prefix", Domain("unknown:550e8400-e29b-41d4-a716-446655440000"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidDomain(tt.domain)
			if result != tt.expected {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, result, tt.expected)
			}
		})
	}
}

func TestBranchDomain(t *testing.T) {
	branchID := "550e8400-e29b-41d4-a716-446655440000"
	expected := Domain("branch:550e8400-e29b-41d4-a716-446655440000")

	result := BranchDomain(branchID)
	if result != expected {
		t.Errorf("BranchDomain(%q) = %q, want %q", branchID, result, expected)
	}
}

func TestUserDomain(t *testing.T) {
	userID := "550e8400-e29b-41d4-a716-446655440000"
	expected := Domain("user:550e8400-e29b-41d4-a716-446655440000")

	result := UserDomain(userID)
	if result != expected {
		t.Errorf("UserDomain(%q) = %q, want %q", userID, result, expected)
	}
}

func TestKnownActions(t *testing.T) {
	// Verify all expected actions are in the known map
	expectedActions := []Action{
		ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList,
		ActionManage, ActionExecute, ActionExport, ActionImport,
		ActionGrant, ActionRevoke,
	}

	for _, action := range expectedActions {
		if _, ok := KnownActions[action]; !ok {
			t.Errorf("Expected action %q to be in KnownActions", action)
		}
	}
}

func TestKnownResources(t *testing.T) {
	// Verify all expected resources are in the known map
	expectedResources := []Resource{
		ResourceUser, ResourceAuthSession, ResourceRefreshToken, ResourceOTP,
		ResourceBranch, ResourceBranchSettings,
		ResourcePatient, ResourcePatientNote, ResourcePatientDocument, ResourceTimeline,
		ResourceInventoryItem, ResourceDeviceAssignment, ResourceLoanerDevice,
		ResourcePayment, ResourcePromissoryNote,
		ResourceAppointment, ResourceImport, ResourceSms,
		ResourceSystem, ResourceAudit, ResourceRBAC,
	}

	for _, resource := range expectedResources {
		if _, ok := KnownResources[resource]; !ok {
			t.Errorf("Expected resource %q to be in KnownResources", resource)
		}
	}
}

func TestKnownRoles(t *testing.T) {
	// Verify all expected roles are in the known map
	expectedRoles := []Role{
		RolePlatformSuperAdmin,
		RoleBranchAdmin, RoleBranchAudiologist, RoleBranchFrontdesk,
		RoleUserSelf,
	}

	for _, role := range expectedRoles {
		if _, ok := KnownRoles[role]; !ok {
			t.Errorf("Expected role %q to be in KnownRoles", role)
		}
	}
}

func TestRoleDisplayNamesTR(t *testing.T) {
	// Verify all roles have Turkish display names
	expectedRoles := []Role{
		RolePlatformSuperAdmin,
		RoleBranchAdmin, RoleBranchAudiologist, RoleBranchFrontdesk,
		RoleUserSelf,
	}

	for _, role := range expectedRoles {
		if name, ok := RoleDisplayNamesTR[role]; !ok || name == "" {
			t.Errorf("Expected role %q to have a Turkish display name", role)
		}
	}
}

func TestStaffRoleToRBACRole(t *testing.T) {
	tests := []struct {
		staffRole string
		expected  Role
	}{
		{StaffRoleAdmin, RoleBranchAdmin},
		{StaffRoleAudiologist, RoleBranchAudiologist},
		{StaffRoleFrontdesk, RoleBranchFrontdesk},
	}

	for _, tt := range tests {
		got, ok := StaffRoleToRBACRole[tt.staffRole]
		if !ok {
			t.Fatalf("StaffRoleToRBACRole missing %q", tt.staffRole)
		}
		if got != tt.expected {
			t.Errorf("StaffRoleToRBACRole[%q] = %q, want %q", tt.staffRole, got, tt.expected)
		}
	}
}
