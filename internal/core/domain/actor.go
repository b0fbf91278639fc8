package domain

import "github.com/google/uuid"

// GlobalRole is the platform-wide role resolved by the auth layer.
type GlobalRole string

const (
	GlobalRoleAdmin GlobalRole = "ADMIN"
	GlobalRoleUser  GlobalRole = "USER"
)

// OrgRole is the actor's role inside the organization being acted on.
type OrgRole string

const (
	OrgRoleOwner   OrgRole = "OWNER"
	OrgRoleManager OrgRole = "MANAGER"
	OrgRoleStaff   OrgRole = "STAFF"
)

// Actor describes the caller as resolved by the auth and org-context
// layers. OrganizationID and OrgRole are empty for callers without a
// membership in the target organization.
type Actor struct {
	UserID         uuid.UUID
	OrganizationID uuid.UUID
	GlobalRole     GlobalRole
	OrgRole        OrgRole
}

// IsAdmin reports whether the actor bypasses tenant checks.
func (a Actor) IsAdmin() bool {
	return a.GlobalRole == GlobalRoleAdmin
}

// CanManageCampaigns is the campaign management policy: global admins
// always pass, otherwise the org role must be OWNER or MANAGER.
func CanManageCampaigns(global GlobalRole, org OrgRole) bool {
	if global == GlobalRoleAdmin {
		return true
	}
	return org == OrgRoleOwner || org == OrgRoleManager
}

// AuthorizeCampaignManagement checks that actor may manage campaigns of orgID.
func AuthorizeCampaignManagement(actor Actor, orgID uuid.UUID) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.OrganizationID != orgID || !CanManageCampaigns(actor.GlobalRole, actor.OrgRole) {
		return &PermissionError{Action: "manage campaigns"}
	}
	return nil
}
