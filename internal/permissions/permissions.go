// Package permissions answers "may user X do P" by resolving the
// user's role and testing membership in its permission set. Lookups
// always hit the store so role edits take effect immediately; nothing
// is cached across requests.
package permissions

import (
	"github.com/google/uuid"

	"tabdeel-pulse/internal/apperr"
	"tabdeel-pulse/internal/models"
	"tabdeel-pulse/internal/store"
)

// Permission strings. Route gates and role definitions share these.
const (
	PermDashboardView       = "dashboard:view"
	PermFinanceView         = "finance:view"
	PermFinanceCreate       = "finance:create"
	PermFinanceApprove      = "finance:approve"
	PermFinanceDelete       = "finance:delete"
	PermJobsView            = "jobs:view"
	PermJobsCreate          = "jobs:create"
	PermJobsAssign          = "jobs:assign"
	PermJobsUpdate          = "jobs:update"
	PermMessagesView        = "messages:view"
	PermMessagesCreate      = "messages:create"
	PermMessagesMembers     = "messages:manage_participants"
	PermUsersView           = "users:view"
	PermUsersCreate         = "users:create"
	PermUsersEdit           = "users:edit"
	PermUsersDisable        = "users:disable"
	PermUsersImpersonate    = "users:impersonate"
	PermRolesView           = "roles:view"
	PermRolesManage         = "roles:manage"
	PermProjectsManage      = "projects:manage"
	PermAccountsManage      = "accounts:manage"
	PermAccountsApprove     = "accounts:approve"
	PermTasksManage         = "tasks:manage"
	PermAnnouncementsManage = "announcements:manage"
	PermAssetsView          = "assets:view"
	PermAssetsManage        = "assets:manage"
	PermAssetsMove          = "assets:move"
)

type Checker struct {
	store store.Store
}

func NewChecker(s store.Store) *Checker {
	return &Checker{store: s}
}

// HasPermission is fail-closed: an empty identity, an unknown user, or
// an unresolvable role all answer false.
func (c *Checker) HasPermission(userID, permission string) bool {
	if userID == "" {
		return false
	}
	user, err := c.store.User(userID)
	if err != nil {
		return false
	}
	role, err := c.store.Role(user.RoleID)
	if err != nil {
		return false
	}
	for _, p := range role.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

func (c *Checker) Roles() ([]models.Role, error) {
	return c.store.Roles()
}

// SaveRole persists a role definition. System default roles are
// immutable through this path.
func (c *Checker) SaveRole(role *models.Role) (*models.Role, error) {
	if role.ID == "" {
		role.ID = uuid.NewString()
	} else if existing, err := c.store.Role(role.ID); err == nil && existing.IsDefault {
		return nil, apperr.Validation("default roles cannot be modified")
	}
	if err := c.store.SaveRole(role); err != nil {
		return nil, err
	}
	return role, nil
}
