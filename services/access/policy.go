// Package access holds the role gate: pure policy functions deciding what
// each actor may observe or mutate. Actor context is always passed in
// explicitly; nothing here reads ambient session state.
package access

import "handrest/models"

// Actor identifies who is performing a core operation.
type Actor struct {
	ID          string
	Role        models.Role
	Permissions []string // admin tab allow-list; empty for other roles
}

// CanViewTab reports whether the actor may see the given admin dashboard
// tab. super_admin sees everything; admin only tabs on its granted
// allow-list. Staff and customers have their own dedicated surfaces and are
// never granted admin tabs.
func CanViewTab(role models.Role, permissions []string, tab string) bool {
	switch role {
	case models.RoleSuperAdmin:
		return true
	case models.RoleAdmin:
		for _, p := range permissions {
			if p == tab {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// CanMutateBookingStatus reports whether the role may drive the given
// lifecycle transition. Admins may drive any transition the lifecycle table
// allows; staff only the two job-execution steps; customers none.
func CanMutateBookingStatus(role models.Role, from, to models.BookingStatus) bool {
	switch role {
	case models.RoleSuperAdmin, models.RoleAdmin:
		return from.CanTransitionTo(to)
	case models.RoleStaff:
		return (from == models.StatusAssigned && to == models.StatusInProgress) ||
			(from == models.StatusInProgress && to == models.StatusCompleted)
	default:
		return false
	}
}

// CanOverrideBookingStatus reports whether the role may force a status
// outside the lifecycle table. Admin is authoritative; every use of this
// path is reported through the audit hook.
func CanOverrideBookingStatus(role models.Role) bool {
	return role.IsAdmin()
}
