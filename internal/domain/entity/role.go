// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role decides which routes a user may call.
type Role string

const (
	RoleUser      Role = "user"
	RoleGuide     Role = "guide"
	RoleLeadGuide Role = "lead-guide"
	RoleAdmin     Role = "admin"
)

// Roles is a set of roles allowed on a route.
type Roles []Role

// Route groups.
//
//nolint:gochecknoglobals
var (
	// TourManagers create, edit and delete tours and bookings.
	TourManagers = Roles{RoleAdmin, RoleLeadGuide}
	// Staff see the monthly plan and scan tickets.
	Staff = Roles{RoleAdmin, RoleLeadGuide, RoleGuide}
	// ReviewAuthors write and edit reviews. Guides never review their own tours.
	ReviewAuthors = Roles{RoleUser, RoleAdmin}
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the four known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleGuide, RoleLeadGuide, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsGuide reports whether r leads tours.
func (r Role) IsGuide() bool {
	return r == RoleGuide || r == RoleLeadGuide
}

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
