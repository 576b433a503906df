package ports

import "context"

// Role identifies the caller's capability level. The core only reads it to
// stamp ownership fields and to gate admin-only inputs such as the order fee
// percentage; authentication itself is an external collaborator.
type Role int

const (
	// RoleUnknown represents an unauthenticated or unresolved caller.
	RoleUnknown Role = iota

	// RoleAdmin has full back-office capabilities.
	RoleAdmin

	// RoleSalesperson is a mobile seller/driver account.
	RoleSalesperson
)

// RoleFromString parses a role label ("ADMIN" or "SALESPERSON").
// Unrecognized labels map to RoleUnknown.
func RoleFromString(s string) Role {
	switch s {
	case "ADMIN":
		return RoleAdmin
	case "SALESPERSON":
		return RoleSalesperson
	default:
		return RoleUnknown
	}
}

// String returns the role label.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "ADMIN"
	case RoleSalesperson:
		return "SALESPERSON"
	default:
		return "UNKNOWN"
	}
}

// AuditLog is the fire-and-forget audit trail sink invoked after each
// mutating operation. Implementations must swallow their own failures:
// an audit write error never fails the parent operation, so Record returns
// nothing.
type AuditLog interface {
	Record(ctx context.Context, action, details, category string)
}

// Notifier is the best-effort notification fan-out used after select events
// (new wholesale client, low stock, route completion). Failures never
// propagate to the caller.
type Notifier interface {
	Notify(ctx context.Context, title, body, kind string)
}
