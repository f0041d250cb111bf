// internal/permissions/permissions.go
package permissions

import (
	"github.com/google/uuid"
)

// Action is the request intent evaluated against a resource.
type Action int

const (
	ActionList Action = iota
	ActionRetrieve
	ActionCreate
	ActionUpdate
	ActionDestroy
)

func (a Action) String() string {
	switch a {
	case ActionList:
		return "list"
	case ActionRetrieve:
		return "retrieve"
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}

// Safe reports whether the action is read-only.
func (a Action) Safe() bool {
	return a == ActionList || a == ActionRetrieve
}

// Actor is the authenticated principal attached to a request. The zero
// value is the anonymous caller.
type Actor struct {
	ID            uuid.UUID
	Username      string
	IsStaff       bool
	IsSuperuser   bool
	Authenticated bool
}

// Admin reports whether the actor holds the administrator role.
func (a Actor) Admin() bool {
	return a.Authenticated && (a.IsStaff || a.IsSuperuser)
}

// Decision is the outcome of an authorization check.
type Decision int

const (
	Denied Decision = iota
	Admin
	Owner
	ReadOnly
)

func (d Decision) Allowed() bool {
	return d != Denied
}

func (d Decision) String() string {
	switch d {
	case Admin:
		return "admin"
	case Owner:
		return "owner"
	case ReadOnly:
		return "read-only"
	default:
		return "denied"
	}
}

// Authorize decides whether actor may perform action on a resource owned by
// owner. A nil owner means the resource has no owner (categories, brands,
// attributes) or that no object is involved yet (collection-level checks).
//
// Evaluation order: administrators are always authorized; unauthenticated
// callers never are; any authenticated caller may read; unsafe actions
// require ownership. The function is pure so the whole decision table can
// be tested exhaustively.
func Authorize(actor Actor, action Action, owner *uuid.UUID) Decision {
	switch {
	case actor.Admin():
		return Admin
	case !actor.Authenticated:
		return Denied
	case action.Safe():
		return ReadOnly
	case owner != nil && *owner == actor.ID:
		return Owner
	default:
		return Denied
	}
}
