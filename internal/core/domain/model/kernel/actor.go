package kernel

import (
	"errors"
	"fmt"

	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

// ErrActorIsNotConstructed indicates an Actor was not created via NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor")

// Role describes the authorization level of an acting identity.
// The core applies roles only as query-scoping predicates, never as
// business logic inside aggregates.
type Role string

const (
	// RoleAdmin has unrestricted visibility across companies and branches.
	RoleAdmin Role = "admin"

	// RoleCompany is limited to a single company's orders and inventory.
	RoleCompany Role = "company"

	// RoleBranch is limited to a single branch. Branch-role actors place
	// orders on behalf of their branch, so a branch code is mandatory.
	RoleBranch Role = "branch"
)

// Validate checks the role is one of the defined values.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleCompany, RoleBranch:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// Actor is the identity performing an operation, supplied by the external
// identity/authorization collaborator. It carries the fields the core needs
// for audit rows and query scoping and nothing else.
type Actor struct {
	id         UUID
	name       string
	role       Role
	companyID  *UUID
	branchCode string

	guard guard.ConstructorGuard
}

// NewActor creates a validated Actor.
//
// companyID may be nil for admin actors. branchCode may be empty except for
// branch-role actors, which must carry the branch they act for.
func NewActor(id UUID, name string, role Role, companyID *UUID, branchCode string) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if name == "" {
		return Actor{}, errs.NewValueIsRequiredError("actor name")
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	if companyID != nil {
		if err := companyID.Validate(); err != nil {
			return Actor{}, err
		}
	}
	if role == RoleBranch && branchCode == "" {
		return Actor{}, errs.NewValueIsRequiredError("branch code for branch-role actor")
	}

	return Actor{
		id:         id,
		name:       name,
		role:       role,
		companyID:  companyID,
		branchCode: branchCode,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the actor was created through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's identifier.
func (a Actor) ID() UUID {
	return a.id
}

// Name returns the actor's display name, recorded on audit rows.
func (a Actor) Name() string {
	return a.name
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// CompanyID returns the actor's company, or nil for unrestricted actors.
func (a Actor) CompanyID() *UUID {
	return a.companyID
}

// BranchCode returns the actor's branch, or "" when the actor is not branch-bound.
func (a Actor) BranchCode() string {
	return a.branchCode
}
