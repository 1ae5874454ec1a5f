package kernel

import (
	"distribution/internal/pkg/errs"
)

// ScopeKind discriminates the visibility level of a Scope.
type ScopeKind int

const (
	// ScopeUnrestricted sees every company and branch.
	ScopeUnrestricted ScopeKind = iota

	// ScopeCompany sees a single company's data across all its branches.
	ScopeCompany

	// ScopeBranch sees a single branch.
	ScopeBranch
)

// Scope is the explicit query-scoping context passed into every query-building
// function. It replaces reading ambient role state: a handler derives the scope
// from the acting identity once and threads it through, so predicate
// construction is deterministic and unit-testable.
type Scope struct {
	kind       ScopeKind
	companyID  UUID
	branchCode string
}

// NewUnrestrictedScope returns a scope with full visibility.
func NewUnrestrictedScope() Scope {
	return Scope{kind: ScopeUnrestricted}
}

// NewCompanyScope returns a scope limited to one company.
func NewCompanyScope(companyID UUID) (Scope, error) {
	if err := companyID.Validate(); err != nil {
		return Scope{}, err
	}
	return Scope{kind: ScopeCompany, companyID: companyID}, nil
}

// NewBranchScope returns a scope limited to one branch.
func NewBranchScope(branchCode string) (Scope, error) {
	if branchCode == "" {
		return Scope{}, errs.NewValueIsRequiredError("branch code")
	}
	return Scope{kind: ScopeBranch, branchCode: branchCode}, nil
}

// ScopeForActor derives the query scope from an acting identity.
//
// Admin actors are unrestricted. Company actors are limited to their company;
// a company actor without a company id is rejected. Branch actors are limited
// to their branch (NewActor guarantees the branch code is present).
func ScopeForActor(actor Actor) (Scope, error) {
	if err := actor.Validate(); err != nil {
		return Scope{}, err
	}

	switch actor.Role() {
	case RoleAdmin:
		return NewUnrestrictedScope(), nil
	case RoleCompany:
		if actor.CompanyID() == nil {
			return Scope{}, errs.NewValueIsRequiredError("company id for company-role actor")
		}
		return NewCompanyScope(*actor.CompanyID())
	case RoleBranch:
		return NewBranchScope(actor.BranchCode())
	default:
		return Scope{}, errs.NewValueIsInvalidError("actor role")
	}
}

// Kind returns the scope's visibility level.
func (s Scope) Kind() ScopeKind {
	return s.kind
}

// CompanyID returns the scoped company. Valid only when Kind is ScopeCompany.
func (s Scope) CompanyID() UUID {
	return s.companyID
}

// BranchCode returns the scoped branch. Valid only when Kind is ScopeBranch.
func (s Scope) BranchCode() string {
	return s.branchCode
}

// AllowsBranch reports whether the scope permits access to the given branch.
// Company scope cannot be checked against a bare branch code at the domain
// level; branch membership in a company is resolved by the persistence layer,
// so company scope admits the branch here and the query predicate narrows it.
func (s Scope) AllowsBranch(branchCode string) bool {
	if s.kind == ScopeBranch {
		return s.branchCode == branchCode
	}
	return true
}
