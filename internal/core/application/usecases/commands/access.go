package commands

import (
	"context"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/ports"
	"distribution/internal/pkg/errs"
)

// checkBranchAccess verifies the actor's scope admits the given branch.
// Called before any mutation so AccessDenied surfaces with zero side effects.
//
// Branch-role actors may only touch their own branch. Company-role actors are
// checked against the branch's owning company through the branch directory;
// an unknown branch propagates as ObjectNotFound. Admin actors pass.
func checkBranchAccess(ctx context.Context, actor kernel.Actor, branchCode string, dir ports.BranchDirectory) error {
	scope, err := kernel.ScopeForActor(actor)
	if err != nil {
		return err
	}

	switch scope.Kind() {
	case kernel.ScopeUnrestricted:
		return nil
	case kernel.ScopeBranch:
		if scope.BranchCode() != branchCode {
			return errs.NewAccessDeniedError("branch", branchCode)
		}
		return nil
	case kernel.ScopeCompany:
		companyID, err := dir.CompanyOf(ctx, branchCode)
		if err != nil {
			return err
		}
		if !companyID.IsEqual(scope.CompanyID()) {
			return errs.NewAccessDeniedError("branch", branchCode)
		}
		return nil
	default:
		return errs.NewValueIsInvalidError("scope")
	}
}
