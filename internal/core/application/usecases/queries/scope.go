package queries

import (
	"distribution/internal/core/domain/model/kernel"
)

// scopePredicate compiles a visibility scope into a parameterized SQL
// condition over the given branch-code column.
//
// Unrestricted scope compiles to no condition. Branch scope pins the column
// to one branch. Company scope narrows through the branches directory table,
// which is owned by the admin module and read-only here.
func scopePredicate(scope kernel.Scope, column string) (string, []any) {
	switch scope.Kind() {
	case kernel.ScopeBranch:
		return column + " = ?", []any{scope.BranchCode()}
	case kernel.ScopeCompany:
		return column + " IN (SELECT code FROM branches WHERE company_id = ?)",
			[]any{scope.CompanyID().Bytes()}
	default:
		return "", nil
	}
}
