package http

import (
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the gateway in front of this service. Authentication
// happens there; this adapter only reconstructs the already-verified identity.
const (
	headerActorID      = "X-Actor-Id"
	headerActorName    = "X-Actor-Name"
	headerActorRole    = "X-Actor-Role"
	headerActorCompany = "X-Actor-Company-Id"
	headerActorBranch  = "X-Actor-Branch-Code"
)

// actorFromRequest rebuilds the acting identity from the gateway headers.
// Role-specific header requirements (a company id for company actors, a
// branch code for branch actors) are enforced by the Actor constructor.
func actorFromRequest(ctx echo.Context) (kernel.Actor, error) {
	header := ctx.Request().Header

	rawID := header.Get(headerActorID)
	if rawID == "" {
		return kernel.Actor{}, errs.NewValueIsRequiredError("actor id header")
	}
	actorID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return kernel.Actor{}, errs.NewValueIsInvalidErrorWithCause("actor id header", err)
	}

	var companyID *kernel.UUID
	if rawCompany := header.Get(headerActorCompany); rawCompany != "" {
		id, parseErr := kernel.UUIDFromString(rawCompany)
		if parseErr != nil {
			return kernel.Actor{}, errs.NewValueIsInvalidErrorWithCause("actor company header", parseErr)
		}
		companyID = &id
	}

	return kernel.NewActor(
		actorID,
		header.Get(headerActorName),
		kernel.Role(header.Get(headerActorRole)),
		companyID,
		header.Get(headerActorBranch),
	)
}

// scopeFromRequest resolves the actor and derives the query visibility scope
// in one step for the read-side routes.
func scopeFromRequest(ctx echo.Context) (kernel.Scope, error) {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return kernel.Scope{}, err
	}
	return kernel.ScopeForActor(actor)
}
