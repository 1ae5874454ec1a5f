package commands_test

import (
	"testing"

	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func branchActor(t *testing.T, branchCode string) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), "branch clerk", kernel.RoleBranch, nil, branchCode)
	require.NoError(t, err)
	return actor
}

func adminActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), "root", kernel.RoleAdmin, nil, "")
	require.NoError(t, err)
	return actor
}

func companyActor(t *testing.T, companyID kernel.UUID) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), "company manager", kernel.RoleCompany, &companyID, "")
	require.NoError(t, err)
	return actor
}

func singleItem() []commands.OrderItemInput {
	return []commands.OrderItemInput{{
		PartID:    kernel.NewUUID(),
		Quantity:  5,
		UnitPrice: 120,
	}}
}

func TestNewCreateOrderCommand(t *testing.T) {
	retailerID := kernel.NewUUID()

	t.Run("branch_actor_resolves_own_branch", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			branchActor(t, "BR-01"), retailerID, "", false, "", nil, "", nil, singleItem(), "")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "BR-01", cmd.BranchCode())
	})

	t.Run("explicit_override_wins", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			branchActor(t, "BR-01"), retailerID, "BR-09", false, "", nil, "", nil, singleItem(), "")

		require.NoError(t, err)
		assert.Equal(t, "BR-09", cmd.BranchCode())
	})

	t.Run("unresolvable_branch_is_rejected", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			adminActor(t), retailerID, "", false, "", nil, "", nil, singleItem(), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty_item_list_is_rejected", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			branchActor(t, "BR-01"), retailerID, "", false, "", nil, "", nil, nil, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid_retailer_is_rejected", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			branchActor(t, "BR-01"), kernel.UUID{}, "", false, "", nil, "", nil, singleItem(), "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unconstructed_command_fails_validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
