package kernel_test

import (
	"sync"
	"testing"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID(t *testing.T) {
	t.Run("new_uuid_is_valid_and_unique", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		require.NoError(t, id1.Validate())
		assert.False(t, id1.IsEqual(id2))
	})

	t.Run("round_trip_via_string", func(t *testing.T) {
		id := kernel.NewUUID()

		restored, err := kernel.UUIDFromString(id.String())
		require.NoError(t, err)
		assert.True(t, id.IsEqual(restored))
	})

	t.Run("invalid_string_is_rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var id kernel.UUID
		require.ErrorIs(t, id.Validate(), errs.ErrValueIsRequired)
	})
}

func TestCode(t *testing.T) {
	t.Run("generated_code_has_expected_shape", func(t *testing.T) {
		code := kernel.NewCode()

		require.NoError(t, code.Validate())
		assert.Len(t, code.String(), 14)
		assert.Equal(t, "ORD-", code.String()[:4])
	})

	t.Run("round_trip_via_string", func(t *testing.T) {
		code := kernel.NewCode()

		restored, err := kernel.CodeFromString(code.String())
		require.NoError(t, err)
		assert.True(t, code.IsEqual(restored))
	})

	t.Run("malformed_codes_are_rejected", func(t *testing.T) {
		for _, s := range []string{"", "ORD-", "ORD-short", "XXX-7GKQ2MWXRB", "ORD-7GKQ2MWXR0"} {
			_, err := kernel.CodeFromString(s)
			require.Error(t, err, "expected %q to be rejected", s)
		}
	})

	t.Run("concurrent_generation_produces_no_collisions", func(t *testing.T) {
		const workers = 8
		const perWorker = 500

		var mu sync.Mutex
		seen := make(map[string]struct{}, workers*perWorker)
		var wg sync.WaitGroup

		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				local := make([]string, 0, perWorker)
				for range perWorker {
					local = append(local, kernel.NewCode().String())
				}
				mu.Lock()
				defer mu.Unlock()
				for _, c := range local {
					seen[c] = struct{}{}
				}
			}()
		}
		wg.Wait()

		assert.Len(t, seen, workers*perWorker)
	})
}

func TestActor(t *testing.T) {
	companyID := kernel.NewUUID()

	t.Run("admin_actor", func(t *testing.T) {
		actor, err := kernel.NewActor(kernel.NewUUID(), "root", kernel.RoleAdmin, nil, "")

		require.NoError(t, err)
		require.NoError(t, actor.Validate())
		assert.Equal(t, kernel.RoleAdmin, actor.Role())
	})

	t.Run("branch_actor_requires_branch_code", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.NewUUID(), "clerk", kernel.RoleBranch, &companyID, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty_name_is_rejected", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.NewUUID(), "", kernel.RoleAdmin, nil, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown_role_is_rejected", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.NewUUID(), "x", kernel.Role("superuser"), nil, "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var actor kernel.Actor
		require.ErrorIs(t, actor.Validate(), kernel.ErrActorIsNotConstructed)
	})
}

func TestScopeForActor(t *testing.T) {
	companyID := kernel.NewUUID()

	t.Run("admin_gets_unrestricted_scope", func(t *testing.T) {
		actor, err := kernel.NewActor(kernel.NewUUID(), "root", kernel.RoleAdmin, nil, "")
		require.NoError(t, err)

		scope, err := kernel.ScopeForActor(actor)
		require.NoError(t, err)
		assert.Equal(t, kernel.ScopeUnrestricted, scope.Kind())
		assert.True(t, scope.AllowsBranch("BR-01"))
	})

	t.Run("company_actor_gets_company_scope", func(t *testing.T) {
		actor, err := kernel.NewActor(kernel.NewUUID(), "manager", kernel.RoleCompany, &companyID, "")
		require.NoError(t, err)

		scope, err := kernel.ScopeForActor(actor)
		require.NoError(t, err)
		assert.Equal(t, kernel.ScopeCompany, scope.Kind())
		assert.True(t, scope.CompanyID().IsEqual(companyID))
	})

	t.Run("company_actor_without_company_is_rejected", func(t *testing.T) {
		actor, err := kernel.NewActor(kernel.NewUUID(), "manager", kernel.RoleCompany, nil, "")
		require.NoError(t, err)

		_, err = kernel.ScopeForActor(actor)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("branch_actor_gets_branch_scope", func(t *testing.T) {
		actor, err := kernel.NewActor(kernel.NewUUID(), "clerk", kernel.RoleBranch, &companyID, "BR-01")
		require.NoError(t, err)

		scope, err := kernel.ScopeForActor(actor)
		require.NoError(t, err)
		assert.Equal(t, kernel.ScopeBranch, scope.Kind())
		assert.True(t, scope.AllowsBranch("BR-01"))
		assert.False(t, scope.AllowsBranch("BR-02"))
	})
}
