package order_test

import (
	"testing"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T) *order.Item {
	t.Helper()
	price, err := kernel.MoneyFromString("350.00", kernel.CurrencyGBP)
	require.NoError(t, err)

	it, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 1, price, false)
	require.NoError(t, err)
	return it
}

func TestNewItem(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		it := newTestItem(t)

		assert.False(t, it.IsAssigned())
		assert.Nil(t, it.PrimaryTailor())
		assert.Nil(t, it.BackupTailor())
		assert.False(t, it.IsBackupSuit())
	})

	t.Run("zero_quantity_rejected", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 0, kernel.Money{}, false)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestItem_AssignTailors(t *testing.T) {
	t.Run("assigns_distinct_pair", func(t *testing.T) {
		it := newTestItem(t)
		primary, backup := kernel.NewUUID(), kernel.NewUUID()

		require.NoError(t, it.AssignTailors(primary, backup))

		assert.True(t, it.IsAssigned())
		assert.True(t, it.PrimaryTailor().IsEqual(primary))
		assert.True(t, it.BackupTailor().IsEqual(backup))
	})

	t.Run("same_tailor_twice_rejected", func(t *testing.T) {
		it := newTestItem(t)
		id := kernel.NewUUID()

		err := it.AssignTailors(id, id)

		require.ErrorIs(t, err, order.ErrTailorsMustBeDistinct)
		assert.False(t, it.IsAssigned())
	})

	t.Run("reassignment_refused_with_existing_pair", func(t *testing.T) {
		it := newTestItem(t)
		primary, backup := kernel.NewUUID(), kernel.NewUUID()
		require.NoError(t, it.AssignTailors(primary, backup))

		err := it.AssignTailors(kernel.NewUUID(), kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrTailorsAlreadyAssigned)

		var assignedErr *order.TailorsAlreadyAssignedError
		require.ErrorAs(t, err, &assignedErr)
		assert.True(t, assignedErr.PrimaryTailorID.IsEqual(primary))
		assert.True(t, assignedErr.BackupTailorID.IsEqual(backup))

		// Existing assignment is untouched.
		assert.True(t, it.PrimaryTailor().IsEqual(primary))
		assert.True(t, it.BackupTailor().IsEqual(backup))
	})

	t.Run("invalid_ids_rejected", func(t *testing.T) {
		it := newTestItem(t)
		var zero kernel.UUID

		require.Error(t, it.AssignTailors(zero, kernel.NewUUID()))
		assert.False(t, it.IsAssigned())
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("restores_assignment", func(t *testing.T) {
		primary, backup := kernel.NewUUID(), kernel.NewUUID()

		it, err := order.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), 2,
			kernel.Money{}, true, &primary, &backup)

		require.NoError(t, err)
		assert.True(t, it.IsAssigned())
		assert.True(t, it.IsBackupSuit())
		assert.Equal(t, 2, it.Quantity())
	})

	t.Run("restores_unassigned", func(t *testing.T) {
		it, err := order.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), 1,
			kernel.Money{}, false, nil, nil)

		require.NoError(t, err)
		assert.False(t, it.IsAssigned())
	})
}

func TestItem_Validate(t *testing.T) {
	var it order.Item

	require.ErrorIs(t, it.Validate(), order.ErrItemIsNotConstructed)
}
