package order_test

import (
	"testing"

	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/domain/model/order"
	"laborders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustService(t *testing.T, name string, value float64) order.Service {
	t.Helper()
	service, err := order.NewService(name, value, "")
	require.NoError(t, err)
	return service
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"Central Lab", "Jane Roe", "Acme Clinic",
		[]order.Service{mustService(t, "Blood Count", 42.5)},
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order with lifecycle defaults", func(t *testing.T) {
		id := kernel.NewUUID()
		services := []order.Service{
			mustService(t, "Blood Count", 42.5),
			mustService(t, "Urinalysis", 10),
		}

		o, err := order.NewOrder(id, "Central Lab", "Jane Roe", "Acme Clinic", services)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "Central Lab", o.Lab())
		assert.Equal(t, "Jane Roe", o.Patient())
		assert.Equal(t, "Acme Clinic", o.Customer())
		assert.Equal(t, order.StateCreated, o.State())
		assert.Equal(t, order.StatusActive, o.Status())
		assert.Len(t, o.Services(), 2)
		require.NoError(t, o.Validate())
	})

	t.Run("rejects empty required fields", func(t *testing.T) {
		id := kernel.NewUUID()
		services := []order.Service{mustService(t, "Blood Count", 42.5)}

		testCases := []struct {
			name                   string
			lab, patient, customer string
		}{
			{"empty lab", "", "Jane Roe", "Acme Clinic"},
			{"empty patient", "Central Lab", "", "Acme Clinic"},
			{"empty customer", "Central Lab", "Jane Roe", ""},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewOrder(id, tc.lab, tc.patient, tc.customer, services)

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})

	t.Run("rejects empty services", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "Central Lab", "Jane Roe", "Acme Clinic", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects invalid id", func(t *testing.T) {
		var zeroID kernel.UUID
		_, err := order.NewOrder(zeroID, "Central Lab", "Jane Roe", "Acme Clinic",
			[]order.Service{mustService(t, "Blood Count", 42.5)})

		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores explicit lifecycle fields", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(),
			"Central Lab", "Jane Roe", "Acme Clinic",
			order.StateAnalysis, order.StatusDeleted,
			[]order.Service{mustService(t, "Blood Count", 42.5)},
		)

		require.NoError(t, err)
		assert.Equal(t, order.StateAnalysis, o.State())
		assert.Equal(t, order.StatusDeleted, o.Status())
	})

	t.Run("rejects invalid lifecycle fields", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(),
			"Central Lab", "Jane Roe", "Acme Clinic",
			"PROCESSING", order.StatusActive,
			[]order.Service{mustService(t, "Blood Count", 42.5)},
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order fails", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("zero value order fails", func(t *testing.T) {
		o := &order.Order{}
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AdvanceState(t *testing.T) {
	t.Run("accepts the immediate successor", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.AdvanceState(order.StateAnalysis))
		assert.Equal(t, order.StateAnalysis, o.State())

		require.NoError(t, o.AdvanceState(order.StateCompleted))
		assert.Equal(t, order.StateCompleted, o.State())
	})

	t.Run("rejects skipping a state", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.AdvanceState(order.StateCompleted)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.StateCreated, o.State())
	})

	t.Run("rejects moving backward", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AdvanceState(order.StateAnalysis))

		err := o.AdvanceState(order.StateCreated)

		require.Error(t, err)
		assert.Equal(t, order.StateAnalysis, o.State())
	})

	t.Run("rejects the current state", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.AdvanceState(order.StateCreated)

		require.Error(t, err)
		assert.Equal(t, order.StateCreated, o.State())
	})

	t.Run("rejects invalid state", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.AdvanceState("PROCESSING")

		require.Error(t, err)
		assert.Equal(t, order.StateCreated, o.State())
	})
}

func TestOrder_Edit(t *testing.T) {
	t.Run("replaces editable fields", func(t *testing.T) {
		o := newTestOrder(t)
		services := []order.Service{
			mustService(t, "Urinalysis", 10),
			mustService(t, "Glucose", 7.25),
		}

		err := o.Edit("North Lab", "John Doe", "Beta Clinic", order.StatusActive, services)

		require.NoError(t, err)
		assert.Equal(t, "North Lab", o.Lab())
		assert.Equal(t, "John Doe", o.Patient())
		assert.Equal(t, "Beta Clinic", o.Customer())
		assert.Len(t, o.Services(), 2)
	})

	t.Run("keeps lifecycle state untouched", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AdvanceState(order.StateAnalysis))

		err := o.Edit("North Lab", "John Doe", "Beta Clinic", order.StatusActive,
			[]order.Service{mustService(t, "Urinalysis", 10)})

		require.NoError(t, err)
		assert.Equal(t, order.StateAnalysis, o.State())
		assert.Equal(t, order.StatusActive, o.Status())
	})

	t.Run("reactivates a deleted order", func(t *testing.T) {
		o := newTestOrder(t)
		o.MarkDeleted()

		err := o.Edit("North Lab", "John Doe", "Beta Clinic", order.StatusActive,
			[]order.Service{mustService(t, "Urinalysis", 10)})

		require.NoError(t, err)
		assert.Equal(t, order.StatusActive, o.Status())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Edit("North Lab", "John Doe", "Beta Clinic", "ARCHIVED",
			[]order.Service{mustService(t, "Urinalysis", 10)})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects empty services", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Edit("North Lab", "John Doe", "Beta Clinic", order.StatusActive, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		// the order still carries its original service
		assert.Len(t, o.Services(), 1)
	})
}

func TestOrder_MarkDeleted(t *testing.T) {
	o := newTestOrder(t)

	o.MarkDeleted()
	assert.Equal(t, order.StatusDeleted, o.Status())
	assert.Equal(t, order.StateCreated, o.State())

	// idempotent
	o.MarkDeleted()
	assert.Equal(t, order.StatusDeleted, o.Status())
}

func TestOrder_Services_ReturnsCopy(t *testing.T) {
	o := newTestOrder(t)

	services := o.Services()
	services[0] = mustService(t, "Tampered", 1)

	assert.Equal(t, "Blood Count", o.Services()[0].Name())
}

func TestOrder_IsEqual(t *testing.T) {
	o := newTestOrder(t)
	other := newTestOrder(t)

	assert.True(t, o.IsEqual(o))
	assert.False(t, o.IsEqual(other))
	assert.False(t, o.IsEqual(nil))
}
