package order_test

import (
	"testing"
	"time"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	created = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	later   = created.Add(2 * time.Hour)
)

func ptr[T any](v T) *T {
	return &v
}

func TestNewOrder(t *testing.T) {
	t.Run("should default stage, number and status", func(t *testing.T) {
		o, err := order.NewOrder("A1", order.Details{}, created)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "A1", o.ID())
		assert.Equal(t, "A1", o.OrderNumber())
		assert.Equal(t, order.FirstStage, o.CurrentStage())
		assert.Equal(t, order.InProgress, o.Status())
		assert.Empty(t, o.CompanyName())
		assert.Empty(t, o.Product())
		assert.Empty(t, o.FormData())
		assert.Empty(t, o.SavedStages())
		assert.Equal(t, created, o.DateInitiated())
		assert.Equal(t, created, o.UpdatedAt())
		assert.Equal(t, "2026-10-15T09:00:00.000Z", o.LastUpdated())
	})

	t.Run("should derive status from every stage", func(t *testing.T) {
		for _, stage := range order.Stages() {
			o, err := order.NewOrder("A1", order.Details{CurrentStage: stage}, created)
			require.NoError(t, err)

			if stage == order.FinalStage {
				assert.Equal(t, "payment-pending", o.Status().String())
			} else {
				assert.Equal(t, "in-progress", o.Status().String(), "stage %d", stage)
			}
		}
	})

	t.Run("should keep supplied fields and normalize saved stages", func(t *testing.T) {
		o, err := order.NewOrder("A1", order.Details{
			OrderNumber:  "2026-0001",
			CompanyName:  "Acme",
			Product:      "Uniforms",
			CurrentStage: 3,
			FormData:     order.FormData{{Key: "stage1_fabric", Value: "Cotton"}},
			SavedStages: []order.SavedStageRef{
				order.LegacyStageRef{Stage: 1},
				order.StageAssignment{Stage: 2, EmployeeCode: "0010"},
			},
		}, created)

		require.NoError(t, err)
		assert.Equal(t, "2026-0001", o.OrderNumber())
		assert.Equal(t, "Acme", o.CompanyName())
		assert.Equal(t, "Uniforms", o.Product())
		assert.Equal(t, order.Stage(3), o.CurrentStage())
		assert.Equal(t, []order.StageAssignment{
			{Stage: 1, EmployeeCode: "0009"},
			{Stage: 2, EmployeeCode: "0010"},
		}, o.SavedStages())
	})

	t.Run("should fail with blank id", func(t *testing.T) {
		o, err := order.NewOrder("  ", order.Details{}, created)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with stage out of range", func(t *testing.T) {
		o, err := order.NewOrder("A1", order.Details{CurrentStage: 7}, created)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should join stage and saved stage errors", func(t *testing.T) {
		_, err := order.NewOrder("A1", order.Details{
			CurrentStage: -1,
			SavedStages:  []order.SavedStageRef{order.LegacyStageRef{Stage: 9}},
		}, created)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should not alias caller form data", func(t *testing.T) {
		fd := order.FormData{{Key: "stage1_fabric", Value: "Cotton"}}
		o, err := order.NewOrder("A1", order.Details{FormData: fd}, created)
		require.NoError(t, err)

		fd[0].Value = "Silk"

		v, _ := o.FormData().Get("stage1_fabric")
		assert.Equal(t, "Cotton", v)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should round trip through snapshot", func(t *testing.T) {
		o, err := order.NewOrder("A1", order.Details{
			CompanyName:  "Acme",
			CurrentStage: 6,
			FormData:     order.FormData{{Key: "stage6_invoice", Value: "INV-1"}},
		}, created)
		require.NoError(t, err)

		restored, err := order.RestoreOrder(o.Snapshot())

		require.NoError(t, err)
		require.NoError(t, restored.Validate())
		assert.Equal(t, o.Snapshot(), restored.Snapshot())
	})

	t.Run("should keep unknown status", func(t *testing.T) {
		restored, err := order.RestoreOrder(order.Snapshot{ID: "A1", CurrentStage: 2})

		require.NoError(t, err)
		assert.Equal(t, order.Unknown, restored.Status())
		assert.Equal(t, "A1", restored.OrderNumber())
	})

	t.Run("should fail without id", func(t *testing.T) {
		_, err := order.RestoreOrder(order.Snapshot{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_ApplyUpdate(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder("A1", order.Details{
			CompanyName: "Acme",
			Product:     "Uniforms",
			FormData: order.FormData{
				{Key: "stage1_fabric", Value: "Cotton"},
				{Key: "stage1_color", Value: "Navy"},
			},
			SavedStages: []order.SavedStageRef{order.LegacyStageRef{Stage: 1}},
		}, created)
		require.NoError(t, err)
		return o
	}

	t.Run("should merge only supplied fields", func(t *testing.T) {
		o := newOrder(t)

		err := o.ApplyUpdate(order.Patch{Product: ptr("X")}, later)

		require.NoError(t, err)
		assert.Equal(t, "X", o.Product())
		assert.Equal(t, "Acme", o.CompanyName())
		assert.Equal(t, "A1", o.OrderNumber())
		assert.Equal(t, order.FirstStage, o.CurrentStage())
		assert.Len(t, o.FormData(), 2)
		assert.Len(t, o.SavedStages(), 1)
		assert.Equal(t, created, o.DateInitiated())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("should merge form data keeping key order", func(t *testing.T) {
		o := newOrder(t)

		err := o.ApplyUpdate(order.Patch{
			CurrentStage: ptr(order.Stage(2)),
			FormData: order.FormData{
				{Key: "stage2_sketch", Value: "v2"},
				{Key: "stage1_fabric", Value: "Linen"},
			},
		}, later)

		require.NoError(t, err)
		assert.Equal(t, []string{"stage1_fabric", "stage1_color", "stage2_sketch"}, o.FormData().Keys())
		v, _ := o.FormData().Get("stage1_fabric")
		assert.Equal(t, "Linen", v)
	})

	t.Run("should recompute status from stage", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ApplyUpdate(order.Patch{CurrentStage: ptr(order.FinalStage)}, later))
		assert.Equal(t, order.PaymentPending, o.Status())

		require.NoError(t, o.ApplyUpdate(order.Patch{CurrentStage: ptr(order.Stage(4))}, later))
		assert.Equal(t, order.InProgress, o.Status())
	})

	t.Run("should reopen a completed order", func(t *testing.T) {
		o := newOrder(t)
		o.Complete(later)

		require.NoError(t, o.ApplyUpdate(order.Patch{Product: ptr("Y")}, later.Add(time.Minute)))

		assert.Equal(t, order.PaymentPending, o.Status())
		assert.Equal(t, order.FinalStage, o.CurrentStage())
	})

	t.Run("should replace saved stages", func(t *testing.T) {
		o := newOrder(t)

		err := o.ApplyUpdate(order.Patch{SavedStages: []order.SavedStageRef{
			order.LegacyStageRef{Stage: 2},
			order.StageAssignment{Stage: 3, EmployeeCode: "0010"},
		}}, later)

		require.NoError(t, err)
		assert.Equal(t, []order.StageAssignment{
			{Stage: 2, EmployeeCode: "0009"},
			{Stage: 3, EmployeeCode: "0010"},
		}, o.SavedStages())
	})

	t.Run("should ignore blank order number", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ApplyUpdate(order.Patch{OrderNumber: ptr("")}, later))
		assert.Equal(t, "A1", o.OrderNumber())

		require.NoError(t, o.ApplyUpdate(order.Patch{OrderNumber: ptr("2026-0002")}, later))
		assert.Equal(t, "2026-0002", o.OrderNumber())
	})

	t.Run("should leave order untouched on invalid stage", func(t *testing.T) {
		o := newOrder(t)
		before := o.Snapshot()

		err := o.ApplyUpdate(order.Patch{
			Product:      ptr("X"),
			CurrentStage: ptr(order.Stage(0)),
		}, later)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, before, o.Snapshot())
	})

	t.Run("should report form data presence", func(t *testing.T) {
		assert.False(t, order.Patch{}.HasFormData())
		assert.True(t, order.Patch{FormData: order.FormData{}}.HasFormData())
	})
}

func TestOrder_Complete(t *testing.T) {
	o, err := order.NewOrder("A1", order.Details{CurrentStage: 2}, created)
	require.NoError(t, err)

	o.Complete(later)

	assert.Equal(t, order.Completed, o.Status())
	assert.Equal(t, order.FinalStage, o.CurrentStage())
	assert.Equal(t, later, o.UpdatedAt())
	assert.Equal(t, created, o.DateInitiated())
}

func TestOrder_CompletedBy(t *testing.T) {
	testCases := []struct {
		name     string
		refs     []order.SavedStageRef
		expected string
	}{
		{"none", nil, ""},
		{
			"final stage assignment wins",
			[]order.SavedStageRef{
				order.StageAssignment{Stage: 6, EmployeeCode: "0014"},
				order.StageAssignment{Stage: 5, EmployeeCode: "0013"},
			},
			"0014",
		},
		{
			"falls back to latest",
			[]order.SavedStageRef{
				order.LegacyStageRef{Stage: 1},
				order.StageAssignment{Stage: 2, EmployeeCode: "0010"},
			},
			"0010",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := order.NewOrder("A1", order.Details{SavedStages: tc.refs}, created)
			require.NoError(t, err)

			assert.Equal(t, tc.expected, o.CompletedBy())
		})
	}
}

func TestOrder_ConcurrentReads(t *testing.T) {
	o, err := order.NewOrder("A1", order.Details{CurrentStage: 3}, created)
	require.NoError(t, err)

	done := make(chan bool, 10)
	for range 10 {
		go func() {
			defer func() { done <- true }()
			_ = o.Snapshot()
			_ = o.FormData()
			_ = o.LastUpdated()
		}()
	}
	for range 10 {
		<-done
	}

	assert.Equal(t, order.InProgress, o.Status())
}
