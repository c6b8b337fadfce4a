package orderrepo

import (
	"testing"
	"time"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDTO_RoundTrip(t *testing.T) {
	at := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	o, err := order.NewOrder("A1", order.Details{
		CompanyName:  "Acme",
		CurrentStage: 4,
		FormData: order.FormData{
			{Key: "stage2_z", Value: "last"},
			{Key: "stage1_a", Value: "first"},
		},
		SavedStages: []order.SavedStageRef{order.LegacyStageRef{Stage: 1}},
	}, at)
	require.NoError(t, err)

	dto, err := fromDomain(o)
	require.NoError(t, err)

	assert.Equal(t, "A1", dto.OrderID)
	assert.Equal(t, "in-progress", dto.Status)
	assert.Equal(t, `{"stage2_z":"last","stage1_a":"first"}`, dto.FormData)
	assert.Equal(t, `[{"1":"0009"}]`, dto.SavedStages)
	assert.Equal(t, "2026-10-15T09:30:00.000Z", dto.LastUpdated)
	assert.Equal(t, at, dto.UpdatedAt)

	restored, err := toDomain(dto)
	require.NoError(t, err)
	assert.Equal(t, o.Snapshot(), restored.Snapshot())
}

func TestToDomain_LegacyRow(t *testing.T) {
	restored, err := toDomain(OrderDTO{
		OrderID:      "OLD",
		CurrentStage: 2,
		Status:       "In Progress",
		SavedStages:  `[1, {"2": "0010"}]`,
	})

	require.NoError(t, err)
	assert.Equal(t, "OLD", restored.OrderNumber())
	assert.Equal(t, order.Unknown, restored.Status())
	assert.Empty(t, restored.FormData())
	assert.Equal(t, []order.StageAssignment{
		{Stage: 1, EmployeeCode: "0009"},
		{Stage: 2, EmployeeCode: "0010"},
	}, restored.SavedStages())
}

func TestToDomain_CorruptRow(t *testing.T) {
	_, err := toDomain(OrderDTO{OrderID: "BAD", FormData: `{"nested":{"a":1}}`})

	require.ErrorIs(t, err, errs.ErrStoreFailed)
}
