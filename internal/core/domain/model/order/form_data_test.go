package order_test

import (
	"encoding/json"
	"testing"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormData_UnmarshalJSON(t *testing.T) {
	t.Run("should keep key order", func(t *testing.T) {
		var fd order.FormData

		err := json.Unmarshal([]byte(`{"stage2_b":"2","stage1_a":"1","stage1_c":"3"}`), &fd)

		require.NoError(t, err)
		assert.Equal(t, []string{"stage2_b", "stage1_a", "stage1_c"}, fd.Keys())
	})

	t.Run("should stringify scalars", func(t *testing.T) {
		var fd order.FormData

		err := json.Unmarshal([]byte(`{"qty":120,"rush":true,"note":null,"gsm":"180.5"}`), &fd)

		require.NoError(t, err)
		assert.Equal(t, order.FormData{
			{Key: "qty", Value: "120"},
			{Key: "rush", Value: "true"},
			{Key: "note", Value: ""},
			{Key: "gsm", Value: "180.5"},
		}, fd)
	})

	t.Run("should keep first position for duplicate keys", func(t *testing.T) {
		var fd order.FormData

		err := json.Unmarshal([]byte(`{"a":"1","b":"2","a":"3"}`), &fd)

		require.NoError(t, err)
		assert.Equal(t, order.FormData{{Key: "a", Value: "3"}, {Key: "b", Value: "2"}}, fd)
	})

	t.Run("should distinguish empty from absent", func(t *testing.T) {
		var body struct {
			FormData order.FormData `json:"formData"`
		}

		require.NoError(t, json.Unmarshal([]byte(`{}`), &body))
		assert.Nil(t, body.FormData)

		require.NoError(t, json.Unmarshal([]byte(`{"formData":{}}`), &body))
		assert.NotNil(t, body.FormData)
		assert.Empty(t, body.FormData)
	})

	t.Run("should reject nested values", func(t *testing.T) {
		var fd order.FormData

		err := json.Unmarshal([]byte(`{"sizes":{"m":10}}`), &fd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject non objects", func(t *testing.T) {
		var fd order.FormData

		require.ErrorIs(t, json.Unmarshal([]byte(`["a"]`), &fd), errs.ErrValueIsInvalid)
	})
}

func TestFormData_MarshalJSON(t *testing.T) {
	fd := order.FormData{
		{Key: "stage2_z", Value: "last \"quoted\""},
		{Key: "stage1_a", Value: "first"},
	}

	data, err := json.Marshal(fd)

	require.NoError(t, err)
	assert.JSONEq(t, `{"stage2_z":"last \"quoted\"","stage1_a":"first"}`, string(data))
	assert.Equal(t, `{"stage2_z":"last \"quoted\"","stage1_a":"first"}`, string(data))

	empty, err := json.Marshal(order.FormData(nil))
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(empty))
}

func TestFormData_Merge(t *testing.T) {
	base := order.FormData{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}

	merged := base.Merge(order.FormData{{Key: "c", Value: "3"}, {Key: "a", Value: "10"}})

	assert.Equal(t, order.FormData{
		{Key: "a", Value: "10"},
		{Key: "b", Value: "2"},
		{Key: "c", Value: "3"},
	}, merged)
	assert.Equal(t, "1", base[0].Value)
}

func TestFormData_With(t *testing.T) {
	var fd order.FormData

	fd = fd.With("a", "1").With("b", "2").With("a", "3")

	v, ok := fd.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
	assert.Equal(t, []string{"a", "b"}, fd.Keys())

	_, ok = fd.Get("missing")
	assert.False(t, ok)
}
