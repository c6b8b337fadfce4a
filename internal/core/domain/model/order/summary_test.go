package order_test

import (
	"strings"
	"testing"

	"ordertracker/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func bulletLines(summary string) []string {
	var out []string
	for _, line := range strings.Split(summary, "\n") {
		if strings.HasPrefix(line, "• ") {
			out = append(out, line)
		}
	}
	return out
}

func TestGenerateStageSummary(t *testing.T) {
	formData := order.FormData{
		{Key: "stage1_fabricType", Value: "Cotton"},
		{Key: "stage2_designNotes", Value: "   "},
		{Key: "stage1_color", Value: " Navy "},
		{Key: "stage3_supplier", Value: "Mill Co"},
		{Key: "stage10_extra", Value: "ignored"},
		{Key: "deliveryAddress", Value: "Main St"},
		{Key: "stage2_sketchUrl", Value: "https://example.com/s.png"},
	}

	t.Run("should render stages up to the current one", func(t *testing.T) {
		summary := order.GenerateStageSummary(formData, 2)

		assert.Equal(t, strings.Join([]string{
			"Stage 1 - Order Received:",
			"• Fabric Type: Cotton",
			"• Color: Navy",
			"Stage 2 - Design Approval:",
			"• Sketch Url: https://example.com/s.png",
		}, "\n"), summary)
	})

	t.Run("should emit one line per non blank field", func(t *testing.T) {
		for stage := order.FirstStage; stage <= order.FinalStage; stage++ {
			expected := 0
			for _, f := range formData {
				for n := order.FirstStage; n <= stage; n++ {
					if strings.HasPrefix(f.Key, n.FieldPrefix()) && strings.TrimSpace(f.Value) != "" {
						expected++
					}
				}
			}
			assert.Len(t, bulletLines(order.GenerateStageSummary(formData, stage)), expected, "stage %d", stage)
		}
	})

	t.Run("should render empty stage blocks", func(t *testing.T) {
		summary := order.GenerateStageSummary(nil, 3)

		assert.Equal(t, "Stage 1 - Order Received:\nStage 2 - Design Approval:\nStage 3 - Material Sourcing:", summary)
	})

	t.Run("should render nothing before the first stage", func(t *testing.T) {
		assert.Empty(t, order.GenerateStageSummary(formData, 0))
	})

	t.Run("should be deterministic", func(t *testing.T) {
		assert.Equal(t,
			order.GenerateStageSummary(formData, order.FinalStage),
			order.GenerateStageSummary(formData, order.FinalStage))
	})
}

func TestFormatFieldName(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"stage1_fabricType", "Fabric Type"},
		{"stage12_totalAmount", "Total Amount"},
		{"delivery_address", "Delivery Address"},
		{"stage5_GSMValue", "GSM Value"},
		{"stage3_supplier-name", "Supplier Name"},
		{"stageNotes", "Stage Notes"},
		{"stage4_", "Stage4"},
		{"size2XL", "Size2 XL"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, order.FormatFieldName(tc.input))
		})
	}
}
