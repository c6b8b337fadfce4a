package order

import (
	"fmt"

	"ordertracker/internal/pkg/errs"
)

// Stage is a 1-based position in the production pipeline.
type Stage int

const (
	// FirstStage is the stage every new order starts in.
	FirstStage Stage = 1

	// FinalStage is Delivery & Payment. Reaching it moves an order to payment-pending.
	FinalStage Stage = 6
)

var stageNames = map[Stage]string{
	1: "Order Received",
	2: "Design Approval",
	3: "Material Sourcing",
	4: "Production",
	5: "Quality Check",
	6: "Delivery & Payment",
}

// Stages returns every stage of the pipeline in order.
func Stages() []Stage {
	stages := make([]Stage, 0, int(FinalStage))
	for s := FirstStage; s <= FinalStage; s++ {
		stages = append(stages, s)
	}
	return stages
}

// Validate checks that the stage is inside the stage table.
func (s Stage) Validate() error {
	if s < FirstStage || s > FinalStage {
		return errs.NewValueIsOutOfRangeError("currentStage", int(s), int(FirstStage), int(FinalStage))
	}
	return nil
}

// Name returns the display name of the stage, or "Stage N" for positions
// outside the table.
func (s Stage) Name() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Stage %d", int(s))
}

// IsFinal reports whether s is the last stage of the pipeline.
func (s Stage) IsFinal() bool {
	return s == FinalStage
}

// FieldPrefix is the formData key prefix owned by the stage, e.g. "stage3_".
func (s Stage) FieldPrefix() string {
	return fmt.Sprintf("stage%d_", int(s))
}
