package order

import (
	"fmt"

	"ordertracker/internal/pkg/errs"
)

// Status is the coarse lifecycle state of an order. It is never set directly;
// DeriveStatus computes it from the stage and the completion flag.
//
//	stage 1..5 ──> InProgress
//	stage 6    ──> PaymentPending
//	completion ──> Completed
type Status int

const (
	// Unknown catches uninitialized values and unrecognized stored strings.
	Unknown Status = iota
	InProgress
	PaymentPending
	Completed
)

var statusStrings = map[Status]string{
	InProgress:     "in-progress",
	PaymentPending: "payment-pending",
	Completed:      "completed",
}

// DeriveStatus returns the status an order has after a write that leaves it
// at stage. A completion write always yields Completed.
func DeriveStatus(stage Stage, completed bool) Status {
	switch {
	case completed:
		return Completed
	case stage.IsFinal():
		return PaymentPending
	default:
		return InProgress
	}
}

// ParseStatus converts the stored string form back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range statusStrings {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// String returns the wire form ("in-progress", "payment-pending", "completed").
func (s Status) String() string {
	if str, ok := statusStrings[s]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects Unknown and out of range values.
func (s Status) Validate() error {
	if _, ok := statusStrings[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsActive reports whether the order still needs attention from the operator.
func (s Status) IsActive() bool {
	return s == InProgress || s == PaymentPending
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
