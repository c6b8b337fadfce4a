// Package order provides the domain model of a manufacturing order tracked
// through a fixed six-stage production pipeline.
//
// The package includes:
//   - Order: the aggregate root holding identity, header fields, stage progress,
//     per-stage form answers and the employees that signed each stage off
//   - Stage: a position in the static stage table
//   - Status: a value derived from the stage and the completion flag
//   - FormData: an insertion-ordered map of form answers
//   - SavedStageRef: the tagged variant accepted for stage sign-offs
//   - message composition for operator notifications
//
// Key business rules:
//   - An order is keyed by a caller supplied identifier that never changes
//   - Status is recomputed from the stage on every mutation; completion
//     forces the final stage and the completed status
//   - Form answers are merged key by key; existing keys keep their position
//   - Legacy bare stage numbers are normalized to the default employee code
//     before anything is persisted
//
// Every function in this package is pure except for the Order mutators, which
// take the instant of the write explicitly.
package order
