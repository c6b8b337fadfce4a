package order

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"ordertracker/internal/pkg/errs"
)

// SavedStageRef is a stage sign-off as received from a client. It is either
// a LegacyStageRef or a StageAssignment.
type SavedStageRef interface {
	assignment() StageAssignment
}

// LegacyStageRef is the old bare-number form. It implies DefaultEmployeeCode.
type LegacyStageRef struct {
	Stage Stage
}

func (r LegacyStageRef) assignment() StageAssignment {
	return StageAssignment{Stage: r.Stage, EmployeeCode: DefaultEmployeeCode}
}

// StageAssignment records which employee signed a stage off. It is the only
// form ever persisted.
type StageAssignment struct {
	Stage        Stage
	EmployeeCode string
}

func (a StageAssignment) assignment() StageAssignment {
	return a
}

// MarshalJSON writes the assignment as {"<stage>": "<code>"}.
func (a StageAssignment) MarshalJSON() ([]byte, error) {
	code, err := json.Marshal(a.EmployeeCode)
	if err != nil {
		return nil, err
	}
	return fmt.Appendf(nil, `{"%d":%s}`, int(a.Stage), code), nil
}

// NormalizeSavedStages converts every ref into a StageAssignment, keeping order.
func NormalizeSavedStages(refs []SavedStageRef) ([]StageAssignment, error) {
	out := make([]StageAssignment, 0, len(refs))
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		a := ref.assignment()
		if err := a.Stage.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("savedStages", err)
		}
		if a.EmployeeCode == "" {
			a.EmployeeCode = DefaultEmployeeCode
		}
		out = append(out, a)
	}
	return out, nil
}

// SavedStageRefs decodes the mixed JSON array accepted for savedStages, e.g.
// [2, {"3": "0010"}]. An object with several keys yields one assignment per
// key, in key order.
type SavedStageRefs []SavedStageRef

func (r *SavedStageRefs) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("savedStages", err)
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return errs.NewValueIsInvalidErrorWithCause("savedStages", errors.New("expected an array"))
	}

	refs := SavedStageRefs{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("savedStages", err)
		}
		switch v := tok.(type) {
		case json.Number:
			stage, err := parseStage(v.String())
			if err != nil {
				return err
			}
			refs = append(refs, LegacyStageRef{Stage: stage})
		case json.Delim:
			if v != '{' {
				return errs.NewValueIsInvalidErrorWithCause("savedStages", errors.New("expected a number or an object"))
			}
			assignments, err := decodeAssignments(dec)
			if err != nil {
				return err
			}
			refs = append(refs, assignments...)
		default:
			return errs.NewValueIsInvalidErrorWithCause("savedStages", errors.New("expected a number or an object"))
		}
	}
	if _, err := dec.Token(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("savedStages", err)
	}

	*r = refs
	return nil
}

// decodeAssignments reads the members of an object whose opening brace was
// already consumed.
func decodeAssignments(dec *json.Decoder) ([]SavedStageRef, error) {
	var out []SavedStageRef
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("savedStages", err)
		}
		key, _ := keyTok.(string)
		stage, err := parseStage(key)
		if err != nil {
			return nil, err
		}

		valueTok, err := dec.Token()
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("savedStages", err)
		}
		code, ok := valueTok.(string)
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("savedStages",
				fmt.Errorf("employee code for stage %d must be a string", stage))
		}
		out = append(out, StageAssignment{Stage: stage, EmployeeCode: code})
	}
	if _, err := dec.Token(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("savedStages", err)
	}
	return out, nil
}

func parseStage(s string) (Stage, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("savedStages", fmt.Errorf("%q is not a stage number", s))
	}
	return Stage(n), nil
}
