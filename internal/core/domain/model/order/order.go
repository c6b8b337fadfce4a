package order

import (
	"errors"
	"strings"
	"time"

	"ordertracker/internal/pkg/errs"
)

// TimestampLayout is the ISO-8601 form used for dateInitiated and lastUpdated.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	// ErrOrderIsNotConstructed is returned when an Order was not built by
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Order is the aggregate root of a tracked manufacturing order.
//
// Order follows these invariants:
//   - id is non-blank and never changes
//   - currentStage is inside the stage table
//   - status is the result of DeriveStatus at the last write
//   - savedStages only ever holds StageAssignment values
//   - dateInitiated is set once, updatedAt is refreshed by every mutation
type Order struct {
	id          string
	number      string
	companyName string
	product     string

	currentStage Stage
	status       Status

	formData    FormData
	savedStages []StageAssignment

	dateInitiated time.Time
	updatedAt     time.Time

	isConstructed bool
}

// Details carries the caller supplied fields of a new order. Zero values mean
// "not supplied": stage 0 becomes FirstStage, an empty number becomes the id.
type Details struct {
	OrderNumber  string
	CompanyName  string
	Product      string
	CurrentStage Stage
	FormData     FormData
	SavedStages  []SavedStageRef
}

// NewOrder builds an order as it is written on creation. now stamps
// dateInitiated and updatedAt.
//
// Example:
//
//	o, err := order.NewOrder("A1", order.Details{Product: "Uniforms"}, time.Now())
//	// o.Status() == order.InProgress, o.CurrentStage() == 1
func NewOrder(id string, d Details, now time.Time) (*Order, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.NewValueIsRequiredError("orderId")
	}

	stage := d.CurrentStage
	if stage == 0 {
		stage = FirstStage
	}

	savedStages, normErr := NormalizeSavedStages(d.SavedStages)
	if err := errors.Join(stage.Validate(), normErr); err != nil {
		return nil, err
	}

	number := d.OrderNumber
	if number == "" {
		number = id
	}

	return &Order{
		id:            id,
		number:        number,
		companyName:   d.CompanyName,
		product:       d.Product,
		currentStage:  stage,
		status:        DeriveStatus(stage, false),
		formData:      d.FormData.Clone(),
		savedStages:   savedStages,
		dateInitiated: now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// Snapshot is the flat, storage-facing view of an order.
type Snapshot struct {
	ID            string
	OrderNumber   string
	CompanyName   string
	Product       string
	CurrentStage  Stage
	Status        Status
	FormData      FormData
	SavedStages   []StageAssignment
	DateInitiated time.Time
	UpdatedAt     time.Time
}

// RestoreOrder rehydrates an order from storage. Stored values are trusted
// apart from the id; an unrecognized status is kept as Unknown.
func RestoreOrder(s Snapshot) (*Order, error) {
	if strings.TrimSpace(s.ID) == "" {
		return nil, errs.NewValueIsRequiredError("orderId")
	}

	number := s.OrderNumber
	if number == "" {
		number = s.ID
	}

	return &Order{
		id:            s.ID,
		number:        number,
		companyName:   s.CompanyName,
		product:       s.Product,
		currentStage:  s.CurrentStage,
		status:        s.Status,
		formData:      s.FormData.Clone(),
		savedStages:   append([]StageAssignment{}, s.SavedStages...),
		dateInitiated: s.DateInitiated,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}, nil
}

// Snapshot returns a copy of the order's state for persistence.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:            o.id,
		OrderNumber:   o.number,
		CompanyName:   o.companyName,
		Product:       o.product,
		CurrentStage:  o.currentStage,
		Status:        o.status,
		FormData:      o.formData.Clone(),
		SavedStages:   o.SavedStages(),
		DateInitiated: o.dateInitiated,
		UpdatedAt:     o.updatedAt,
	}
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	OrderNumber  *string
	CompanyName  *string
	Product      *string
	CurrentStage *Stage
	FormData     FormData
	SavedStages  []SavedStageRef
}

// HasFormData reports whether the patch carries form answers, which is what
// triggers an operator notification.
func (p Patch) HasFormData() bool {
	return p.FormData != nil
}

// ApplyUpdate merges p into the order. Form answers are merged key by key,
// savedStages is replaced after normalization. The status is recomputed from
// the resulting stage, so an update after completion reopens the order.
// Nothing is changed if validation fails.
func (o *Order) ApplyUpdate(p Patch, now time.Time) error {
	stage := o.currentStage
	if p.CurrentStage != nil {
		stage = *p.CurrentStage
	}

	var savedStages []StageAssignment
	var normErr error
	if p.SavedStages != nil {
		savedStages, normErr = NormalizeSavedStages(p.SavedStages)
	}
	if err := errors.Join(stage.Validate(), normErr); err != nil {
		return err
	}

	if p.OrderNumber != nil && *p.OrderNumber != "" {
		o.number = *p.OrderNumber
	}
	if p.CompanyName != nil {
		o.companyName = *p.CompanyName
	}
	if p.Product != nil {
		o.product = *p.Product
	}
	if p.FormData != nil {
		o.formData = o.formData.Merge(p.FormData)
	}
	if p.SavedStages != nil {
		o.savedStages = savedStages
	}

	o.currentStage = stage
	o.status = DeriveStatus(stage, false)
	o.updatedAt = now
	return nil
}

// Complete marks the order completed and moves it to the final stage.
// Completing twice is allowed and refreshes the timestamps.
func (o *Order) Complete(now time.Time) {
	o.currentStage = FinalStage
	o.status = DeriveStatus(FinalStage, true)
	o.updatedAt = now
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// CompletedBy returns the employee code credited with the final stage: the
// assignment for the final stage if there is one, otherwise the latest
// assignment, otherwise an empty code.
func (o *Order) CompletedBy() string {
	for i := len(o.savedStages) - 1; i >= 0; i-- {
		if o.savedStages[i].Stage.IsFinal() {
			return o.savedStages[i].EmployeeCode
		}
	}
	if n := len(o.savedStages); n > 0 {
		return o.savedStages[n-1].EmployeeCode
	}
	return ""
}

func (o *Order) ID() string {
	return o.id
}

func (o *Order) OrderNumber() string {
	return o.number
}

func (o *Order) CompanyName() string {
	return o.companyName
}

func (o *Order) Product() string {
	return o.product
}

func (o *Order) CurrentStage() Stage {
	return o.currentStage
}

func (o *Order) Status() Status {
	return o.status
}

// FormData returns a copy of the form answers.
func (o *Order) FormData() FormData {
	return o.formData.Clone()
}

// SavedStages returns a copy of the stage sign-offs.
func (o *Order) SavedStages() []StageAssignment {
	return append([]StageAssignment{}, o.savedStages...)
}

func (o *Order) DateInitiated() time.Time {
	return o.dateInitiated
}

// UpdatedAt is the native timestamp of the last write.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// LastUpdated is UpdatedAt in its ISO string form.
func (o *Order) LastUpdated() string {
	return FormatTimestamp(o.updatedAt)
}
