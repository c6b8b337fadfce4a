// Package orderrepo persists order aggregates as MongoDB documents in the
// orders collection, keyed by orderId.
package orderrepo

import (
	"fmt"
	"strconv"
	"time"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
)

// orderDocument mirrors the stored shape. formData is a bson.D so field
// order survives the round trip; savedStages is decoded loosely because old
// documents hold bare stage numbers.
type orderDocument struct {
	ID            string    `bson:"_id"`
	OrderID       string    `bson:"orderId"`
	OrderNumber   string    `bson:"orderNumber"`
	CompanyName   string    `bson:"companyName"`
	Product       string    `bson:"product"`
	CurrentStage  int       `bson:"currentStage"`
	Status        string    `bson:"status"`
	FormData      bson.D    `bson:"formData"`
	SavedStages   bson.A    `bson:"savedStages"`
	DateInitiated string    `bson:"dateInitiated"`
	LastUpdated   string    `bson:"lastUpdated"`
	UpdatedAt     time.Time `bson:"updatedAt"`
}

func fromDomain(aggregate *order.Order) orderDocument {
	s := aggregate.Snapshot()

	formData := make(bson.D, 0, len(s.FormData))
	for _, field := range s.FormData {
		formData = append(formData, bson.E{Key: field.Key, Value: field.Value})
	}

	savedStages := make(bson.A, 0, len(s.SavedStages))
	for _, a := range s.SavedStages {
		savedStages = append(savedStages, bson.D{{Key: strconv.Itoa(int(a.Stage)), Value: a.EmployeeCode}})
	}

	return orderDocument{
		ID:            s.ID,
		OrderID:       s.ID,
		OrderNumber:   s.OrderNumber,
		CompanyName:   s.CompanyName,
		Product:       s.Product,
		CurrentStage:  int(s.CurrentStage),
		Status:        s.Status.String(),
		FormData:      formData,
		SavedStages:   savedStages,
		DateInitiated: order.FormatTimestamp(s.DateInitiated),
		LastUpdated:   aggregate.LastUpdated(),
		UpdatedAt:     s.UpdatedAt.UTC(),
	}
}

// mutableFields is the $set payload of an update. _id, orderId and
// dateInitiated are left as stored.
func (d orderDocument) mutableFields() bson.D {
	return bson.D{
		{Key: "orderNumber", Value: d.OrderNumber},
		{Key: "companyName", Value: d.CompanyName},
		{Key: "product", Value: d.Product},
		{Key: "currentStage", Value: d.CurrentStage},
		{Key: "status", Value: d.Status},
		{Key: "formData", Value: d.FormData},
		{Key: "savedStages", Value: d.SavedStages},
		{Key: "lastUpdated", Value: d.LastUpdated},
		{Key: "updatedAt", Value: d.UpdatedAt},
	}
}

func toDomain(d orderDocument) (*order.Order, error) {
	id := d.OrderID
	if id == "" {
		id = d.ID
	}

	formData := make(order.FormData, 0, len(d.FormData))
	for _, e := range d.FormData {
		formData = append(formData, order.FormField{Key: e.Key, Value: scalarString(e.Value)})
	}

	refs, err := decodeSavedStages(d.SavedStages)
	if err != nil {
		return nil, errs.NewStoreFailedError("decode savedStages of "+id, err)
	}
	savedStages, err := order.NormalizeSavedStages(refs)
	if err != nil {
		return nil, errs.NewStoreFailedError("decode savedStages of "+id, err)
	}

	var dateInitiated time.Time
	if d.DateInitiated != "" {
		dateInitiated, err = time.Parse(time.RFC3339Nano, d.DateInitiated)
		if err != nil {
			return nil, errs.NewStoreFailedError("decode dateInitiated of "+id, err)
		}
	}

	status, _ := order.ParseStatus(d.Status)

	return order.RestoreOrder(order.Snapshot{
		ID:            id,
		OrderNumber:   d.OrderNumber,
		CompanyName:   d.CompanyName,
		Product:       d.Product,
		CurrentStage:  order.Stage(d.CurrentStage),
		Status:        status,
		FormData:      formData,
		SavedStages:   savedStages,
		DateInitiated: dateInitiated,
		UpdatedAt:     d.UpdatedAt,
	})
}

func decodeSavedStages(raw bson.A) ([]order.SavedStageRef, error) {
	refs := make([]order.SavedStageRef, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case int32:
			refs = append(refs, order.LegacyStageRef{Stage: order.Stage(v)})
		case int64:
			refs = append(refs, order.LegacyStageRef{Stage: order.Stage(v)})
		case float64:
			refs = append(refs, order.LegacyStageRef{Stage: order.Stage(v)})
		case bson.D:
			for _, e := range v {
				n, err := strconv.Atoi(e.Key)
				if err != nil {
					return nil, fmt.Errorf("%q is not a stage number", e.Key)
				}
				refs = append(refs, order.StageAssignment{Stage: order.Stage(n), EmployeeCode: scalarString(e.Value)})
			}
		default:
			return nil, fmt.Errorf("unsupported savedStages entry %T", item)
		}
	}
	return refs, nil
}

func scalarString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
