// Package orderrepo persists order aggregates in PostgreSQL through GORM.
//
// Form answers and stage sign-offs are stored in json (not jsonb) columns so
// the key order written by the client is preserved verbatim.
package orderrepo

import (
	"encoding/json"
	"time"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"
)

// OrderDTO is the row layout of the orders table.
type OrderDTO struct {
	OrderID       string    `gorm:"column:order_id;primaryKey"`
	OrderNumber   string    `gorm:"index"`
	CompanyName   string
	Product       string
	CurrentStage  int       `gorm:"type:smallint"`
	Status        string    `gorm:"index"`
	FormData      string    `gorm:"type:json"`
	SavedStages   string    `gorm:"type:json"`
	DateInitiated time.Time
	LastUpdated   string
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false"`
}

// TableName keeps the collection name used by every store driver.
func (OrderDTO) TableName() string {
	return "orders"
}

// mutableColumns are rewritten by Update. order_id and date_initiated are not.
var mutableColumns = []string{
	"order_number",
	"company_name",
	"product",
	"current_stage",
	"status",
	"form_data",
	"saved_stages",
	"last_updated",
	"updated_at",
}

func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	s := aggregate.Snapshot()

	formData, err := json.Marshal(s.FormData)
	if err != nil {
		return OrderDTO{}, err
	}
	savedStages, err := json.Marshal(s.SavedStages)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		OrderID:       s.ID,
		OrderNumber:   s.OrderNumber,
		CompanyName:   s.CompanyName,
		Product:       s.Product,
		CurrentStage:  int(s.CurrentStage),
		Status:        s.Status.String(),
		FormData:      string(formData),
		SavedStages:   string(savedStages),
		DateInitiated: s.DateInitiated.UTC(),
		LastUpdated:   aggregate.LastUpdated(),
		UpdatedAt:     s.UpdatedAt.UTC(),
	}, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	var formData order.FormData
	if dto.FormData != "" {
		if err := json.Unmarshal([]byte(dto.FormData), &formData); err != nil {
			return nil, errs.NewStoreFailedError("decode formData of "+dto.OrderID, err)
		}
	}

	var refs order.SavedStageRefs
	if dto.SavedStages != "" {
		if err := json.Unmarshal([]byte(dto.SavedStages), &refs); err != nil {
			return nil, errs.NewStoreFailedError("decode savedStages of "+dto.OrderID, err)
		}
	}
	savedStages, err := order.NormalizeSavedStages(refs)
	if err != nil {
		return nil, errs.NewStoreFailedError("decode savedStages of "+dto.OrderID, err)
	}

	status, _ := order.ParseStatus(dto.Status)

	return order.RestoreOrder(order.Snapshot{
		ID:            dto.OrderID,
		OrderNumber:   dto.OrderNumber,
		CompanyName:   dto.CompanyName,
		Product:       dto.Product,
		CurrentStage:  order.Stage(dto.CurrentStage),
		Status:        status,
		FormData:      formData,
		SavedStages:   savedStages,
		DateInitiated: dto.DateInitiated,
		UpdatedAt:     dto.UpdatedAt,
	})
}
