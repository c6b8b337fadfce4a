package http

import (
	"ordertracker/internal/core/domain/model/order"
)

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	OrderID      string               `json:"orderId" validate:"notblank" example:"A1"`
	OrderNumber  string               `json:"orderNumber" example:"2024-0001"`
	CompanyName  string               `json:"companyName" example:"Acme"`
	Product      string               `json:"product" example:"Uniforms"`
	CurrentStage int                  `json:"currentStage" example:"1"`
	FormData     order.FormData       `json:"formData" swaggertype:"object,string"`
	SavedStages  order.SavedStageRefs `json:"savedStages" swaggertype:"array,object"`
}

func (r CreateOrderRequest) details() order.Details {
	return order.Details{
		OrderNumber:  r.OrderNumber,
		CompanyName:  r.CompanyName,
		Product:      r.Product,
		CurrentStage: order.Stage(r.CurrentStage),
		FormData:     r.FormData,
		SavedStages:  r.SavedStages,
	}
}

// UpdateOrderRequest is the body of PUT /orders/{orderId}. Absent fields
// are left untouched. orderId may be repeated in the body but must match the
// path.
type UpdateOrderRequest struct {
	OrderID      string               `json:"orderId"`
	OrderNumber  *string              `json:"orderNumber"`
	CompanyName  *string              `json:"companyName"`
	Product      *string              `json:"product"`
	CurrentStage *int                 `json:"currentStage"`
	FormData     order.FormData       `json:"formData" swaggertype:"object,string"`
	SavedStages  order.SavedStageRefs `json:"savedStages" swaggertype:"array,object"`
}

func (r UpdateOrderRequest) patch() order.Patch {
	p := order.Patch{
		OrderNumber: r.OrderNumber,
		CompanyName: r.CompanyName,
		Product:     r.Product,
		FormData:    r.FormData,
	}
	if r.CurrentStage != nil {
		stage := order.Stage(*r.CurrentStage)
		p.CurrentStage = &stage
	}
	if r.SavedStages != nil {
		p.SavedStages = r.SavedStages
	}
	return p
}

// CompleteOrderRequest is the body of POST /complete-order.
type CompleteOrderRequest struct {
	OrderID string `json:"orderId" validate:"notblank" example:"A1"`
}

// TestMessageRequest is the body of POST /test-message.
type TestMessageRequest struct {
	To      string `json:"to" validate:"notblank" example:"+15550001"`
	Message string `json:"message" validate:"notblank" example:"ping"`
}
