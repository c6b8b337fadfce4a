package http

import (
	"time"

	"ordertracker/internal/core/domain/model/order"
)

type ErrorResponse struct {
	Error string `json:"error" example:"order not found"`
}

type OrderResponse struct {
	OrderID       string                  `json:"orderId"`
	OrderNumber   string                  `json:"orderNumber"`
	CompanyName   string                  `json:"companyName"`
	Product       string                  `json:"product"`
	CurrentStage  int                     `json:"currentStage"`
	StageName     string                  `json:"stageName"`
	Status        string                  `json:"status"`
	FormData      order.FormData          `json:"formData" swaggertype:"object,string"`
	SavedStages   []order.StageAssignment `json:"savedStages" swaggertype:"array,object"`
	DateInitiated string                  `json:"dateInitiated"`
	LastUpdated   string                  `json:"lastUpdated"`
	UpdatedAt     time.Time               `json:"updatedAt"`
}

func newOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		OrderID:       o.ID(),
		OrderNumber:   o.OrderNumber(),
		CompanyName:   o.CompanyName(),
		Product:       o.Product(),
		CurrentStage:  int(o.CurrentStage()),
		StageName:     o.CurrentStage().Name(),
		Status:        o.Status().String(),
		FormData:      o.FormData(),
		SavedStages:   o.SavedStages(),
		DateInitiated: order.FormatTimestamp(o.DateInitiated()),
		LastUpdated:   o.LastUpdated(),
		UpdatedAt:     o.UpdatedAt().UTC(),
	}
}

type OrderEnvelope struct {
	Success bool          `json:"success" example:"true"`
	Order   OrderResponse `json:"order"`
}

type OrderWriteEnvelope struct {
	Success          bool          `json:"success" example:"true"`
	Order            OrderResponse `json:"order"`
	NotificationSent bool          `json:"notificationSent"`
}

type OrderListEnvelope struct {
	Success bool            `json:"success" example:"true"`
	Orders  []OrderResponse `json:"orders"`
}

type OrderNumberEnvelope struct {
	Success     bool   `json:"success" example:"true"`
	OrderNumber string `json:"orderNumber" example:"2024-0007"`
}

type MessageEnvelope struct {
	Success   bool   `json:"success" example:"true"`
	MessageID string `json:"messageId" example:"SM0123456789abcdef"`
}

type DailySummaryEnvelope struct {
	Success        bool   `json:"success" example:"true"`
	InProgress     int    `json:"inProgress"`
	PaymentPending int    `json:"paymentPending"`
	MessageID      string `json:"messageId"`
}

type HealthEnvelope struct {
	Success bool   `json:"success" example:"true"`
	Status  string `json:"status" example:"ok"`
}

type WebhookEnvelope struct {
	Success   bool   `json:"success" example:"true"`
	Reply     string `json:"reply"`
	Delivered bool   `json:"delivered"`
}
