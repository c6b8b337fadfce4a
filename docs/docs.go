// Package docs holds the OpenAPI description served under /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/orders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List all orders",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.OrderListEnvelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Create an order",
                "parameters": [
                    {"description": "order", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.CreateOrderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.OrderEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/orders/{orderId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Fetch one order",
                "parameters": [
                    {"type": "string", "description": "order id", "name": "orderId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.OrderEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Absent fields are kept. formData is merged key by key and triggers an operator summary.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Merge-update an order",
                "parameters": [
                    {"type": "string", "description": "order id", "name": "orderId", "in": "path", "required": true},
                    {"description": "patch", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.UpdateOrderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.OrderWriteEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/complete-order": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Mark an order completed",
                "parameters": [
                    {"description": "order id", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.CompleteOrderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.OrderWriteEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/next-order-number": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Compute the next order number",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.OrderNumberEnvelope"}}
                }
            }
        },
        "/test-message": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["diagnostics"],
                "summary": "Send an arbitrary message",
                "parameters": [
                    {"description": "message", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.TestMessageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.MessageEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/test-daily-notification": {
            "post": {
                "produces": ["application/json"],
                "tags": ["diagnostics"],
                "summary": "Run the daily summary now",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.DailySummaryEnvelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["diagnostics"],
                "summary": "Store connectivity check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.HealthEnvelope"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/webhook": {
            "post": {
                "description": "Provider form post with Body and From. The reply is sent back to From.",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["webhook"],
                "summary": "Text command channel",
                "parameters": [
                    {"type": "string", "description": "message text", "name": "Body", "in": "formData", "required": true},
                    {"type": "string", "description": "sender address", "name": "From", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.WebhookEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "http.CompleteOrderRequest": {
            "type": "object",
            "properties": {"orderId": {"type": "string", "example": "A1"}}
        },
        "http.CreateOrderRequest": {
            "type": "object",
            "properties": {
                "companyName": {"type": "string", "example": "Acme"},
                "currentStage": {"type": "integer", "example": 1},
                "formData": {"type": "object", "additionalProperties": {"type": "string"}},
                "orderId": {"type": "string", "example": "A1"},
                "orderNumber": {"type": "string", "example": "2024-0001"},
                "product": {"type": "string", "example": "Uniforms"},
                "savedStages": {"type": "array", "items": {"type": "object"}}
            }
        },
        "http.UpdateOrderRequest": {
            "type": "object",
            "properties": {
                "companyName": {"type": "string"},
                "currentStage": {"type": "integer"},
                "formData": {"type": "object", "additionalProperties": {"type": "string"}},
                "orderId": {"type": "string"},
                "orderNumber": {"type": "string"},
                "product": {"type": "string"},
                "savedStages": {"type": "array", "items": {"type": "object"}}
            }
        },
        "http.TestMessageRequest": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "ping"},
                "to": {"type": "string", "example": "+15550001"}
            }
        },
        "http.OrderResponse": {
            "type": "object",
            "properties": {
                "companyName": {"type": "string"},
                "currentStage": {"type": "integer"},
                "dateInitiated": {"type": "string"},
                "formData": {"type": "object", "additionalProperties": {"type": "string"}},
                "lastUpdated": {"type": "string"},
                "orderId": {"type": "string"},
                "orderNumber": {"type": "string"},
                "product": {"type": "string"},
                "savedStages": {"type": "array", "items": {"type": "object"}},
                "stageName": {"type": "string"},
                "status": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "http.OrderEnvelope": {
            "type": "object",
            "properties": {
                "order": {"$ref": "#/definitions/http.OrderResponse"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "http.OrderWriteEnvelope": {
            "type": "object",
            "properties": {
                "notificationSent": {"type": "boolean"},
                "order": {"$ref": "#/definitions/http.OrderResponse"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "http.OrderListEnvelope": {
            "type": "object",
            "properties": {
                "orders": {"type": "array", "items": {"$ref": "#/definitions/http.OrderResponse"}},
                "success": {"type": "boolean", "example": true}
            }
        },
        "http.OrderNumberEnvelope": {
            "type": "object",
            "properties": {
                "orderNumber": {"type": "string", "example": "2024-0007"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "http.MessageEnvelope": {
            "type": "object",
            "properties": {
                "messageId": {"type": "string", "example": "SM0123456789abcdef"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "http.DailySummaryEnvelope": {
            "type": "object",
            "properties": {
                "inProgress": {"type": "integer"},
                "messageId": {"type": "string"},
                "paymentPending": {"type": "integer"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "http.HealthEnvelope": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "http.WebhookEnvelope": {
            "type": "object",
            "properties": {
                "delivered": {"type": "boolean"},
                "reply": {"type": "string"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "http.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string", "example": "order not found"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Order Tracker API",
	Description:      "Order lifecycle tracking with operator notifications.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
