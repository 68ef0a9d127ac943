package dto

import "time"

// OrderItemRequest línea de un pedido. El total de la línea lo calcula el servidor.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int64  `json:"quantity" validate:"gt=0"`
	UnitPrice int64  `json:"unit_price" validate:"gte=0"`
	Discount  int64  `json:"discount" validate:"gte=0"`
}

// CreateSalesOrderRequest body para POST /api/sales-orders. No acepta total: se recalcula.
type CreateSalesOrderRequest struct {
	CustomerID string             `json:"customer_id" validate:"required,uuid"`
	Number     string             `json:"number" validate:"required,min=1,max=50"`
	Status     string             `json:"status" validate:"omitempty,oneof=draft approved invoiced cancelled"`
	Discount   int64              `json:"discount" validate:"gte=0"`
	Note       string             `json:"note" validate:"max=2000"`
	IssuedAt   *time.Time         `json:"issued_at"`
	Items      []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateSalesOrderRequest actualización parcial. Items presente (no nulo) reemplaza
// todas las líneas y debe tener al menos una.
type UpdateSalesOrderRequest struct {
	CustomerID *string            `json:"customer_id" validate:"omitempty,uuid"`
	Number     *string            `json:"number" validate:"omitempty,min=1,max=50"`
	Status     *string            `json:"status" validate:"omitempty,oneof=draft approved invoiced cancelled"`
	Discount   *int64             `json:"discount" validate:"omitempty,gte=0"`
	Note       *string            `json:"note" validate:"omitempty,max=2000"`
	IssuedAt   *time.Time         `json:"issued_at"`
	Items      []OrderItemRequest `json:"items" validate:"omitempty,min=1,dive"`
}

// OrderItemResponse línea con el nombre de la mercadería.
type OrderItemResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	ProductSKU  string `json:"product_sku"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	Discount    int64  `json:"discount"`
	Total       int64  `json:"total"`
}

// SalesOrderResponse cabecera del pedido; Items solo viene en el detalle.
type SalesOrderResponse struct {
	ID           string              `json:"id"`
	CustomerID   string              `json:"customer_id"`
	CustomerName string              `json:"customer_name"`
	Number       string              `json:"number"`
	Status       string              `json:"status"`
	Total        int64               `json:"total"`
	Discount     int64               `json:"discount"`
	Note         string              `json:"note"`
	UserID       string              `json:"user_id"`
	UserName     string              `json:"user_name"`
	IssuedAt     time.Time           `json:"issued_at"`
	ApprovedAt   *time.Time          `json:"approved_at"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	Items        []OrderItemResponse `json:"items,omitempty"`
}
