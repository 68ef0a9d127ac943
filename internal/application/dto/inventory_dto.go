package dto

import "time"

// RegisterMovementRequest body para POST /api/stock/movements.
type RegisterMovementRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Direction string `json:"direction" validate:"required,oneof=inbound outbound"`
	Quantity  int64  `json:"quantity" validate:"gt=0"`
	Reason    string `json:"reason" validate:"max=200"`
	Note      string `json:"note" validate:"max=2000"`
}

// MovementResponse movimiento con producto y usuario.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	ProductSKU  string    `json:"product_sku"`
	Direction   string    `json:"direction"`
	Quantity    int64     `json:"quantity"`
	Reason      string    `json:"reason"`
	Note        string    `json:"note"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateDispatchRequest body para POST /api/dispatches. Un despacho no nace cancelado.
type CreateDispatchRequest struct {
	CustomerID   string     `json:"customer_id" validate:"required,uuid"`
	ProductID    string     `json:"product_id" validate:"required,uuid"`
	Quantity     int64      `json:"quantity" validate:"gt=0"`
	TrackingCode string     `json:"tracking_code" validate:"max=100"`
	CarrierID    *string    `json:"carrier_id" validate:"omitempty,uuid"`
	Status       string     `json:"status" validate:"omitempty,oneof=pending in_transit delivered"`
	Note         string     `json:"note" validate:"max=2000"`
	DispatchedAt *time.Time `json:"dispatched_at"`
	DeliveredAt  *time.Time `json:"delivered_at"`
}

// UpdateDispatchRequest actualización parcial. ProductID y Quantity solo se aceptan si
// coinciden con los actuales.
type UpdateDispatchRequest struct {
	CustomerID   *string    `json:"customer_id" validate:"omitempty,uuid"`
	ProductID    *string    `json:"product_id" validate:"omitempty,uuid"`
	Quantity     *int64     `json:"quantity" validate:"omitempty,gt=0"`
	TrackingCode *string    `json:"tracking_code" validate:"omitempty,max=100"`
	CarrierID    *string    `json:"carrier_id" validate:"omitempty,uuid|len=0"`
	Status       *string    `json:"status" validate:"omitempty,oneof=pending in_transit delivered cancelled"`
	Note         *string    `json:"note" validate:"omitempty,max=2000"`
	DispatchedAt *time.Time `json:"dispatched_at"`
	DeliveredAt  *time.Time `json:"delivered_at"`
}

// DispatchFilter filtros de GET /api/dispatches.
type DispatchFilter struct {
	Status     string `query:"status" validate:"omitempty,oneof=pending in_transit delivered cancelled"`
	CustomerID string `query:"customer_id" validate:"omitempty,uuid"`
	CarrierID  string `query:"carrier_id" validate:"omitempty,uuid"`
}

// DispatchResponse despacho con nombres de cliente, mercadería, transportadora y usuario.
type DispatchResponse struct {
	ID           string     `json:"id"`
	CustomerID   string     `json:"customer_id"`
	CustomerName string     `json:"customer_name"`
	ProductID    string     `json:"product_id"`
	ProductName  string     `json:"product_name"`
	ProductSKU   string     `json:"product_sku"`
	Quantity     int64      `json:"quantity"`
	TrackingCode string     `json:"tracking_code"`
	CarrierID    *string    `json:"carrier_id"`
	CarrierName  string     `json:"carrier_name"`
	Status       string     `json:"status"`
	Note         string     `json:"note"`
	UserID       string     `json:"user_id"`
	UserName     string     `json:"user_name"`
	DispatchedAt time.Time  `json:"dispatched_at"`
	DeliveredAt  *time.Time `json:"delivered_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TrackingResponse vista pública de rastreo.
type TrackingResponse struct {
	TrackingCode string     `json:"tracking_code"`
	CustomerName string     `json:"customer_name"`
	ProductName  string     `json:"product_name"`
	Quantity     int64      `json:"quantity"`
	CarrierName  string     `json:"carrier_name"`
	Status       string     `json:"status"`
	DispatchedAt time.Time  `json:"dispatched_at"`
	DeliveredAt  *time.Time `json:"delivered_at"`
}

// MovementFilter filtros de GET /api/stock/movements.
type MovementFilter struct {
	ProductID string `query:"product_id" validate:"omitempty,uuid"`
	Direction string `query:"direction" validate:"omitempty,oneof=inbound outbound"`
}
