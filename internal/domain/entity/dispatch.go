package entity

import "time"

// Estados de un despacho.
const (
	DispatchPending   = "pending"
	DispatchInTransit = "in_transit"
	DispatchDelivered = "delivered"
	DispatchCancelled = "cancelled"
)

// IsValidDispatchStatus indica si s es un estado de despacho conocido.
func IsValidDispatchStatus(s string) bool {
	switch s {
	case DispatchPending, DispatchInTransit, DispatchDelivered, DispatchCancelled:
		return true
	}
	return false
}

// Dispatch envío de una cantidad de mercadería a un cliente.
type Dispatch struct {
	ID           string     `db:"id"`
	CustomerID   string     `db:"customer_id"`
	ProductID    string     `db:"product_id"`
	Quantity     int64      `db:"quantity"`
	TrackingCode string     `db:"tracking_code"`
	CarrierID    *string    `db:"carrier_id"`
	Status       string     `db:"status"`
	Note         string     `db:"note"`
	UserID       string     `db:"user_id"`
	DispatchedAt time.Time  `db:"dispatched_at"`
	DeliveredAt  *time.Time `db:"delivered_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// DispatchView despacho con los nombres de las entidades relacionadas.
type DispatchView struct {
	Dispatch
	CustomerRef
	ProductName string `db:"product_name"`
	ProductSKU  string `db:"product_sku"`
	CarrierName string `db:"carrier_name"`
	UserName    string `db:"user_name"`
}
