package entity

import "time"

// Dirección de un movimiento de stock.
const (
	DirectionInbound  = "inbound"  // entrada
	DirectionOutbound = "outbound" // salida
)

// Motivos registrados automáticamente por el sistema.
const (
	ReasonDispatch             = "Despacho"
	ReasonDispatchCancellation = "Cancelación de despacho"
)

// IsValidDirection indica si d es inbound u outbound.
func IsValidDirection(d string) bool {
	return d == DirectionInbound || d == DirectionOutbound
}

// SignedDelta devuelve la variación de existencia que produce el movimiento.
func SignedDelta(direction string, quantity int64) int64 {
	if direction == DirectionOutbound {
		return -quantity
	}
	return quantity
}

// StockMovement registro inmutable del libro de movimientos. Solo se agregan filas.
type StockMovement struct {
	ID        string    `db:"id"`
	ProductID string    `db:"product_id"`
	Direction string    `db:"direction"`
	Quantity  int64     `db:"quantity"` // siempre positivo; el signo lo da Direction
	Reason    string    `db:"reason"`
	Note      string    `db:"note"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

// StockMovementView movimiento con datos de producto y usuario.
type StockMovementView struct {
	StockMovement
	ProductName string `db:"product_name"`
	ProductSKU  string `db:"product_sku"`
	UserName    string `db:"user_name"`
}
