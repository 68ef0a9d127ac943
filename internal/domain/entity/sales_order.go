package entity

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrAmountOverflow el importe no cabe en int64 centavos.
var ErrAmountOverflow = errors.New("importe fuera de rango")

// Estados de un pedido de venta.
const (
	OrderDraft     = "draft"
	OrderApproved  = "approved"
	OrderInvoiced  = "invoiced"
	OrderCancelled = "cancelled"
)

// SalesOrder pedido de venta (cabecera). Total siempre se recalcula a partir de los ítems.
type SalesOrder struct {
	ID         string           `db:"id"`
	CustomerID string           `db:"customer_id"`
	Number     string           `db:"number"`
	Status     string           `db:"status"`
	Total      int64            `db:"total"`    // centavos
	Discount   int64            `db:"discount"` // centavos, sobre la suma de líneas
	Note       string           `db:"note"`
	UserID     string           `db:"user_id"`
	IssuedAt   time.Time        `db:"issued_at"`
	ApprovedAt *time.Time       `db:"approved_at"`
	CreatedAt  time.Time        `db:"created_at"`
	UpdatedAt  time.Time        `db:"updated_at"`
	Items      []SalesOrderItem `db:"-"`
}

// SalesOrderItem línea del pedido.
type SalesOrderItem struct {
	ID        string    `db:"id"`
	OrderID   string    `db:"order_id"`
	ProductID string    `db:"product_id"`
	Quantity  int64     `db:"quantity"`
	UnitPrice int64     `db:"unit_price"` // centavos
	Discount  int64     `db:"discount"`   // centavos
	Total     int64     `db:"total"`
	CreatedAt time.Time `db:"created_at"`
}

// LineTotal cantidad × precio unitario − descuento. Devuelve ErrAmountOverflow si el
// producto no cabe en int64.
func LineTotal(quantity, unitPrice, discount int64) (int64, error) {
	if quantity < 0 || unitPrice < 0 || discount < 0 {
		return 0, fmt.Errorf("cantidad, precio y descuento no pueden ser negativos")
	}
	if unitPrice != 0 && quantity > math.MaxInt64/unitPrice {
		return 0, ErrAmountOverflow
	}
	return quantity*unitPrice - discount, nil
}

// Recalculate recalcula el total de cada línea y el total de la cabecera.
// Falla si alguna línea o el total quedan negativos o fuera de rango.
func (o *SalesOrder) Recalculate() error {
	var sum int64
	for i := range o.Items {
		it := &o.Items[i]
		total, err := LineTotal(it.Quantity, it.UnitPrice, it.Discount)
		if err != nil {
			return fmt.Errorf("ítem %d: %w", i+1, err)
		}
		if total < 0 {
			return fmt.Errorf("ítem %d: el descuento supera el subtotal", i+1)
		}
		if sum > math.MaxInt64-total {
			return fmt.Errorf("suma de ítems: %w", ErrAmountOverflow)
		}
		it.Total = total
		sum += total
	}
	total := sum - o.Discount
	if total < 0 {
		return fmt.Errorf("el descuento del pedido supera la suma de los ítems")
	}
	o.Total = total
	return nil
}

// SalesOrderView pedido con cliente y responsable.
type SalesOrderView struct {
	SalesOrder
	CustomerRef
	UserName string `db:"user_name"`
}

// SalesOrderItemView línea con el nombre de la mercadería.
type SalesOrderItemView struct {
	SalesOrderItem
	ProductName string `db:"product_name"`
	ProductSKU  string `db:"product_sku"`
}
