package entity

import "time"

// DefaultUnit unidad de medida por defecto.
const DefaultUnit = "UN"

// Product representa una mercadería del catálogo con su existencia física.
// OnHandQuantity solo cambia vía movimientos de stock y despachos; nunca es negativo.
type Product struct {
	ID             string    `db:"id"`
	Name           string    `db:"name"`
	SKU            string    `db:"sku"`
	CategoryID     *string   `db:"category_id"`
	Description    string    `db:"description"`
	CostPrice      int64     `db:"cost_price"` // centavos
	SalePrice      int64     `db:"sale_price"` // centavos
	OnHandQuantity int64     `db:"on_hand_quantity"`
	Unit           string    `db:"unit"`
	Active         bool      `db:"active"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// ProductView producto con el nombre de su categoría (lecturas).
type ProductView struct {
	Product
	CategoryName string `db:"category_name"`
}
