package entity

import "time"

// Carrier transportadora que ejecuta los despachos.
type Carrier struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	TaxID     string    `db:"tax_id"` // CNPJ
	Phone     string    `db:"phone"`
	Email     string    `db:"email"`
	Address   string    `db:"address"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
