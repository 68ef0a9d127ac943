package entity

import (
	"strings"
	"time"
)

// Tipos de cliente.
const (
	CustomerKindIndividual = "PF" // persona física
	CustomerKindCompany    = "PJ" // persona jurídica
)

// Potencial comercial.
const (
	PotentialLow    = "Baixo"
	PotentialMedium = "Medio"
	PotentialHigh   = "Alto"
)

// UnknownCustomerName etiqueta cuando el cliente no tiene ningún nombre cargado.
const UnknownCustomerName = "Cliente desconocido"

// Customer cliente (persona física o jurídica).
type Customer struct {
	ID        string    `db:"id"`
	Kind      string    `db:"kind"`
	Name      string    `db:"name"`
	LegalName string    `db:"legal_name"`
	TradeName string    `db:"trade_name"`
	TaxID     string    `db:"tax_id"` // CPF o CNPJ
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Mobile    string    `db:"mobile"`
	Address   string    `db:"address"`
	City      string    `db:"city"`
	State     string    `db:"state"`
	ZipCode   string    `db:"zip_code"`
	Potential string    `db:"potential"`
	Active    bool      `db:"active"`
	Note      string    `db:"note"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// DisplayName nombre a mostrar del cliente.
func (c *Customer) DisplayName() string {
	return DisplayName(c.Name, c.LegalName, c.TradeName)
}

// DisplayName devuelve el primer valor no vacío entre nombre, razón social y nombre
// de fantasía; si todos están vacíos, UnknownCustomerName. Toda lectura que muestre
// un cliente pasa por aquí.
func DisplayName(name, legalName, tradeName string) string {
	for _, s := range []string{name, legalName, tradeName} {
		if v := strings.TrimSpace(s); v != "" {
			return v
		}
	}
	return UnknownCustomerName
}

// CustomerRef columnas de cliente traídas por LEFT JOIN en otras lecturas.
type CustomerRef struct {
	CustomerName      string `db:"customer_name"`
	CustomerLegalName string `db:"customer_legal_name"`
	CustomerTradeName string `db:"customer_trade_name"`
}

// CustomerDisplayName nombre a mostrar del cliente referenciado.
func (r CustomerRef) CustomerDisplayName() string {
	return DisplayName(r.CustomerName, r.CustomerLegalName, r.CustomerTradeName)
}
