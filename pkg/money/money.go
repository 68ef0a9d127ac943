// Package money formatea importes almacenados en centavos.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FromCents convierte centavos a un decimal con dos posiciones.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// Format devuelve el importe en reales con separadores pt-BR, p. ej. "R$ 1.234,56".
func Format(cents int64) string {
	d := FromCents(cents)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	return sign + "R$ " + printer.Sprint(number.Decimal(d.InexactFloat64(), number.Scale(2)))
}
