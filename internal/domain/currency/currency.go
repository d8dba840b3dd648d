// Package currency implementa la regla única de conversión INR→USD del
// recibo. La tasa es una constante fija del producto (no se consulta a ningún
// proveedor de tasas): los montos en USD son solo referencia para el cliente,
// el pago siempre es en rupias.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RateINRUSD tasa fija de conversión. 1 INR ≈ 0.012 USD (aprox 1/86).
var RateINRUSD = decimal.NewFromFloat(0.012)

// ToUSD deriva el monto en USD: round(inr × tasa, 2). Esta función es la
// misma para la mano de obra y para cada repuesto; no debe reimplementarse
// en otro lugar.
func ToUSD(inr decimal.Decimal) decimal.Decimal {
	return inr.Mul(RateINRUSD).Round(2)
}

// ParseINR interpreta la entrada del usuario como decimal no negativo.
// Entrada vacía o no numérica se convierte en cero sin reportar error (el
// formulario original hacía `parseFloat(value) || 0`). Los negativos también
// se fuerzan a cero: los precios del dominio son no negativos.
func ParseINR(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
