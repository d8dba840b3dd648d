package entity

import "github.com/shopspring/decimal"

// LaborFee cargo único por mano de obra y diagnóstico. PriceUSD se deriva de
// PriceINR con la misma regla de conversión que los repuestos; ambos campos
// se reemplazan juntos para que nunca se observen desincronizados.
type LaborFee struct {
	PriceINR decimal.Decimal
	PriceUSD decimal.Decimal
}
