package entity

import "github.com/shopspring/decimal"

// RepairItem representa un equipo en reparación dentro de un recibo.
// El ID es único dentro del recibo mientras la secuencia exista; se asigna
// como len(items)+1, igual que el formulario original (ver DESIGN.md sobre
// la colisión posible tras eliminar y volver a agregar).
type RepairItem struct {
	ID           int
	ItemName     string
	ItemType     string
	SerialNumber string
	Diagnostics  string
	Parts        []RepairPart
}

// RepairPart es un repuesto facturable de un ítem. PriceUSD siempre se deriva
// de PriceINR con la tasa fija; nunca se edita de forma independiente.
type RepairPart struct {
	ID       int
	Name     string
	PriceINR decimal.Decimal
	PriceUSD decimal.Decimal
}
