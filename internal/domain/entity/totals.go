package entity

import "github.com/shopspring/decimal"

// Totals suma la mano de obra más el precio de todas las partes de todos los
// ítems, en ambas monedas. Aquí no se re-convierte moneda: los USD por parte
// ya vienen derivados al momento de la captura y se suman tal cual. Tampoco
// se redondea el total (el redondeo ocurre solo al derivar cada campo).
//
// Es el único punto del sistema que calcula totales; la vista previa, el PDF
// y el JPEG lo consumen a través del mismo modelo de documento.
func (r *ReceiptData) Totals() (totalINR, totalUSD decimal.Decimal) {
	totalINR = r.LaborAndDiagnosticFees.PriceINR
	totalUSD = r.LaborAndDiagnosticFees.PriceUSD
	for _, item := range r.RepairItems {
		for _, part := range item.Parts {
			totalINR = totalINR.Add(part.PriceINR)
			totalUSD = totalUSD.Add(part.PriceUSD)
		}
	}
	return totalINR, totalUSD
}
