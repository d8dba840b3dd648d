package entity

// ReceiptData es el registro raíz de una factura de reparación de cámaras.
// Se crea con valores por defecto al abrir una sesión, se edita campo a campo
// y queda congelado como snapshot en el momento del envío.
//
// Las fechas se guardan como string "YYYY-MM-DD" tal como llegan del
// formulario; el documento las imprime sin reinterpretar.
type ReceiptData struct {
	CaseID       string
	InvoiceRef   string
	ServiceOrder string

	PaymentMethod string
	Date          string
	Disclaimer    string

	StoreInfo StoreInfo

	CustomerName    string
	CustomerAddress string
	CustomerPhone   string

	RepairAgent RepairAgent

	// RepairItems nunca queda vacío: la sesión nace con un ítem y la
	// eliminación del último se rechaza.
	RepairItems []RepairItem

	LaborAndDiagnosticFees LaborFee
}

// FindItem devuelve el ítem con ese id, o nil si no existe.
func (r *ReceiptData) FindItem(id int) *RepairItem {
	for i := range r.RepairItems {
		if r.RepairItems[i].ID == id {
			return &r.RepairItems[i]
		}
	}
	return nil
}

// Clone devuelve una copia profunda del recibo. Se usa al enviar el formulario
// para entregar al renderizador un snapshot inmutable.
func (r *ReceiptData) Clone() *ReceiptData {
	out := *r
	out.RepairItems = make([]RepairItem, len(r.RepairItems))
	for i, item := range r.RepairItems {
		out.RepairItems[i] = item
		out.RepairItems[i].Parts = append([]RepairPart(nil), item.Parts...)
	}
	return &out
}
