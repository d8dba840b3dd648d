// Package render construye el modelo de vista único del recibo.
//
// Las tres salidas (vista previa JSON, PDF y JPEG) consumen el mismo Document,
// con las mismas secciones en el mismo orden y los montos ya formateados como
// texto. Así el contrato de presentación se cumple por construcción: cambiar
// una sección aquí cambia las tres vistas a la vez.
//
// Orden de secciones:
//
//	1. Encabezado  (identidad del negocio + logo | título + referencias)
//	2. Cliente
//	3. Agente de reparación
//	4. Un bloque por ítem (campos + tabla de repuestos)
//	5. Mano de obra y diagnóstico
//	6. Totales
//	7. Disclaimer (un párrafo por línea del texto guardado)
//	8. Firmas (dos partes)
package render

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recibos-api/internal/domain/entity"
)

// Field par etiqueta/valor de una sección.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// StoreBlock encabezado izquierdo: identidad del negocio.
type StoreBlock struct {
	Name        string   `json:"name"`
	LogoDataURL string   `json:"logo_data_url,omitempty"`
	Lines       []string `json:"lines"` // dirección, email, teléfono
}

// PartRow fila de la tabla de repuestos: nombre, INR, USD.
type PartRow [3]string

// ItemBlock bloque de un ítem de reparación.
type ItemBlock struct {
	Title       string    `json:"title"` // "Item #1", "Item #2", ...
	Fields      []Field   `json:"fields"`
	PartsHeader [3]string `json:"parts_header"`
	Parts       []PartRow `json:"parts"`
}

// Document modelo de vista completo de un recibo enviado.
type Document struct {
	Title    string     `json:"title"`
	CaseID   string     `json:"case_id"` // para el nombre de archivo de exportación
	Store    StoreBlock `json:"store"`
	Refs     []Field    `json:"refs"`
	Customer []Field    `json:"customer"`
	Agent    []Field    `json:"agent"`
	Items    []ItemBlock `json:"items"`
	Labor    []Field    `json:"labor"`
	TotalINR string     `json:"total_inr"`
	TotalUSD string     `json:"total_usd"`

	DisclaimerTitle string   `json:"disclaimer_title"`
	Disclaimer      []string `json:"disclaimer"`

	Signatures [2]string `json:"signatures"`
}

// BuildDocument proyecta un snapshot inmutable del recibo al modelo de vista.
// Es una función pura: mismo recibo, mismo documento.
func BuildDocument(r *entity.ReceiptData) *Document {
	totalINR, totalUSD := r.Totals()

	doc := &Document{
		Title:  "Repair Invoice",
		CaseID: r.CaseID,
		Store: StoreBlock{
			Name:        r.StoreInfo.Name,
			LogoDataURL: r.StoreInfo.LogoURL,
			Lines: []string{
				r.StoreInfo.Address,
				"Email: " + r.StoreInfo.Email,
				"Phone: " + r.StoreInfo.Phone,
			},
		},
		Refs: []Field{
			{Label: "Case ID:", Value: r.CaseID},
			{Label: "Invoice Ref #:", Value: r.InvoiceRef},
			{Label: "Service Order #:", Value: r.ServiceOrder},
		},
		Customer: []Field{
			{Label: "Name:", Value: r.CustomerName},
			{Label: "Address:", Value: r.CustomerAddress},
			{Label: "Phone:", Value: r.CustomerPhone},
		},
		Agent: []Field{
			{Label: "Name:", Value: r.RepairAgent.Name},
			{Label: "Genius ID:", Value: r.RepairAgent.GeniusID},
			{Label: "Store Number:", Value: r.RepairAgent.StoreNumber},
			{Label: "Submitted On:", Value: r.RepairAgent.SubmittedDate},
		},
		Labor: []Field{
			{Label: "Price (INR):", Value: FormatINR(r.LaborAndDiagnosticFees.PriceINR)},
			{Label: "Price (USD):", Value: FormatUSD(r.LaborAndDiagnosticFees.PriceUSD)},
		},
		TotalINR:        FormatINR(totalINR),
		TotalUSD:        FormatUSD(totalUSD),
		DisclaimerTitle: "Disclaimer",
		Disclaimer:      splitParagraphs(r.Disclaimer),
		Signatures:      [2]string{"Repair Genius's Signature", "Customer's Signature"},
	}

	for i, item := range r.RepairItems {
		block := ItemBlock{
			Title: fmt.Sprintf("Item #%d", i+1),
			Fields: []Field{
				{Label: "Item Name:", Value: item.ItemName},
				{Label: "Item Type:", Value: item.ItemType},
				{Label: "Serial Number:", Value: item.SerialNumber},
				{Label: "Diagnostics:", Value: item.Diagnostics},
			},
			PartsHeader: [3]string{"Part Name", "Price (INR)", "Price (USD)"},
		}
		for _, part := range item.Parts {
			block.Parts = append(block.Parts, PartRow{
				part.Name,
				FormatINR(part.PriceINR),
				FormatUSD(part.PriceUSD),
			})
		}
		doc.Items = append(doc.Items, block)
	}

	return doc
}

// splitParagraphs parte el disclaimer en un párrafo por línea, descartando
// líneas vacías.
func splitParagraphs(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// FormatINR formatea un monto en rupias con agrupación india de dígitos:
// los últimos tres, luego grupos de dos. Ej: "150000" → "1,50,000".
// Los decimales, si existen, se conservan tal cual.
func FormatINR(d decimal.Decimal) string {
	s := d.String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	grouped := groupIndian(intPart)
	if hasFrac {
		grouped += "." + frac
	}
	if neg {
		grouped = "-" + grouped
	}
	return grouped
}

// FormatUSD formatea un monto en dólares siempre con dos decimales.
func FormatUSD(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// groupIndian inserta comas al estilo indio: "1234567" → "12,34,567".
func groupIndian(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	head := s[:n-3]
	out := s[n-3:]
	for len(head) > 2 {
		out = head[len(head)-2:] + "," + out
		head = head[:len(head)-2]
	}
	return head + "," + out
}
