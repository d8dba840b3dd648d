// Package pdf implementa la exportación paginada del recibo de reparación
// usando Maroto v2.
//
// Layout de la página A4 (mismo orden de secciones que la vista previa y el
// JPEG; el orden vive en render.Document, aquí solo se dibuja):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Logo + Negocio       │  "Repair Invoice" + Refs    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUSTOMER INFORMATION                                       │
//	│  REPAIR AGENT                                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ITEM #n: campos + tabla Part | INR | USD                   │
//	│  LABOR & DIAGNOSTIC FEES                                    │
//	│  TOTAL (INR) / TOTAL (USD)                                  │
//	│  DISCLAIMER (un párrafo por línea)                          │
//	│  FIRMAS: técnico | cliente                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Recibos-api/internal/application/render"
	"github.com/jhoicas/Recibos-api/pkg/dataurl"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 17, Green: 24, Blue: 39}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoDocumentGenerator implementa receipt.DocumentPDFGenerator usando
// Maroto v2.
type MarotoDocumentGenerator struct{}

// NewMarotoDocumentGenerator construye el generador.
func NewMarotoDocumentGenerator() *MarotoDocumentGenerator { return &MarotoDocumentGenerator{} }

// Generate dibuja el modelo de documento y devuelve los bytes del PDF.
func (g *MarotoDocumentGenerator) Generate(_ context.Context, d *render.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(d.Title, true).
		WithAuthor(d.Store.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(d))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRows("Customer Information", d.Customer)...)
	m.AddRows(sectionRows("Repair Agent", d.Agent)...)

	for _, item := range d.Items {
		m.AddRows(itemRows(item)...)
	}

	m.AddRows(sectionRows("Labor & Diagnostic Fees", d.Labor)...)

	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRow(d))

	m.AddRows(disclaimerRows(d)...)
	m.AddRows(row.New(14)) // aire antes de las firmas
	m.AddRows(signatureRow(d))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: logo + identidad del negocio (izq), título + referencias (der).
func headerRow(d *render.Document) core.Row {
	left := col.New(7)
	top := 1.0
	if logo := logoComponent(d.Store.LogoDataURL); logo != nil {
		left.Add(logo)
		top = 24
	}
	left.Add(text.New(d.Store.Name, props.Text{
		Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: top,
	}))
	for i, l := range d.Store.Lines {
		left.Add(text.New(l, props.Text{
			Size: 8, Color: colorGray, Top: top + 7 + float64(i)*4,
		}))
	}

	right := col.New(5).Add(text.New(d.Title, props.Text{
		Style: fontstyle.Bold, Size: 18, Align: align.Right, Color: colorPrimary, Top: 1,
	}))
	for i, ref := range d.Refs {
		right.Add(text.New(ref.Label+" "+ref.Value, props.Text{
			Size: 8, Align: align.Right, Color: colorGray, Top: 10 + float64(i)*4,
		}))
	}

	height := 26.0
	if d.Store.LogoDataURL != "" {
		height = 48
	}
	return row.New(height).Add(left, right)
}

// logoComponent decodifica la data URL del logo; devuelve nil si no hay logo
// o el formato no es embebible en el PDF.
func logoComponent(logoURL string) core.Component {
	if logoURL == "" {
		return nil
	}
	mediaType, data, err := dataurl.Decode(logoURL)
	if err != nil {
		return nil
	}
	var ext extension.Type
	switch mediaType {
	case "image/png":
		ext = extension.Png
	case "image/jpeg", "image/jpg":
		ext = extension.Jpg
	default:
		return nil
	}
	return image.NewFromBytes(data, ext, props.Rect{Percent: 40})
}

// sectionRows: título de sección + una fila etiqueta/valor por campo.
func sectionRows(title string, fields []render.Field) []core.Row {
	rows := []core.Row{sectionTitleRow(title)}
	for _, f := range fields {
		rows = append(rows, row.New(5).Add(
			col.New(3).Add(text.New(f.Label, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 0.5,
			})),
			col.New(9).Add(text.New(f.Value, props.Text{
				Size: 9, Top: 0.5,
			})),
		))
	}
	return rows
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(text.New(title, props.Text{
		Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2,
	})))
}

// itemRows: campos del ítem + tabla de repuestos (si tiene).
func itemRows(item render.ItemBlock) []core.Row {
	rows := sectionRows(item.Title, item.Fields)

	if len(item.Parts) == 0 {
		return rows
	}

	rows = append(rows, row.New(6).Add(
		partCol(6, item.PartsHeader[0], align.Left, true),
		partCol(3, item.PartsHeader[1], align.Right, true),
		partCol(3, item.PartsHeader[2], align.Right, true),
	))
	rows = append(rows, line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, p := range item.Parts {
		rows = append(rows, row.New(5).Add(
			partCol(6, p[0], align.Left, false),
			partCol(3, p[1], align.Right, false),
			partCol(3, p[2], align.Right, false),
		))
	}
	return rows
}

func partCol(size int, value string, a align.Type, header bool) core.Col {
	style := fontstyle.Normal
	fontSize := 8.5
	if header {
		style = fontstyle.Bold
		fontSize = 9
	}
	return col.New(size).Add(text.New(value, props.Text{
		Style: style, Size: fontSize, Align: a, Top: 0.5, Left: 1, Right: 1,
	}))
}

// totalsRow: totales alineados a la derecha, sin redondeo propio — imprime
// los strings que ya trae el modelo de documento.
func totalsRow(d *render.Document) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Right: 1,
		})
	}
	return row.New(8).Add(
		col.New(4),
		col.New(2).Add(label("Total (INR):")),
		col.New(2).Add(value(d.TotalINR)),
		col.New(2).Add(label("Total (USD):")),
		col.New(2).Add(value(d.TotalUSD)),
	)
}

// disclaimerRows: título + un párrafo por línea del disclaimer.
func disclaimerRows(d *render.Document) []core.Row {
	rows := []core.Row{sectionTitleRow(d.DisclaimerTitle)}
	for _, p := range d.Disclaimer {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(p, props.Text{Size: 7.5, Color: colorGray, Top: 0.5}),
		)))
	}
	return rows
}

// signatureRow: dos líneas de firma con su rótulo.
func signatureRow(d *render.Document) core.Row {
	sig := func(label string) core.Col {
		return col.New(5).Add(
			line.New(props.Line{Color: colorPrimary, Thickness: 0.3, OffsetPercent: 30}),
			text.New(label, props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 6,
			}),
		)
	}
	return row.New(14).Add(
		sig(d.Signatures[0]),
		col.New(2),
		sig(d.Signatures[1]),
	)
}
