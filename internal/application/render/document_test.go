package render_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Recibos-api/internal/application/render"
	"github.com/jhoicas/Recibos-api/internal/domain/entity"
)

func sampleReceipt() *entity.ReceiptData {
	return &entity.ReceiptData{
		CaseID:       "SB-STU-123456",
		InvoiceRef:   "KM123456",
		ServiceOrder: "4821",
		Date:         "2026-08-28",
		StoreInfo: entity.StoreInfo{
			Name:    "Kumar Camera Works",
			Address: "12 MG Road, Bengaluru",
			Email:   "repairs@kumarcamera.in",
			Phone:   "+91 98450 00000",
		},
		CustomerName:    "Asha Verma",
		CustomerAddress: "44 Residency Road",
		CustomerPhone:   "+91 99000 11111",
		RepairAgent: entity.RepairAgent{
			Name:          "R. Iyer",
			GeniusID:      "G-117",
			StoreNumber:   "BLR-02",
			SubmittedDate: "2026-08-28",
		},
		RepairItems: []entity.RepairItem{
			{
				ID:           1,
				ItemName:     "Canon AE-1",
				ItemType:     "SLR",
				SerialNumber: "1178542",
				Diagnostics:  "Shutter stuck at 1/60",
				Parts: []entity.RepairPart{
					{
						ID:       1,
						Name:     "Shutter unit",
						PriceINR: decimal.NewFromInt(500),
						PriceUSD: decimal.NewFromInt(6),
					},
				},
			},
		},
		LaborAndDiagnosticFees: entity.LaborFee{
			PriceINR: decimal.NewFromInt(1000),
			PriceUSD: decimal.NewFromInt(12),
		},
		Disclaimer: "línea uno\nlínea dos\n\nlínea tres",
	}
}

// TestBuildDocument_TotalesDeReferencia el documento imprime los totales del
// escenario de referencia: 1,500 INR y 18.00 USD.
func TestBuildDocument_TotalesDeReferencia(t *testing.T) {
	doc := render.BuildDocument(sampleReceipt())

	assert.Equal(t, "1,500", doc.TotalINR)
	assert.Equal(t, "18.00", doc.TotalUSD)
}

// TestBuildDocument_EsDeterminista mismo snapshot, mismo documento: las tres
// vistas que lo consumen quedan en lockstep por construcción.
func TestBuildDocument_EsDeterminista(t *testing.T) {
	r := sampleReceipt()
	d1 := render.BuildDocument(r)
	d2 := render.BuildDocument(r)
	assert.Equal(t, d1, d2)
}

// TestBuildDocument_OrdenDeSecciones el contrato de presentación: encabezado
// con referencias, cliente, agente, ítems con tabla de repuestos, mano de
// obra, totales, disclaimer y firmas.
func TestBuildDocument_OrdenDeSecciones(t *testing.T) {
	doc := render.BuildDocument(sampleReceipt())

	require.Len(t, doc.Refs, 3)
	assert.Equal(t, "Case ID:", doc.Refs[0].Label)
	assert.Equal(t, "SB-STU-123456", doc.Refs[0].Value)

	require.Len(t, doc.Customer, 3)
	assert.Equal(t, "Asha Verma", doc.Customer[0].Value)

	require.Len(t, doc.Agent, 4)
	assert.Equal(t, "G-117", doc.Agent[1].Value)

	require.Len(t, doc.Items, 1)
	item := doc.Items[0]
	assert.Equal(t, "Item #1", item.Title)
	require.Len(t, item.Parts, 1)
	assert.Equal(t, render.PartRow{"Shutter unit", "500", "6.00"}, item.Parts[0])

	require.Len(t, doc.Labor, 2)
	assert.Equal(t, "1,000", doc.Labor[0].Value)
	assert.Equal(t, "12.00", doc.Labor[1].Value)

	assert.Equal(t, [2]string{"Repair Genius's Signature", "Customer's Signature"}, doc.Signatures)
}

// TestBuildDocument_DisclaimerPorLineas un párrafo por línea no vacía.
func TestBuildDocument_DisclaimerPorLineas(t *testing.T) {
	doc := render.BuildDocument(sampleReceipt())
	assert.Equal(t, []string{"línea uno", "línea dos", "línea tres"}, doc.Disclaimer)
}

// TestFormatINR_AgrupacionIndia últimos tres dígitos, luego grupos de dos.
func TestFormatINR_AgrupacionIndia(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"150000", "1,50,000"},
		{"1234567", "12,34,567"},
		{"1500.5", "1,500.5"},
		{"-45000", "-45,000"},
	}
	for _, tc := range cases {
		got := render.FormatINR(decimal.RequireFromString(tc.in))
		assert.Equal(t, tc.want, got, "FormatINR(%s)", tc.in)
	}
}

func TestFormatUSD_SiempreDosDecimales(t *testing.T) {
	assert.Equal(t, "12.00", render.FormatUSD(decimal.NewFromInt(12)))
	assert.Equal(t, "6.50", render.FormatUSD(decimal.RequireFromString("6.5")))
}
