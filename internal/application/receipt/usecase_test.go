package receipt

import (
	"bytes"
	"image"
	"image/png"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Recibos-api/internal/application/dto"
	"github.com/jhoicas/Recibos-api/internal/domain"
)

// fakeRepo es un SessionRepository mínimo en memoria para los tests del caso
// de uso; la implementación real (con TTL) tiene sus propios tests en
// internal/infrastructure/memory.
type fakeRepo struct {
	sessions map[string]*Session
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{sessions: make(map[string]*Session)}
}

func (r *fakeRepo) Save(s *Session) error {
	r.sessions[s.ID] = s
	return nil
}

func (r *fakeRepo) Get(id string) (*Session, error) {
	return r.sessions[id], nil
}

func (r *fakeRepo) Delete(id string) error {
	delete(r.sessions, id)
	return nil
}

func newTestUseCase(t *testing.T) *UseCase {
	t.Helper()
	uc := NewUseCase(newFakeRepo())
	uc.now = func() time.Time {
		return time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)
	}
	return uc
}

func mustCreate(t *testing.T, uc *UseCase) *dto.ReceiptResponse {
	t.Helper()
	resp, err := uc.Create()
	require.NoError(t, err)
	return resp
}

func str(s string) *string { return &s }

// ── creación ──────────────────────────────────────────────────────────────────

func TestCreate_ValoresPorDefecto(t *testing.T) {
	uc := newTestUseCase(t)
	resp := mustCreate(t, uc)

	assert.NotEmpty(t, resp.SessionID)
	assert.False(t, resp.Submitted)

	// Identificadores generados: prefijos y formato.
	assert.True(t, strings.HasPrefix(resp.CaseID, "SB-STU-"), "caseID = %s", resp.CaseID)
	assert.Len(t, resp.CaseID, len("SB-STU-")+6)
	assert.True(t, strings.HasPrefix(resp.InvoiceRef, "KM"), "invoiceRef = %s", resp.InvoiceRef)
	assert.Len(t, resp.InvoiceRef, len("KM")+6)

	order, err := strconv.Atoi(resp.ServiceOrder)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, order, 1000)
	assert.LessOrEqual(t, order, 9999)

	assert.Equal(t, "Cash [ Indian Rupees ]", resp.PaymentMethod)
	assert.Equal(t, "2026-08-28", resp.Date)
	assert.Equal(t, "2026-08-28", resp.Agent.SubmittedDate)
	assert.Equal(t, "2026-08-28", resp.Agent.DiagnosticDate)

	// El disclaimer por defecto tiene cuatro líneas.
	assert.Len(t, strings.Split(resp.Disclaimer, "\n"), 4)

	// Un ítem vacío con id 1, sin repuestos; mano de obra en cero.
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].ID)
	assert.Empty(t, resp.Items[0].Parts)
	assert.True(t, resp.LaborAndDiagnosticFees.PriceINR.IsZero())
	assert.True(t, resp.TotalINR.IsZero())
	assert.True(t, resp.TotalUSD.IsZero())
}

func TestCreate_CaseIDeInvoiceRefCompartenSufijo(t *testing.T) {
	uc := newTestUseCase(t)
	resp := mustCreate(t, uc)

	caseSuffix := strings.TrimPrefix(resp.CaseID, "SB-STU-")
	refSuffix := strings.TrimPrefix(resp.InvoiceRef, "KM")
	assert.Equal(t, caseSuffix, refSuffix)
}

func TestGet_SesionInexistente(t *testing.T) {
	uc := newTestUseCase(t)
	_, err := uc.Get("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── actualizaciones parciales ─────────────────────────────────────────────────

func TestUpdateStore_SoloCamposPresentes(t *testing.T) {
	uc := newTestUseCase(t)
	id := mustCreate(t, uc).SessionID

	_, err := uc.UpdateStore(id, dto.UpdateStoreRequest{
		Name:  str("Kumar Camera Works"),
		Phone: str("+91 98450 00000"),
	})
	require.NoError(t, err)

	resp, err := uc.UpdateStore(id, dto.UpdateStoreRequest{
		Address: str("12 MG Road, Bengaluru"),
	})
	require.NoError(t, err)

	// Los campos no enviados en la segunda actualización quedaron intactos.
	assert.Equal(t, "Kumar Camera Works", resp.Store.Name)
	assert.Equal(t, "+91 98450 00000", resp.Store.Phone)
	assert.Equal(t, "12 MG Road, Bengaluru", resp.Store.Address)
	assert.Empty(t, resp.Store.Email)
}

func TestUpdateCustomerYAgent(t *testing.T) {
	uc := newTestUseCase(t)
	id := mustCreate(t, uc).SessionID

	_, err := uc.UpdateCustomer(id, dto.UpdateCustomerRequest{Name: str("Asha Verma")})
	require.NoError(t, err)

	resp, err := uc.UpdateAgent(id, dto.UpdateAgentRequest{
		Name:     str("R. Iyer"),
		GeniusID: str("G-117"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Asha Verma", resp.Customer.Name)
	assert.Equal(t, "R. Iyer", resp.Agent.Name)
	assert.Equal(t, "G-117", resp.Agent.GeniusID)
}

func TestUpdateDetails_ReemplazaDisclaimer(t *testing.T) {
	uc := newTestUseCase(t)
	id := mustCreate(t, uc).SessionID

	resp, err := uc.UpdateDetails(id, dto.UpdateDetailsRequest{
		PaymentMethod: str("Card"),
		Disclaimer:    str("texto propio"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Card", resp.PaymentMethod)
	assert.Equal(t, "texto propio", resp.Disclaimer)
}

// ── mano de obra ──────────────────────────────────────────────────────────────

func TestSetLaborFee_DerivaUSD(t *testing.T) {
	uc := newTestUseCase(t)
	id := mustCreate(t, uc).SessionID

	resp, err := uc.SetLaborFee(id, dto.SetLaborFeeRequest{PriceINR: "1000"})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(1000).Equal(resp.LaborAndDiagnosticFees.PriceINR))
	assert.True(t, decimal.NewFromInt(12).Equal(resp.LaborAndDiagnosticFees.PriceUSD))
}

func TestSetLaborFee_CoercionACero(t *testing.T) {
	uc := newTestUseCase(t)
	id := mustCreate(t, uc).SessionID

	// Entrada inválida: se acepta con monto cero, nunca error de validación.
	for _, in := range []string{"", "abc", "-500"} {
		resp, err := uc.SetLaborFee(id, dto.SetLaborFeeRequest{PriceINR: in})
		require.NoError(t, err, "entrada: %q", in)
		assert.True(t, resp.LaborAndDiagnosticFees.PriceINR.IsZero(), "entrada: %q", in)
		assert.True(t, resp.LaborAndDiagnosticFees.PriceUSD.IsZero(), "entrada: %q", in)
	}
}

// ── ítems ─────────────────────────────────────────────────────────────────────

func TestAddItem_IdEsLongitudMasUno(t *testing.T) {
	uc := newTestUseCase(t)
	id := mustCreate(t, uc).SessionID

	resp, err := uc.AddItem(id)
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, 2, resp.Items[1].ID)

	resp, err = uc.AddItem(id)
	require.NoError(t, err)
	require.Len(t, resp.Items, 3)
	assert.Equal(t, 3, resp.Items[2].ID)
}

// TestAddItem_ColisionTrasEliminar la política len+1 repite ids cuando se
// elimina un ítem intermedio y luego se agrega otro: 1,2,3 → sin el 2 → el
// nuevo ítem vuelve a llamarse 3. Comportamiento heredado del formulario
// original, documentado en DESIGN.md.
func TestAddItem_ColisionTrasEliminar(t *testing.T) {
	uc := newTestUseCase(t)
	id := mustCreate(t, uc).SessionID

	_, err := uc.AddItem(id)
	require.NoError(t, err)
	_, err = uc.AddItem(id)
	require.NoError(t, err)

	_, err = uc.RemoveItem(id, 2)
	require.NoError(t, err)

	resp, err := uc.AddItem(id)
	require.NoError(t, err)

	ids := make([]int, 0, len(resp.Items))
	for _, item := range resp.Items {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []int{1, 3, 3}, ids)
}

func TestRemoveItem_RechazaElUltimo(t *testing.T) {
	uc := newTestUseCase(t)
	id := mustCreate(t, uc).SessionID

	_, err := uc.RemoveItem(id, 1)
	assert.ErrorIs(t, err, domain.ErrLastItem)

	// La sesión queda intacta.
	resp, err := uc.Get(id)
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)
}

func TestRemoveItem_IdInexistenteEsNoOp(t *testing.T) {
	uc := newTestUseCase(t)
	id := mustCreate(t, uc).SessionID

	resp, err := uc.RemoveItem(id, 99)
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)
}

func TestUpdateItem_EdicionesTipadas(t *testing.T) {
	uc := newTestUseCase(t)
	id := mustCreate(t, uc).SessionID

	resp, err := uc.UpdateItem(id, 1,
		SetItemName("Canon AE-1"),
		SetItemType("SLR"),
		SetSerialNumber("1178542"),
		SetDiagnostics("Shutter stuck at 1/60"),
	)
	require.NoError(t, err)

	item := resp.Items[0]
	assert.Equal(t, "Canon AE-1", item.ItemName)
	assert.Equal(t, "SLR", item.ItemType)
	assert.Equal(t, "1178542", item.SerialNumber)
	assert.Equal(t, "Shutter stuck at 1/60", item.Diagnostics)
}

func TestUpdateItem_IdInexistenteEsNoOp(t *testing.T) {
	uc := newTestUseCase(t)
	id := mustCreate(t, uc).SessionID

	resp, err := uc.UpdateItem(id, 99, SetItemName("fantasma"))
	require.NoError(t, err)
	assert.Empty(t, resp.Items[0].ItemName)
}

// ── repuestos ─────────────────────────────────────────────────────────────────

func TestAddPart_DerivaUSDYNumeraLocal(t *testing.T) {
	uc := newTestUseCase(t)
	id := mustCreate(t, uc).SessionID

	resp, err := uc.AddPart(id, 1, dto.AddPartRequest{Name: "Shutter unit", PriceINR: "500"})
	require.NoError(t, err)

	require.Len(t, resp.Items[0].Parts, 1)
	p := resp.Items[0].Parts[0]
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "Shutter unit", p.Name)
	assert.True(t, decimal.NewFromInt(500).Equal(p.PriceINR))
	assert.True(t, decimal.NewFromInt(6).Equal(p.PriceUSD))

	// El total refleja mano de obra (cero) más el repuesto.
	assert.True(t, decimal.NewFromInt(500).Equal(resp.TotalINR))
	assert.True(t, decimal.NewFromInt(6).Equal(resp.TotalUSD))
}

func TestAddPart_ItemInexistente(t *testing.T) {
	uc := newTestUseCase(t)
	id := mustCreate(t, uc).SessionID

	_, err := uc.AddPart(id, 99, dto.AddPartRequest{Name: "x", PriceINR: "10"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemovePart_PuedeVaciarLaLista(t *testing.T) {
	uc := newTestUseCase(t)
	id := mustCreate(t, uc).SessionID

	_, err := uc.AddPart(id, 1, dto.AddPartRequest{Name: "Winder", PriceINR: "300"})
	require.NoError(t, err)

	resp, err := uc.RemovePart(id, 1, 1)
	require.NoError(t, err)
	assert.Empty(t, resp.Items[0].Parts)

	// Repetir la eliminación es un no-op.
	resp, err = uc.RemovePart(id, 1, 1)
	require.NoError(t, err)
	assert.Empty(t, resp.Items[0].Parts)
}

// ── logo ──────────────────────────────────────────────────────────────────────

func TestSetLogo_EmbebeDataURL(t *testing.T) {
	uc := newTestUseCase(t)
	id := mustCreate(t, uc).SessionID

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))

	resp, err := uc.SetLogo(id, buf.Bytes())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Store.LogoURL, "data:image/png;base64,"),
		"logoURL = %.40s...", resp.Store.LogoURL)
}

func TestSetLogo_VacioEsInvalido(t *testing.T) {
	uc := newTestUseCase(t)
	id := mustCreate(t, uc).SessionID

	_, err := uc.SetLogo(id, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── envío y descarte ──────────────────────────────────────────────────────────

func TestSubmit_CongelaLaSesion(t *testing.T) {
	uc := newTestUseCase(t)
	id := mustCreate(t, uc).SessionID

	_, err := uc.UpdateCustomer(id, dto.UpdateCustomerRequest{Name: str("Asha Verma")})
	require.NoError(t, err)

	resp, err := uc.Submit(id)
	require.NoError(t, err)
	assert.True(t, resp.Submitted)

	// Tras el envío toda mutación se rechaza.
	_, err = uc.UpdateCustomer(id, dto.UpdateCustomerRequest{Name: str("otro")})
	assert.ErrorIs(t, err, domain.ErrSubmitted)
	_, err = uc.AddItem(id)
	assert.ErrorIs(t, err, domain.ErrSubmitted)
	_, err = uc.SetLaborFee(id, dto.SetLaborFeeRequest{PriceINR: "1"})
	assert.ErrorIs(t, err, domain.ErrSubmitted)

	// La lectura sigue disponible y el estado no cambió.
	got, err := uc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", got.Customer.Name)
}

func TestSubmit_EsIdempotente(t *testing.T) {
	uc := newTestUseCase(t)
	id := mustCreate(t, uc).SessionID

	first, err := uc.Submit(id)
	require.NoError(t, err)
	second, err := uc.Submit(id)
	require.NoError(t, err)

	assert.True(t, second.Submitted)
	assert.Equal(t, first.CaseID, second.CaseID)
}

func TestDiscard_EliminaLaSesion(t *testing.T) {
	uc := newTestUseCase(t)
	id := mustCreate(t, uc).SessionID

	require.NoError(t, uc.Discard(id))

	_, err := uc.Get(id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Discard(id), domain.ErrNotFound)
}
