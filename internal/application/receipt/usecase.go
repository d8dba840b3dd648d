package receipt

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Recibos-api/internal/application/dto"
	"github.com/jhoicas/Recibos-api/internal/domain"
	"github.com/jhoicas/Recibos-api/internal/domain/currency"
	"github.com/jhoicas/Recibos-api/internal/domain/entity"
	"github.com/jhoicas/Recibos-api/pkg/dataurl"
)

// UseCase mantiene la sesión de edición del recibo y expone las operaciones
// del formulario. Toda operación deja el recibo estructuralmente válido:
// la secuencia de ítems nunca queda vacía y los montos USD nunca se
// desincronizan de sus INR.
type UseCase struct {
	repo SessionRepository
	now  func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo SessionRepository) *UseCase {
	return &UseCase{repo: repo, now: time.Now}
}

// Create abre una sesión nueva con los valores por defecto del formulario:
// identificadores generados, un ítem vacío con id 1, mano de obra en cero,
// fecha de hoy y el disclaimer estándar.
func (uc *UseCase) Create() (*dto.ReceiptResponse, error) {
	now := uc.now()
	today := now.Format("2006-01-02")

	s := &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
		Receipt: entity.ReceiptData{
			CaseID:        newCaseID(now),
			InvoiceRef:    newInvoiceRef(now),
			ServiceOrder:  newServiceOrder(),
			PaymentMethod: defaultPaymentMethod,
			Date:          today,
			Disclaimer:    defaultDisclaimer,
			RepairAgent: entity.RepairAgent{
				SubmittedDate:  today,
				DiagnosticDate: today,
			},
			RepairItems: []entity.RepairItem{{ID: 1}},
		},
	}
	if err := uc.repo.Save(s); err != nil {
		return nil, err
	}
	return toResponse(s), nil
}

// Get devuelve el estado actual de la sesión (editable o ya enviada).
func (uc *UseCase) Get(id string) (*dto.ReceiptResponse, error) {
	s, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	return toResponse(s), nil
}

// UpdateStore aplica los campos presentes de la identidad del negocio.
func (uc *UseCase) UpdateStore(id string, in dto.UpdateStoreRequest) (*dto.ReceiptResponse, error) {
	return uc.mutate(id, func(r *entity.ReceiptData) error {
		applyString(&r.StoreInfo.Name, in.Name)
		applyString(&r.StoreInfo.Address, in.Address)
		applyString(&r.StoreInfo.Email, in.Email)
		applyString(&r.StoreInfo.Phone, in.Phone)
		return nil
	})
}

// UpdateCustomer aplica los campos presentes de la identidad del cliente.
func (uc *UseCase) UpdateCustomer(id string, in dto.UpdateCustomerRequest) (*dto.ReceiptResponse, error) {
	return uc.mutate(id, func(r *entity.ReceiptData) error {
		applyString(&r.CustomerName, in.Name)
		applyString(&r.CustomerAddress, in.Address)
		applyString(&r.CustomerPhone, in.Phone)
		return nil
	})
}

// UpdateAgent aplica los campos presentes del técnico.
func (uc *UseCase) UpdateAgent(id string, in dto.UpdateAgentRequest) (*dto.ReceiptResponse, error) {
	return uc.mutate(id, func(r *entity.ReceiptData) error {
		applyString(&r.RepairAgent.Name, in.Name)
		applyString(&r.RepairAgent.GeniusID, in.GeniusID)
		applyString(&r.RepairAgent.StoreNumber, in.StoreNumber)
		applyString(&r.RepairAgent.SubmittedDate, in.SubmittedDate)
		applyString(&r.RepairAgent.DiagnosticDate, in.DiagnosticDate)
		return nil
	})
}

// UpdateDetails aplica método de pago, fecha y disclaimer.
func (uc *UseCase) UpdateDetails(id string, in dto.UpdateDetailsRequest) (*dto.ReceiptResponse, error) {
	return uc.mutate(id, func(r *entity.ReceiptData) error {
		applyString(&r.PaymentMethod, in.PaymentMethod)
		applyString(&r.Date, in.Date)
		applyString(&r.Disclaimer, in.Disclaimer)
		return nil
	})
}

// SetLogo codifica la imagen subida como data URL autocontenida y la guarda
// en la identidad del negocio. El media type se detecta por contenido.
func (uc *UseCase) SetLogo(id string, data []byte) (*dto.ReceiptResponse, error) {
	if len(data) == 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.mutate(id, func(r *entity.ReceiptData) error {
		r.StoreInfo.LogoURL = dataurl.Encode("", data)
		return nil
	})
}

// SetLaborFee interpreta el monto INR (coerción a cero si es inválido) y
// deriva el USD con la regla compartida. Ambos campos se reemplazan juntos:
// un lector del estado nunca los ve desincronizados.
func (uc *UseCase) SetLaborFee(id string, in dto.SetLaborFeeRequest) (*dto.ReceiptResponse, error) {
	return uc.mutate(id, func(r *entity.ReceiptData) error {
		inr := currency.ParseINR(in.PriceINR)
		r.LaborAndDiagnosticFees = entity.LaborFee{
			PriceINR: inr,
			PriceUSD: currency.ToUSD(inr),
		}
		return nil
	})
}

// AddItem agrega un ítem vacío al final de la secuencia, con id igual a la
// longitud actual más uno (misma política del formulario original; ver
// DESIGN.md sobre la colisión posible tras eliminar y volver a agregar).
func (uc *UseCase) AddItem(id string) (*dto.ReceiptResponse, error) {
	return uc.mutate(id, func(r *entity.ReceiptData) error {
		r.RepairItems = append(r.RepairItems, entity.RepairItem{
			ID: len(r.RepairItems) + 1,
		})
		return nil
	})
}

// RemoveItem elimina el ítem con ese id. Si el id no existe es un no-op;
// si eliminarlo dejaría la secuencia vacía, se rechaza.
func (uc *UseCase) RemoveItem(id string, itemID int) (*dto.ReceiptResponse, error) {
	return uc.mutate(id, func(r *entity.ReceiptData) error {
		idx := -1
		for i := range r.RepairItems {
			if r.RepairItems[i].ID == itemID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil // no-op
		}
		if len(r.RepairItems) == 1 {
			return domain.ErrLastItem
		}
		r.RepairItems = append(r.RepairItems[:idx], r.RepairItems[idx+1:]...)
		return nil
	})
}

// UpdateItem aplica las ediciones tipadas al ítem con ese id. Si el id no
// existe es un no-op; ningún otro ítem ni campo se toca.
func (uc *UseCase) UpdateItem(id string, itemID int, edits ...ItemEdit) (*dto.ReceiptResponse, error) {
	return uc.mutate(id, func(r *entity.ReceiptData) error {
		item := r.FindItem(itemID)
		if item == nil {
			return nil // no-op
		}
		for _, e := range edits {
			e.applyTo(item)
		}
		return nil
	})
}

// AddPart agrega un repuesto al ítem, derivando el USD del INR capturado.
// El id del repuesto sigue la misma política len+1, local al ítem.
func (uc *UseCase) AddPart(id string, itemID int, in dto.AddPartRequest) (*dto.ReceiptResponse, error) {
	return uc.mutate(id, func(r *entity.ReceiptData) error {
		item := r.FindItem(itemID)
		if item == nil {
			return domain.ErrNotFound
		}
		inr := currency.ParseINR(in.PriceINR)
		item.Parts = append(item.Parts, entity.RepairPart{
			ID:       len(item.Parts) + 1,
			Name:     in.Name,
			PriceINR: inr,
			PriceUSD: currency.ToUSD(inr),
		})
		return nil
	})
}

// RemovePart elimina un repuesto del ítem; no-op si no existe. A diferencia
// de los ítems, la lista de repuestos sí puede quedar vacía.
func (uc *UseCase) RemovePart(id string, itemID, partID int) (*dto.ReceiptResponse, error) {
	return uc.mutate(id, func(r *entity.ReceiptData) error {
		item := r.FindItem(itemID)
		if item == nil {
			return nil // no-op
		}
		for i := range item.Parts {
			if item.Parts[i].ID == partID {
				item.Parts = append(item.Parts[:i], item.Parts[i+1:]...)
				return nil
			}
		}
		return nil // no-op
	})
}

// Submit congela la sesión: guarda un snapshot inmutable del recibo y a
// partir de ahí toda mutación se rechaza. Reenviar es idempotente.
func (uc *UseCase) Submit(id string) (*dto.ReceiptResponse, error) {
	s, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	if s.Submitted() {
		return toResponse(s), nil
	}
	s.Snapshot = s.Receipt.Clone()
	s.UpdatedAt = uc.now()
	if err := uc.repo.Save(s); err != nil {
		return nil, err
	}
	return toResponse(s), nil
}

// Discard descarta la sesión por completo ("volver al formulario" en el
// original descarta los datos; no hay deshacer ni versionado).
func (uc *UseCase) Discard(id string) error {
	s, err := uc.load(id)
	if err != nil {
		return err
	}
	return uc.repo.Delete(s.ID)
}

// ── internos ──────────────────────────────────────────────────────────────────

func (uc *UseCase) load(id string) (*Session, error) {
	s, err := uc.repo.Get(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// mutate carga la sesión, rechaza si ya fue enviada, aplica fn y guarda.
func (uc *UseCase) mutate(id string, fn func(r *entity.ReceiptData) error) (*dto.ReceiptResponse, error) {
	s, err := uc.load(id)
	if err != nil {
		return nil, err
	}
	if s.Submitted() {
		return nil, domain.ErrSubmitted
	}
	if err := fn(&s.Receipt); err != nil {
		return nil, err
	}
	s.UpdatedAt = uc.now()
	if err := uc.repo.Save(s); err != nil {
		return nil, err
	}
	return toResponse(s), nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func toResponse(s *Session) *dto.ReceiptResponse {
	r := &s.Receipt
	totalINR, totalUSD := r.Totals()

	items := make([]dto.RepairItemDTO, 0, len(r.RepairItems))
	for _, item := range r.RepairItems {
		parts := make([]dto.RepairPartDTO, 0, len(item.Parts))
		for _, p := range item.Parts {
			parts = append(parts, dto.RepairPartDTO{
				ID:       p.ID,
				Name:     p.Name,
				PriceINR: p.PriceINR,
				PriceUSD: p.PriceUSD,
			})
		}
		items = append(items, dto.RepairItemDTO{
			ID:           item.ID,
			ItemName:     item.ItemName,
			ItemType:     item.ItemType,
			SerialNumber: item.SerialNumber,
			Diagnostics:  item.Diagnostics,
			Parts:        parts,
		})
	}

	return &dto.ReceiptResponse{
		SessionID:     s.ID,
		Submitted:     s.Submitted(),
		CaseID:        r.CaseID,
		InvoiceRef:    r.InvoiceRef,
		ServiceOrder:  r.ServiceOrder,
		PaymentMethod: r.PaymentMethod,
		Date:          r.Date,
		Store: dto.StoreInfoDTO{
			Name:    r.StoreInfo.Name,
			Address: r.StoreInfo.Address,
			Email:   r.StoreInfo.Email,
			Phone:   r.StoreInfo.Phone,
			LogoURL: r.StoreInfo.LogoURL,
		},
		Customer: dto.CustomerDTO{
			Name:    r.CustomerName,
			Address: r.CustomerAddress,
			Phone:   r.CustomerPhone,
		},
		Agent: dto.RepairAgentDTO{
			Name:           r.RepairAgent.Name,
			GeniusID:       r.RepairAgent.GeniusID,
			StoreNumber:    r.RepairAgent.StoreNumber,
			SubmittedDate:  r.RepairAgent.SubmittedDate,
			DiagnosticDate: r.RepairAgent.DiagnosticDate,
		},
		Items:                  items,
		LaborAndDiagnosticFees: dto.MoneyDTO{PriceINR: r.LaborAndDiagnosticFees.PriceINR, PriceUSD: r.LaborAndDiagnosticFees.PriceUSD},
		Disclaimer:             r.Disclaimer,
		TotalINR:               totalINR,
		TotalUSD:               totalUSD,
	}
}
