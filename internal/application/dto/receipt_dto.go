package dto

import "github.com/shopspring/decimal"

// Los montos en INR llegan como string y se interpretan con la regla del
// formulario original: entrada vacía o no numérica vale cero, sin error.
// Los montos en USD nunca se reciben: siempre se derivan.

// UpdateStoreRequest body para PATCH /api/receipts/:id/store.
// Solo los campos presentes (no nulos) se aplican.
type UpdateStoreRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// UpdateCustomerRequest body para PATCH /api/receipts/:id/customer.
type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// UpdateAgentRequest body para PATCH /api/receipts/:id/agent.
type UpdateAgentRequest struct {
	Name           *string `json:"name,omitempty"`
	GeniusID       *string `json:"genius_id,omitempty"`
	StoreNumber    *string `json:"store_number,omitempty"`
	SubmittedDate  *string `json:"submitted_date,omitempty"`
	DiagnosticDate *string `json:"diagnostic_date,omitempty"`
}

// UpdateDetailsRequest body para PATCH /api/receipts/:id/details
// (método de pago, fecha y disclaimer del recibo).
type UpdateDetailsRequest struct {
	PaymentMethod *string `json:"payment_method,omitempty"`
	Date          *string `json:"date,omitempty"`
	Disclaimer    *string `json:"disclaimer,omitempty"`
}

// SetLaborFeeRequest body para PUT /api/receipts/:id/labor.
type SetLaborFeeRequest struct {
	PriceINR string `json:"price_inr"`
}

// UpdateItemRequest body para PATCH /api/receipts/:id/items/:itemId.
// Cada campo presente se traduce a una operación de edición tipada.
type UpdateItemRequest struct {
	ItemName     *string `json:"item_name,omitempty"`
	ItemType     *string `json:"item_type,omitempty"`
	SerialNumber *string `json:"serial_number,omitempty"`
	Diagnostics  *string `json:"diagnostics,omitempty"`
}

// AddPartRequest body para POST /api/receipts/:id/items/:itemId/parts.
type AddPartRequest struct {
	Name     string `json:"name"`
	PriceINR string `json:"price_inr"`
}

// MoneyDTO par de montos INR/USD ya derivados.
type MoneyDTO struct {
	PriceINR decimal.Decimal `json:"price_inr"`
	PriceUSD decimal.Decimal `json:"price_usd"`
}

// StoreInfoDTO identidad del negocio en respuestas.
type StoreInfoDTO struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	LogoURL string `json:"logo_url,omitempty"`
}

// CustomerDTO identidad del cliente en respuestas.
type CustomerDTO struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// RepairAgentDTO técnico en respuestas.
type RepairAgentDTO struct {
	Name           string `json:"name"`
	GeniusID       string `json:"genius_id"`
	StoreNumber    string `json:"store_number"`
	SubmittedDate  string `json:"submitted_date"`
	DiagnosticDate string `json:"diagnostic_date"`
}

// RepairPartDTO repuesto en respuestas.
type RepairPartDTO struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	PriceINR decimal.Decimal `json:"price_inr"`
	PriceUSD decimal.Decimal `json:"price_usd"`
}

// RepairItemDTO ítem de reparación en respuestas.
type RepairItemDTO struct {
	ID           int             `json:"id"`
	ItemName     string          `json:"item_name"`
	ItemType     string          `json:"item_type"`
	SerialNumber string          `json:"serial_number"`
	Diagnostics  string          `json:"diagnostics"`
	Parts        []RepairPartDTO `json:"parts"`
}

// ReceiptResponse estado completo de la sesión de edición, con totales
// calculados, para que el formulario pueda re-renderizarse tras cada cambio.
type ReceiptResponse struct {
	SessionID string `json:"session_id"`
	Submitted bool   `json:"submitted"`

	CaseID        string `json:"case_id"`
	InvoiceRef    string `json:"invoice_ref"`
	ServiceOrder  string `json:"service_order"`
	PaymentMethod string `json:"payment_method"`
	Date          string `json:"date"`

	Store    StoreInfoDTO   `json:"store"`
	Customer CustomerDTO    `json:"customer"`
	Agent    RepairAgentDTO `json:"agent"`

	Items                  []RepairItemDTO `json:"items"`
	LaborAndDiagnosticFees MoneyDTO        `json:"labor_and_diagnostic_fees"`

	Disclaimer string `json:"disclaimer"`

	TotalINR decimal.Decimal `json:"total_inr"`
	TotalUSD decimal.Decimal `json:"total_usd"`
}
