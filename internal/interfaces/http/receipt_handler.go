package http

import (
	"errors"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recibos-api/internal/application/dto"
	"github.com/jhoicas/Recibos-api/internal/application/receipt"
	"github.com/jhoicas/Recibos-api/internal/domain"
)

// ReceiptHandler maneja las peticiones HTTP de la sesión de edición del
// recibo. Política de errores del formulario original: los montos inválidos
// se coercen a cero (nunca 400), editar un ítem inexistente es un no-op, y
// los únicos conflictos reales son eliminar el último ítem o mutar un recibo
// ya enviado.
type ReceiptHandler struct {
	uc *receipt.UseCase
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *receipt.UseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// Create abre una sesión nueva con valores por defecto.
// POST /api/receipts
func (h *ReceiptHandler) Create(c *fiber.Ctx) error {
	out, err := h.uc.Create()
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get devuelve el estado actual de la sesión.
// GET /api/receipts/:id
func (h *ReceiptHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Discard descarta la sesión.
// DELETE /api/receipts/:id
func (h *ReceiptHandler) Discard(c *fiber.Ctx) error {
	if err := h.uc.Discard(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateStore PATCH /api/receipts/:id/store
func (h *ReceiptHandler) UpdateStore(c *fiber.Ctx) error {
	var in dto.UpdateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateStore(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateCustomer PATCH /api/receipts/:id/customer
func (h *ReceiptHandler) UpdateCustomer(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateCustomer(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateAgent PATCH /api/receipts/:id/agent
func (h *ReceiptHandler) UpdateAgent(c *fiber.Ctx) error {
	var in dto.UpdateAgentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateAgent(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateDetails PATCH /api/receipts/:id/details
func (h *ReceiptHandler) UpdateDetails(c *fiber.Ctx) error {
	var in dto.UpdateDetailsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateDetails(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UploadLogo recibe el archivo multipart "logo" y lo embebe como data URL.
// POST /api/receipts/:id/logo
func (h *ReceiptHandler) UploadLogo(c *fiber.Ctx) error {
	fh, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "archivo 'logo' requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se pudo leer el archivo"})
	}
	out, err := h.uc.SetLogo(c.Params("id"), data)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetLaborFee PUT /api/receipts/:id/labor
func (h *ReceiptHandler) SetLaborFee(c *fiber.Ctx) error {
	var in dto.SetLaborFeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetLaborFee(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddItem POST /api/receipts/:id/items
func (h *ReceiptHandler) AddItem(c *fiber.Ctx) error {
	out, err := h.uc.AddItem(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItem PATCH /api/receipts/:id/items/:itemId
func (h *ReceiptHandler) UpdateItem(c *fiber.Ctx) error {
	itemID, err := strconv.Atoi(c.Params("itemId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "itemId debe ser numérico"})
	}
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}

	// Traducción del body a la lista cerrada de ediciones tipadas.
	var edits []receipt.ItemEdit
	if in.ItemName != nil {
		edits = append(edits, receipt.SetItemName(*in.ItemName))
	}
	if in.ItemType != nil {
		edits = append(edits, receipt.SetItemType(*in.ItemType))
	}
	if in.SerialNumber != nil {
		edits = append(edits, receipt.SetSerialNumber(*in.SerialNumber))
	}
	if in.Diagnostics != nil {
		edits = append(edits, receipt.SetDiagnostics(*in.Diagnostics))
	}

	out, err := h.uc.UpdateItem(c.Params("id"), itemID, edits...)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem DELETE /api/receipts/:id/items/:itemId
func (h *ReceiptHandler) RemoveItem(c *fiber.Ctx) error {
	itemID, err := strconv.Atoi(c.Params("itemId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "itemId debe ser numérico"})
	}
	out, err := h.uc.RemoveItem(c.Params("id"), itemID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddPart POST /api/receipts/:id/items/:itemId/parts
func (h *ReceiptHandler) AddPart(c *fiber.Ctx) error {
	itemID, err := strconv.Atoi(c.Params("itemId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "itemId debe ser numérico"})
	}
	var in dto.AddPartRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddPart(c.Params("id"), itemID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RemovePart DELETE /api/receipts/:id/items/:itemId/parts/:partId
func (h *ReceiptHandler) RemovePart(c *fiber.Ctx) error {
	itemID, err := strconv.Atoi(c.Params("itemId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "itemId debe ser numérico"})
	}
	partID, err := strconv.Atoi(c.Params("partId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "partId debe ser numérico"})
	}
	out, err := h.uc.RemovePart(c.Params("id"), itemID, partID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Submit congela la sesión y habilita las exportaciones.
// POST /api/receipts/:id/submit
func (h *ReceiptHandler) Submit(c *fiber.Ctx) error {
	out, err := h.uc.Submit(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ── mapeo de errores ──────────────────────────────────────────────────────────

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sesión o recurso no encontrado"})
	case errors.Is(err, domain.ErrLastItem):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LAST_ITEM", Message: "el recibo debe conservar al menos un ítem"})
	case errors.Is(err, domain.ErrSubmitted):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SUBMITTED", Message: "el recibo ya fue enviado y es de solo lectura"})
	case errors.Is(err, domain.ErrNotSubmitted):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_SUBMITTED", Message: "el recibo aún no ha sido enviado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
