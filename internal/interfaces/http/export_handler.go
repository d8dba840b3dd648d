package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recibos-api/internal/application/receipt"
)

// ExportHandler sirve las tres vistas del recibo enviado: vista previa
// (modelo de documento en JSON), PDF y JPEG. Las dos descargas llevan
// Content-Disposition con el nombre derivado del Case ID.
type ExportHandler struct {
	uc *receipt.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *receipt.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Preview GET /api/receipts/:id/preview
func (h *ExportHandler) Preview(c *fiber.Ctx) error {
	doc, err := h.uc.Preview(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(doc)
}

// DownloadPDF GET /api/receipts/:id/pdf
func (h *ExportHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.DownloadPDF(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// DownloadJPEG GET /api/receipts/:id/jpeg
func (h *ExportHandler) DownloadJPEG(c *fiber.Ctx) error {
	jpegBytes, filename, err := h.uc.DownloadJPEG(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/jpeg")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(jpegBytes)
}
