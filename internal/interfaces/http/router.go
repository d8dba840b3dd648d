package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recibos-api/internal/application/receipt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReceiptUC *receipt.UseCase
	ExportUC  *receipt.ExportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	receipts := api.Group("/receipts")
	h := NewReceiptHandler(deps.ReceiptUC)
	receipts.Post("/", h.Create)
	receipts.Get("/:id", h.Get)
	receipts.Delete("/:id", h.Discard)

	// Setters escalares del formulario
	receipts.Patch("/:id/store", h.UpdateStore)
	receipts.Patch("/:id/customer", h.UpdateCustomer)
	receipts.Patch("/:id/agent", h.UpdateAgent)
	receipts.Patch("/:id/details", h.UpdateDetails)
	receipts.Post("/:id/logo", h.UploadLogo)
	receipts.Put("/:id/labor", h.SetLaborFee)

	// Ítems de reparación y repuestos
	receipts.Post("/:id/items", h.AddItem)
	receipts.Patch("/:id/items/:itemId", h.UpdateItem)
	receipts.Delete("/:id/items/:itemId", h.RemoveItem)
	receipts.Post("/:id/items/:itemId/parts", h.AddPart)
	receipts.Delete("/:id/items/:itemId/parts/:partId", h.RemovePart)

	// Envío y exportaciones
	receipts.Post("/:id/submit", h.Submit)
	e := NewExportHandler(deps.ExportUC)
	receipts.Get("/:id/preview", e.Preview)
	receipts.Get("/:id/pdf", e.DownloadPDF)
	receipts.Get("/:id/jpeg", e.DownloadJPEG)
}
