package receipt

import (
	"context"
	"fmt"

	"github.com/jhoicas/Recibos-api/internal/application/render"
	"github.com/jhoicas/Recibos-api/internal/domain"
	"github.com/jhoicas/Recibos-api/internal/domain/entity"
)

// ExportUseCase proyecta el snapshot enviado a sus tres vistas equivalentes:
// vista previa (modelo de documento), PDF y JPEG. Solo se exporta un recibo
// ya enviado; mientras la sesión siga en edición se rechaza.
type ExportUseCase struct {
	repo SessionRepository
	pdf  DocumentPDFGenerator
	img  DocumentImageRenderer
}

// NewExportUseCase construye el caso de uso inyectando los generadores.
func NewExportUseCase(repo SessionRepository, pdf DocumentPDFGenerator, img DocumentImageRenderer) *ExportUseCase {
	return &ExportUseCase{repo: repo, pdf: pdf, img: img}
}

// Preview devuelve el modelo de documento del snapshot: las mismas secciones,
// en el mismo orden y con los mismos textos que imprimirán el PDF y el JPEG.
func (uc *ExportUseCase) Preview(id string) (*render.Document, error) {
	snap, err := uc.snapshot(id)
	if err != nil {
		return nil, err
	}
	return render.BuildDocument(snap), nil
}

// DownloadPDF genera el artefacto paginado. El nombre de archivo deriva
// determinísticamente del Case ID.
func (uc *ExportUseCase) DownloadPDF(ctx context.Context, id string) (pdfBytes []byte, filename string, err error) {
	snap, err := uc.snapshot(id)
	if err != nil {
		return nil, "", err
	}
	doc := render.BuildDocument(snap)
	pdfBytes, err = uc.pdf.Generate(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("export: generación de PDF: %w", err)
	}
	return pdfBytes, fmt.Sprintf("invoice-%s.pdf", snap.CaseID), nil
}

// DownloadJPEG rasteriza la misma vista a una imagen.
func (uc *ExportUseCase) DownloadJPEG(ctx context.Context, id string) (jpegBytes []byte, filename string, err error) {
	snap, err := uc.snapshot(id)
	if err != nil {
		return nil, "", err
	}
	doc := render.BuildDocument(snap)
	jpegBytes, err = uc.img.Render(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("export: rasterizado JPEG: %w", err)
	}
	return jpegBytes, fmt.Sprintf("invoice-%s.jpeg", snap.CaseID), nil
}

// snapshot carga la sesión y exige que ya esté enviada.
func (uc *ExportUseCase) snapshot(id string) (*entity.ReceiptData, error) {
	s, err := uc.repo.Get(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if !s.Submitted() {
		return nil, domain.ErrNotSubmitted
	}
	return s.Snapshot, nil
}
