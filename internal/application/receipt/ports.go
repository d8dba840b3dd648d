package receipt

import (
	"context"

	"github.com/jhoicas/Recibos-api/internal/application/render"
)

// SessionRepository guarda las sesiones de edición en curso. No hay
// persistencia entre reinicios: la implementación de referencia vive en
// memoria (internal/infrastructure/memory).
type SessionRepository interface {
	Save(s *Session) error
	Get(id string) (*Session, error)
	Delete(id string) error
}

// DocumentPDFGenerator produce el PDF paginado a partir del modelo de vista.
type DocumentPDFGenerator interface {
	Generate(ctx context.Context, doc *render.Document) ([]byte, error)
}

// DocumentImageRenderer produce el JPEG rasterizado del mismo modelo de vista.
type DocumentImageRenderer interface {
	Render(ctx context.Context, doc *render.Document) ([]byte, error)
}
