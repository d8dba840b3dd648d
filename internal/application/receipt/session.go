package receipt

import (
	"time"

	"github.com/jhoicas/Recibos-api/internal/domain/entity"
)

// Session es una sesión de edición: un recibo mutable más, tras el envío,
// su snapshot inmutable. Hay exactamente un mutador (el caso de uso); el
// repositorio solo guarda y recupera.
type Session struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Receipt es el estado mutable del formulario.
	Receipt entity.ReceiptData

	// Snapshot es la copia congelada en el momento del envío. Mientras sea
	// nil la sesión sigue en edición; una vez asignado, toda mutación se
	// rechaza y las exportaciones leen únicamente de aquí.
	Snapshot *entity.ReceiptData
}

// Submitted indica si el formulario ya fue enviado.
func (s *Session) Submitted() bool { return s.Snapshot != nil }
