package receipt

import "github.com/jhoicas/Recibos-api/internal/domain/entity"

// ItemEdit es una operación de edición sobre un campo de un ítem de
// reparación. El conjunto de variantes es cerrado: cada campo editable tiene
// su tipo concreto, en lugar de un setter genérico por nombre de campo. Así
// el compilador conoce todas las ediciones posibles y cada una va tipada.
type ItemEdit interface {
	applyTo(item *entity.RepairItem)
}

// SetItemName reemplaza el nombre del ítem.
type SetItemName string

// SetItemType reemplaza el tipo/categoría del ítem.
type SetItemType string

// SetSerialNumber reemplaza el número de serie.
type SetSerialNumber string

// SetDiagnostics reemplaza el texto libre de diagnóstico.
type SetDiagnostics string

func (e SetItemName) applyTo(item *entity.RepairItem)     { item.ItemName = string(e) }
func (e SetItemType) applyTo(item *entity.RepairItem)     { item.ItemType = string(e) }
func (e SetSerialNumber) applyTo(item *entity.RepairItem) { item.SerialNumber = string(e) }
func (e SetDiagnostics) applyTo(item *entity.RepairItem)  { item.Diagnostics = string(e) }
