package order

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/packing"
)

// EditKind campo de la línea que el usuario modificó.
type EditKind string

const (
	EditDisplayUnit     EditKind = "display_unit"
	EditDisplayQuantity EditKind = "display_quantity"
	EditUnitPrice       EditKind = "unit_price"
	EditRemarks         EditKind = "remarks"
)

// Edit un cambio de campo. Solo se usa el dato que corresponde a Kind.
type Edit struct {
	Kind  EditKind
	Unit  packing.DisplayUnit // EditDisplayUnit
	Value decimal.NullDecimal // EditDisplayQuantity, EditUnitPrice
	Text  string              // EditRemarks
}

// Apply aplica e y devuelve la línea resultante.
func (l Line) Apply(e Edit) (Line, error) {
	switch e.Kind {
	case EditDisplayUnit:
		if !e.Unit.Valid() {
			return l, fmt.Errorf("%w: unidad %q", domain.ErrInvalidInput, e.Unit)
		}
		return l.WithDisplayUnit(e.Unit), nil
	case EditDisplayQuantity:
		return l.WithDisplayQuantity(e.Value), nil
	case EditUnitPrice:
		return l.WithUnitPrice(e.Value), nil
	case EditRemarks:
		return l.WithRemarks(e.Text), nil
	default:
		return l, fmt.Errorf("%w: tipo de edición %q", domain.ErrInvalidInput, e.Kind)
	}
}
