// Package order mantiene coherentes los campos de una línea de pedido cuando el usuario
// edita cantidad, precio o unidad mostrada, y agrega los totales del pedido.
//
// Line es un valor: cada transición devuelve una línea nueva y nunca muta la original.
// La cantidad canónica (Quantity) siempre está en piezas.
package order

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/packing"
)

// Line una fila de producto en un pedido en composición.
type Line struct {
	ID              string
	ProductID       string
	PiecesPerUnit   int    // del catálogo; inmutable una vez elegido el producto
	UnitLabel       string // etiqueta de la unidad de empaque (caja, rollo...)
	DisplayUnit     packing.DisplayUnit
	DisplayQuantity decimal.NullDecimal // en DisplayUnit
	Quantity        decimal.NullDecimal // canónica, en piezas
	UnitPrice       decimal.NullDecimal // en DisplayUnit
	Remarks         string
}

// NewLine crea la línea por defecto para un producto: 1 pieza, sin precio.
func NewLine(product *entity.Product) Line {
	one := decimal.NewNullDecimal(decimal.NewFromInt(1))
	return Line{
		ID:              uuid.New().String(),
		ProductID:       product.ID,
		PiecesPerUnit:   product.PiecesPerUnit,
		UnitLabel:       product.Unit,
		DisplayUnit:     packing.Piece,
		DisplayQuantity: one,
		Quantity:        one,
	}
}

// Normalize completa la cantidad canónica desde la mostrada (o al revés) cuando una de
// las dos llega ausente, por ejemplo al reconstruir la línea desde el formulario.
// Con ambas presentes se conserva la canónica solo si coincide con la mostrada dentro
// del redondeo a 2 decimales; si no, se recalcula desde la mostrada.
func (l Line) Normalize() Line {
	if !l.DisplayUnit.Valid() {
		l.DisplayUnit = packing.Piece
	}
	switch {
	case !l.Quantity.Valid && l.DisplayQuantity.Valid:
		l.Quantity = decimal.NewNullDecimal(l.systemQuantity())
	case l.Quantity.Valid && !l.DisplayQuantity.Valid:
		l.DisplayQuantity = decimal.NewNullDecimal(packing.ToDisplayQuantity(l.Quantity.Decimal, l.DisplayUnit, l.PiecesPerUnit))
	case l.Quantity.Valid && l.DisplayQuantity.Valid:
		want := l.systemQuantity()
		if l.Quantity.Decimal.Sub(want).Abs().GreaterThan(l.roundingTolerance()) {
			l.Quantity = decimal.NewNullDecimal(want)
		}
	}
	return l
}

func (l Line) systemQuantity() decimal.Decimal {
	return packing.ToSystemQuantity(l.DisplayQuantity.Decimal, l.DisplayUnit, l.PiecesPerUnit)
}

var halfCent = decimal.RequireFromString("0.005")

// roundingTolerance error máximo en piezas de una cantidad mostrada redondeada a 2 decimales.
func (l Line) roundingTolerance() decimal.Decimal {
	if l.DisplayUnit == packing.Unit && l.PiecesPerUnit > 0 {
		return halfCent.Mul(decimal.NewFromInt(int64(l.PiecesPerUnit)))
	}
	return halfCent
}

// WithDisplayUnit cambia la denominación mostrada. La cantidad canónica no cambia; la
// cantidad mostrada se recalcula desde ella y el precio se reescala para conservar el
// valor de la línea.
func (l Line) WithDisplayUnit(to packing.DisplayUnit) Line {
	if !to.Valid() || to == l.DisplayUnit {
		return l
	}
	from, prevNote := l.DisplayUnit, l.autoRemarks()
	l.DisplayUnit = to
	if l.Quantity.Valid {
		l.DisplayQuantity = decimal.NewNullDecimal(packing.ToDisplayQuantity(l.Quantity.Decimal, to, l.PiecesPerUnit))
	} else {
		l.DisplayQuantity = decimal.NullDecimal{}
	}
	if l.UnitPrice.Valid {
		l.UnitPrice = decimal.NewNullDecimal(packing.ConvertPrice(l.UnitPrice.Decimal, from, to, l.PiecesPerUnit))
	}
	return l.fillRemarks(prevNote)
}

// WithDisplayQuantity registra la cantidad tecleada y deriva la canónica.
// Una cantidad ausente deja también ausente la canónica.
func (l Line) WithDisplayQuantity(q decimal.NullDecimal) Line {
	prevNote := l.autoRemarks()
	l.DisplayQuantity = q
	if q.Valid {
		l.Quantity = decimal.NewNullDecimal(packing.ToSystemQuantity(q.Decimal, l.DisplayUnit, l.PiecesPerUnit))
	} else {
		l.Quantity = decimal.NullDecimal{}
	}
	return l.fillRemarks(prevNote)
}

// WithUnitPrice guarda el precio tal cual, ya expresado en DisplayUnit.
func (l Line) WithUnitPrice(p decimal.NullDecimal) Line {
	l.UnitPrice = p
	return l
}

// WithRemarks guarda una nota escrita por el usuario.
func (l Line) WithRemarks(text string) Line {
	l.Remarks = text
	return l
}

// PiecePrice precio por pieza, independiente de la denominación mostrada.
func (l Line) PiecePrice() decimal.NullDecimal {
	if !l.UnitPrice.Valid || l.DisplayUnit != packing.Unit {
		return l.UnitPrice
	}
	return decimal.NewNullDecimal(packing.UnitPriceToPiecePrice(l.UnitPrice.Decimal, l.PiecesPerUnit))
}

// Amount cantidad canónica por precio por pieza; cero si falta alguno.
func (l Line) Amount() decimal.Decimal {
	price := l.PiecePrice()
	if !l.Quantity.Valid || !price.Valid {
		return decimal.Zero
	}
	return l.Quantity.Decimal.Mul(price.Decimal)
}

// Labels etiquetas para la nota de remanente de esta línea.
func (l Line) Labels() packing.Labels {
	return packing.Labels{Unit: l.UnitLabel}
}

// autoRemarks nota automática para la cantidad canónica actual.
func (l Line) autoRemarks() string {
	if !l.Quantity.Valid {
		return ""
	}
	return l.Labels().Text(l.Quantity.Decimal, l.PiecesPerUnit)
}

// fillRemarks reescribe la nota solo si está en blanco o si sigue siendo la nota
// automática de la cantidad anterior (prevNote). El texto del usuario no se toca.
func (l Line) fillRemarks(prevNote string) Line {
	current := strings.TrimSpace(l.Remarks)
	if current != "" && current != prevNote {
		return l
	}
	l.Remarks = l.autoRemarks()
	return l
}
