package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo tal como lo consume el cotizador de pedidos.
// PiecesPerUnit es la relación de empaque (ej. 12 baldosas por caja); 0 = sin empaque.
type Product struct {
	ID             string
	CompanyID      string
	SKU            string // código único por empresa
	Name           string
	Specification  string // ej. "60x60 cm, rectificado"
	Unit           string // etiqueta de la unidad de empaque: caja, paquete, rollo...
	PiecesPerUnit  int
	WeightPerPiece decimal.NullDecimal // kg por pieza; nulo si el proveedor no lo informa
	Price          decimal.Decimal     // precio de lista por pieza
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasPacking indica si el producto tiene relación pieza/unidad utilizable.
func (p *Product) HasPacking() bool {
	return p.PiecesPerUnit > 0
}
