package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductResponse producto del catálogo con los datos de empaque que usa el cotizador.
type ProductResponse struct {
	ID             string              `json:"id"`
	CompanyID      string              `json:"company_id"`
	SKU            string              `json:"sku"`
	Name           string              `json:"name"`
	Specification  string              `json:"specification"`
	Unit           string              `json:"unit"`
	PiecesPerUnit  int                 `json:"pieces_per_unit"`
	HasPacking     bool                `json:"has_packing"` // false: solo se cotiza por pieza
	WeightPerPiece decimal.NullDecimal `json:"weight_per_piece"`
	Price          decimal.Decimal     `json:"price"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
