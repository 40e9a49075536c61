package dto

import "github.com/shopspring/decimal"

// LineItem estado de una línea de pedido tal como la mantiene el formulario.
// Cantidad y precio pueden venir en null (campo sin diligenciar), distinto de 0.
type LineItem struct {
	ID              string              `json:"id,omitempty"`
	ProductID       string              `json:"product_id" jsonschema:"minLength=1"`
	DisplayUnit     string              `json:"display_unit" jsonschema:"enum=piece,enum=unit"`
	DisplayQuantity decimal.NullDecimal `json:"display_quantity"`
	Quantity        decimal.NullDecimal `json:"quantity" jsonschema_description:"Cantidad canónica en piezas; si va en null se deriva de display_quantity"`
	UnitPrice       decimal.NullDecimal `json:"unit_price" jsonschema_description:"Precio en la unidad de display_unit"`
	Remarks         string              `json:"remarks,omitempty"`
}

// LineResponse línea recalculada con los valores derivados.
type LineResponse struct {
	LineItem
	PiecesPerUnit int                 `json:"pieces_per_unit"`
	UnitLabel     string              `json:"unit_label,omitempty"`
	PiecePrice    decimal.NullDecimal `json:"piece_price"`
	Amount        decimal.Decimal     `json:"amount"`
}

// NewLineRequest body para POST /api/sales-orders/lines.
type NewLineRequest struct {
	ProductID string `json:"product_id"`
}

// LineEdit cambio de un campo de la línea.
// Field: display_unit (usa Unit), display_quantity y unit_price (usan Value), remarks (usa Text).
type LineEdit struct {
	Field string              `json:"field"`
	Unit  string              `json:"unit,omitempty"`
	Value decimal.NullDecimal `json:"value"`
	Text  string              `json:"text,omitempty"`
}

// EditLineRequest body para POST /api/sales-orders/lines/edit.
type EditLineRequest struct {
	Line LineItem `json:"line"`
	Edit LineEdit `json:"edit"`
}

// DraftOrderRequest pedido en composición (totales y cotización).
type DraftOrderRequest struct {
	CustomerName string     `json:"customer_name,omitempty"`
	Reference    string     `json:"reference,omitempty"`
	Lines        []LineItem `json:"lines"`
}

// TotalsResponse líneas recalculadas más totales del pedido.
type TotalsResponse struct {
	Lines         []LineResponse  `json:"lines"`
	Amount        decimal.Decimal `json:"amount"`
	WeightKg      decimal.Decimal `json:"weight_kg"`
	WeightDisplay string          `json:"weight_display"`
}
