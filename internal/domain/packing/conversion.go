package packing

import "github.com/shopspring/decimal"

const places = 2

// PiecesToUnits = pieces / piecesPerUnit (2 decimales). Con piecesPerUnit <= 0 retorna pieces.
func PiecesToUnits(pieces decimal.Decimal, piecesPerUnit int) decimal.Decimal {
	if piecesPerUnit <= 0 {
		return pieces
	}
	return pieces.Div(decimal.NewFromInt(int64(piecesPerUnit))).Round(places)
}

// UnitsToPieces = units * piecesPerUnit (2 decimales). Con piecesPerUnit <= 0 retorna units.
func UnitsToPieces(units decimal.Decimal, piecesPerUnit int) decimal.Decimal {
	if piecesPerUnit <= 0 {
		return units
	}
	return units.Mul(decimal.NewFromInt(int64(piecesPerUnit))).Round(places)
}

// ToSystemQuantity lleva la cantidad mostrada a la cantidad canónica en piezas.
func ToSystemQuantity(displayQuantity decimal.Decimal, displayUnit DisplayUnit, piecesPerUnit int) decimal.Decimal {
	if displayUnit == Unit {
		return UnitsToPieces(displayQuantity, piecesPerUnit)
	}
	return displayQuantity
}

// ToDisplayQuantity lleva la cantidad canónica (piezas) a la denominación mostrada.
func ToDisplayQuantity(systemQuantity decimal.Decimal, displayUnit DisplayUnit, piecesPerUnit int) decimal.Decimal {
	if displayUnit == Unit {
		return PiecesToUnits(systemQuantity, piecesPerUnit)
	}
	return systemQuantity
}

// ConvertPrice reescala un precio entre denominaciones de forma inversa a la cantidad,
// de modo que cantidad * precio se conserve al cambiar la unidad mostrada.
// El precio de una unidad es la suma del precio de sus piezas.
func ConvertPrice(currentPrice decimal.Decimal, from, to DisplayUnit, piecesPerUnit int) decimal.Decimal {
	if from == to || !currentPrice.IsPositive() || piecesPerUnit <= 0 {
		return currentPrice
	}
	ratio := decimal.NewFromInt(int64(piecesPerUnit))
	switch {
	case from == Piece && to == Unit:
		return currentPrice.Mul(ratio).Round(places)
	case from == Unit && to == Piece:
		return currentPrice.Div(ratio).Round(places)
	default:
		return currentPrice
	}
}

// UnitPriceToPiecePrice precio por pieza a partir del precio por unidad de empaque.
func UnitPriceToPiecePrice(unitPrice decimal.Decimal, piecesPerUnit int) decimal.Decimal {
	return ConvertPrice(unitPrice, Unit, Piece, piecesPerUnit)
}
