package packing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Labels sustantivos usados en la nota de remanente.
type Labels struct {
	Unit  string // ej. "caja"
	Piece string // ej. "pieza"
}

// DefaultLabels etiquetas por defecto cuando el catálogo no informa la unidad.
var DefaultLabels = Labels{Unit: "caja", Piece: "pieza"}

// RemarksText describe totalPieces como unidades completas más piezas sueltas,
// ej. "3 cajas + 5 piezas". Vacío si no hay remanente o si la entrada es degenerada.
func RemarksText(totalPieces decimal.Decimal, piecesPerUnit int) string {
	return DefaultLabels.Text(totalPieces, piecesPerUnit)
}

// Text igual que RemarksText con las etiquetas de l.
func (l Labels) Text(totalPieces decimal.Decimal, piecesPerUnit int) string {
	if piecesPerUnit <= 0 || !totalPieces.IsPositive() {
		return ""
	}
	ratio := decimal.NewFromInt(int64(piecesPerUnit))
	whole := totalPieces.Div(ratio).Floor()
	remainder := totalPieces.Sub(whole.Mul(ratio))
	if !remainder.IsPositive() {
		return ""
	}

	unitLabel := nonEmpty(l.Unit, DefaultLabels.Unit)
	pieceLabel := nonEmpty(l.Piece, DefaultLabels.Piece)
	rest := remainder.String() + " " + plural(pieceLabel, remainder)
	if whole.IsZero() {
		return rest
	}
	return whole.String() + " " + plural(unitLabel, whole) + " + " + rest
}

// plural aplica la regla básica del español: vocal +s, consonante +es.
func plural(noun string, n decimal.Decimal) string {
	if n.Equal(decimal.NewFromInt(1)) || noun == "" {
		return noun
	}
	last, _ := utf8.DecodeLastRuneInString(noun)
	switch {
	case !unicode.IsLetter(last):
		return noun
	case strings.ContainsRune("aeiouáéíóúAEIOU", last) || last == 'k':
		return noun + "s"
	default:
		return noun + "es"
	}
}

func nonEmpty(s, fallback string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return fallback
}
