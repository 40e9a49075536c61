// Package packing contiene la aritmética pura de conversión entre piezas y unidades de
// empaque (cantidades y precios), la nota de remanente y el formato de peso.
// Ninguna función retorna error: las entradas degeneradas se tratan como identidad.
package packing

import (
	"fmt"
	"strings"

	"github.com/jhoicas/ventas-api/internal/domain"
)

// DisplayUnit denominación en la que el usuario ve y edita cantidad y precio.
type DisplayUnit string

const (
	Piece DisplayUnit = "piece"
	Unit  DisplayUnit = "unit"
)

// Valid indica si la denominación es conocida.
func (u DisplayUnit) Valid() bool {
	return u == Piece || u == Unit
}

// ParseDisplayUnit acepta "piece" o "unit" sin distinguir mayúsculas.
func ParseDisplayUnit(s string) (DisplayUnit, error) {
	u := DisplayUnit(strings.ToLower(strings.TrimSpace(s)))
	if !u.Valid() {
		return "", fmt.Errorf("%w: unidad de visualización %q", domain.ErrInvalidInput, s)
	}
	return u, nil
}
