package packing

import "github.com/shopspring/decimal"

var oneTonne = decimal.NewFromInt(1000)

// FormatWeight muestra kilogramos enteros por debajo de 1000 kg y toneladas con un
// decimal a partir de ahí: "850 kg", "1.5 t".
func FormatWeight(kg decimal.Decimal) string {
	// se compara ya redondeado: 999.6 kg es "1.0 t", no "1000 kg"
	if whole := kg.Round(0); whole.LessThan(oneTonne) {
		return whole.StringFixed(0) + " kg"
	}
	return kg.Div(oneTonne).Round(1).StringFixed(1) + " t"
}
