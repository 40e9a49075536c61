package order

import "github.com/shopspring/decimal"

// Totals importe y peso del pedido, siempre sobre la base canónica en piezas.
type Totals struct {
	Amount decimal.Decimal
	Weight decimal.Decimal // kg
}

// ComputeTotals suma importe y peso de las líneas. weights es kg por pieza indexado por
// ProductID; los productos sin peso aportan cero.
func ComputeTotals(lines []Line, weights map[string]decimal.Decimal) Totals {
	amount := decimal.Zero
	weight := decimal.Zero
	for _, l := range lines {
		amount = amount.Add(l.Amount())
		if !l.Quantity.Valid {
			continue
		}
		if w, ok := weights[l.ProductID]; ok {
			weight = weight.Add(l.Quantity.Decimal.Mul(w))
		}
	}
	return Totals{Amount: amount.Round(2), Weight: weight}
}
