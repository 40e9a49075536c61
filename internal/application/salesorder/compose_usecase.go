// Package salesorder expone el motor de conversión pieza/unidad como casos de uso
// respaldados por el catálogo: crear líneas, aplicar ediciones, totalizar y cotizar.
// El servicio no guarda estado: el formulario envía la línea o el pedido completo.
package salesorder

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain/order"
	"github.com/jhoicas/ventas-api/internal/domain/packing"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ComposeUseCase composición de pedidos de venta.
type ComposeUseCase struct {
	catalog catalog
}

// NewComposeUseCase construye el caso de uso.
func NewComposeUseCase(products repository.ProductRepository) *ComposeUseCase {
	return &ComposeUseCase{catalog: catalog{repo: products}}
}

// NewLine crea la línea por defecto (1 pieza, sin precio) para un producto.
func (uc *ComposeUseCase) NewLine(ctx context.Context, companyID, productID string) (*dto.LineResponse, error) {
	p, err := uc.catalog.product(ctx, companyID, productID)
	if err != nil {
		return nil, err
	}
	out := toLineResponse(order.NewLine(p))
	return &out, nil
}

// ApplyEdit aplica la edición de un campo y devuelve la línea coherente resultante.
func (uc *ComposeUseCase) ApplyEdit(ctx context.Context, companyID string, in dto.EditLineRequest) (*dto.LineResponse, error) {
	p, err := uc.catalog.product(ctx, companyID, in.Line.ProductID)
	if err != nil {
		return nil, err
	}
	line, err := lineFromItem(in.Line, p)
	if err != nil {
		return nil, err
	}
	edit, err := editFromDTO(in.Edit)
	if err != nil {
		return nil, err
	}
	line, err = line.Apply(edit)
	if err != nil {
		return nil, err
	}
	out := toLineResponse(line)
	return &out, nil
}

// Totals recalcula las líneas y los totales de importe y peso del pedido.
func (uc *ComposeUseCase) Totals(ctx context.Context, companyID string, in dto.DraftOrderRequest) (*dto.TotalsResponse, error) {
	lines, products, err := uc.catalog.lines(ctx, companyID, in.Lines)
	if err != nil {
		return nil, err
	}
	totals := order.ComputeTotals(lines, weightsOf(products))

	out := &dto.TotalsResponse{
		Lines:         make([]dto.LineResponse, 0, len(lines)),
		Amount:        totals.Amount,
		WeightKg:      totals.Weight,
		WeightDisplay: packing.FormatWeight(totals.Weight),
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, toLineResponse(l))
	}
	return out, nil
}
