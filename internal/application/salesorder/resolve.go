package salesorder

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/order"
	"github.com/jhoicas/ventas-api/internal/domain/packing"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// catalog envuelve el repositorio con las reglas de empresa que comparten los casos de uso.
type catalog struct {
	repo repository.ProductRepository
}

// product obtiene un producto de la empresa.
func (c catalog) product(ctx context.Context, companyID, productID string) (*entity.Product, error) {
	productID, err := domain.ParseID("product_id", productID)
	if err != nil {
		return nil, err
	}
	p, err := c.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("catálogo: obtener producto: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

// lines reconstruye las líneas del formulario con los datos de empaque del catálogo.
// Devuelve además los productos indexados por ID.
func (c catalog) lines(ctx context.Context, companyID string, items []dto.LineItem) ([]order.Line, map[string]*entity.Product, error) {
	ids := make([]string, 0, len(items))
	lineIDs := make([]string, len(items))
	seen := make(map[string]bool, len(items))
	for i, it := range items {
		id, err := domain.ParseID("product_id", it.ProductID)
		if err != nil {
			return nil, nil, fmt.Errorf("línea %d: %w", i+1, err)
		}
		lineIDs[i] = id
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	byID := make(map[string]*entity.Product, len(ids))
	if len(ids) > 0 {
		found, err := c.repo.GetMany(ctx, companyID, ids)
		if err != nil {
			return nil, nil, fmt.Errorf("catálogo: obtener productos: %w", err)
		}
		for _, p := range found {
			byID[p.ID] = p
		}
	}

	lines := make([]order.Line, 0, len(items))
	for i, it := range items {
		p, ok := byID[lineIDs[i]]
		if !ok {
			return nil, nil, fmt.Errorf("%w: producto %s (línea %d)", domain.ErrNotFound, lineIDs[i], i+1)
		}
		l, err := lineFromItem(it, p)
		if err != nil {
			return nil, nil, fmt.Errorf("línea %d: %w", i+1, err)
		}
		lines = append(lines, l)
	}
	return lines, byID, nil
}

// lineFromItem arma la línea de dominio. piecesPerUnit siempre sale del catálogo.
func lineFromItem(it dto.LineItem, p *entity.Product) (order.Line, error) {
	unit := packing.Piece
	if it.DisplayUnit != "" {
		u, err := packing.ParseDisplayUnit(it.DisplayUnit)
		if err != nil {
			return order.Line{}, err
		}
		unit = u
	}
	id := it.ID
	if id == "" {
		id = uuid.New().String()
	}
	return order.Line{
		ID:              id,
		ProductID:       p.ID,
		PiecesPerUnit:   p.PiecesPerUnit,
		UnitLabel:       p.Unit,
		DisplayUnit:     unit,
		DisplayQuantity: it.DisplayQuantity,
		Quantity:        it.Quantity,
		UnitPrice:       it.UnitPrice,
		Remarks:         it.Remarks,
	}.Normalize(), nil
}

func editFromDTO(e dto.LineEdit) (order.Edit, error) {
	edit := order.Edit{
		Kind:  order.EditKind(e.Field),
		Value: e.Value,
		Text:  e.Text,
	}
	if edit.Kind == order.EditDisplayUnit {
		u, err := packing.ParseDisplayUnit(e.Unit)
		if err != nil {
			return order.Edit{}, err
		}
		edit.Unit = u
	}
	return edit, nil
}

func weightsOf(products map[string]*entity.Product) map[string]decimal.Decimal {
	weights := make(map[string]decimal.Decimal, len(products))
	for id, p := range products {
		if p.WeightPerPiece.Valid {
			weights[id] = p.WeightPerPiece.Decimal
		}
	}
	return weights
}

func toLineResponse(l order.Line) dto.LineResponse {
	return dto.LineResponse{
		LineItem: dto.LineItem{
			ID:              l.ID,
			ProductID:       l.ProductID,
			DisplayUnit:     string(l.DisplayUnit),
			DisplayQuantity: l.DisplayQuantity,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			Remarks:         l.Remarks,
		},
		PiecesPerUnit: l.PiecesPerUnit,
		UnitLabel:     l.UnitLabel,
		PiecePrice:    l.PiecePrice(),
		Amount:        l.Amount().Round(2),
	}
}
