package salesorder_test

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

const (
	companyA = "00000000-0000-0000-0000-00000000000a"
	companyB = "00000000-0000-0000-0000-00000000000b"

	porcelanatoID = "5b1f0c3e-6a1d-4e52-9d0b-2f4f6c0a0001"
	fraguaID      = "5b1f0c3e-6a1d-4e52-9d0b-2f4f6c0a0002"
	ajenoID       = "5b1f0c3e-6a1d-4e52-9d0b-2f4f6c0a0003"
	missingID     = "5b1f0c3e-6a1d-4e52-9d0b-2f4f6c0a00ff"
)

var _ repository.ProductRepository = (*memProducts)(nil)

// memProducts catálogo en memoria para los tests.
type memProducts struct {
	items map[string]*entity.Product
	err   error
}

func newCatalog() *memProducts {
	m := &memProducts{items: map[string]*entity.Product{}}
	m.add(&entity.Product{
		ID: porcelanatoID, CompanyID: companyA, SKU: "POR-60", Name: "Porcelanato 60x60",
		Unit: "caja", PiecesPerUnit: 12,
		WeightPerPiece: decimal.NewNullDecimal(decimal.RequireFromString("2.4")),
		Price:          decimal.RequireFromString("10"),
	})
	m.add(&entity.Product{
		ID: fraguaID, CompanyID: companyA, SKU: "FRA-01", Name: "Fragua gris",
		Unit: "saco", PiecesPerUnit: 5,
	})
	m.add(&entity.Product{
		ID: ajenoID, CompanyID: companyB, SKU: "X-1", Name: "Producto de otra empresa", PiecesPerUnit: 4,
	})
	return m
}

func (m *memProducts) add(p *entity.Product) { m.items[p.ID] = p }

func (m *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items[id], nil
}

func (m *memProducts) GetMany(_ context.Context, companyID string, ids []string) ([]*entity.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := m.items[id]; ok && p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProducts) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*entity.Product
	for _, p := range m.items {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

var errDB = errors.New("conexión perdida")
