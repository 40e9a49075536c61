package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

const (
	prodA   = "8c4e2a10-0000-4000-8000-000000000001"
	prodB   = "8c4e2a10-0000-4000-8000-000000000002"
	prodNil = "8c4e2a10-0000-4000-8000-0000000000ff"
)

type stubProducts struct {
	items     []*entity.Product
	gotLimit  int
	gotOffset int
}

func (s *stubProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range s.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (s *stubProducts) GetMany(_ context.Context, _ string, _ []string) ([]*entity.Product, error) {
	return s.items, nil
}

func (s *stubProducts) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.Product, error) {
	s.gotLimit, s.gotOffset = limit, offset
	var out []*entity.Product
	for _, p := range s.items {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestProductUseCase_GetByID(t *testing.T) {
	repo := &stubProducts{items: []*entity.Product{
		{ID: prodA, CompanyID: "c1", SKU: "POR-60", PiecesPerUnit: 12, Unit: "caja"},
		{ID: prodB, CompanyID: "c2", SKU: "OTRO"},
	}}
	uc := usecase.NewProductUseCase(repo)
	ctx := context.Background()

	out, err := uc.GetByID(ctx, "c1", prodA)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 12, out.PiecesPerUnit)
	assert.Equal(t, "caja", out.Unit)
	assert.True(t, out.HasPacking)

	out, err = uc.GetByID(ctx, "c1", prodNil)
	require.NoError(t, err)
	assert.Nil(t, out)

	_, err = uc.GetByID(ctx, "c1", prodB)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProductUseCase_GetByID_IDNoUUID(t *testing.T) {
	repo := &stubProducts{items: []*entity.Product{{ID: prodA, CompanyID: "c1"}}}
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.GetByID(context.Background(), "c1", "p1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el id malformado no debe llegar al repositorio")

	// mayúsculas: se normaliza antes de consultar
	out, err := uc.GetByID(context.Background(), "c1", "8C4E2A10-0000-4000-8000-000000000001")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, prodA, out.ID)
}

func TestToProductResponse_SinEmpaque(t *testing.T) {
	out := usecase.ToProductResponse(&entity.Product{ID: prodA, PiecesPerUnit: 0})
	assert.False(t, out.HasPacking)
	assert.Nil(t, usecase.ToProductResponse(nil))
}

func TestProductUseCase_List_Paginacion(t *testing.T) {
	repo := &stubProducts{items: []*entity.Product{{ID: "p1", CompanyID: "c1"}}}
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.List(context.Background(), "c1", 0, -5)
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, 20, repo.gotLimit)
	assert.Equal(t, 0, repo.gotOffset)

	_, err = uc.List(context.Background(), "c1", 500, 40)
	require.NoError(t, err)
	assert.Equal(t, 100, repo.gotLimit)
	assert.Equal(t, 40, repo.gotOffset)
}
