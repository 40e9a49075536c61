package salesorder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/salesorder"
	"github.com/jhoicas/ventas-api/internal/domain"
)

// fakeGenerator guarda la última cotización recibida.
type fakeGenerator struct {
	got salesorder.Quote
	err error
}

func (g *fakeGenerator) GenerateQuotePDF(_ context.Context, q salesorder.Quote) ([]byte, error) {
	g.got = q
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-1.3 fake"), nil
}

func validDraft() dto.DraftOrderRequest {
	return dto.DraftOrderRequest{
		CustomerName: "  Constructora Andina  ",
		Reference:    "COT 2026/044",
		Lines: []dto.LineItem{
			{ProductID: porcelanatoID, DisplayUnit: "unit", DisplayQuantity: nd("3"), UnitPrice: nd("120")},
		},
	}
}

func TestQuoteUseCase_Render(t *testing.T) {
	gen := &fakeGenerator{}
	uc := salesorder.NewQuoteUseCase(newCatalog(), gen, salesorder.QuoteConfig{IssuerName: "Cerámicas del Valle", IssuerTaxID: "900123456-7"})

	pdf, filename, err := uc.Render(context.Background(), companyA, validDraft())
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-1.3 fake"), pdf)
	assert.Equal(t, "cotizacion-COT-2026-044.pdf", filename)

	assert.Equal(t, "Cerámicas del Valle", gen.got.IssuerName)
	assert.Equal(t, "Constructora Andina", gen.got.CustomerName)
	require.Len(t, gen.got.Lines, 1)
	assert.Equal(t, "Porcelanato 60x60", gen.got.Lines[0].Product.Name)
	eq(t, "36", gen.got.Lines[0].Line.Quantity.Decimal)
	eq(t, "360", gen.got.Totals.Amount)
	eq(t, "86.4", gen.got.Totals.Weight)
	assert.False(t, gen.got.Date.IsZero())
}

func TestQuoteUseCase_Render_NombreSinReferencia(t *testing.T) {
	uc := salesorder.NewQuoteUseCase(newCatalog(), &fakeGenerator{}, salesorder.QuoteConfig{})
	in := validDraft()
	in.Reference = " // "

	_, filename, err := uc.Render(context.Background(), companyA, in)
	require.NoError(t, err)
	assert.Regexp(t, `^cotizacion-\d{8}-\d{6}\.pdf$`, filename)
}

func TestQuoteUseCase_Render_Validaciones(t *testing.T) {
	ctx := context.Background()
	uc := salesorder.NewQuoteUseCase(newCatalog(), &fakeGenerator{}, salesorder.QuoteConfig{})

	_, _, err := uc.Render(ctx, companyA, dto.DraftOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin líneas")

	noPrice := validDraft()
	noPrice.Lines[0].UnitPrice = nd("1")
	noPrice.Lines[0].UnitPrice.Valid = false
	_, _, err = uc.Render(ctx, companyA, noPrice)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin precio")

	zeroQty := validDraft()
	zeroQty.Lines[0].DisplayQuantity = nd("0")
	_, _, err = uc.Render(ctx, companyA, zeroQty)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	missing := validDraft()
	missing.Lines[0].ProductID = missingID
	_, _, err = uc.Render(ctx, companyA, missing)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuoteUseCase_Render_ErrorDelGenerador(t *testing.T) {
	boom := errors.New("fuente no disponible")
	uc := salesorder.NewQuoteUseCase(newCatalog(), &fakeGenerator{err: boom}, salesorder.QuoteConfig{})

	_, _, err := uc.Render(context.Background(), companyA, validDraft())
	assert.ErrorIs(t, err, boom)
}
