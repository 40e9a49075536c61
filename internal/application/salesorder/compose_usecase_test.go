package salesorder_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/salesorder"
	"github.com/jhoicas/ventas-api/internal/domain"
)

func nd(s string) decimal.NullDecimal { return decimal.NewNullDecimal(decimal.RequireFromString(s)) }

func eq(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "esperado %s, obtenido %s", want, got)
}

func TestComposeUseCase_NewLine(t *testing.T) {
	uc := salesorder.NewComposeUseCase(newCatalog())

	out, err := uc.NewLine(context.Background(), companyA, porcelanatoID)
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "piece", out.DisplayUnit)
	assert.Equal(t, 12, out.PiecesPerUnit)
	assert.Equal(t, "caja", out.UnitLabel)
	eq(t, "1", out.Quantity.Decimal)
	assert.False(t, out.UnitPrice.Valid)
}

func TestComposeUseCase_NewLine_Errores(t *testing.T) {
	ctx := context.Background()
	uc := salesorder.NewComposeUseCase(newCatalog())

	_, err := uc.NewLine(ctx, companyA, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.NewLine(ctx, companyA, missingID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.NewLine(ctx, companyA, ajenoID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	repo := newCatalog()
	repo.err = errDB
	_, err = salesorder.NewComposeUseCase(repo).NewLine(ctx, companyA, porcelanatoID)
	assert.ErrorIs(t, err, errDB)
}

// Escenario completo por ediciones sucesivas: 3 cajas a 120 y cambio a piezas.
func TestComposeUseCase_ApplyEdit_Escenario(t *testing.T) {
	ctx := context.Background()
	uc := salesorder.NewComposeUseCase(newCatalog())

	line, err := uc.NewLine(ctx, companyA, porcelanatoID)
	require.NoError(t, err)

	edits := []dto.LineEdit{
		{Field: "display_unit", Unit: "unit"},
		{Field: "display_quantity", Value: nd("3")},
		{Field: "unit_price", Value: nd("120")},
	}
	for _, e := range edits {
		line, err = uc.ApplyEdit(ctx, companyA, dto.EditLineRequest{Line: line.LineItem, Edit: e})
		require.NoError(t, err, "edición %s", e.Field)
	}

	eq(t, "36", line.Quantity.Decimal)
	eq(t, "10", line.PiecePrice.Decimal)
	eq(t, "360", line.Amount)

	line, err = uc.ApplyEdit(ctx, companyA, dto.EditLineRequest{
		Line: line.LineItem,
		Edit: dto.LineEdit{Field: "display_unit", Unit: "piece"},
	})
	require.NoError(t, err)
	eq(t, "36", line.DisplayQuantity.Decimal)
	eq(t, "10", line.UnitPrice.Decimal)
	eq(t, "360", line.Amount)
	assert.Empty(t, line.Remarks)
}

// piecesPerUnit sale del catálogo aunque el cliente envíe otra cosa.
func TestComposeUseCase_ApplyEdit_UsaEmpaqueDelCatalogo(t *testing.T) {
	uc := salesorder.NewComposeUseCase(newCatalog())

	out, err := uc.ApplyEdit(context.Background(), companyA, dto.EditLineRequest{
		Line: dto.LineItem{ProductID: porcelanatoID, DisplayUnit: "piece", DisplayQuantity: nd("1")},
		Edit: dto.LineEdit{Field: "display_quantity", Value: nd("40")},
	})
	require.NoError(t, err)

	eq(t, "40", out.Quantity.Decimal)
	assert.Equal(t, "3 cajas + 4 piezas", out.Remarks)
}

func TestComposeUseCase_ApplyEdit_Invalida(t *testing.T) {
	ctx := context.Background()
	uc := salesorder.NewComposeUseCase(newCatalog())
	base := dto.LineItem{ProductID: porcelanatoID, DisplayUnit: "piece", DisplayQuantity: nd("1")}

	_, err := uc.ApplyEdit(ctx, companyA, dto.EditLineRequest{Line: base, Edit: dto.LineEdit{Field: "descuento"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ApplyEdit(ctx, companyA, dto.EditLineRequest{Line: base, Edit: dto.LineEdit{Field: "display_unit", Unit: "docena"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad := base
	bad.DisplayUnit = "metro"
	_, err = uc.ApplyEdit(ctx, companyA, dto.EditLineRequest{Line: bad, Edit: dto.LineEdit{Field: "unit_price", Value: nd("1")}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComposeUseCase_Totals(t *testing.T) {
	uc := salesorder.NewComposeUseCase(newCatalog())

	out, err := uc.Totals(context.Background(), companyA, dto.DraftOrderRequest{
		Lines: []dto.LineItem{
			// 50 cajas = 600 piezas a 120 la caja → 6000, 1440 kg
			{ProductID: porcelanatoID, DisplayUnit: "unit", DisplayQuantity: nd("50"), UnitPrice: nd("120")},
			// sin peso en catálogo
			{ProductID: fraguaID, DisplayUnit: "piece", DisplayQuantity: nd("17"), UnitPrice: nd("4.2")},
		},
	})
	require.NoError(t, err)

	require.Len(t, out.Lines, 2)
	eq(t, "600", out.Lines[0].Quantity.Decimal)
	eq(t, "6071.4", out.Amount)
	eq(t, "1440", out.WeightKg)
	assert.Equal(t, "1.4 t", out.WeightDisplay)
}

// La cantidad mostrada manda cuando la canónica enviada no corresponde con ella.
func TestComposeUseCase_Totals_CanonicaDesactualizada(t *testing.T) {
	uc := salesorder.NewComposeUseCase(newCatalog())

	out, err := uc.Totals(context.Background(), companyA, dto.DraftOrderRequest{
		Lines: []dto.LineItem{
			{ProductID: porcelanatoID, DisplayUnit: "unit", DisplayQuantity: nd("3"), Quantity: nd("10"), UnitPrice: nd("120")},
			// 40 piezas = 3.33 cajas redondeado: se conserva la canónica
			{ProductID: porcelanatoID, DisplayUnit: "unit", DisplayQuantity: nd("3.33"), Quantity: nd("40"), UnitPrice: nd("120")},
		},
	})
	require.NoError(t, err)

	eq(t, "36", out.Lines[0].Quantity.Decimal)
	eq(t, "360", out.Lines[0].Amount)
	eq(t, "40", out.Lines[1].Quantity.Decimal)
	eq(t, "760", out.Amount)
}

func TestComposeUseCase_ProductIDNoUUID(t *testing.T) {
	ctx := context.Background()
	repo := newCatalog()
	repo.err = errDB // si la consulta llegara al repositorio el error sería otro
	uc := salesorder.NewComposeUseCase(repo)

	_, err := uc.NewLine(ctx, companyA, "abc")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, errDB)

	_, err = uc.Totals(ctx, companyA, dto.DraftOrderRequest{
		Lines: []dto.LineItem{{ProductID: "porcelanato-60", DisplayQuantity: nd("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, errDB)

	_, err = uc.ApplyEdit(ctx, companyA, dto.EditLineRequest{
		Line: dto.LineItem{ProductID: "x"},
		Edit: dto.LineEdit{Field: "remarks", Text: "ok"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComposeUseCase_Totals_IDEnMayusculas(t *testing.T) {
	uc := salesorder.NewComposeUseCase(newCatalog())
	out, err := uc.Totals(context.Background(), companyA, dto.DraftOrderRequest{
		Lines: []dto.LineItem{{ProductID: strings.ToUpper(porcelanatoID), DisplayQuantity: nd("2"), UnitPrice: nd("10")}},
	})
	require.NoError(t, err)
	assert.Equal(t, porcelanatoID, out.Lines[0].ProductID)
	eq(t, "20", out.Amount)
}

func TestComposeUseCase_Totals_Vacio(t *testing.T) {
	uc := salesorder.NewComposeUseCase(newCatalog())
	out, err := uc.Totals(context.Background(), companyA, dto.DraftOrderRequest{})
	require.NoError(t, err)
	assert.Empty(t, out.Lines)
	assert.True(t, out.Amount.IsZero())
	assert.Equal(t, "0 kg", out.WeightDisplay)
}

func TestComposeUseCase_Totals_ProductoDeOtraEmpresa(t *testing.T) {
	uc := salesorder.NewComposeUseCase(newCatalog())
	_, err := uc.Totals(context.Background(), companyA, dto.DraftOrderRequest{
		Lines: []dto.LineItem{{ProductID: ajenoID, DisplayQuantity: nd("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraftSchema(t *testing.T) {
	raw, err := salesorder.NewComposeUseCase(newCatalog()).Schema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(raw, &schema))
	assert.Equal(t, "object", schema["type"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "lines")

	s := string(raw)
	assert.Contains(t, s, `"display_unit"`)
	assert.Contains(t, s, `"piece"`)
	assert.Contains(t, s, `"unit_price"`)
}
