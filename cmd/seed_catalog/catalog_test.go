package main

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCompany = uuid.MustParse("00000000-0000-0000-0000-00000000000a")

func TestParseCatalog_UTF8ConEncabezado(t *testing.T) {
	in := "sku;name;specification;unit;pieces_per_unit;weight_per_piece;price\n" +
		"POR-60;Porcelanato 60x60;rectificado;caja;12;2,4;1.234,50\n" +
		"FRA-01;Fragua gris;;saco;5;;7.25\n"

	rows, err := parseCatalog([]byte(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "POR-60", rows[0].SKU)
	assert.Equal(t, 12, rows[0].PiecesPerUnit)
	assert.Equal(t, "2.4", rows[0].WeightPerPiece.Decimal.String())
	assert.Equal(t, "1234.5", rows[0].Price.String())

	assert.False(t, rows[1].WeightPerPiece.Valid)
	assert.Equal(t, "7.25", rows[1].Price.String())
}

func TestParseCatalog_Latin1(t *testing.T) {
	in := []byte("CER-1;Cer\xe1mica ba\xf1o;;caja;10;;20\n")

	rows, err := parseCatalog(in)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Cerámica baño", rows[0].Name)
}

func TestParseCatalog_BOM(t *testing.T) {
	rows, err := parseCatalog([]byte("\xef\xbb\xbfsku;name;specification;unit;pieces_per_unit;weight_per_piece;price\nA;B;;;0;;1\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0].SKU)
}

func TestParseCatalog_Errores(t *testing.T) {
	cases := map[string]string{
		"sin sku":           ";Nombre;;caja;1;;1\n",
		"empaque negativo":  "A;Nombre;;caja;-3;;1\n",
		"empaque decimal":   "A;Nombre;;caja;1.5;;1\n",
		"peso inválido":     "A;Nombre;;caja;1;pesado;1\n",
		"precio negativo":   "A;Nombre;;caja;1;;-1\n",
		"precio ambiguo":    "A;Nombre;;caja;1;;1.234\n",
		"columnas de menos": "A;Nombre;caja\n",
		"sku repetido":      "A;Uno;;caja;1;;1\nA;Dos;;caja;1;;1\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseCatalog([]byte(in))
			assert.Error(t, err)
		})
	}
}

func TestParseAmount_PuntoSinComaEsDecimal(t *testing.T) {
	cases := map[string]string{
		"1.234":    "1.234",
		"1.234,00": "1234",
		"12,5":     "12.5",
		"0.125":    "0.125",
	}
	for in, want := range cases {
		got, err := parseAmount(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String(), in)
	}

	// el peso admite tres decimales; el precio no
	rows, err := parseCatalog([]byte("A;Nombre;;caja;1;0.125;1.234,00\n"))
	require.NoError(t, err)
	assert.Equal(t, "0.125", rows[0].WeightPerPiece.Decimal.String())
	assert.Equal(t, "1234", rows[0].Price.String())
}

func TestWriteSeed(t *testing.T) {
	rows, err := parseCatalog([]byte("POR-60;Porcelanato D'Italia;;caja;12;2.4;10\nFRA-01;Fragua;;saco;5;;7\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeSeed(&buf, testCompany, "productos.csv", rows))
	sql := buf.String()

	assert.Contains(t, sql, "Porcelanato D''Italia")
	assert.Contains(t, sql, "12, 2.4, 10.00)")
	assert.Contains(t, sql, "5, NULL, 7.00)")
	assert.Contains(t, sql, productID(testCompany, "POR-60").String())
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("ON CONFLICT (company_id, sku) DO UPDATE")))
}

func TestProductID_Estable(t *testing.T) {
	assert.Equal(t, productID(testCompany, "A"), productID(testCompany, "A"))
	assert.NotEqual(t, productID(testCompany, "A"), productID(testCompany, "B"))
}
