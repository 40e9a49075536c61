package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const columns = 7

var utf8BOM = []byte("\xef\xbb\xbf")

type productRow struct {
	SKU            string
	Name           string
	Specification  string
	Unit           string
	PiecesPerUnit  int
	WeightPerPiece decimal.NullDecimal
	Price          decimal.Decimal
}

// parseCatalog lee el CSV del proveedor. Si el contenido no es UTF-8 válido se
// decodifica como ISO-8859-1 (exportaciones de Excel en Windows).
// La primera fila se omite si es el encabezado.
func parseCatalog(raw []byte) ([]productRow, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.ISO8859_1.NewDecoder())
	}

	r := csv.NewReader(bufio.NewReader(src))
	r.Comma = ';'
	r.FieldsPerRecord = columns
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([]productRow, 0, len(records))
	seen := make(map[string]int, len(records))
	for i, rec := range records {
		line := i + 1
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "sku") {
			continue
		}
		row, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		if prev, dup := seen[row.SKU]; dup {
			return nil, fmt.Errorf("línea %d: sku %q repetido (línea %d)", line, row.SKU, prev)
		}
		seen[row.SKU] = line
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(rec []string) (productRow, error) {
	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}
	row := productRow{SKU: rec[0], Name: rec[1], Specification: rec[2], Unit: rec[3]}
	if row.SKU == "" || row.Name == "" {
		return row, fmt.Errorf("sku y name son requeridos")
	}

	if rec[4] != "" {
		n, err := strconv.Atoi(rec[4])
		if err != nil || n < 0 {
			return row, fmt.Errorf("pieces_per_unit inválido %q", rec[4])
		}
		row.PiecesPerUnit = n
	}
	if rec[5] != "" {
		w, err := parseAmount(rec[5])
		if err != nil || w.IsNegative() {
			return row, fmt.Errorf("weight_per_piece inválido %q", rec[5])
		}
		row.WeightPerPiece = decimal.NewNullDecimal(w)
	}
	price, err := parseAmount(rec[6])
	if err != nil || price.IsNegative() {
		return row, fmt.Errorf("price inválido %q", rec[6])
	}
	// "1.234" sin coma puede ser 1.234 o 1234: el precio se guarda con dos decimales,
	// así que más de dos se rechaza en vez de adivinar.
	if price.Exponent() < -2 {
		return row, fmt.Errorf("price %q con más de dos decimales (miles con coma decimal: 1.234,00)", rec[6])
	}
	row.Price = price
	return row, nil
}

// parseAmount acepta punto o coma decimal: "1.234,50", "12,5", "7.25".
// Con coma, los puntos son de miles; sin coma, el punto es decimal.
func parseAmount(s string) (decimal.Decimal, error) {
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	return decimal.NewFromString(s)
}

// productID es estable por (empresa, sku) para que regenerar el script no cambie IDs.
func productID(companyID uuid.UUID, sku string) uuid.UUID {
	return uuid.NewSHA1(companyID, []byte(sku))
}

func writeSeed(w io.Writer, companyID uuid.UUID, source string, rows []productRow) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "-- Catálogo de productos de la empresa %s\n", companyID)
	fmt.Fprintf(bw, "-- Generado desde %s\n\n", source)

	for _, p := range rows {
		weight := "NULL"
		if p.WeightPerPiece.Valid {
			weight = p.WeightPerPiece.Decimal.String()
		}
		bw.WriteString("INSERT INTO products (id, company_id, sku, name, specification, unit, pieces_per_unit, weight_per_piece, price)\n")
		fmt.Fprintf(bw, "VALUES ('%s', '%s', '%s', '%s', '%s', '%s', %d, %s, %s)\n",
			productID(companyID, p.SKU), companyID,
			escapeSQL(p.SKU), escapeSQL(p.Name), escapeSQL(p.Specification), escapeSQL(p.Unit),
			p.PiecesPerUnit, weight, p.Price.StringFixed(2),
		)
		bw.WriteString("ON CONFLICT (company_id, sku) DO UPDATE SET\n")
		bw.WriteString("  name = EXCLUDED.name, specification = EXCLUDED.specification, unit = EXCLUDED.unit,\n")
		bw.WriteString("  pieces_per_unit = EXCLUDED.pieces_per_unit, weight_per_piece = EXCLUDED.weight_per_piece,\n")
		bw.WriteString("  price = EXCLUDED.price, updated_at = now();\n\n")
	}
	return bw.Flush()
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
