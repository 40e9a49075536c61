// seed_catalog genera el script SQL que carga el catálogo de productos de una empresa
// a partir del CSV del proveedor (separado por ';', UTF-8 o ISO-8859-1).
//
// Columnas: sku;name;specification;unit;pieces_per_unit;weight_per_piece;price
//
// Uso: go run ./cmd/seed_catalog -company <uuid> [ruta/productos.csv]
// Por defecto lee productos.csv del directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_products.sql
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

func main() {
	company := flag.String("company", "", "UUID de la empresa dueña del catálogo")
	flag.Parse()

	companyID, err := uuid.Parse(*company)
	if err != nil {
		fmt.Fprintf(os.Stderr, "-company debe ser un UUID: %v\n", err)
		os.Exit(2)
	}
	csvPath := "productos.csv"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}

	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	rows, err := parseCatalog(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed_products.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSeed(out, companyID, filepath.Base(csvPath), rows); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d productos\n", outPath, len(rows))
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
