package salesorder

import (
	"context"
	"time"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/order"
)

// QuotePDFGenerator genera la cotización imprimible de un pedido en composición.
// Lo implementa infrastructure/pdf.MarotoQuoteGenerator.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, quote Quote) ([]byte, error)
}

// Quote datos ya calculados que necesita el generador de PDF.
type Quote struct {
	IssuerName   string
	IssuerTaxID  string
	CustomerName string
	Reference    string
	Date         time.Time
	Lines        []QuoteLine
	Totals       order.Totals
}

// QuoteLine línea con el producto resuelto del catálogo.
type QuoteLine struct {
	Line    order.Line
	Product *entity.Product
}
