package salesorder

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/order"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// QuoteConfig datos del emisor impresos en la cabecera de la cotización.
type QuoteConfig struct {
	IssuerName  string
	IssuerTaxID string
}

// QuoteUseCase genera la cotización en PDF de un pedido en composición.
type QuoteUseCase struct {
	catalog   catalog
	generator QuotePDFGenerator
	cfg       QuoteConfig
	now       func() time.Time
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(products repository.ProductRepository, generator QuotePDFGenerator, cfg QuoteConfig) *QuoteUseCase {
	return &QuoteUseCase{
		catalog:   catalog{repo: products},
		generator: generator,
		cfg:       cfg,
		now:       time.Now,
	}
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Render valida el pedido y devuelve el PDF y el nombre de archivo sugerido.
//
// Retorna domain.ErrInvalidInput si el pedido no tiene líneas o si alguna línea no
// tiene cantidad positiva o precio; domain.ErrNotFound si algún producto no existe.
func (uc *QuoteUseCase) Render(ctx context.Context, companyID string, in dto.DraftOrderRequest) ([]byte, string, error) {
	if len(in.Lines) == 0 {
		return nil, "", fmt.Errorf("%w: el pedido no tiene líneas", domain.ErrInvalidInput)
	}
	lines, products, err := uc.catalog.lines(ctx, companyID, in.Lines)
	if err != nil {
		return nil, "", err
	}
	if err := validateForQuote(lines); err != nil {
		return nil, "", err
	}

	now := uc.now()
	quote := Quote{
		IssuerName:   uc.cfg.IssuerName,
		IssuerTaxID:  uc.cfg.IssuerTaxID,
		CustomerName: strings.TrimSpace(in.CustomerName),
		Reference:    strings.TrimSpace(in.Reference),
		Date:         now,
		Lines:        make([]QuoteLine, 0, len(lines)),
		Totals:       order.ComputeTotals(lines, weightsOf(products)),
	}
	for _, l := range lines {
		quote.Lines = append(quote.Lines, QuoteLine{Line: l, Product: products[l.ProductID]})
	}

	pdf, err := uc.generator.GenerateQuotePDF(ctx, quote)
	if err != nil {
		return nil, "", fmt.Errorf("cotización: generar pdf: %w", err)
	}
	return pdf, quoteFilename(quote.Reference, now), nil
}

// validateForQuote: toda línea necesita cantidad positiva y precio no negativo.
func validateForQuote(lines []order.Line) error {
	for i, l := range lines {
		if !l.Quantity.Valid || !l.Quantity.Decimal.IsPositive() {
			return fmt.Errorf("%w: línea %d sin cantidad positiva", domain.ErrInvalidInput, i+1)
		}
		if !l.UnitPrice.Valid || l.UnitPrice.Decimal.IsNegative() {
			return fmt.Errorf("%w: línea %d sin precio", domain.ErrInvalidInput, i+1)
		}
	}
	return nil
}

func quoteFilename(reference string, date time.Time) string {
	ref := strings.Trim(unsafeFilename.ReplaceAllString(reference, "-"), "-")
	if ref == "" {
		ref = date.Format("20060102-150405")
	}
	return "cotizacion-" + ref + ".pdf"
}
