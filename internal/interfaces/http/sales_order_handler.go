package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/salesorder"
)

// SalesOrderHandler composición de pedidos: líneas, ediciones, totales y cotización.
type SalesOrderHandler struct {
	compose *salesorder.ComposeUseCase
	quote   *salesorder.QuoteUseCase
}

// NewSalesOrderHandler construye el handler.
func NewSalesOrderHandler(compose *salesorder.ComposeUseCase, quote *salesorder.QuoteUseCase) *SalesOrderHandler {
	return &SalesOrderHandler{compose: compose, quote: quote}
}

// NewLine godoc
// @Summary      Nueva línea de pedido
// @Description  Línea por defecto para el producto: 1 pieza, sin precio.
// @Tags         sales-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NewLineRequest  true  "Producto"
// @Success      201   {object}  dto.LineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales-orders/lines [post]
func (h *SalesOrderHandler) NewLine(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return missingCompany(c)
	}
	var in dto.NewLineRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.compose.NewLine(c.UserContext(), companyID, strings.TrimSpace(in.ProductID))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// EditLine godoc
// @Summary      Editar línea de pedido
// @Description  Aplica el cambio de un campo (display_unit, display_quantity, unit_price, remarks)
// @Description  y devuelve la línea con cantidad canónica, precio y observaciones coherentes.
// @Tags         sales-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EditLineRequest  true  "Línea actual y edición"
// @Success      200   {object}  dto.LineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales-orders/lines/edit [post]
func (h *SalesOrderHandler) EditLine(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return missingCompany(c)
	}
	var in dto.EditLineRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.compose.ApplyEdit(c.UserContext(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Totals godoc
// @Summary      Totales del pedido
// @Tags         sales-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DraftOrderRequest  true  "Pedido en composición"
// @Success      200   {object}  dto.TotalsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales-orders/totals [post]
func (h *SalesOrderHandler) Totals(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return missingCompany(c)
	}
	var in dto.DraftOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.compose.Totals(c.UserContext(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Quote godoc
// @Summary      Cotización en PDF
// @Tags         sales-orders
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.DraftOrderRequest  true  "Pedido en composición"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales-orders/quote [post]
func (h *SalesOrderHandler) Quote(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return missingCompany(c)
	}
	var in dto.DraftOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	pdf, filename, err := h.quote.Render(c.UserContext(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// Schema godoc
// @Summary      JSON Schema del pedido
// @Description  Esquema de DraftOrderRequest para la validación del formulario.
// @Tags         sales-orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/sales-orders/schema [get]
func (h *SalesOrderHandler) Schema(c *fiber.Ctx) error {
	raw, err := h.compose.Schema()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(raw)
}
