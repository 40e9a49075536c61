package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/salesorder"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	ComposeUC  *salesorder.ComposeUseCase
	QuoteUC    *salesorder.QuoteUseCase
	JWTSecret  string
	JWTIssuer  string
	QuoteRoles []string // vacío = cualquier rol
}

// Router registra las rutas de la API. Todo /api requiere Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	// Catálogo (solo lectura)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Pedidos en composición (sin persistencia)
	orders := api.Group("/sales-orders")
	orderHandler := NewSalesOrderHandler(deps.ComposeUC, deps.QuoteUC)
	orders.Get("/schema", orderHandler.Schema)
	orders.Post("/lines", orderHandler.NewLine)
	orders.Post("/lines/edit", orderHandler.EditLine)
	orders.Post("/totals", orderHandler.Totals)
	if len(deps.QuoteRoles) > 0 {
		orders.Post("/quote", RequireRole(deps.QuoteRoles...), orderHandler.Quote)
	} else {
		orders.Post("/quote", orderHandler.Quote)
	}
}
