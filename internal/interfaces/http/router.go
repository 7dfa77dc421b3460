package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   ProductService
	SaleUC      SaleService
	DB          Pinger
	ServiceName string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", NewHealthHandler(deps.DB, deps.ServiceName).Check)

	productHandler := NewProductHandler(deps.ProductUC)
	app.Post("/produtos", productHandler.Create)
	app.Get("/produtos/:id", productHandler.GetByID)

	saleHandler := NewSaleHandler(deps.SaleUC)
	app.Post("/vendas", saleHandler.Register)
	app.Get("/vendas/:id", saleHandler.GetByID)
}
