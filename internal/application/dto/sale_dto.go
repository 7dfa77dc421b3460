package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSaleRequest body para POST /vendas. Cualquier precio enviado por el cliente se ignora.
type RegisterSaleRequest struct {
	CustomerID int64                 `json:"customerId"`
	Items      []RegisterSaleItemDTO `json:"items"`
}

// RegisterSaleItemDTO línea pedida: producto y cantidad.
type RegisterSaleItemDTO struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// SaleResponse cabecera de la venta registrada.
type SaleResponse struct {
	ID         int64           `json:"id"`
	CreatedAt  time.Time       `json:"createdAt"`
	CustomerID int64           `json:"customerId"`
	Total      decimal.Decimal `json:"total"`
}

// RegisterSaleResponse salida de POST /vendas.
type RegisterSaleResponse struct {
	Message string       `json:"message"`
	Sale    SaleResponse `json:"sale"`
}

// SaleItemResponse línea de una venta con el precio capturado.
type SaleItemResponse struct {
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleDetailResponse salida de GET /vendas/:id.
type SaleDetailResponse struct {
	SaleResponse
	Items []SaleItemResponse `json:"items"`
}
