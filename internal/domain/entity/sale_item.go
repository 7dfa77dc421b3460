package entity

import "github.com/shopspring/decimal"

// SaleItem línea de una venta. UnitPrice es el precio leído del producto al momento de la venta
// y no cambia después.
type SaleItem struct {
	ID        int64
	SaleID    int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal precio capturado × cantidad.
func (i *SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
