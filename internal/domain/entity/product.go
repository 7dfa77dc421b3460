package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo con su stock único.
// StockQuantity solo cambia por descuento dentro del registro de una venta.
type Product struct {
	ID            int64
	Name          string
	Description   string
	Price         decimal.Decimal // precio unitario de venta, no negativo
	StockQuantity int
	CreatedAt     time.Time
}
