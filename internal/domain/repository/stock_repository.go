package repository

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// StockRepository define el puerto para leer y descontar stock.
// Usado dentro de la transacción de venta para garantizar consistencia.
type StockRepository interface {
	// LockProducts bloquea las filas de productIDs en orden ascendente de ID. Los IDs inexistentes se ignoran.
	LockProducts(ctx context.Context, productIDs []int64) error
	// GetForUpdate lee precio y stock bloqueando la fila (SELECT FOR UPDATE). nil, nil si no existe.
	GetForUpdate(ctx context.Context, productID int64) (*entity.Stock, error)
	// Decrement resta quantity con un UPDATE relativo (stock = stock - quantity).
	Decrement(ctx context.Context, productID int64, quantity int) error
}
