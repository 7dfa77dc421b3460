package repository

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
type SaleRepository interface {
	// Create inserta la cabecera y asigna ID y CreatedAt devueltos por la base.
	Create(ctx context.Context, sale *entity.Sale) error
	CreateItem(ctx context.Context, item *entity.SaleItem) error
	// GetByID devuelve la venta con sus líneas o nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
}
