package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo lectura y descuento de stock sobre la tabla products. Pensado para usarse con una tx.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// LockProducts toma los bloqueos de fila en orden de ID antes de leer ítem por ítem.
func (r *StockRepo) LockProducts(ctx context.Context, productIDs []int64) error {
	query := `
		SELECT id FROM products
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE`
	if _, err := r.q.Exec(ctx, query, productIDs); err != nil {
		return fmt.Errorf("lock products: %w", err)
	}
	return nil
}

// GetForUpdate obtiene precio y stock y bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(ctx context.Context, productID int64) (*entity.Stock, error) {
	query := `
		SELECT id, price, stock_quantity
		FROM products WHERE id = $1
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, productID).Scan(&s.ProductID, &s.Price, &s.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Decrement resta quantity en la propia sentencia (sin leer-modificar-escribir en memoria).
// El CHECK stock_quantity >= 0 de la tabla se traduce a InsufficientStock.
func (r *StockRepo) Decrement(ctx context.Context, productID int64, quantity int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET stock_quantity = stock_quantity - $1 WHERE id = $2`,
		quantity, productID,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.NewInsufficientStock(productID)
		}
		return fmt.Errorf("decrement stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewProductNotFound(productID)
	}
	return nil
}
