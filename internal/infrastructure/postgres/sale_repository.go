package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera; id y created_at los asigna la base y se propagan a las líneas.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (customer_id, total)
		VALUES ($1, $2)
		RETURNING id, created_at`
	var id int64
	var createdAt time.Time
	if err := r.q.QueryRow(ctx, query, sale.CustomerID, sale.Total).Scan(&id, &createdAt); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	sale.AssignID(id, createdAt)
	return nil
}

// CreateItem persiste una línea con el precio capturado.
func (r *SaleRepo) CreateItem(ctx context.Context, item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (sale_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, item.SaleID, item.ProductID, item.Quantity, item.UnitPrice).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene la venta con sus líneas en orden de inserción.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(ctx,
		`SELECT id, customer_id, total, created_at FROM sales WHERE id = $1`, id,
	).Scan(&s.ID, &s.CustomerID, &s.Total, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, sale_id, product_id, quantity, unit_price
		FROM sale_items WHERE sale_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		s.Items = append(s.Items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	return &s, nil
}
