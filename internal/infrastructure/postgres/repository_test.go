package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// stubQuerier devuelve respuestas fijas y guarda la última sentencia recibida.
type stubQuerier struct {
	tag     pgconn.CommandTag
	execErr error
	row     stubRow

	sql  string
	args []any
}

func (q *stubQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sql, q.args = sql, args
	return q.tag, q.execErr
}

func (q *stubQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("Query no soportado en stubQuerier")
}

func (q *stubQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql, q.args = sql, args
	return q.row
}

type stubRow struct {
	vals []any
	err  error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		return fmt.Errorf("scan: %d destinos para %d valores", len(dest), len(r.vals))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = r.vals[i].(int64)
		case *int:
			*p = r.vals[i].(int)
		case *decimal.Decimal:
			*p = r.vals[i].(decimal.Decimal)
		case *time.Time:
			*p = r.vals[i].(time.Time)
		default:
			return fmt.Errorf("scan: tipo %T no soportado", d)
		}
	}
	return nil
}

func TestStockRepo_Decrement(t *testing.T) {
	cases := []struct {
		name    string
		tag     pgconn.CommandTag
		execErr error
		wantIs  error
	}{
		{"descuento aplicado", pgconn.NewCommandTag("UPDATE 1"), nil, nil},
		{"violación de CHECK", pgconn.CommandTag{}, &pgconn.PgError{Code: "23514", ConstraintName: "products_stock_quantity_check"}, domain.ErrInsufficientStock},
		{"fila inexistente", pgconn.NewCommandTag("UPDATE 0"), nil, domain.ErrProductNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := &stubQuerier{tag: tc.tag, execErr: tc.execErr}
			err := NewStockRepository(q).Decrement(context.Background(), 4, 2)

			assert.Contains(t, q.sql, "stock_quantity = stock_quantity - $1")
			assert.Equal(t, []any{2, int64(4)}, q.args)
			if tc.wantIs == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantIs)
			var perr *domain.ProductError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, int64(4), perr.ProductID)
		})
	}
}

func TestStockRepo_DecrementOtroErrorSeEnvuelve(t *testing.T) {
	cause := &pgconn.PgError{Code: "08006"}
	q := &stubQuerier{execErr: cause}

	err := NewStockRepository(q).Decrement(context.Background(), 1, 1)
	require.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "decrement stock")
}

func TestStockRepo_LockProductsOrdenaPorID(t *testing.T) {
	q := &stubQuerier{tag: pgconn.NewCommandTag("SELECT 2")}

	require.NoError(t, NewStockRepository(q).LockProducts(context.Background(), []int64{1, 3}))
	assert.Contains(t, q.sql, "ORDER BY id")
	assert.Contains(t, q.sql, "FOR UPDATE")
	assert.Equal(t, []any{[]int64{1, 3}}, q.args)
}

func TestStockRepo_GetForUpdate(t *testing.T) {
	q := &stubQuerier{row: stubRow{vals: []any{int64(2), decimal.RequireFromString("7.50"), 3}}}
	s, err := NewStockRepository(q).GetForUpdate(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Quantity)
	assert.True(t, s.Price.Equal(decimal.RequireFromString("7.50")))

	q = &stubQuerier{row: stubRow{err: pgx.ErrNoRows}}
	s, err = NewStockRepository(q).GetForUpdate(context.Background(), 9)
	assert.NoError(t, err)
	assert.Nil(t, s)
}

func TestProductRepo_CreateDevuelvePrecioAlmacenado(t *testing.T) {
	created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	q := &stubQuerier{row: stubRow{vals: []any{int64(10), decimal.RequireFromString("10.01"), created}}}
	p := &entity.Product{Name: "Café", Price: decimal.RequireFromString("10.005"), StockQuantity: 1}

	require.NoError(t, NewProductRepository(q).Create(context.Background(), p))
	assert.Contains(t, q.sql, "RETURNING id, price, created_at")
	assert.Equal(t, int64(10), p.ID)
	assert.Equal(t, "10.01", p.Price.String())
	assert.Equal(t, created, p.CreatedAt)
}
