package entity_test

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

func TestSale_AddItemAcumulaTotal(t *testing.T) {
	sale := &entity.Sale{CustomerID: 9}
	sale.AddItem(1, 2, decimal.RequireFromString("10.00"))
	sale.AddItem(2, 1, decimal.RequireFromString("5.00"))

	assert.True(t, sale.Total.Equal(decimal.RequireFromString("25.00")), "total = %s", sale.Total)
	assert.Len(t, sale.Items, 2)
	assert.True(t, sale.Items[0].Subtotal().Equal(decimal.NewFromInt(20)))
}

func TestSale_AssignIDPropagaALineas(t *testing.T) {
	sale := &entity.Sale{CustomerID: 9}
	sale.AddItem(1, 1, decimal.NewFromInt(3))
	sale.AddItem(2, 1, decimal.NewFromInt(4))

	now := time.Now()
	sale.AssignID(77, now)

	assert.Equal(t, int64(77), sale.ID)
	assert.Equal(t, now, sale.CreatedAt)
	for _, it := range sale.Items {
		assert.Equal(t, int64(77), it.SaleID)
	}
}

func TestStock_Covers(t *testing.T) {
	s := entity.Stock{ProductID: 1, Quantity: 5}
	assert.True(t, s.Covers(0, 5))
	assert.False(t, s.Covers(0, 6))
	assert.True(t, s.Covers(3, 2))
	assert.False(t, s.Covers(3, 3))
	assert.False(t, s.Covers(1, math.MaxInt), "no desborda")
	assert.False(t, s.Covers(5, 1))
}
