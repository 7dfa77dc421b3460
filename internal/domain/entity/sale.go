package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa la cabecera de una venta. ID y CreatedAt los asigna la base de datos.
// Total siempre es la suma de los subtotales de sus líneas, calculada en servidor.
type Sale struct {
	ID         int64
	CustomerID int64
	Total      decimal.Decimal
	CreatedAt  time.Time
	Items      []*SaleItem
}

// AddItem agrega una línea con el precio capturado y acumula el total.
func (s *Sale) AddItem(productID int64, quantity int, unitPrice decimal.Decimal) *SaleItem {
	item := &SaleItem{
		SaleID:    s.ID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}
	s.Items = append(s.Items, item)
	s.Total = s.Total.Add(item.Subtotal())
	return item
}

// AssignID fija el ID devuelto por la base de datos en la cabecera y en sus líneas.
func (s *Sale) AssignID(id int64, createdAt time.Time) {
	s.ID = id
	s.CreatedAt = createdAt
	for _, it := range s.Items {
		it.SaleID = id
	}
}
