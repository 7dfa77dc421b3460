package entity

import "github.com/shopspring/decimal"

// Stock lectura de precio y existencias de un producto tomada dentro de la transacción de venta
// (fila bloqueada con SELECT FOR UPDATE).
type Stock struct {
	ProductID int64
	Price     decimal.Decimal
	Quantity  int
}

// Covers indica si, con reserved unidades ya comprometidas, alcanza para quantity más.
// Compara contra el remanente para que cantidades enormes no desborden la suma.
func (s Stock) Covers(reserved, quantity int) bool {
	return quantity <= s.Quantity-reserved
}
