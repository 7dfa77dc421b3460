package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// ProductError asocia un error de negocio con el producto que lo provocó.
// errors.Is(err, ErrProductNotFound) / errors.Is(err, ErrInsufficientStock) siguen funcionando vía Unwrap.
type ProductError struct {
	Err       error
	ProductID int64
}

func (e *ProductError) Error() string {
	switch e.Err {
	case ErrProductNotFound:
		return fmt.Sprintf("producto con ID %d no encontrado", e.ProductID)
	case ErrInsufficientStock:
		return fmt.Sprintf("stock insuficiente para el producto ID %d", e.ProductID)
	}
	return fmt.Sprintf("producto %d: %v", e.ProductID, e.Err)
}

func (e *ProductError) Unwrap() error { return e.Err }

// NewProductNotFound error ProductNotFound para el producto indicado.
func NewProductNotFound(productID int64) error {
	return &ProductError{Err: ErrProductNotFound, ProductID: productID}
}

// NewInsufficientStock error InsufficientStock para el producto indicado.
func NewInsufficientStock(productID int64) error {
	return &ProductError{Err: ErrInsufficientStock, ProductID: productID}
}

// ValidationError detalla qué campo de la entrada es inválido; envuelve ErrInvalidInput.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye un ValidationError con el mensaje dado.
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
