package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ProductUseCase alta y consulta de productos. El stock solo baja vía ventas.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create valida y persiste un producto. ID y CreatedAt los asigna la base.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("name es obligatorio")
	}
	if in.Price == nil {
		return nil, domain.NewValidationError("price es obligatorio")
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.NewValidationError("price no puede ser negativo")
	}
	if in.StockQuantity == nil {
		return nil, domain.NewValidationError("stockQuantity es obligatorio")
	}
	if *in.StockQuantity < 0 {
		return nil, domain.NewValidationError("stockQuantity no puede ser negativo")
	}

	product := &entity.Product{
		Name:          name,
		Description:   in.Description,
		Price:         *in.Price,
		StockQuantity: *in.StockQuantity,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID o domain.ErrProductNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewProductNotFound(id)
	}
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		CreatedAt:     p.CreatedAt,
	}
}
