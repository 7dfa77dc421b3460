package sales

import (
	"context"
	"slices"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

// RegisterSaleUseCase registra una venta con sus líneas y descuenta stock en una sola transacción.
// Precios y existencias se leen de la base (fuente de verdad), nunca del cliente.
type RegisterSaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
	log      *logger.Logger
}

// NewRegisterSaleUseCase construye el caso de uso. saleRepo se usa solo para lecturas fuera de transacción.
func NewRegisterSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, log *logger.Logger) *RegisterSaleUseCase {
	return &RegisterSaleUseCase{
		txRunner: txRunner,
		saleRepo: saleRepo,
		log:      log.Component("sales"),
	}
}

// SaleInput entrada del registro de venta.
type SaleInput struct {
	CustomerID int64
	Items      []SaleItemInput
}

// SaleItemInput producto y cantidad pedidos.
type SaleItemInput struct {
	ProductID int64
	Quantity  int
}

// RegisterSale valida la entrada y, dentro de una transacción:
//  1. bloquea las filas de los productos pedidos en orden de ID;
//  2. lee precio y stock de cada producto en el orden recibido (fila bloqueada);
//  3. falla con ProductNotFound / InsufficientStock en el primer ítem inválido;
//  4. inserta la cabecera con el total calculado;
//  5. inserta cada línea con el precio capturado y descuenta stock (stock = stock - cantidad);
//  6. hace Commit.
//
// Cualquier error aborta todo: Rollback, liberación de la conexión y el error al caller.
func (uc *RegisterSaleUseCase) RegisterSale(ctx context.Context, in SaleInput) (*entity.Sale, error) {
	if err := validateSaleInput(in); err != nil {
		return nil, err
	}

	var sale *entity.Sale
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, saleRepo repository.SaleRepository) error {
		// Bloqueo en orden de ID: dos ventas con los mismos productos en distinto orden no se bloquean mutuamente.
		if err := stockRepo.LockProducts(ctx, distinctProductIDs(in.Items)); err != nil {
			return err
		}

		s := &entity.Sale{CustomerID: in.CustomerID}
		// Cantidad ya comprometida por producto en esta venta (un producto puede repetirse en varias líneas).
		requested := make(map[int64]int, len(in.Items))

		for _, item := range in.Items {
			stock, err := stockRepo.GetForUpdate(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if stock == nil {
				return domain.NewProductNotFound(item.ProductID)
			}
			if !stock.Covers(requested[item.ProductID], item.Quantity) {
				return domain.NewInsufficientStock(item.ProductID)
			}
			requested[item.ProductID] += item.Quantity
			s.AddItem(item.ProductID, item.Quantity, stock.Price)
		}

		if err := saleRepo.Create(ctx, s); err != nil {
			return err
		}
		for _, it := range s.Items {
			if err := saleRepo.CreateItem(ctx, it); err != nil {
				return err
			}
			if err := stockRepo.Decrement(ctx, it.ProductID, it.Quantity); err != nil {
				return err
			}
		}
		sale = s
		return nil
	})
	if err != nil {
		uc.log.Warn().Err(err).
			Int64("customer_id", in.CustomerID).
			Int("items", len(in.Items)).
			Msg("venta abortada")
		return nil, err
	}

	uc.log.Info().
		Int64("sale_id", sale.ID).
		Int64("customer_id", sale.CustomerID).
		Str("total", sale.Total.StringFixed(2)).
		Int("items", len(sale.Items)).
		Msg("venta registrada")
	return sale, nil
}

// RegisterSaleFromRequest adapta el request HTTP al caso de uso RegisterSale.
func (uc *RegisterSaleUseCase) RegisterSaleFromRequest(ctx context.Context, in dto.RegisterSaleRequest) (*dto.RegisterSaleResponse, error) {
	input := SaleInput{CustomerID: in.CustomerID}
	for _, it := range in.Items {
		input.Items = append(input.Items, SaleItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	sale, err := uc.RegisterSale(ctx, input)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterSaleResponse{
		Message: "Venta registrada con éxito",
		Sale:    toSaleResponse(sale),
	}, nil
}

// GetByID devuelve la venta con sus líneas o domain.ErrNotFound.
func (uc *RegisterSaleUseCase) GetByID(ctx context.Context, id int64) (*dto.SaleDetailResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	out := &dto.SaleDetailResponse{
		SaleResponse: toSaleResponse(sale),
		Items:        make([]dto.SaleItemResponse, 0, len(sale.Items)),
	}
	for _, it := range sale.Items {
		out.Items = append(out.Items, dto.SaleItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal(),
		})
	}
	return out, nil
}

func validateSaleInput(in SaleInput) error {
	if in.CustomerID <= 0 {
		return domain.NewValidationError("customerId es obligatorio")
	}
	if len(in.Items) == 0 {
		return domain.NewValidationError("la lista de items es obligatoria")
	}
	for i, it := range in.Items {
		if it.ProductID <= 0 {
			return domain.NewValidationError("item %d: productId es obligatorio", i)
		}
		if it.Quantity <= 0 {
			return domain.NewValidationError("item %d: quantity debe ser mayor a 0", i)
		}
	}
	return nil
}

func distinctProductIDs(items []SaleItemInput) []int64 {
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:         s.ID,
		CreatedAt:  s.CreatedAt,
		CustomerID: s.CustomerID,
		Total:      s.Total,
	}
}
