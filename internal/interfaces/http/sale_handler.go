package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/dto"
)

// SaleService casos de uso de ventas que necesita el handler.
type SaleService interface {
	RegisterSaleFromRequest(ctx context.Context, in dto.RegisterSaleRequest) (*dto.RegisterSaleResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.SaleDetailResponse, error)
}

// SaleHandler maneja las peticiones HTTP de ventas.
type SaleHandler struct {
	uc SaleService
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc SaleService) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar venta
// @Description  Lee precio y stock de cada producto, calcula el total, guarda venta y líneas
// @Description  y descuenta stock en una sola transacción. Los precios enviados por el cliente se ignoran.
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSaleRequest  true  "customerId e items [{productId, quantity}]"
// @Success      201   {object}  dto.RegisterSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /vendas [post]
func (h *SaleHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RegisterSaleFromRequest(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta con sus líneas
// @Tags         vendas
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.SaleDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /vendas/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
