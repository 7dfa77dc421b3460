package sales

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// TxRunner reserva una conexión, abre una transacción y ejecuta fn con repositorios atados a ella.
// Si fn retorna error hace Rollback; si no, Commit. La conexión se libera siempre, una sola vez.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
