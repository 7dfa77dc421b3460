package sales_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var errPoolExhausted = errors.New("pool agotado: no hay conexiones libres")

// memStore base de datos en memoria con semántica transaccional y un pool de tamaño fijo.
// Cada Run trabaja sobre una copia; solo el Commit la publica.
type memStore struct {
	mu       sync.Mutex
	products map[int64]entity.Product
	sales    []*entity.Sale
	nextSale int64
	nextItem int64

	pool     chan struct{}
	acquired int
	released int
	rollback int

	lastTx *memTx

	// failOn simula un error de almacenamiento en la operación indicada ("Create", "CreateItem", "Decrement", "GetForUpdate").
	failOn string
}

func newMemStore(poolSize int) *memStore {
	return &memStore{
		products: make(map[int64]entity.Product),
		pool:     make(chan struct{}, poolSize),
	}
}

func (s *memStore) addProduct(id int64, price string, stock int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[id] = entity.Product{ID: id, Name: "p", Price: decimal.RequireFromString(price), StockQuantity: stock}
}

func (s *memStore) stockOf(id int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].StockQuantity
}

func (s *memStore) saleCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sales)
}

func (s *memStore) itemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, sale := range s.sales {
		n += len(sale.Items)
	}
	return n
}

// Run reserva una conexión sin esperar: si el pool está lleno falla con errPoolExhausted.
func (s *memStore) Run(ctx context.Context, fn func(repository.StockRepository, repository.SaleRepository) error) error {
	select {
	case s.pool <- struct{}{}:
	default:
		return errPoolExhausted
	}
	s.mu.Lock()
	s.acquired++
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.released++
		s.mu.Unlock()
		<-s.pool
	}()

	tx := s.begin()
	s.mu.Lock()
	s.lastTx = tx
	s.mu.Unlock()
	if err := fn(tx, tx); err != nil {
		s.mu.Lock()
		s.rollback++
		s.mu.Unlock()
		return err
	}
	s.commit(tx)
	return nil
}

func (s *memStore) begin() *memTx {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := &memTx{store: s, products: make(map[int64]entity.Product, len(s.products)), nextSale: s.nextSale, nextItem: s.nextItem}
	for id, p := range s.products {
		tx.products[id] = p
	}
	return tx
}

func (s *memStore) commit(tx *memTx) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = tx.products
	s.sales = append(s.sales, tx.sales...)
	s.nextSale = tx.nextSale
	s.nextItem = tx.nextItem
}

// GetByID lectura fuera de transacción (repositorio sobre el pool).
func (s *memStore) GetByID(_ context.Context, id int64) (*entity.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sale := range s.sales {
		if sale.ID == id {
			return sale, nil
		}
	}
	return nil, nil
}

func (s *memStore) Create(context.Context, *entity.Sale) error {
	return errors.New("escritura fuera de transacción")
}

func (s *memStore) CreateItem(context.Context, *entity.SaleItem) error {
	return errors.New("escritura fuera de transacción")
}

// memTx estado de trabajo de una transacción.
type memTx struct {
	store    *memStore
	products map[int64]entity.Product
	sales    []*entity.Sale
	nextSale int64
	nextItem int64
	calls    []string
	locked   []int64
}

func (tx *memTx) fail(op string) error {
	tx.calls = append(tx.calls, op)
	if tx.store.failOn == op {
		return errors.New("conexión perdida durante " + op)
	}
	return nil
}

func (tx *memTx) LockProducts(_ context.Context, productIDs []int64) error {
	if err := tx.fail("LockProducts"); err != nil {
		return err
	}
	tx.locked = append(tx.locked, productIDs...)
	return nil
}

func (tx *memTx) GetForUpdate(_ context.Context, productID int64) (*entity.Stock, error) {
	if err := tx.fail("GetForUpdate"); err != nil {
		return nil, err
	}
	p, ok := tx.products[productID]
	if !ok {
		return nil, nil
	}
	return &entity.Stock{ProductID: p.ID, Price: p.Price, Quantity: p.StockQuantity}, nil
}

func (tx *memTx) Decrement(_ context.Context, productID int64, quantity int) error {
	if err := tx.fail("Decrement"); err != nil {
		return err
	}
	p, ok := tx.products[productID]
	if !ok {
		return domain.NewProductNotFound(productID)
	}
	if p.StockQuantity-quantity < 0 {
		return domain.NewInsufficientStock(productID)
	}
	p.StockQuantity -= quantity
	tx.products[productID] = p
	return nil
}

func (tx *memTx) Create(_ context.Context, sale *entity.Sale) error {
	if err := tx.fail("Create"); err != nil {
		return err
	}
	tx.nextSale++
	sale.AssignID(tx.nextSale, time.Now())
	tx.sales = append(tx.sales, sale)
	return nil
}

func (tx *memTx) CreateItem(_ context.Context, item *entity.SaleItem) error {
	if err := tx.fail("CreateItem"); err != nil {
		return err
	}
	tx.nextItem++
	item.ID = tx.nextItem
	return nil
}

func (tx *memTx) GetByID(context.Context, int64) (*entity.Sale, error) {
	return nil, nil
}
