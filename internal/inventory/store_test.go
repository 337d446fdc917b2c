package inventory

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) (*Store, *Catalog, *Ledger, *OrderBook) {
	t.Helper()
	store := NewStore()
	return store, NewCatalog(store), NewLedger(store), NewOrderBook(store)
}

func mustCreateProduct(t *testing.T, c *Catalog, name, sku, price string, stock, min int) Product {
	t.Helper()
	p, err := c.Create(ProductInput{
		Name:         name,
		SKU:          sku,
		Price:        decimal.RequireFromString(price),
		StockCurrent: stock,
		StockMin:     min,
		Active:       true,
	})
	require.NoError(t, err)
	return p
}

func requireCode(t *testing.T, err error, code Code) *Error {
	t.Helper()
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, code, e.Code)
	return e
}

func TestUpdateDiscardsFailedUnitOfWork(t *testing.T) {
	store, catalog, _, _ := newEngine(t)
	p := mustCreateProduct(t, catalog, "Teclado", "TEC-001", "299.90", 20, 5)

	boom := errors.New("boom")
	err := store.Update(func(tx *state) error {
		require.NoError(t, tx.setStock(p.ID, 0))
		tx.movements = append(tx.movements, Movement{ID: "never-visible"})
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := catalog.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, got.StockCurrent)
	assert.Empty(t, NewLedger(store).List())
}

func TestUpdateInstallsSuccessfulUnitOfWork(t *testing.T) {
	store, catalog, _, _ := newEngine(t)
	p := mustCreateProduct(t, catalog, "Teclado", "TEC-001", "299.90", 20, 5)

	err := store.Update(func(tx *state) error {
		return tx.setStock(p.ID, 7)
	})
	require.NoError(t, err)

	got, err := catalog.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.StockCurrent)
}

func TestSetStockRejectsNegative(t *testing.T) {
	store, catalog, _, _ := newEngine(t)
	p := mustCreateProduct(t, catalog, "Teclado", "TEC-001", "299.90", 20, 5)

	err := store.Update(func(tx *state) error {
		return tx.setStock(p.ID, -1)
	})
	requireCode(t, err, CodeValidation)

	got, _ := catalog.Get(p.ID)
	assert.Equal(t, 20, got.StockCurrent)
}

func TestCloneIsolatesOrderItems(t *testing.T) {
	s := &state{orders: []Order{{
		ID:    "o1",
		Items: []OrderItem{{ProductID: "p1", Qty: 2}},
	}}}

	c := s.clone()
	c.orders[0].Items[0].Qty = 99
	c.orders[0].Status = StatusCanceled

	assert.Equal(t, 2, s.orders[0].Items[0].Qty)
	assert.Equal(t, Status(""), s.orders[0].Status)
}
