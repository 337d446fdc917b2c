package inventory

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDraft(t *testing.T) {
	_, catalog, _, orders := newEngine(t)
	keyboard := mustCreateProduct(t, catalog, "Teclado", "TEC-001", "100.00", 20, 5)
	mouse := mustCreateProduct(t, catalog, "Mouse", "MOU-002", "50.00", 30, 5)

	o, err := orders.CreateDraft("Maria Silva", []DraftItem{
		{ProductID: keyboard.ID, Qty: 2},
		{ProductID: mouse.ID, Qty: 3},
	})
	require.NoError(t, err)

	assert.Equal(t, "PED-00001", o.Number)
	assert.Equal(t, StatusDraft, o.Status)
	assert.Equal(t, "Maria Silva", o.CustomerName)
	require.Len(t, o.Items, 2)
	assert.True(t, o.Items[0].UnitPrice.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, o.Total.Equal(decimal.RequireFromString("350.00")), "total = %s", o.Total)

	// drafts never touch stock
	got, _ := catalog.Get(keyboard.ID)
	assert.Equal(t, 20, got.StockCurrent)

	t.Run("numbers are sequential, newest order first", func(t *testing.T) {
		second, err := orders.CreateDraft("João Souza", []DraftItem{{ProductID: mouse.ID, Qty: 1}})
		require.NoError(t, err)
		assert.Equal(t, "PED-00002", second.Number)

		list := orders.List()
		require.Len(t, list, 2)
		assert.Equal(t, second.ID, list[0].ID)
	})
}

func TestCreateDraftFailsAtomically(t *testing.T) {
	_, catalog, _, orders := newEngine(t)
	keyboard := mustCreateProduct(t, catalog, "Teclado", "TEC-001", "100.00", 20, 5)

	_, err := orders.CreateDraft("Maria Silva", []DraftItem{
		{ProductID: keyboard.ID, Qty: 1},
		{ProductID: "missing", Qty: 1},
	})
	requireCode(t, err, CodeNotFound)
	assert.Empty(t, orders.List())

	// the failed draft must not burn an order number
	o, err := orders.CreateDraft("Maria Silva", []DraftItem{{ProductID: keyboard.ID, Qty: 1}})
	require.NoError(t, err)
	assert.Equal(t, "PED-00001", o.Number)
}

func TestPriceFreeze(t *testing.T) {
	_, catalog, _, orders := newEngine(t)
	p := mustCreateProduct(t, catalog, "Teclado", "TEC-001", "100.00", 20, 5)

	o, err := orders.CreateDraft("Maria Silva", []DraftItem{{ProductID: p.ID, Qty: 2}})
	require.NoError(t, err)

	newPrice := decimal.RequireFromString("200.00")
	_, err = catalog.Update(p.ID, ProductPatch{Price: &newPrice})
	require.NoError(t, err)

	got, err := orders.Get(o.ID)
	require.NoError(t, err)
	assert.True(t, got.Items[0].UnitPrice.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, got.Total.Equal(decimal.RequireFromString("200.00")), "total = %s", got.Total)
}

func TestConfirm(t *testing.T) {
	_, catalog, ledger, orders := newEngine(t)
	p := mustCreateProduct(t, catalog, "Teclado", "TEC-001", "299.90", 20, 5)

	o, err := orders.CreateDraft("Maria Silva", []DraftItem{
		{ProductID: p.ID, Qty: 5},
		{ProductID: p.ID, Qty: 3},
	})
	require.NoError(t, err)

	confirmed, applied, err := orders.Confirm(o.ID)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, StatusConfirmed, confirmed.Status)

	got, _ := catalog.Get(p.ID)
	assert.Equal(t, 12, got.StockCurrent)

	movements := ledger.List()
	require.Len(t, movements, 2)
	qtys := []int{movements[0].Qty, movements[1].Qty}
	assert.ElementsMatch(t, []int{5, 3}, qtys)
	for _, m := range movements {
		assert.Equal(t, MovementOut, m.Kind)
		assert.True(t, strings.Contains(m.Reason, o.Number), "reason %q should reference %s", m.Reason, o.Number)
	}
}

func TestConfirmIsIdempotent(t *testing.T) {
	_, catalog, ledger, orders := newEngine(t)
	p := mustCreateProduct(t, catalog, "Teclado", "TEC-001", "299.90", 20, 5)
	o, err := orders.CreateDraft("Maria Silva", []DraftItem{{ProductID: p.ID, Qty: 5}})
	require.NoError(t, err)

	_, applied, err := orders.Confirm(o.ID)
	require.NoError(t, err)
	assert.True(t, applied)

	again, applied, err := orders.Confirm(o.ID)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, StatusConfirmed, again.Status)

	got, _ := catalog.Get(p.ID)
	assert.Equal(t, 15, got.StockCurrent)
	assert.Len(t, ledger.List(), 1)
}

func TestConfirmInsufficientStockLeavesEverythingUntouched(t *testing.T) {
	_, catalog, ledger, orders := newEngine(t)
	plenty := mustCreateProduct(t, catalog, "Teclado", "TEC-001", "299.90", 100, 5)
	scarce := mustCreateProduct(t, catalog, "Mouse", "MOU-002", "159.90", 8, 10)

	o, err := orders.CreateDraft("Maria Silva", []DraftItem{
		{ProductID: plenty.ID, Qty: 5},
		{ProductID: scarce.ID, Qty: 10},
	})
	require.NoError(t, err)

	_, _, err = orders.Confirm(o.ID)
	e := requireCode(t, err, CodeInsufficientStock)
	assert.Equal(t, StockShortage{ProductID: scarce.ID, Available: 8, Required: 10}, e.Details)

	gotPlenty, _ := catalog.Get(plenty.ID)
	gotScarce, _ := catalog.Get(scarce.ID)
	assert.Equal(t, 100, gotPlenty.StockCurrent)
	assert.Equal(t, 8, gotScarce.StockCurrent)

	gotOrder, _ := orders.Get(o.ID)
	assert.Equal(t, StatusDraft, gotOrder.Status)
	assert.Empty(t, ledger.List())
}

func TestConfirmValidatesOrderAndProducts(t *testing.T) {
	store, catalog, _, orders := newEngine(t)
	p := mustCreateProduct(t, catalog, "Teclado", "TEC-001", "299.90", 20, 5)

	t.Run("unknown order", func(t *testing.T) {
		_, _, err := orders.Confirm("missing")
		requireCode(t, err, CodeNotFound)
	})

	t.Run("product deleted after draft", func(t *testing.T) {
		o, err := orders.CreateDraft("Maria Silva", []DraftItem{{ProductID: p.ID, Qty: 1}})
		require.NoError(t, err)
		require.NoError(t, catalog.Delete(p.ID))

		_, _, err = orders.Confirm(o.ID)
		requireCode(t, err, CodeNotFound)

		got, _ := orders.Get(o.ID)
		assert.Equal(t, StatusDraft, got.Status)
	})

	t.Run("canceled order cannot be confirmed", func(t *testing.T) {
		p2 := mustCreateProduct(t, catalog, "Mouse", "MOU-002", "159.90", 10, 5)
		o, err := orders.CreateDraft("João Souza", []DraftItem{{ProductID: p2.ID, Qty: 1}})
		require.NoError(t, err)

		require.NoError(t, store.Update(func(tx *state) error {
			tx.orders[tx.orderIndex(o.ID)].Status = StatusCanceled
			return nil
		}))

		_, _, err = orders.Confirm(o.ID)
		requireCode(t, err, CodeValidation)
	})
}

func TestOrdersAreReturnedAsCopies(t *testing.T) {
	_, catalog, _, orders := newEngine(t)
	p := mustCreateProduct(t, catalog, "Teclado", "TEC-001", "100.00", 20, 5)

	o, err := orders.CreateDraft("Maria Silva", []DraftItem{{ProductID: p.ID, Qty: 2}})
	require.NoError(t, err)

	o.Items[0].Qty = 9999

	got, err := orders.Get(o.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Items[0].Qty)
}
