package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DraftItem struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// OrderBook owns orders and their lifecycle. Drafts never touch stock;
// confirmation deducts every item through the Ledger inside one unit of
// work.
type OrderBook struct {
	store *Store
}

func NewOrderBook(store *Store) *OrderBook {
	return &OrderBook{store: store}
}

func (b *OrderBook) List() []Order {
	var out []Order
	_ = b.store.View(func(tx *state) error {
		out = make([]Order, 0, len(tx.orders))
		for _, o := range tx.orders {
			out = append(out, cloneOrder(o))
		}
		return nil
	})
	return out
}

func (b *OrderBook) Get(id string) (Order, error) {
	var o Order
	err := b.store.View(func(tx *state) error {
		i := tx.orderIndex(id)
		if i < 0 {
			return notFound("order", id)
		}
		o = cloneOrder(tx.orders[i])
		return nil
	})
	return o, err
}

// CreateDraft snapshots each item's current unit price and computes the
// total once; later catalog price edits never change an existing order.
func (b *OrderBook) CreateDraft(customerName string, items []DraftItem) (Order, error) {
	var created Order
	err := b.store.Update(func(tx *state) error {
		if len(items) == 0 {
			return validationErr("order requires at least one item")
		}
		lines := make([]OrderItem, 0, len(items))
		total := decimal.Zero
		for _, it := range items {
			if it.Qty < 1 {
				return validationErr("item qty must be >= 1 for product %s", it.ProductID)
			}
			i := tx.productIndex(it.ProductID)
			if i < 0 {
				return notFound("product", it.ProductID)
			}
			p := tx.products[i]
			lines = append(lines, OrderItem{ProductID: p.ID, Qty: it.Qty, UnitPrice: p.Price})
			total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(it.Qty))))
		}
		created = Order{
			ID:           uuid.NewString(),
			Number:       nextOrderNumber(tx),
			CustomerName: customerName,
			Status:       StatusDraft,
			Items:        lines,
			Total:        total,
			CreatedAt:    time.Now().UTC(),
		}
		tx.orders = append([]Order{created}, tx.orders...)
		return nil
	})
	if err != nil {
		return Order{}, err
	}
	return cloneOrder(created), nil
}

// Confirm moves an order from DRAFT to CONFIRMED and deducts stock for
// every item. The two phases are deliberate: first validate every item
// against current stock, then apply every deduction; a shortage anywhere
// leaves the order and all stock untouched. Re-confirming an already
// CONFIRMED order is a no-op; the returned flag reports whether this call
// applied the confirmation.
func (b *OrderBook) Confirm(id string) (Order, bool, error) {
	var (
		confirmed Order
		applied   bool
	)
	err := b.store.Update(func(tx *state) error {
		oi := tx.orderIndex(id)
		if oi < 0 {
			return notFound("order", id)
		}
		order := tx.orders[oi]

		if order.Status == StatusConfirmed {
			confirmed = order
			return nil
		}
		if !CanTransition(order.Status, StatusConfirmed) {
			return validationErr("order %s cannot move from %s to %s", order.Number, order.Status, StatusConfirmed)
		}

		for _, item := range order.Items {
			i := tx.productIndex(item.ProductID)
			if i < 0 {
				return notFound("product", item.ProductID)
			}
			if p := tx.products[i]; p.StockCurrent < item.Qty {
				return insufficientStock(p.ID, p.StockCurrent, item.Qty)
			}
		}

		reason := fmt.Sprintf("Baixa por confirmação do pedido %s", order.Number)
		for _, item := range order.Items {
			if _, err := record(tx, item.ProductID, MovementOut, item.Qty, reason); err != nil {
				return err
			}
		}

		order.Status = StatusConfirmed
		tx.orders[oi] = order
		confirmed = order
		applied = true
		return nil
	})
	if err != nil {
		return Order{}, false, err
	}
	return cloneOrder(confirmed), applied, nil
}

// Order numbers are derived from the current order count, so the number
// must be assigned inside the same unit of work that inserts the order.
// Orders are never deleted, which keeps the count monotonic.
func nextOrderNumber(tx *state) string {
	return fmt.Sprintf("PED-%05d", len(tx.orders)+1)
}
