package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Ledger owns the append-only movement trail. Every stock change in the
// system routes through it, so the trail explains the current stock of
// every product.
type Ledger struct {
	store *Store
}

func NewLedger(store *Store) *Ledger {
	return &Ledger{store: store}
}

// List returns all movements, most recent first.
func (l *Ledger) List() []Movement {
	var out []Movement
	_ = l.store.View(func(tx *state) error {
		out = append(out, tx.movements...)
		return nil
	})
	return out
}

// Record applies one stock movement as a single unit of work: the new stock
// level is computed and checked before anything is written, then the stock
// write and the movement append land together or not at all.
func (l *Ledger) Record(productID string, kind MovementKind, qty int, reason string) (Movement, error) {
	var mv Movement
	err := l.store.Update(func(tx *state) error {
		m, err := record(tx, productID, kind, qty, reason)
		if err != nil {
			return err
		}
		mv = m
		return nil
	})
	if err != nil {
		return Movement{}, err
	}
	return mv, nil
}

// record runs inside an existing unit of work. The OrderBook calls it
// directly during confirmation so order deductions share the order's
// transaction.
func record(tx *state, productID string, kind MovementKind, qty int, reason string) (Movement, error) {
	i := tx.productIndex(productID)
	if i < 0 {
		return Movement{}, notFound("product", productID)
	}
	p := tx.products[i]

	var newStock int
	switch kind {
	case MovementIn:
		if qty < 1 {
			return Movement{}, validationErr("IN movement requires qty >= 1, got %d", qty)
		}
		newStock = p.StockCurrent + qty
	case MovementOut:
		if qty < 1 {
			return Movement{}, validationErr("OUT movement requires qty >= 1, got %d", qty)
		}
		newStock = p.StockCurrent - qty
	case MovementAdjust:
		if qty < 0 {
			return Movement{}, validationErr("ADJUST movement requires qty >= 0, got %d", qty)
		}
		newStock = qty
	default:
		return Movement{}, validationErr("unknown movement kind %q", kind)
	}
	if strings.TrimSpace(reason) == "" {
		return Movement{}, validationErr("movement reason is required")
	}
	if newStock < 0 {
		return Movement{}, insufficientStock(p.ID, p.StockCurrent, qty)
	}

	if err := tx.setStock(p.ID, newStock); err != nil {
		return Movement{}, err
	}
	m := Movement{
		ID:        uuid.NewString(),
		ProductID: p.ID,
		Kind:      kind,
		Qty:       qty,
		Reason:    reason,
		CreatedAt: time.Now().UTC(),
	}
	tx.movements = append([]Movement{m}, tx.movements...)
	return m, nil
}
