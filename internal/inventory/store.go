package inventory

import "sync"

// state is one version of the whole engine state. Slices are kept
// most-recent-first, the same order the list operations return.
type state struct {
	products  []Product
	orders    []Order
	movements []Movement
}

func (s *state) clone() *state {
	c := &state{
		products:  make([]Product, len(s.products)),
		orders:    make([]Order, len(s.orders)),
		movements: make([]Movement, len(s.movements)),
	}
	copy(c.products, s.products)
	copy(c.movements, s.movements)
	for i, o := range s.orders {
		c.orders[i] = cloneOrder(o)
	}
	return c
}

func (s *state) productIndex(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *state) orderIndex(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}

// setStock replaces a product's stock level. Internal to the engine: the
// Ledger is the only caller, so every stock change has a movement that
// explains it.
func (s *state) setStock(id string, newStock int) error {
	if newStock < 0 {
		return validationErr("stock for product %s cannot go negative", id)
	}
	i := s.productIndex(id)
	if i < 0 {
		return notFound("product", id)
	}
	s.products[i].StockCurrent = newStock
	return nil
}

// Store owns the engine state as a copy-on-write sequence of versions.
// Writers run one at a time against a cloned working version; the version
// is installed only when the unit of work succeeds, so no reader ever
// observes a half-applied mutation.
type Store struct {
	mu  sync.RWMutex
	cur *state
}

func NewStore() *Store {
	return &Store{cur: &state{}}
}

// Update runs fn as one atomic all-or-nothing unit of work. fn mutates the
// working version freely; any error discards the version and leaves the
// visible state exactly as it was before the call.
func (st *Store) Update(fn func(tx *state) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	work := st.cur.clone()
	if err := fn(work); err != nil {
		return err
	}
	st.cur = work
	return nil
}

// View runs fn against the current version. fn must copy out anything it
// wants to keep past the call.
func (st *Store) View(fn func(tx *state) error) error {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return fn(st.cur)
}
