package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// Seed installs the demo catalog on an empty store. A store that already
// has products is left alone.
func Seed(store *Store) error {
	return store.Update(func(tx *state) error {
		if len(tx.products) > 0 {
			return nil
		}
		now := time.Now().UTC()
		tx.products = []Product{
			{
				ID:           "p1",
				Name:         "Teclado Mecânico",
				SKU:          "TEC-001",
				Price:        decimal.RequireFromString("299.90"),
				StockCurrent: 20,
				StockMin:     5,
				Active:       true,
				CreatedAt:    now,
			},
			{
				ID:           "p2",
				Name:         "Mouse Gamer",
				SKU:          "MOU-002",
				Price:        decimal.RequireFromString("159.90"),
				StockCurrent: 8,
				StockMin:     10,
				Active:       true,
				CreatedAt:    now,
			},
		}
		return nil
	})
}
