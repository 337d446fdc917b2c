package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductInput struct {
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Price        decimal.Decimal `json:"price"`
	StockCurrent int             `json:"stockCurrent"`
	StockMin     int             `json:"stockMin"`
	Active       bool            `json:"active"`
}

// ProductPatch updates only the fields that are present. ID and CreatedAt
// are never touched.
type ProductPatch struct {
	Name         *string          `json:"name"`
	SKU          *string          `json:"sku"`
	Price        *decimal.Decimal `json:"price"`
	StockCurrent *int             `json:"stockCurrent"`
	StockMin     *int             `json:"stockMin"`
	Active       *bool            `json:"active"`
}

// Catalog owns the product set. Inputs arrive shape-validated from the API
// layer; this service only enforces business invariants (unique SKU,
// non-negative stock, positive price).
type Catalog struct {
	store *Store
}

func NewCatalog(store *Store) *Catalog {
	return &Catalog{store: store}
}

func (c *Catalog) List() []Product {
	var out []Product
	_ = c.store.View(func(tx *state) error {
		out = append(out, tx.products...)
		return nil
	})
	return out
}

func (c *Catalog) Get(id string) (Product, error) {
	var p Product
	err := c.store.View(func(tx *state) error {
		i := tx.productIndex(id)
		if i < 0 {
			return notFound("product", id)
		}
		p = tx.products[i]
		return nil
	})
	return p, err
}

func (c *Catalog) Create(in ProductInput) (Product, error) {
	p := Product{
		ID:           uuid.NewString(),
		Name:         in.Name,
		SKU:          in.SKU,
		Price:        in.Price,
		StockCurrent: in.StockCurrent,
		StockMin:     in.StockMin,
		Active:       in.Active,
		CreatedAt:    time.Now().UTC(),
	}
	err := c.store.Update(func(tx *state) error {
		if !p.Price.IsPositive() {
			return validationErr("price must be positive")
		}
		if p.StockCurrent < 0 || p.StockMin < 0 {
			return validationErr("stock levels cannot be negative")
		}
		if i := tx.skuIndex(p.SKU); i >= 0 {
			return validationErr("sku %q already in use", p.SKU)
		}
		tx.products = append([]Product{p}, tx.products...)
		return nil
	})
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (c *Catalog) Update(id string, patch ProductPatch) (Product, error) {
	var updated Product
	err := c.store.Update(func(tx *state) error {
		i := tx.productIndex(id)
		if i < 0 {
			return notFound("product", id)
		}
		p := tx.products[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.SKU != nil {
			if j := tx.skuIndex(*patch.SKU); j >= 0 && j != i {
				return validationErr("sku %q already in use", *patch.SKU)
			}
			p.SKU = *patch.SKU
		}
		if patch.Price != nil {
			if !patch.Price.IsPositive() {
				return validationErr("price must be positive")
			}
			p.Price = *patch.Price
		}
		if patch.StockCurrent != nil {
			if *patch.StockCurrent < 0 {
				return validationErr("stock levels cannot be negative")
			}
			p.StockCurrent = *patch.StockCurrent
		}
		if patch.StockMin != nil {
			if *patch.StockMin < 0 {
				return validationErr("stock levels cannot be negative")
			}
			p.StockMin = *patch.StockMin
		}
		if patch.Active != nil {
			p.Active = *patch.Active
		}
		tx.products[i] = p
		updated = p
		return nil
	})
	return updated, err
}

// Delete removes the product from the visible set. Movements and orders
// that reference it keep their product id as a historical record.
func (c *Catalog) Delete(id string) error {
	return c.store.Update(func(tx *state) error {
		i := tx.productIndex(id)
		if i < 0 {
			return notFound("product", id)
		}
		tx.products = append(tx.products[:i], tx.products[i+1:]...)
		return nil
	})
}

func (s *state) skuIndex(sku string) int {
	for i := range s.products {
		if s.products[i].SKU == sku {
			return i
		}
	}
	return -1
}
