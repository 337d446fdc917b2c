package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Price        decimal.Decimal `json:"price"`
	StockCurrent int             `json:"stockCurrent"`
	StockMin     int             `json:"stockMin"` // informational threshold, never blocks an operation
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type MovementKind string

const (
	MovementIn     MovementKind = "IN"
	MovementOut    MovementKind = "OUT"
	MovementAdjust MovementKind = "ADJUST" // qty is the new absolute stock level
)

// Movement is an immutable audit record of a single stock change. Movements
// are only ever appended, never edited or deleted.
type Movement struct {
	ID        string       `json:"id"`
	ProductID string       `json:"productId"`
	Kind      MovementKind `json:"type"`
	Qty       int          `json:"qty"`
	Reason    string       `json:"reason"`
	CreatedAt time.Time    `json:"createdAt"`
}

// OrderItem carries the unit price captured at draft time. Later catalog
// price edits never touch it.
type OrderItem struct {
	ProductID string          `json:"productId"`
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type Order struct {
	ID           string          `json:"id"`
	Number       string          `json:"number"` // PED-00001, assigned at draft creation
	CustomerName string          `json:"customerName"`
	Status       Status          `json:"status"`
	Items        []OrderItem     `json:"items"`
	Total        decimal.Decimal `json:"total"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func cloneOrder(o Order) Order {
	o.Items = append([]OrderItem(nil), o.Items...)
	return o
}
