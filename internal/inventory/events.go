package inventory

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated     = "OrderCreated"
	EventOrderConfirmed   = "OrderConfirmed"
	EventMovementRecorded = "MovementRecorded"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// ---- Payload types per event ----

type ItemQty struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

type OrderCreatedPayload struct {
	OrderID      string          `json:"order_id"`
	Number       string          `json:"number"`
	CustomerName string          `json:"customer_name"`
	Items        []ItemQty       `json:"items"`
	Total        decimal.Decimal `json:"total"`
}

type OrderConfirmedPayload struct {
	OrderID string    `json:"order_id"`
	Number  string    `json:"number"`
	Items   []ItemQty `json:"items"`
}

// MovementRecordedPayload carries stock_after and stock_min so consumers
// can act on stock levels without querying the engine's in-process state.
type MovementRecordedPayload struct {
	MovementID string `json:"movement_id"`
	ProductID  string `json:"product_id"`
	Kind       string `json:"kind"`
	Qty        int    `json:"qty"`
	Reason     string `json:"reason"`
	StockAfter int    `json:"stock_after"`
	StockMin   int    `json:"stock_min"`
}

func OrderItemQtys(o Order) []ItemQty {
	out := make([]ItemQty, 0, len(o.Items))
	for _, it := range o.Items {
		out = append(out, ItemQty{ProductID: it.ProductID, Qty: it.Qty})
	}
	return out
}
