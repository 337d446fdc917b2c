package redisx

import "time"

const (
	// Cache of a full order document: order:{order_id} -> order JSON
	KeyOrderCache = "order:%s"

	// Dedup for event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"

	// Throttle for low-stock alerts: lowstock:{product_id}
	KeyLowStockAlert = "lowstock:%s"
)

var (
	TTLOrderCache    = 5 * time.Minute
	TTLDedup         = 48 * time.Hour
	TTLLowStockAlert = 6 * time.Hour
)
