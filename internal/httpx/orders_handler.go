package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"estoque/internal/inventory"
	kafkax "estoque/internal/kafka"
	"estoque/internal/redisx"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
)

type CreateOrderReq struct {
	CustomerName string                `json:"customerName"`
	Items        []inventory.DraftItem `json:"items"`
}

type OrdersHandler struct {
	Orders            *inventory.OrderBook
	ProducerCreated   *kafkax.Producer
	ProducerConfirmed *kafkax.Producer
	Redis             *redis.Client
	Service           string
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	r.Get("/api/orders", h.list)
	r.Get("/api/orders/{id}", h.get)
	r.Post("/api/orders", h.createDraft)
	r.Post("/api/orders/{id}/confirm", h.confirm)
}

func (h *OrdersHandler) list(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Orders.List())
}

func (h *OrdersHandler) get(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	// 1) try the cache
	key := fmt.Sprintf(redisx.KeyOrderCache, orderID)
	if s, err := h.Redis.Get(r.Context(), key).Result(); err == nil && s != "" {
		writeJSON(w, http.StatusOK, json.RawMessage(s))
		return
	}

	// 2) fall back to the engine
	o, err := h.Orders.Get(orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	h.cacheOrder(r, o)
	writeJSON(w, http.StatusOK, o)
}

func (h *OrdersHandler) createDraft(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if len(req.CustomerName) < 2 || len(req.Items) == 0 {
		badRequest(w, "customerName and items are required")
		return
	}
	for _, it := range req.Items {
		if it.ProductID == "" || it.Qty < 1 {
			badRequest(w, "every item needs a productId and a positive qty")
			return
		}
	}

	o, err := h.Orders.CreateDraft(req.CustomerName, req.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	h.cacheOrder(r, o)

	ev := inventory.Envelope{
		EventID:       uuid.NewString(),
		EventType:     inventory.EventOrderCreated,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Service,
		TraceID:       r.Header.Get("X-Request-Id"),
		CorrelationID: o.ID,
		Payload: kafkax.MustMarshal(inventory.OrderCreatedPayload{
			OrderID:      o.ID,
			Number:       o.Number,
			CustomerName: o.CustomerName,
			Items:        inventory.OrderItemQtys(o),
			Total:        o.Total,
		}),
	}
	h.ProducerCreated.Publish(inventory.PartitionKey(o.ID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(inventory.EventOrderCreated)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)

	writeJSON(w, http.StatusCreated, o)
}

func (h *OrdersHandler) confirm(w http.ResponseWriter, r *http.Request) {
	o, applied, err := h.Orders.Confirm(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	h.cacheOrder(r, o)

	// Re-confirming an already confirmed order changes nothing, so there is
	// nothing to announce.
	if applied {
		ev := inventory.Envelope{
			EventID:       uuid.NewString(),
			EventType:     inventory.EventOrderConfirmed,
			EventVersion:  1,
			OccurredAt:    time.Now().UTC(),
			Producer:      h.Service,
			TraceID:       r.Header.Get("X-Request-Id"),
			CorrelationID: o.ID,
			Payload: kafkax.MustMarshal(inventory.OrderConfirmedPayload{
				OrderID: o.ID,
				Number:  o.Number,
				Items:   inventory.OrderItemQtys(o),
			}),
		}
		h.ProducerConfirmed.Publish(inventory.PartitionKey(o.ID), kafkax.MustMarshal(ev),
			kafkago.Header{Key: "x-event-type", Value: []byte(inventory.EventOrderConfirmed)},
			kafkago.Header{Key: "x-event-version", Value: []byte("1")},
		)
	}

	writeJSON(w, http.StatusOK, o)
}

func (h *OrdersHandler) cacheOrder(r *http.Request, o inventory.Order) {
	key := fmt.Sprintf(redisx.KeyOrderCache, o.ID)
	if b, err := json.Marshal(o); err == nil {
		_ = h.Redis.Set(r.Context(), key, b, redisx.TTLOrderCache).Err()
	}
}
