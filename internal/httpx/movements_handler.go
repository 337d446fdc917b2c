package httpx

import (
	"encoding/json"
	"net/http"
	"time"

	"estoque/internal/inventory"
	kafkax "estoque/internal/kafka"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
)

type RecordMovementReq struct {
	ProductID string                 `json:"productId"`
	Kind      inventory.MovementKind `json:"type"`
	Qty       int                    `json:"qty"`
	Reason    string                 `json:"reason"`
}

type MovementsHandler struct {
	Ledger   *inventory.Ledger
	Catalog  *inventory.Catalog
	Producer *kafkax.Producer
	Service  string
}

func (h *MovementsHandler) Register(r *chi.Mux) {
	r.Get("/api/movements", h.list)
	r.Post("/api/movements", h.record)
}

func (h *MovementsHandler) list(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Ledger.List())
}

func (h *MovementsHandler) record(w http.ResponseWriter, r *http.Request) {
	var req RecordMovementReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if req.ProductID == "" || len(req.Reason) < 2 {
		badRequest(w, "productId and reason are required")
		return
	}
	switch req.Kind {
	case inventory.MovementIn, inventory.MovementOut, inventory.MovementAdjust:
	default:
		badRequest(w, "type must be IN, OUT or ADJUST")
		return
	}

	m, err := h.Ledger.Record(req.ProductID, req.Kind, req.Qty, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}

	// Re-read the product for the post-movement stock level; consumers act
	// on the payload alone.
	if p, err := h.Catalog.Get(m.ProductID); err == nil {
		ev := inventory.Envelope{
			EventID:       uuid.NewString(),
			EventType:     inventory.EventMovementRecorded,
			EventVersion:  1,
			OccurredAt:    time.Now().UTC(),
			Producer:      h.Service,
			TraceID:       r.Header.Get("X-Request-Id"),
			CorrelationID: m.ID,
			Payload: kafkax.MustMarshal(inventory.MovementRecordedPayload{
				MovementID: m.ID,
				ProductID:  m.ProductID,
				Kind:       string(m.Kind),
				Qty:        m.Qty,
				Reason:     m.Reason,
				StockAfter: p.StockCurrent,
				StockMin:   p.StockMin,
			}),
		}
		h.Producer.Publish(inventory.PartitionKey(m.ProductID), kafkax.MustMarshal(ev),
			kafkago.Header{Key: "x-event-type", Value: []byte(inventory.EventMovementRecorded)},
			kafkago.Header{Key: "x-event-version", Value: []byte("1")},
		)
	}

	writeJSON(w, http.StatusCreated, m)
}
