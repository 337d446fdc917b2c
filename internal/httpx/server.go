package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"estoque/internal/inventory"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger)
	r.Use(middleware.Timeout(15 * time.Second))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Code    inventory.Code `json:"code"`
	Error   string         `json:"error"`
	Details any            `json:"details,omitempty"`
}

// writeError maps the engine's closed error taxonomy onto HTTP statuses:
// NOT_FOUND -> 404, INSUFFICIENT_STOCK -> 409, VALIDATION_ERROR -> 400.
func writeError(w http.ResponseWriter, err error) {
	var engineErr *inventory.Error
	if errors.As(err, &engineErr) {
		status := http.StatusBadRequest
		switch engineErr.Code {
		case inventory.CodeNotFound:
			status = http.StatusNotFound
		case inventory.CodeInsufficientStock:
			status = http.StatusConflict
		}
		writeJSON(w, status, errorBody{Code: engineErr.Code, Error: engineErr.Message, Details: engineErr.Details})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Code: inventory.CodeValidation, Error: msg})
}
