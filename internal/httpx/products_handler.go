package httpx

import (
	"encoding/json"
	"net/http"

	"estoque/internal/inventory"
	"github.com/go-chi/chi/v5"
)

type ProductsHandler struct {
	Catalog *inventory.Catalog
}

func (h *ProductsHandler) Register(r *chi.Mux) {
	r.Get("/api/products", h.list)
	r.Get("/api/products/{id}", h.get)
	r.Post("/api/products", h.create)
	r.Put("/api/products/{id}", h.update)
	r.Delete("/api/products/{id}", h.delete)
}

func (h *ProductsHandler) list(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.List())
}

func (h *ProductsHandler) get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Catalog.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductsHandler) create(w http.ResponseWriter, r *http.Request) {
	var in inventory.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if len(in.Name) < 2 || len(in.SKU) < 2 {
		badRequest(w, "name and sku are required")
		return
	}
	p, err := h.Catalog.Create(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *ProductsHandler) update(w http.ResponseWriter, r *http.Request) {
	var patch inventory.ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if patch.Name != nil && len(*patch.Name) < 2 {
		badRequest(w, "name is too short")
		return
	}
	if patch.SKU != nil && len(*patch.SKU) < 2 {
		badRequest(w, "sku is too short")
		return
	}
	p, err := h.Catalog.Update(chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductsHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
