package web

// handlers_cart.go serves the shopping list views, the cart mutations and
// the favorites toggle.

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jlavigne/epicerie/internal/core"
)

// handleList returns the joined shopping list items.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	items := s.store.ListItems()
	if items == nil {
		items = []core.ListItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// handleListText returns the canonical share text as text/plain.
func (s *Server) handleListText(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(s.store.ExportText()))
}

// handleListGrouped returns the supplier-grouped export sections.
func (s *Server) handleListGrouped(w http.ResponseWriter, r *http.Request) {
	sections := s.store.GroupedExport()
	if sections == nil {
		sections = []core.GroupedSection{}
	}
	writeJSON(w, http.StatusOK, sections)
}

// cartResponse reports a product's quantity after a cart mutation.
type cartResponse struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// handleSetQuantity sets the cart quantity; zero removes the entry.
func (s *Server) handleSetQuantity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "productID")
	s.store.SetQuantity(r.Context(), id, body.Quantity)
	writeJSON(w, http.StatusOK, cartResponse{ProductID: id, Quantity: s.store.Quantity(id)})
}

// handleIncrementQuantity adds one to a product's quantity.
func (s *Server) handleIncrementQuantity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")
	s.store.IncrementQuantity(r.Context(), id)
	writeJSON(w, http.StatusOK, cartResponse{ProductID: id, Quantity: s.store.Quantity(id)})
}

// handleDecrementQuantity subtracts one; at one the entry disappears.
func (s *Server) handleDecrementQuantity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")
	s.store.DecrementQuantity(r.Context(), id)
	writeJSON(w, http.StatusOK, cartResponse{ProductID: id, Quantity: s.store.Quantity(id)})
}

// handleResetCart clears all quantities. Requires confirm:true.
func (s *Server) handleResetCart(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Confirm bool `json:"confirm"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	if !body.Confirm {
		s.respondStoreError(w, r, core.ErrConfirmRequired)
		return
	}

	s.store.ResetQuantities(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// handleToggleFavorite flips favorite membership for a product.
func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")
	s.store.ToggleFavorite(r.Context(), id)
	writeJSON(w, http.StatusOK, map[string]any{
		"productId": id,
		"favorite":  s.store.IsFavorite(id),
	})
}
