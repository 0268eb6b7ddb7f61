package web

// handlers_catalog.go serves the catalog read and edit endpoints, plus the
// CSV exports.

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jlavigne/epicerie/internal/core"
)

// handleListCategories returns all categories sorted by sortOrder.
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Categories())
}

// handleListProducts returns the catalog, optionally filtered by ?q= and
// ?favorites=1.
func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	favoritesOnly := r.URL.Query().Get("favorites") == "1"

	products := s.store.SearchProducts(query, favoritesOnly)
	if products == nil {
		products = []core.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// handleAddProduct adds one product to the catalog.
func (s *Server) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	var p core.Product
	if err := decodeJSON(r, &p); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	if p.ID == "" || p.DisplayName == "" {
		http.Error(w, "id and displayName are required", http.StatusBadRequest)
		return
	}

	if err := s.store.AddProduct(r.Context(), p); err != nil {
		s.respondStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// handleDeleteProduct removes a product and its cart state.
func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")
	if err := s.store.DeleteProduct(r.Context(), id); err != nil {
		s.respondStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListSuppliers returns all suppliers.
func (s *Server) handleListSuppliers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Suppliers())
}

// handleAddSupplier creates a supplier, minting an id when none is given.
func (s *Server) handleAddSupplier(w http.ResponseWriter, r *http.Request) {
	var sup core.Supplier
	if err := decodeJSON(r, &sup); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	if sup.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	created, err := s.store.AddSupplier(r.Context(), sup)
	if err != nil {
		s.respondStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// handleUpdateSupplier renames a supplier.
func (s *Server) handleUpdateSupplier(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	if body.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "supplierID")
	if err := s.store.UpdateSupplier(r.Context(), id, body.Name); err != nil {
		s.respondStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, core.Supplier{ID: id, Name: body.Name})
}

// handleDeleteSupplier removes a supplier and detaches it from products.
func (s *Server) handleDeleteSupplier(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "supplierID")
	if err := s.store.DeleteSupplier(r.Context(), id); err != nil {
		s.respondStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleExportCategoriesCSV serves the category collection as a CSV file.
func (s *Server) handleExportCategoriesCSV(w http.ResponseWriter, r *http.Request) {
	writeCSV(w, "categories.csv", core.ExportCategoriesCSV(s.store.Categories()))
}

// handleExportProductsCSV serves the product collection as a CSV file.
func (s *Server) handleExportProductsCSV(w http.ResponseWriter, r *http.Request) {
	writeCSV(w, "products.csv", core.ExportProductsCSV(s.store.Products(), s.store.Suppliers()))
}

// writeCSV writes CSV text as a file download.
func writeCSV(w http.ResponseWriter, filename, body string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}
