// Package web provides the HTTP server and JSON API for the grocery list
// application.
package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jlavigne/epicerie/internal/config"
	"github.com/jlavigne/epicerie/internal/core"
)

// Server is the HTTP server over the catalog store.
type Server struct {
	store  *core.Store
	cfg    *config.Config
	router *chi.Mux
	server *http.Server
}

// NewServer creates a new Server instance.
func NewServer(store *core.Store, cfg *config.Config) *Server {
	s := &Server{
		store:  store,
		cfg:    cfg,
		router: chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
	s.router.Use(securityHeaders)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		// Catalog
		r.Get("/catalog/categories", s.handleListCategories)
		r.Get("/catalog/categories.csv", s.handleExportCategoriesCSV)
		r.Get("/catalog/products", s.handleListProducts)
		r.Post("/catalog/products", s.handleAddProduct)
		r.Delete("/catalog/products/{productID}", s.handleDeleteProduct)
		r.Get("/catalog/products.csv", s.handleExportProductsCSV)
		r.Get("/catalog/suppliers", s.handleListSuppliers)
		r.Post("/catalog/suppliers", s.handleAddSupplier)
		r.Put("/catalog/suppliers/{supplierID}", s.handleUpdateSupplier)
		r.Delete("/catalog/suppliers/{supplierID}", s.handleDeleteSupplier)

		// CSV import
		r.Post("/import/{kind}/preview", s.handleImportPreview)
		r.Post("/import/{kind}/apply", s.handleImportApply)

		// Shopping list views
		r.Get("/list", s.handleList)
		r.Get("/list/text", s.handleListText)
		r.Get("/list/grouped", s.handleListGrouped)

		// Cart
		r.Put("/cart/{productID}", s.handleSetQuantity)
		r.Post("/cart/{productID}/increment", s.handleIncrementQuantity)
		r.Post("/cart/{productID}/decrement", s.handleDecrementQuantity)
		r.Post("/cart/reset", s.handleResetCart)

		// Favorites
		r.Post("/favorites/{productID}/toggle", s.handleToggleFavorite)

		// Recipients and share links
		r.Get("/recipients/{channel}", s.handleListRecipients)
		r.Post("/recipients/{channel}", s.handleAddRecipient)
		r.Put("/recipients/{channel}/{recipientID}", s.handleUpdateRecipient)
		r.Delete("/recipients/{channel}/{recipientID}", s.handleDeleteRecipient)
		r.Get("/share/whatsapp", s.handleShareWhatsApp)
		r.Get("/share/email", s.handleShareEmail)
	})
}

// Start begins listening for HTTP requests.
func (s *Server) Start(addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	slog.Info("starting server", "addr", addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// handleHealth reports process liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// securityHeaders adds security headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Prevent MIME type sniffing
		w.Header().Set("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking
		w.Header().Set("X-Frame-Options", "DENY")

		// API only serves JSON, CSV and plain text
		w.Header().Set("Content-Security-Policy", "default-src 'none'")

		// Control referrer information
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next.ServeHTTP(w, r)
	})
}
