package web

// handlers_import.go implements the two-step CSV import: preview parses and
// returns the valid/invalid breakdown without touching the catalog; apply
// parses again and commits the valid records under the requested mode.

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jlavigne/epicerie/internal/core"
	"github.com/jlavigne/epicerie/internal/logging"
)

// parseImport reads the csv text for the kind in the URL and runs the
// matching parser.
func (s *Server) parseImport(r *http.Request, csvText string) (core.ImportResult, error) {
	kind, err := core.ParseImportKind(chi.URLParam(r, "kind"))
	if err != nil {
		return core.ImportResult{}, err
	}

	switch kind {
	case core.ImportCategories:
		return core.ParseCategoriesCSV(csvText), nil
	default:
		return core.ParseProductsCSV(csvText, s.store.ValidCategoryIDs()), nil
	}
}

// handleImportPreview parses an upload and returns the result without
// committing anything.
func (s *Server) handleImportPreview(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Import.MaxFileSize)

	var body struct {
		CSV string `json:"csv"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	result, err := s.parseImport(r, body.CSV)
	if err != nil {
		s.respondStoreError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("import preview",
		"kind", result.Kind, "valid", result.Valid, "invalid", result.Invalid)
	writeJSON(w, http.StatusOK, result)
}

// handleImportApply parses an upload and commits its valid records.
// Replace mode requires confirm:true since it discards cart state of
// removed products.
func (s *Server) handleImportApply(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Import.MaxFileSize)

	var body struct {
		CSV     string `json:"csv"`
		Mode    string `json:"mode"`
		Confirm bool   `json:"confirm"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	mode, err := core.ParseApplyMode(body.Mode)
	if err != nil {
		s.respondStoreError(w, r, err)
		return
	}
	if mode == core.ModeReplace && !body.Confirm {
		s.respondStoreError(w, r, core.ErrConfirmRequired)
		return
	}

	result, err := s.parseImport(r, body.CSV)
	if err != nil {
		s.respondStoreError(w, r, err)
		return
	}

	if err := s.store.ApplyImport(r.Context(), result, mode); err != nil {
		s.respondStoreError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("import applied",
		"kind", result.Kind, "mode", mode, "valid", result.Valid, "invalid", result.Invalid)
	writeJSON(w, http.StatusOK, result)
}
