package web

// handlers_recipients.go manages the per-channel contact lists and builds
// the share links around the canonical list text.

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jlavigne/epicerie/internal/core"
	"github.com/jlavigne/epicerie/internal/export"
)

// channelParam parses the {channel} URL parameter.
func channelParam(r *http.Request) (core.Channel, error) {
	return core.ParseChannel(chi.URLParam(r, "channel"))
}

// handleListRecipients returns the contact list for a channel.
func (s *Server) handleListRecipients(w http.ResponseWriter, r *http.Request) {
	channel, err := channelParam(r)
	if err != nil {
		s.respondStoreError(w, r, err)
		return
	}

	rs, err := s.store.Recipients(channel)
	if err != nil {
		s.respondStoreError(w, r, err)
		return
	}
	if rs == nil {
		rs = []core.Recipient{}
	}
	writeJSON(w, http.StatusOK, rs)
}

// handleAddRecipient adds a contact to a channel.
func (s *Server) handleAddRecipient(w http.ResponseWriter, r *http.Request) {
	channel, err := channelParam(r)
	if err != nil {
		s.respondStoreError(w, r, err)
		return
	}

	var rec core.Recipient
	if err := decodeJSON(r, &rec); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	if rec.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	created, err := s.store.AddRecipient(r.Context(), channel, rec)
	if err != nil {
		s.respondStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// handleUpdateRecipient replaces a contact's fields, keeping its id.
func (s *Server) handleUpdateRecipient(w http.ResponseWriter, r *http.Request) {
	channel, err := channelParam(r)
	if err != nil {
		s.respondStoreError(w, r, err)
		return
	}

	var rec core.Recipient
	if err := decodeJSON(r, &rec); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "recipientID")
	if err := s.store.UpdateRecipient(r.Context(), channel, id, rec); err != nil {
		s.respondStoreError(w, r, err)
		return
	}
	rec.ID = id
	writeJSON(w, http.StatusOK, rec)
}

// handleDeleteRecipient removes a contact from a channel.
func (s *Server) handleDeleteRecipient(w http.ResponseWriter, r *http.Request) {
	channel, err := channelParam(r)
	if err != nil {
		s.respondStoreError(w, r, err)
		return
	}

	if err := s.store.DeleteRecipient(r.Context(), channel, chi.URLParam(r, "recipientID")); err != nil {
		s.respondStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// shareLink pairs a recipient with a ready-to-open deep link.
type shareLink struct {
	Recipient core.Recipient `json:"recipient"`
	Link      string         `json:"link"`
}

// handleShareWhatsApp returns a wa.me link per WhatsApp recipient with a
// phone number, each carrying the current list text.
func (s *Server) handleShareWhatsApp(w http.ResponseWriter, r *http.Request) {
	recipients, err := s.store.Recipients(core.ChannelWhatsApp)
	if err != nil {
		s.respondStoreError(w, r, err)
		return
	}

	text := s.store.ExportText()
	links := []shareLink{}
	for _, rec := range recipients {
		if rec.Phone == "" {
			continue
		}
		links = append(links, shareLink{
			Recipient: rec,
			Link:      export.WhatsAppLink(rec.Phone, text),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"text":  text,
		"links": links,
	})
}

// handleShareEmail returns one mailto: link addressed to every email
// recipient, with the list text as the body.
func (s *Server) handleShareEmail(w http.ResponseWriter, r *http.Request) {
	recipients, err := s.store.Recipients(core.ChannelEmail)
	if err != nil {
		s.respondStoreError(w, r, err)
		return
	}

	var emails []string
	for _, rec := range recipients {
		if rec.Email != "" {
			emails = append(emails, rec.Email)
		}
	}

	text := s.store.ExportText()
	writeJSON(w, http.StatusOK, map[string]any{
		"text": text,
		"link": export.MailtoLink(strings.Join(emails, ","), "Liste de courses", text),
	})
}
