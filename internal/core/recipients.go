package core

// recipients.go manages the per-channel share contacts. The catalog logic
// never reads these; they only feed the export collaborators.

import (
	"context"

	"github.com/google/uuid"
)

// recipientList returns the slice and slot for a channel. Caller holds the
// appropriate lock for the returned pointer.
func (s *Store) recipientList(channel Channel) (*[]Recipient, string, error) {
	switch channel {
	case ChannelWhatsApp:
		return &s.waRecipients, slotWaRecipients, nil
	case ChannelEmail:
		return &s.emailRecipients, slotEmailRecipients, nil
	default:
		return nil, "", ErrUnknownChannel
	}
}

// Recipients returns the contact list for a channel.
func (s *Store) Recipients(channel Channel) ([]Recipient, error) {
	s.mu.RLock()
	list, _, err := s.recipientList(channel)
	if err != nil {
		s.mu.RUnlock()
		return nil, err
	}
	out := make([]Recipient, len(*list))
	copy(out, *list)
	s.mu.RUnlock()
	return out, nil
}

// AddRecipient appends a contact to a channel, minting an id when none is
// given.
func (s *Store) AddRecipient(ctx context.Context, channel Channel, r Recipient) (Recipient, error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	s.mu.Lock()
	list, slot, err := s.recipientList(channel)
	if err != nil {
		s.mu.Unlock()
		return Recipient{}, err
	}
	for _, existing := range *list {
		if existing.ID == r.ID {
			s.mu.Unlock()
			return Recipient{}, ErrDuplicateID
		}
	}
	*list = append(*list, r)
	s.mu.Unlock()

	s.persist(ctx, slot)
	return r, nil
}

// UpdateRecipient replaces the named contact's fields, keeping its id.
func (s *Store) UpdateRecipient(ctx context.Context, channel Channel, id string, r Recipient) error {
	s.mu.Lock()
	list, slot, err := s.recipientList(channel)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	idx := -1
	for i, existing := range *list {
		if existing.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrRecipientNotFound
	}
	r.ID = id
	(*list)[idx] = r
	s.mu.Unlock()

	s.persist(ctx, slot)
	return nil
}

// DeleteRecipient removes the named contact from a channel.
func (s *Store) DeleteRecipient(ctx context.Context, channel Channel, id string) error {
	s.mu.Lock()
	list, slot, err := s.recipientList(channel)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	idx := -1
	for i, existing := range *list {
		if existing.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrRecipientNotFound
	}
	*list = append((*list)[:idx], (*list)[idx+1:]...)
	s.mu.Unlock()

	s.persist(ctx, slot)
	return nil
}
