package compare

import (
	"fmt"
	"slices"

	"github.com/desertthunder/unitx/internal/models"
	"github.com/desertthunder/unitx/internal/shared"
)

// Session is a caller-owned comparison: the ranked collection plus the identity sequence it draws from.
type Session struct {
	ids     *Sequence
	entries []models.Entry
}

// NewSession creates an empty session whose first entry will have id 1.
func NewSession() *Session {
	return &Session{ids: NewSequence()}
}

// CreateProvisional opens a new form entry with its identity assigned and quantity defaulted to 1.
func (s *Session) CreateProvisional() models.RawEntry {
	return models.RawEntry{ID: s.ids.Next(), Quantity: "1"}
}

// Submit normalizes raw, inserts it (or replaces the entry with the same id) and re-ranks the collection.
//
// On error the collection is left untouched.
func (s *Session) Submit(raw models.RawEntry) ([]models.Entry, error) {
	if raw.ID >= s.ids.Peek() {
		return nil, &FieldError{Field: FieldID, Value: fmt.Sprint(raw.ID), Reason: "was not issued by this session"}
	}

	entry, err := Normalize(raw, s.ids)
	if err != nil {
		return nil, err
	}

	next := slices.Clone(s.entries)
	if i := s.indexOf(entry.ID); i >= 0 {
		next[i] = entry
	} else {
		next = append(next, entry)
	}

	ranked, err := Rank(next)
	if err != nil {
		return nil, err
	}

	s.entries = ranked
	return s.Entries(), nil
}

// Edit returns the editable form state of a committed entry.
func (s *Session) Edit(id int) (models.RawEntry, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.RawEntry{}, fmt.Errorf("%w: id %d", shared.ErrEntryNotFound, id)
	}
	return s.entries[i].ToRaw(), nil
}

// Remove deletes an entry and re-ranks what is left.
func (s *Session) Remove(id int) ([]models.Entry, error) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: id %d", shared.ErrEntryNotFound, id)
	}

	ranked, err := Rank(slices.Delete(slices.Clone(s.entries), i, i+1))
	if err != nil {
		return nil, err
	}

	s.entries = ranked
	return s.Entries(), nil
}

// Reset empties the collection and restarts the identity sequence.
func (s *Session) Reset() {
	s.entries = nil
	s.ids.Reset()
}

// Entries returns a copy of the ranked collection.
func (s *Session) Entries() []models.Entry {
	return slices.Clone(s.entries)
}

// Len returns the number of committed entries.
func (s *Session) Len() int {
	return len(s.entries)
}

// Summary summarizes the current collection.
func (s *Session) Summary() Summary {
	return Summarize(s.entries)
}

func (s *Session) indexOf(id int) int {
	return slices.IndexFunc(s.entries, func(e models.Entry) bool { return e.ID == id })
}
