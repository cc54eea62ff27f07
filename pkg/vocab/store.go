package vocab

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kashinote/kashinote/pkg/kv"
)

// DefaultKey is the kv key the deck is stored under.
const DefaultKey = "kashinote.vocab"

// Store owns the canonical ordered collection of saved words. Every
// mutating operation persists synchronously before returning, so the
// durable copy only lags memory when persistence itself fails (reported
// via ErrPersistence, never fatal).
//
// Order is newest-first: Add prepends and nothing ever reorders the
// persisted collection.
type Store struct {
	kv      kv.Store
	key     string
	entries []*Entry
	now     func() time.Time
}

// NewStore creates a Store backed by db under key. Pass an empty key to
// use DefaultKey. The store starts empty; call Load to read the durable
// copy.
func NewStore(db kv.Store, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{kv: db, key: key, now: time.Now}
}

// Load replaces the in-memory collection with the durable one. Missing or
// corrupt data yields an empty deck rather than an error; only an actual
// read failure is reported (wrapped in ErrPersistence), and even then the
// store is left usable and empty.
func (s *Store) Load() error {
	s.entries = nil
	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		return fmt.Errorf("%w: load deck: %v", ErrPersistence, err)
	}
	if !ok {
		return nil
	}
	var entries []*Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		// Corrupt payload: start fresh instead of refusing to run.
		return nil
	}
	// JSON can be valid yet still hold nulls or entries without a word;
	// letting those in means a nil deref later. Drop them.
	for _, e := range entries {
		if e == nil || e.Word == "" {
			continue
		}
		s.entries = append(s.entries, e)
	}
	return nil
}

// Add prepends entry to the deck and persists. It fails with
// ErrDuplicateWord (and changes nothing) when an entry with the same
// surface word exists. AddedAt is stamped if unset.
func (s *Store) Add(entry *Entry) error {
	for _, e := range s.entries {
		if e.Word == entry.Word {
			return ErrDuplicateWord
		}
	}
	if entry.AddedAt.IsZero() {
		entry.AddedAt = s.now()
	}
	s.entries = append([]*Entry{entry}, s.entries...)
	return s.Persist()
}

// Remove deletes the entry at index in current order and persists.
func (s *Store) Remove(index int) error {
	if index < 0 || index >= len(s.entries) {
		return ErrIndexOutOfRange
	}
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	return s.Persist()
}

// RemoveByWord deletes the first entry whose surface word matches. A
// missing word is a no-op, not an error.
func (s *Store) RemoveByWord(word string) error {
	for i, e := range s.entries {
		if e.Word == word {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return s.Persist()
		}
	}
	return nil
}

// Clear empties the deck and persists.
func (s *Store) Clear() error {
	s.entries = nil
	return s.Persist()
}

// List returns the entries in display order (newest first). The slice is
// a copy; the entries themselves are shared, but structural mutation must
// go through the store.
func (s *Store) List() []*Entry {
	out := make([]*Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of saved words.
func (s *Store) Len() int { return len(s.entries) }

// Persist writes the current collection to the durable store. On failure
// it returns an error wrapping ErrPersistence; the in-memory collection
// is unaffected and remains authoritative.
func (s *Store) Persist() error {
	raw, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("%w: encode deck: %v", ErrPersistence, err)
	}
	if err := s.kv.Set(s.key, string(raw)); err != nil {
		return fmt.Errorf("%w: write deck: %v", ErrPersistence, err)
	}
	return nil
}
