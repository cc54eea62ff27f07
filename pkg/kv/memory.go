package kv

// MemoryStore is an in-memory Store, useful for tests and as a fallback
// when no durable path is configured.
type MemoryStore struct {
	m map[string]string
	// FailSets, when non-nil, is returned from every Set. Tests use it to
	// simulate persistence failures.
	FailSets error
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	if s.FailSets != nil {
		return s.FailSets
	}
	s.m[key] = value
	return nil
}
