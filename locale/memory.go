package locale

import (
	"fmt"
	"sort"
)

// MemoryStore serves bundles from memory. It is immutable after
// construction and therefore safe for concurrent use without locking.
type MemoryStore struct {
	bundles map[string]*Bundle
	infos   []Info
}

// NewMemoryStore builds a store over the given bundles, validating each.
func NewMemoryStore(bundles ...*Bundle) (*MemoryStore, error) {
	s := &MemoryStore{
		bundles: make(map[string]*Bundle, len(bundles)),
		infos:   make([]Info, 0, len(bundles)),
	}
	for _, b := range bundles {
		if err := Validate(b); err != nil {
			return nil, err
		}
		if _, exists := s.bundles[b.Code]; exists {
			return nil, fmt.Errorf("%w: duplicate locale %s", ErrInvalidDataset, b.Code)
		}
		s.bundles[b.Code] = b
		s.infos = append(s.infos, Info{Code: b.Code, Name: b.Name})
	}
	sort.Slice(s.infos, func(i, j int) bool { return s.infos[i].Code < s.infos[j].Code })
	return s, nil
}

// Locales lists the available locales ordered by code.
func (s *MemoryStore) Locales() ([]Info, error) {
	out := make([]Info, len(s.infos))
	copy(out, s.infos)
	return out, nil
}

// Bundle returns the dataset for a locale code.
func (s *MemoryStore) Bundle(code string) (*Bundle, error) {
	b, ok := s.bundles[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, code)
	}
	return b, nil
}

// Ping always succeeds; the data is in memory.
func (s *MemoryStore) Ping() error { return nil }

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
