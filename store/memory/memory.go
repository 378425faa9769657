// Package memory provides the default in-process Provider: an unbounded
// map that lives until Close. This preserves the classic compile-cache
// trade-off of growing monotonically with distinct patterns seen; pick the
// ristretto or bigcache provider instead for a bounded cache.
package memory

import (
	"context"
	"sync"
	"time"

	st "github.com/bracekit/braces/store"
)

type entry struct {
	v   []byte
	exp time.Time // zero => no TTL
}

// Store is an unbounded in-process byte store. Safe for concurrent use.
type Store struct {
	mu sync.RWMutex
	m  map[string]entry
}

var _ st.Provider = (*Store)(nil)

func New() *Store {
	return &Store{m: make(map[string]entry)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	e, ok := s.m[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !e.exp.IsZero() && time.Now().After(e.exp) {
		s.mu.Lock()
		delete(s.m, key)
		s.mu.Unlock()
		return nil, false, nil
	}
	return e.v, true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte, _ int64, ttl time.Duration) (bool, error) {
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.mu.Lock()
	s.m[key] = entry{v: value, exp: exp}
	s.mu.Unlock()
	return true, nil
}

func (s *Store) Del(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
	return nil
}

func (s *Store) Close(_ context.Context) error {
	s.mu.Lock()
	s.m = make(map[string]entry)
	s.mu.Unlock()
	return nil
}

// Len reports the number of stored entries, expired or not. Handy for
// growth assertions in tests.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
