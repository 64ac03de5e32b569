package cache

import (
	"context"
	"sync"
	"time"

	"github.com/shared-city/backend/internal/domain"
)

type entry struct {
	value     string
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !e.expiresAt.After(now)
}

type listEntry struct {
	values    []string
	expiresAt time.Time
}

func (l listEntry) expired(now time.Time) bool {
	return !l.expiresAt.IsZero() && !l.expiresAt.After(now)
}

// MemoryStore is a process local Store for single instance deployments and tests.
// It does not implement Consumer.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]entry
	lists map[string]listEntry
	nowF  func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]entry),
		lists: make(map[string]listEntry),
		nowF:  time.Now,
	}
}

func (s *MemoryStore) expiry(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return s.nowF().Add(ttl)
}

func (s *MemoryStore) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = entry{value: value, expiresAt: s.expiry(ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	if e.expired(s.nowF()) {
		delete(s.items, key)
		return "", domain.ErrNotFound
	}
	return e.value, nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	delete(s.lists, key)
	return nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func (s *MemoryStore) Append(_ context.Context, key string, limit int, ttl time.Duration, values ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.lists[key]
	if l.expired(s.nowF()) {
		l = listEntry{}
	}
	l.values = append(l.values, values...)
	if limit > 0 && len(l.values) > limit {
		l.values = l.values[len(l.values)-limit:]
	}
	if ttl > 0 {
		l.expiresAt = s.expiry(ttl)
	}
	s.lists[key] = l
	return nil
}

func (s *MemoryStore) Range(_ context.Context, key string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lists[key]
	if !ok {
		return nil, nil
	}
	if l.expired(s.nowF()) {
		delete(s.lists, key)
		return nil, nil
	}

	out := make([]string, len(l.values))
	copy(out, l.values)
	return out, nil
}

// DeleteExpired drops every expired key and list.
func (s *MemoryStore) DeleteExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowF()
	for k, e := range s.items {
		if e.expired(now) {
			delete(s.items, k)
		}
	}
	for k, l := range s.lists {
		if l.expired(now) {
			delete(s.lists, k)
		}
	}
}

// RunJanitor calls DeleteExpired every interval until ctx is done.
func (s *MemoryStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.DeleteExpired()
		}
	}
}
