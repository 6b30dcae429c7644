package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"movequote/internal/usecase/interfaces"
)

// fakeCounterStore is an in-memory ICounterStore with the same atomicity
// guarantees as the DynamoDB implementation: increments happen under one
// lock, so concurrent callers can never observe the same sequence value or
// both slip past a window limit.
type fakeCounterStore struct {
	mu        sync.Mutex
	sequences map[string]int64
	windows   map[string]windowRow
	failNext  error
}

type windowRow struct {
	count       int
	windowStart time.Time
}

func newFakeCounterStore() *fakeCounterStore {
	return &fakeCounterStore{
		sequences: make(map[string]int64),
		windows:   make(map[string]windowRow),
	}
}

func (s *fakeCounterStore) NextSequence(_ context.Context, tenantID, period string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failNext != nil {
		err := s.failNext
		s.failNext = nil
		return 0, err
	}
	key := tenantID + "#" + period
	s.sequences[key]++
	return s.sequences[key], nil
}

func (s *fakeCounterStore) IncrementWindow(_ context.Context, tenantID, ip, endpoint string, windowStart time.Time, max int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failNext != nil {
		err := s.failNext
		s.failNext = nil
		return 0, err
	}
	key := fmt.Sprintf("%s#%s#%s#%d", tenantID, ip, endpoint, windowStart.Unix())
	row := s.windows[key]
	if row.count >= max {
		return row.count, interfaces.ErrLimitExceeded
	}
	row.count++
	row.windowStart = windowStart
	s.windows[key] = row
	return row.count, nil
}

func (s *fakeCounterStore) PurgeExpired(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	purged := 0
	for key, row := range s.windows {
		if row.windowStart.Before(cutoff) {
			delete(s.windows, key)
			purged++
		}
	}
	return purged, nil
}
