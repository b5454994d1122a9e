package storage

import (
	"context"
	"sync"

	"github.com/carson-networks/budget-ledger/internal/ledger"
)

// Storage owns the single ledger instance and the lock that guards it.
// Readers share the lock; each Writer holds it exclusively until Commit or Rollback.
type Storage struct {
	mu     sync.RWMutex
	ledger *ledger.Ledger
}

func NewStorage(l *ledger.Ledger) *Storage {
	return &Storage{ledger: l}
}

// Read runs fn with shared access to the ledger. fn must not retain the pointer.
func (s *Storage) Read(fn func(l *ledger.Ledger)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.ledger)
}

// Write blocks until exclusive access is available and returns a Writer for it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	return newWriter(s), nil
}
