package storage

import (
	"errors"

	"github.com/carson-networks/budget-ledger/internal/ledger"
)

var ErrWriterClosed = errors.New("storage: writer already committed or rolled back")

// Writer is exclusive access to the ledger. Changes made through Ledger are
// kept by Commit and undone by Rollback.
type Writer struct {
	Ledger *ledger.Ledger

	storage  *Storage
	snapshot ledger.Snapshot
	closed   bool
}

func newWriter(s *Storage) *Writer {
	return &Writer{
		Ledger:   s.ledger,
		storage:  s,
		snapshot: s.ledger.Snapshot(),
	}
}

func (w *Writer) Commit() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.closed = true
	w.storage.mu.Unlock()
	return nil
}

func (w *Writer) Rollback() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.closed = true
	w.Ledger.Restore(w.snapshot)
	w.storage.mu.Unlock()
	return nil
}
