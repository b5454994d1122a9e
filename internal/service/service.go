package service

import (
	"github.com/carson-networks/budget-ledger/internal/operator"
	"github.com/carson-networks/budget-ledger/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Ledger *LedgerService
}

// NewService creates a new Service reading from store and writing through op.
func NewService(store *storage.Storage, op *operator.OperatorDelegator) *Service {
	return &Service{
		Ledger: NewLedgerService(store, op),
	}
}
