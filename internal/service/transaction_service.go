package service

import (
	"context"

	"github.com/carson-networks/budget-ledger/internal/ledger"
	"github.com/carson-networks/budget-ledger/internal/operator/actions"
	"github.com/carson-networks/budget-ledger/internal/storage"
)

const defaultLimit = 20

// actionProcessor runs a mutation behind the storage write boundary.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// LedgerService handles ledger business logic. Reads go straight to storage;
// every mutation is queued through the operator.
type LedgerService struct {
	storage  *storage.Storage
	operator actionProcessor
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(store *storage.Storage, op actionProcessor) *LedgerService {
	return &LedgerService{storage: store, operator: op}
}

// AddTransaction records a new transaction and returns it with its assigned id.
func (s *LedgerService) AddTransaction(ctx context.Context, input ledger.NewTransaction) (ledger.Transaction, error) {
	action := &actions.AddTransaction{Input: input}
	if err := s.operator.Process(ctx, action); err != nil {
		return ledger.Transaction{}, err
	}
	return action.Created, nil
}

// DeleteTransaction removes the transaction with id and reports whether it existed.
func (s *LedgerService) DeleteTransaction(ctx context.Context, id int64) (bool, error) {
	action := &actions.DeleteTransaction{ID: id}
	if err := s.operator.Process(ctx, action); err != nil {
		return false, err
	}
	return action.Removed, nil
}

// ClearTransactions removes every transaction and returns how many were removed.
func (s *LedgerService) ClearTransactions(ctx context.Context) (int, error) {
	action := &actions.ClearTransactions{}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.Removed, nil
}

// Summary returns all aggregates computed under one read lock.
func (s *LedgerService) Summary(ctx context.Context) Summary {
	var summary Summary
	s.storage.Read(func(l *ledger.Ledger) {
		summary = Summary{
			TotalIncome:  l.TotalIncome(),
			TotalExpense: l.TotalExpense(),
			Balance:      l.Balance(),
			Count:        l.Count(),
		}
	})
	return summary
}

// History returns every transaction, newest first.
func (s *LedgerService) History(ctx context.Context) []ledger.Transaction {
	var txs []ledger.Transaction
	s.storage.Read(func(l *ledger.Ledger) {
		txs = l.ListByRecency()
	})
	return txs
}

// ListTransactions returns a page of transactions, newest first, using cursor pagination.
func (s *LedgerService) ListTransactions(ctx context.Context, cursor *TransactionCursor) ([]ledger.Transaction, *TransactionCursor, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	limit := defaultLimit
	offset := 0
	var maxID int64
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = max(cursor.Position, 0)
		maxID = cursor.MaxID
	}

	rows := s.History(ctx)
	if maxID > 0 {
		rows = dropNewerThan(rows, maxID)
	}

	if offset >= len(rows) {
		return nil, nil, nil
	}
	rows = rows[offset:]

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxID := maxID
		if cursorMaxID == 0 && offset == 0 {
			cursorMaxID = rows[0].ID
		}

		nextCursor = &TransactionCursor{
			Position: offset + limit,
			Limit:    limit,
			MaxID:    cursorMaxID,
		}
	}

	return rows, nextCursor, nil
}

// dropNewerThan skips the leading entries of a recency-ordered list whose id exceeds maxID.
func dropNewerThan(txs []ledger.Transaction, maxID int64) []ledger.Transaction {
	for i, tx := range txs {
		if tx.ID <= maxID {
			return txs[i:]
		}
	}
	return nil
}
