// Package ledger holds the in-memory list of income and expense transactions
// and the aggregate queries computed over it.
//
// A Ledger is not safe for concurrent use. Callers sharing one between
// goroutines go through storage.Storage.
package ledger

import (
	"fmt"
	"math"
	"slices"
)

// IDPolicy selects how Add assigns ids.
type IDPolicy string

const (
	// IDPolicySize assigns Count()+1. After a deletion this can repeat an id
	// that is still held by another entry.
	IDPolicySize IDPolicy = "size"
	// IDPolicyMonotonic assigns one more than the highest id ever held.
	// Delete and Clear never lower it.
	IDPolicyMonotonic IDPolicy = "monotonic"
)

// ParseIDPolicy converts a configuration value into an IDPolicy.
func ParseIDPolicy(s string) (IDPolicy, error) {
	switch p := IDPolicy(s); p {
	case IDPolicySize, IDPolicyMonotonic:
		return p, nil
	}
	return "", fmt.Errorf("unknown id policy %q", s)
}

// Ledger is the ordered collection of transactions, kept in creation order.
type Ledger struct {
	entries []Transaction
	policy  IDPolicy
	highest int64
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithIDPolicy sets the id assignment policy. The default is IDPolicySize.
func WithIDPolicy(p IDPolicy) Option {
	return func(l *Ledger) {
		l.policy = p
	}
}

// WithEntries preloads transactions with their ids as given.
func WithEntries(txs ...Transaction) Option {
	return func(l *Ledger) {
		for _, tx := range txs {
			l.entries = append(l.entries, tx)
			l.highest = max(l.highest, tx.ID)
		}
	}
}

// New creates an empty ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{policy: IDPolicySize}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewSeeded creates a ledger holding the seed transactions.
func NewSeeded(opts ...Option) *Ledger {
	return New(append([]Option{WithEntries(SeedTransactions()...)}, opts...)...)
}

// SeedTransactions returns the entries a ledger starts with.
func SeedTransactions() []Transaction {
	return []Transaction{
		{ID: 1, Name: "Monthly Salary", Amount: 5000000, Kind: KindIncome, Category: "salary", Date: NewDate(2025, 6, 18)},
		{ID: 2, Name: "Grocery Shopping", Amount: 250000, Kind: KindExpense, Category: "shopping", Date: NewDate(2025, 6, 17)},
		{ID: 3, Name: "Gas Station", Amount: 150000, Kind: KindExpense, Category: "transport", Date: NewDate(2025, 6, 16)},
		{ID: 4, Name: "Freelance Project", Amount: 1500000, Kind: KindIncome, Category: "freelance", Date: NewDate(2025, 6, 15)},
	}
}

// Policy returns the id assignment policy.
func (l *Ledger) Policy() IDPolicy {
	return l.policy
}

// Add validates and appends a new transaction, returning the stored record.
// On a *ValidationError the ledger is unchanged.
func (l *Ledger) Add(n NewTransaction) (Transaction, error) {
	if err := n.Validate(); err != nil {
		return Transaction{}, err
	}
	if l.sum(n.Kind) > math.MaxInt64-n.Amount {
		return Transaction{}, &ValidationError{Field: "amount", Message: "would overflow the " + string(n.Kind) + " total"}
	}

	tx := Transaction{
		ID:       l.nextID(),
		Name:     n.Name,
		Amount:   n.Amount,
		Kind:     n.Kind,
		Category: n.Category,
		Date:     n.Date,
	}
	l.entries = append(l.entries, tx)
	l.highest = max(l.highest, tx.ID)
	return tx, nil
}

func (l *Ledger) nextID() int64 {
	if l.policy == IDPolicyMonotonic {
		return l.highest + 1
	}
	return int64(len(l.entries)) + 1
}

// Delete removes the first transaction with the given id and reports
// whether one was removed.
func (l *Ledger) Delete(id int64) bool {
	i := slices.IndexFunc(l.entries, func(tx Transaction) bool {
		return tx.ID == id
	})
	if i < 0 {
		return false
	}
	l.entries = slices.Delete(l.entries, i, i+1)
	return true
}

// Clear removes every transaction.
func (l *Ledger) Clear() {
	l.entries = nil
}

// TotalIncome sums the amounts of all income transactions.
func (l *Ledger) TotalIncome() int64 {
	return l.sum(KindIncome)
}

// TotalExpense sums the amounts of all expense transactions.
func (l *Ledger) TotalExpense() int64 {
	return l.sum(KindExpense)
}

// Balance is TotalIncome minus TotalExpense. It may be negative.
func (l *Ledger) Balance() int64 {
	return l.TotalIncome() - l.TotalExpense()
}

// Count returns the number of transactions held.
func (l *Ledger) Count() int {
	return len(l.entries)
}

// sum cannot overflow: Add refuses an amount that would push a kind's total
// past math.MaxInt64.
func (l *Ledger) sum(kind Kind) int64 {
	var total int64
	for _, tx := range l.entries {
		if tx.Kind == kind {
			total += tx.Amount
		}
	}
	return total
}

// ListByRecency returns a copy of all transactions ordered by id, newest first.
// Entries sharing an id keep their creation order.
func (l *Ledger) ListByRecency() []Transaction {
	sorted := slices.Clone(l.entries)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})
	return sorted
}

// Snapshot captures the ledger contents so they can be restored later.
type Snapshot struct {
	entries []Transaction
	highest int64
}

// Snapshot copies the current entries and id counter.
func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{entries: slices.Clone(l.entries), highest: l.highest}
}

// Restore replaces the ledger contents with a snapshot.
func (l *Ledger) Restore(s Snapshot) {
	l.entries = slices.Clone(s.entries)
	l.highest = s.highest
}
