package actions

import (
	"context"

	"github.com/carson-networks/budget-ledger/internal/storage"
)

type DeleteTransaction struct {
	ID int64

	// Removed reports whether a transaction with ID existed.
	Removed bool

	IAction
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	d.Removed = writer.Ledger.Delete(d.ID)
	return nil
}

type ClearTransactions struct {
	// Removed is the number of transactions that were held before clearing.
	Removed int

	IAction
}

func (c *ClearTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	c.Removed = writer.Ledger.Count()
	writer.Ledger.Clear()
	return nil
}
