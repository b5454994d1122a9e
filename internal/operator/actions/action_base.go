package actions

import (
	"context"

	"github.com/carson-networks/budget-ledger/internal/storage"
)

// IAction is a ledger mutation run by an Operator while it holds the storage writer.
// Returning an error rolls the writer back.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
