package operator

import (
	"context"
	"errors"

	"github.com/carson-networks/budget-ledger/internal/operator/actions"
	"github.com/carson-networks/budget-ledger/internal/storage"
)

// ActionItem is one queued action and the channel its result is sent on.
type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}

// Operator is a worker that applies queued actions to the ledger one writer at a time.
type Operator struct {
	storage *storage.Storage
	queue   <-chan ActionItem
}

func NewOperator(s *storage.Storage, queue <-chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
	}
}

// Run applies items until the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: o.apply(item.ctx, item.action)}
	}
}

// apply runs action under an exclusive writer. The writer is rolled back when
// the caller gave up while waiting for the lock or when the action fails.
func (o *Operator) apply(ctx context.Context, action actions.IAction) error {
	writer, err := o.storage.Write(ctx)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return errors.Join(err, writer.Rollback())
	}

	if err := action.Perform(ctx, writer); err != nil {
		return errors.Join(err, writer.Rollback())
	}

	return writer.Commit()
}
