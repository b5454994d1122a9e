// Package input turns raw user input into ledger operations and asks for
// confirmation before destructive ones.
package input

import (
	"context"

	"github.com/carson-networks/budget-ledger/internal/ledger"
)

const (
	MsgInvalidForm   = "Please fill all fields correctly!"
	MsgConfirmDelete = "Are you sure you want to delete this transaction?"
	MsgConfirmClear  = "Are you sure you want to delete all transactions? This action cannot be undone."
)

// Prompter asks the user to confirm an action and shows them messages.
type Prompter interface {
	Confirm(message string) bool
	Notify(message string)
}

// ledgerWriter is the part of service.LedgerService the controller drives.
type ledgerWriter interface {
	AddTransaction(ctx context.Context, input ledger.NewTransaction) (ledger.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) (bool, error)
	ClearTransactions(ctx context.Context) (int, error)
}

type Controller struct {
	Ledger   ledgerWriter
	Prompter Prompter
}

func NewController(l ledgerWriter, p Prompter) *Controller {
	return &Controller{Ledger: l, Prompter: p}
}

// Submit validates the form and records it. Invalid input is reported to the
// user and never reaches the ledger.
func (c *Controller) Submit(ctx context.Context, form Form) (ledger.Transaction, error) {
	n, err := form.Parse()
	if err != nil {
		c.Prompter.Notify(MsgInvalidForm)
		return ledger.Transaction{}, err
	}

	tx, err := c.Ledger.AddTransaction(ctx, n)
	if err != nil {
		if ledger.IsValidationError(err) {
			c.Prompter.Notify(MsgInvalidForm)
		}
		return ledger.Transaction{}, err
	}
	return tx, nil
}

// Delete removes one transaction after confirmation. It returns false without
// touching the ledger when the user declines.
func (c *Controller) Delete(ctx context.Context, id int64) (bool, error) {
	if !c.Prompter.Confirm(MsgConfirmDelete) {
		return false, nil
	}
	return c.Ledger.DeleteTransaction(ctx, id)
}

// DeleteAll clears the ledger after confirmation and returns how many
// transactions were removed.
func (c *Controller) DeleteAll(ctx context.Context) (int, error) {
	if !c.Prompter.Confirm(MsgConfirmClear) {
		return 0, nil
	}
	return c.Ledger.ClearTransactions(ctx)
}
