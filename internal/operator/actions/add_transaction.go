package actions

import (
	"context"

	"github.com/carson-networks/budget-ledger/internal/ledger"
	"github.com/carson-networks/budget-ledger/internal/storage"
)

type AddTransaction struct {
	Input ledger.NewTransaction

	// Created is set once the action has been performed.
	Created ledger.Transaction

	IAction
}

func (a *AddTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := writer.Ledger.Add(a.Input)
	if err != nil {
		return err
	}

	a.Created = created
	return nil
}
