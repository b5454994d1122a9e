package transaction

import (
	"github.com/carson-networks/budget-ledger/internal/ledger"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID       int64  `json:"id" doc:"Transaction id"`
	Name     string `json:"name" doc:"Name of the transaction"`
	Amount   int64  `json:"amount" doc:"Amount in the smallest currency unit"`
	Kind     string `json:"kind" enum:"income,expense" doc:"income or expense"`
	Category string `json:"category" doc:"Category key, e.g. food"`
	Date     string `json:"date,omitempty" doc:"YYYY-MM-DD date, absent when none was given"`
}

func fromLedger(tx ledger.Transaction) Transaction {
	return Transaction{
		ID:       tx.ID,
		Name:     tx.Name,
		Amount:   tx.Amount,
		Kind:     string(tx.Kind),
		Category: tx.Category,
		Date:     tx.Date.String(),
	}
}

func fromLedgerList(txs []ledger.Transaction) []Transaction {
	out := make([]Transaction, len(txs))
	for i, tx := range txs {
		out[i] = fromLedger(tx)
	}
	return out
}
