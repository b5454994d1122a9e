package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-ledger/internal/logging"
)

// ClearTransactionsResponse is the response body for clearing the ledger.
type ClearTransactionsResponse struct {
	Removed int `json:"removed" doc:"Number of transactions removed"`
}

// ClearTransactionsOutput is the Huma output for clearing the ledger.
type ClearTransactionsOutput struct {
	Body ClearTransactionsResponse
}

type transactionClearer interface {
	ClearTransactions(ctx context.Context) (int, error)
}

// ClearTransactionsHandler handles DELETE /v1/transactions.
type ClearTransactionsHandler struct {
	LedgerService transactionClearer
}

func NewClearTransactionsHandler(svc transactionClearer) *ClearTransactionsHandler {
	return &ClearTransactionsHandler{LedgerService: svc}
}

func (h *ClearTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "clear-transactions",
		Method:      http.MethodDelete,
		Path:        "/v1/transactions",
		Summary:     "Clear transactions",
		Description: "Removes every transaction. This cannot be undone.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ClearTransactionsHandler) handle(ctx context.Context, _ *struct{}) (*ClearTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	removed, err := h.LedgerService.ClearTransactions(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to clear transactions", err)
	}

	if logData != nil {
		logData.AddData("removed", removed)
	}

	return &ClearTransactionsOutput{Body: ClearTransactionsResponse{Removed: removed}}, nil
}
