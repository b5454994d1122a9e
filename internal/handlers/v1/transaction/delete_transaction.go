package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-ledger/internal/logging"
)

// DeleteTransactionInput is the Huma input for deleting one transaction.
type DeleteTransactionInput struct {
	ID int64 `path:"id" doc:"Transaction id"`
}

// DeleteTransactionResponse is the response body for deleting one transaction.
type DeleteTransactionResponse struct {
	Removed bool `json:"removed" doc:"False when no transaction had the id"`
}

// DeleteTransactionOutput is the Huma output for deleting one transaction.
type DeleteTransactionOutput struct {
	Body DeleteTransactionResponse
}

type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, id int64) (bool, error)
}

// DeleteTransactionHandler handles DELETE /v1/transaction/{id}.
type DeleteTransactionHandler struct {
	LedgerService transactionDeleter
}

func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{LedgerService: svc}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/v1/transaction/{id}",
		Summary:     "Delete transaction",
		Description: "Removes the transaction with the given id. Unknown ids are not an error.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("deleteTransactionMs")
	}
	removed, err := h.LedgerService.DeleteTransaction(ctx, input.ID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete transaction", err)
	}

	if logData != nil {
		logData.AddData("transactionID", input.ID)
		logData.AddData("removed", removed)
	}

	return &DeleteTransactionOutput{Body: DeleteTransactionResponse{Removed: removed}}, nil
}
