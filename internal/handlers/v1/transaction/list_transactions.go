package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-ledger/internal/ledger"
	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/service"
)

// ListTransactionsCursor represents a pagination cursor in responses.
// It bundles position, limit, and maxID so subsequent pages use consistent parameters.
type ListTransactionsCursor struct {
	Position int   `json:"position" doc:"Numeric offset position for the next page"`
	Limit    int   `json:"limit" doc:"Page size used for this cursor"`
	MaxID    int64 `json:"maxID" doc:"Upper bound on id locked in from the first page"`
}

// ListTransactionsInput is the Huma input for listing transactions. Pass the
// fields of a previous nextCursor to fetch the following page.
type ListTransactionsInput struct {
	Position int   `query:"position" minimum:"0" doc:"Offset for pagination"`
	Limit    int   `query:"limit" minimum:"1" maximum:"100" doc:"Page size, default 20"`
	MaxID    int64 `query:"maxID" minimum:"0" doc:"Ignore transactions with a larger id"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction           `json:"transactions" doc:"Page of transactions, newest first"`
	NextCursor   *ListTransactionsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, cursor *service.TransactionCursor) ([]ledger.Transaction, *service.TransactionCursor, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	LedgerService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{LedgerService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns a page of transactions, newest first, using cursor-based pagination.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput returns nil when no paging parameter was given,
// letting the service apply its defaults.
func parseListTransactionsInput(input *ListTransactionsInput) *service.TransactionCursor {
	if input.Position == 0 && input.Limit == 0 && input.MaxID == 0 {
		return nil
	}
	return &service.TransactionCursor{
		Position: input.Position,
		Limit:    input.Limit,
		MaxID:    input.MaxID,
	}
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	requestCursor := parseListTransactionsInput(input)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, nextCursor, err := h.LedgerService.ListTransactions(ctx, requestCursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: fromLedgerList(transactions),
	}
	if nextCursor != nil {
		resp.NextCursor = &ListTransactionsCursor{
			Position: nextCursor.Position,
			Limit:    nextCursor.Limit,
			MaxID:    nextCursor.MaxID,
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
