package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-ledger/internal/ledger"
	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/view"
)

// HistoryResponseBody is the response body for the display history.
type HistoryResponseBody struct {
	Rows []view.Row `json:"rows" doc:"Display rows, newest first"`
}

// HistoryOutput is the Huma output for the display history.
type HistoryOutput struct {
	Body HistoryResponseBody
}

type historyReader interface {
	History(ctx context.Context) []ledger.Transaction
}

// HistoryHandler handles GET /v1/history, the whole ledger rendered for display.
type HistoryHandler struct {
	LedgerService historyReader
	Formatter     view.Formatter
}

func NewHistoryHandler(svc historyReader, formatter view.Formatter) *HistoryHandler {
	return &HistoryHandler{LedgerService: svc, Formatter: formatter}
}

func (h *HistoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transaction-history",
		Method:      http.MethodGet,
		Path:        "/v1/history",
		Summary:     "Transaction history",
		Description: "Returns every transaction, newest first, formatted for display.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *HistoryHandler) handle(ctx context.Context, _ *struct{}) (*HistoryOutput, error) {
	rows := h.Formatter.Rows(h.LedgerService.History(ctx))

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionCount", len(rows))
	}

	return &HistoryOutput{Body: HistoryResponseBody{Rows: rows}}, nil
}
