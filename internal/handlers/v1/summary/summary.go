package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/service"
	"github.com/carson-networks/budget-ledger/internal/view"
)

// SummaryResponseBody is the response body for the ledger summary.
type SummaryResponseBody struct {
	TotalIncome  int64      `json:"totalIncome" doc:"Sum of income amounts"`
	TotalExpense int64      `json:"totalExpense" doc:"Sum of expense amounts"`
	Balance      int64      `json:"balance" doc:"Income minus expense, may be negative"`
	Count        int        `json:"count" doc:"Number of transactions"`
	Formatted    view.Cards `json:"formatted" doc:"The same figures formatted for display"`
}

// SummaryOutput is the Huma output for the ledger summary.
type SummaryOutput struct {
	Body SummaryResponseBody
}

type summaryReader interface {
	Summary(ctx context.Context) service.Summary
}

// Handler handles GET /v1/summary.
type Handler struct {
	LedgerService summaryReader
	Formatter     view.Formatter
}

func NewHandler(svc summaryReader, formatter view.Formatter) *Handler {
	return &Handler{LedgerService: svc, Formatter: formatter}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "ledger-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary",
		Summary:     "Ledger summary",
		Description: "Returns total income, total expense, balance and transaction count.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*SummaryOutput, error) {
	s := h.LedgerService.Summary(ctx)

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionCount", s.Count)
	}

	return &SummaryOutput{Body: SummaryResponseBody{
		TotalIncome:  s.TotalIncome,
		TotalExpense: s.TotalExpense,
		Balance:      s.Balance,
		Count:        s.Count,
		Formatted:    h.Formatter.Cards(s.TotalIncome, s.TotalExpense, s.Balance, s.Count),
	}}, nil
}
