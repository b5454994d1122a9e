package status

import (
	"context"
	"errors"
	"net/http"

	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/service"
)

type summaryReader interface {
	Summary(ctx context.Context) service.Summary
}

type Handler struct {
	LedgerService summaryReader
}

func NewHandler(svc summaryReader) Handler {
	return Handler{LedgerService: svc}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	logData.AddData("transactionCount", h.LedgerService.Summary(req.Context()).Count)
	w.WriteHeader(http.StatusOK)
	return nil
}
