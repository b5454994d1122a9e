package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-ledger/internal/input"
	"github.com/carson-networks/budget-ledger/internal/ledger"
	"github.com/carson-networks/budget-ledger/internal/logging"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Name     string `json:"name" doc:"Name of the transaction"`
	Amount   string `json:"amount" doc:"Amount, plain or with dot grouping, e.g. 5.000.000"`
	Kind     string `json:"kind" doc:"income or expense"`
	Category string `json:"category" doc:"Category key, e.g. food"`
	Date     string `json:"date,omitempty" doc:"YYYY-MM-DD date, optional"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse is the response body for creating a transaction.
type CreateTransactionResponse struct {
	Transaction Transaction `json:"transaction" doc:"The recorded transaction"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// transactionCreator is the interface for recording transactions.
type transactionCreator interface {
	AddTransaction(ctx context.Context, input ledger.NewTransaction) (ledger.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	LedgerService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{LedgerService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Records a new income or expense transaction.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateTransactionInput(in *CreateTransactionInput) (ledger.NewTransaction, error) {
	form := input.Form{
		Name:     in.Body.Name,
		Amount:   in.Body.Amount,
		Kind:     in.Body.Kind,
		Category: in.Body.Category,
		Date:     in.Body.Date,
	}
	n, err := form.Parse()
	if err != nil {
		return ledger.NewTransaction{}, huma.NewError(http.StatusUnprocessableEntity, err.Error(), err)
	}
	return n, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, in *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	n, err := parseCreateTransactionInput(in)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("addTransactionMs")
	}
	tx, err := h.LedgerService.AddTransaction(ctx, n)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if ledger.IsValidationError(err) {
			return nil, huma.NewError(http.StatusUnprocessableEntity, err.Error(), err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	if logData != nil {
		logData.AddData("transactionID", tx.ID)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponse{Transaction: fromLedger(tx)},
	}, nil
}
