package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-ledger/internal/ledger"
	"github.com/carson-networks/budget-ledger/internal/view"
)

type mockHistoryReader struct {
	mock.Mock
}

func (m *mockHistoryReader) History(ctx context.Context) []ledger.Transaction {
	txs, _ := m.Called(ctx).Get(0).([]ledger.Transaction)
	return txs
}

func TestHTTP_History(t *testing.T) {
	mockSvc := new(mockHistoryReader)
	mockSvc.On("History", mock.Anything).Return([]ledger.Transaction{
		{ID: 5, Name: "Coffee", Amount: 20000, Kind: ledger.KindExpense, Category: "food"},
		{ID: 1, Name: "Monthly Salary", Amount: 5000000, Kind: ledger.KindIncome, Category: "salary", Date: ledger.NewDate(2025, 6, 18)},
	})

	_, api := humatest.New(t)
	NewHistoryHandler(mockSvc, view.NewFormatter(view.DefaultCurrencyPrefix)).Register(api)
	resp := api.Get("/v1/history")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body HistoryResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Rows, 2)
	assert.Equal(t, view.Row{
		ID: 5, Name: "Coffee", Kind: ledger.KindExpense, Icon: "🍕", Amount: "-Rp 20.000", Date: "Today", Style: "expense-item",
	}, body.Rows[0])
	assert.Equal(t, "+Rp 5.000.000", body.Rows[1].Amount)
	assert.Equal(t, "Jun 18, 2025", body.Rows[1].Date)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_History_Empty(t *testing.T) {
	mockSvc := new(mockHistoryReader)
	mockSvc.On("History", mock.Anything).Return(([]ledger.Transaction)(nil))

	_, api := humatest.New(t)
	NewHistoryHandler(mockSvc, view.NewFormatter(view.DefaultCurrencyPrefix)).Register(api)
	resp := api.Get("/v1/history")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body HistoryResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Rows)
}
