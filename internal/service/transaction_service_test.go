package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-ledger/internal/ledger"
	"github.com/carson-networks/budget-ledger/internal/operator"
	"github.com/carson-networks/budget-ledger/internal/operator/actions"
	"github.com/carson-networks/budget-ledger/internal/storage"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newTestService(t *testing.T) (*LedgerService, *mockProcessor) {
	t.Helper()
	proc := new(mockProcessor)
	t.Cleanup(func() { proc.AssertExpectations(t) })
	store := storage.NewStorage(ledger.NewSeeded())
	return NewLedgerService(store, proc), proc
}

// newLiveService wires a real operator so writes reach the ledger.
func newLiveService(t *testing.T, l *ledger.Ledger) *LedgerService {
	t.Helper()
	store := storage.NewStorage(l)
	op := operator.NewOperatorDelegator(store, 1)
	op.Start()
	t.Cleanup(op.Stop)
	return NewService(store, op).Ledger
}

func coffee() ledger.NewTransaction {
	return ledger.NewTransaction{
		Name:     "Coffee",
		Amount:   20000,
		Kind:     ledger.KindExpense,
		Category: "food",
		Date:     ledger.NewDate(2025, 6, 19),
	}
}

// -- AddTransaction tests --

func TestAddTransaction_Success(t *testing.T) {
	svc, proc := newTestService(t)

	proc.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		add, ok := a.(*actions.AddTransaction)
		return ok && add.Input.Name == "Coffee" && add.Input.Amount == 20000
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.AddTransaction).Created = ledger.Transaction{ID: 5, Name: "Coffee"}
	}).Return(nil)

	tx, err := svc.AddTransaction(context.Background(), coffee())

	assert.NoError(t, err)
	assert.Equal(t, int64(5), tx.ID)
}

func TestAddTransaction_ProcessError(t *testing.T) {
	svc, proc := newTestService(t)

	proc.On("Process", mock.Anything, mock.Anything).Return(errors.New("queue closed"))

	tx, err := svc.AddTransaction(context.Background(), coffee())

	assert.EqualError(t, err, "queue closed")
	assert.Equal(t, ledger.Transaction{}, tx)
}

func TestAddTransaction_Live(t *testing.T) {
	svc := newLiveService(t, ledger.NewSeeded())

	tx, err := svc.AddTransaction(context.Background(), coffee())

	require.NoError(t, err)
	assert.Equal(t, int64(5), tx.ID)
	assert.Equal(t, Summary{TotalIncome: 6500000, TotalExpense: 420000, Balance: 6080000, Count: 5}, svc.Summary(context.Background()))
}

func TestAddTransaction_LiveValidationError(t *testing.T) {
	svc := newLiveService(t, ledger.NewSeeded())

	_, err := svc.AddTransaction(context.Background(), ledger.NewTransaction{Amount: 1000, Kind: ledger.KindExpense, Category: "food"})

	assert.True(t, ledger.IsValidationError(err))
	assert.Equal(t, 4, svc.Summary(context.Background()).Count)
}

// -- DeleteTransaction / ClearTransactions tests --

func TestDeleteTransaction_Live(t *testing.T) {
	svc := newLiveService(t, ledger.NewSeeded())

	removed, err := svc.DeleteTransaction(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 3, svc.Summary(context.Background()).Count)

	removed, err = svc.DeleteTransaction(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 3, svc.Summary(context.Background()).Count)
}

func TestDeleteTransaction_ProcessError(t *testing.T) {
	svc, proc := newTestService(t)
	proc.On("Process", mock.Anything, mock.AnythingOfType("*actions.DeleteTransaction")).
		Return(context.Canceled)

	removed, err := svc.DeleteTransaction(context.Background(), 1)

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, removed)
}

func TestClearTransactions_Live(t *testing.T) {
	svc := newLiveService(t, ledger.NewSeeded())

	removed, err := svc.ClearTransactions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, removed)
	assert.Equal(t, Summary{}, svc.Summary(context.Background()))
}

// -- Summary / History tests --

func TestSummary_Seed(t *testing.T) {
	svc, _ := newTestService(t)

	summary := svc.Summary(context.Background())

	assert.Equal(t, int64(6500000), summary.TotalIncome)
	assert.Equal(t, int64(400000), summary.TotalExpense)
	assert.Equal(t, int64(6100000), summary.Balance)
	assert.Equal(t, 4, summary.Count)
}

func TestHistory_NewestFirst(t *testing.T) {
	svc, _ := newTestService(t)

	txs := svc.History(context.Background())

	require.Len(t, txs, 4)
	assert.Equal(t, int64(4), txs[0].ID)
	assert.Equal(t, int64(1), txs[3].ID)
}

// -- ListTransactions tests --

func ledgerWith(n int) *ledger.Ledger {
	l := ledger.New()
	for i := 0; i < n; i++ {
		_, _ = l.Add(ledger.NewTransaction{Name: "Item", Amount: 5, Kind: ledger.KindExpense, Category: "food"})
	}
	return l
}

func TestListTransactions_NoResults(t *testing.T) {
	svc := newLiveService(t, ledger.New())

	txs, next, err := svc.ListTransactions(context.Background(), nil)

	assert.NoError(t, err)
	assert.Nil(t, txs)
	assert.Nil(t, next)
}

func TestListTransactions_SinglePage(t *testing.T) {
	svc, _ := newTestService(t)

	txs, next, err := svc.ListTransactions(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, txs, 4)
	assert.Nil(t, next)
}

func TestListTransactions_HasNextPage(t *testing.T) {
	svc := newLiveService(t, ledgerWith(defaultLimit+1))

	txs, next, err := svc.ListTransactions(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, txs, defaultLimit, "truncated to default limit")
	require.NotNil(t, next)
	assert.Equal(t, defaultLimit, next.Position)
	assert.Equal(t, defaultLimit, next.Limit)
	assert.Equal(t, int64(defaultLimit+1), next.MaxID, "locked to the newest id of the first page")
}

func TestListTransactions_WithCursorIgnoresNewerEntries(t *testing.T) {
	svc := newLiveService(t, ledgerWith(5))

	first, next, err := svc.ListTransactions(context.Background(), &TransactionCursor{Limit: 2})
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, int64(5), first[0].ID)

	_, err = svc.AddTransaction(context.Background(), coffee())
	require.NoError(t, err)

	second, next, err := svc.ListTransactions(context.Background(), next)
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, int64(3), second[0].ID)
	assert.Equal(t, int64(2), second[1].ID)
	require.NotNil(t, next)
	assert.Equal(t, 4, next.Position)
	assert.Equal(t, int64(5), next.MaxID, "echoed from cursor")

	last, next, err := svc.ListTransactions(context.Background(), next)
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Equal(t, int64(1), last[0].ID)
	assert.Nil(t, next)
}

func TestListTransactions_PositionPastEnd(t *testing.T) {
	svc, _ := newTestService(t)

	txs, next, err := svc.ListTransactions(context.Background(), &TransactionCursor{Position: 10, Limit: 5})

	assert.NoError(t, err)
	assert.Nil(t, txs)
	assert.Nil(t, next)
}

func TestListTransactions_NegativePositionStartsAtFirstPage(t *testing.T) {
	svc, _ := newTestService(t)

	txs, next, err := svc.ListTransactions(context.Background(), &TransactionCursor{Position: -3, Limit: 2})

	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, int64(4), txs[0].ID)
	require.NotNil(t, next)
	assert.Equal(t, 2, next.Position)
	assert.Equal(t, int64(4), next.MaxID)
}

func TestListTransactions_CancelledContext(t *testing.T) {
	svc, _ := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := svc.ListTransactions(ctx, nil)

	assert.ErrorIs(t, err, context.Canceled)
}
