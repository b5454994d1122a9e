package service

// Summary holds the aggregate figures of the ledger, taken at one instant.
type Summary struct {
	TotalIncome  int64
	TotalExpense int64
	Balance      int64
	Count        int
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxID so subsequent pages are consistent.
type TransactionCursor struct {
	Position int
	Limit    int
	MaxID    int64
}
