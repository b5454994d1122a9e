package view

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-ledger/internal/ledger"
)

func TestCategoryIcon(t *testing.T) {
	cases := map[string]string{
		"salary":        "💰",
		"freelance":     "💼",
		"investment":    "📈",
		"business":      "🏢",
		"food":          "🍕",
		"transport":     "🚗",
		"shopping":      "🛒",
		"bills":         "📱",
		"entertainment": "🎬",
		"health":        "🏥",
		"gifts":         "💰",
		"":              "💰",
	}
	for category, icon := range cases {
		assert.Equal(t, icon, CategoryIcon(category), category)
	}
}

func TestFormatter_Money(t *testing.T) {
	f := NewFormatter(DefaultCurrencyPrefix)

	assert.Equal(t, "Rp 0", f.Money(0))
	assert.Equal(t, "Rp 999", f.Money(999))
	assert.Equal(t, "Rp 20.000", f.Money(20000))
	assert.Equal(t, "Rp 6.100.000", f.Money(6100000))
	assert.Equal(t, "Rp -100.000", f.Money(-100000))
}

func TestFormatter_MoneyLargeAmounts(t *testing.T) {
	f := NewFormatter(DefaultCurrencyPrefix)

	assert.Equal(t, "Rp 9.007.199.254.740.993", f.Money(9007199254740993))
	assert.Equal(t, "Rp 9.223.372.036.854.775.807", f.Money(math.MaxInt64))
	assert.Equal(t, "Rp -9.223.372.036.854.775.807", f.Money(-math.MaxInt64))
}

func TestFormatter_SignedMoney(t *testing.T) {
	f := NewFormatter(DefaultCurrencyPrefix)

	assert.Equal(t, "+Rp 5.000.000", f.SignedMoney(ledger.KindIncome, 5000000))
	assert.Equal(t, "-Rp 250.000", f.SignedMoney(ledger.KindExpense, 250000))
}

func TestFormatter_Rows(t *testing.T) {
	f := NewFormatter(DefaultCurrencyPrefix)
	l := ledger.NewSeeded()
	_, err := l.Add(ledger.NewTransaction{Name: "Movie", Amount: 75000, Kind: ledger.KindExpense, Category: "cinema"})
	require.NoError(t, err)

	rows := f.Rows(l.ListByRecency())

	require.Len(t, rows, 5)
	assert.Equal(t, Row{
		ID: 5, Name: "Movie", Kind: ledger.KindExpense, Icon: "💰",
		Amount: "-Rp 75.000", Date: "Today", Style: "expense-item",
	}, rows[0])
	assert.Equal(t, Row{
		ID: 1, Name: "Monthly Salary", Kind: ledger.KindIncome, Icon: "💰",
		Amount: "+Rp 5.000.000", Date: "Jun 18, 2025", Style: "income-item",
	}, rows[4])
}

func TestFormatter_Cards(t *testing.T) {
	f := NewFormatter("IDR ")

	cards := f.Cards(6500000, 400000, 6100000, 4)

	assert.Equal(t, Cards{
		Income:  "IDR 6.500.000",
		Expense: "IDR 400.000",
		Balance: "IDR 6.100.000",
		Count:   "4",
	}, cards)
}
